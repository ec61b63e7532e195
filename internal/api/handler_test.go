package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"planboard/internal/importer"
	"planboard/internal/model"
	"planboard/internal/service/plan"
	"planboard/internal/store"
)

const testDay = "Friday, 19-September-2025"

func newTestRouter(t *testing.T) (*gin.Engine, *plan.Manager, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.New(filepath.Join(t.TempDir(), "planboard.db"))
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	plans := plan.NewManager()
	coordinator := importer.NewCoordinator(st, plans, "Production Plan_1")
	handler := NewHandler(st, plans, coordinator)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router, plans, st
}

func seedPlan(plans *plan.Manager) {
	plans.Replace(&model.ParsedPlan{
		Items: []*model.PlanItem{
			{
				Line:         "LINEA001",
				Product:      "Helado crema",
				SKU:          "778123",
				TotalPallets: 35,
				ByDay: map[string]model.ShiftQuantities{
					testDay: {Shift1: 100, Shift2: 0, Shift3: 0, Total: 100},
				},
			},
		},
		Days:     []model.DayColumn{{Label: testDay, StartOffset: 4}},
		FileName: "semana38.xlsx",
	})
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetStatus_Empty(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/status", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	var resp StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Initialized {
		t.Fatalf("fresh server should not be initialized")
	}
}

func TestGetStatus_Loaded(t *testing.T) {
	t.Parallel()

	router, plans, _ := newTestRouter(t)
	seedPlan(plans)

	var resp StatusResponse
	w := doRequest(t, router, http.MethodGet, "/api/status", nil, "")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !resp.Initialized || resp.ItemCount != 1 || resp.DayCount != 1 {
		t.Fatalf("unexpected status: %+v", resp)
	}
}

func TestListItems_DayFilter(t *testing.T) {
	t.Parallel()

	router, plans, _ := newTestRouter(t)
	seedPlan(plans)

	w := doRequest(t, router, http.MethodGet, "/api/plan/items?day=0", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var items []*model.PlanItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(items) != 1 || items[0].SKU != "778123" {
		t.Fatalf("unexpected items: %+v", items)
	}

	// 非法日期序号
	w = doRequest(t, router, http.MethodGet, "/api/plan/items?day=abc", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestActuals_PutAndList(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	body, _ := json.Marshal(ActualRequest{
		DayLabel: testDay,
		Line:     "LINEA001",
		SKU:      "778123",
		Shift1:   110,
		Shift3:   15,
	})
	w := doRequest(t, router, http.MethodPut, "/api/actuals", bytes.NewBuffer(body), "application/json")
	if w.Code != http.StatusOK {
		t.Fatalf("put status=%d body=%s", w.Code, w.Body.String())
	}

	w = doRequest(t, router, http.MethodGet, "/api/actuals", nil, "")
	var all map[string]model.ActualShifts
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	got := all[model.ActualKey(testDay, "LINEA001", "778123")]
	if got.Shift1 != 110 || got.Shift3 != 15 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestPutActual_MissingFields(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	body, _ := json.Marshal(ActualRequest{DayLabel: testDay, Shift1: 10})
	w := doRequest(t, router, http.MethodPut, "/api/actuals", bytes.NewBuffer(body), "application/json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestGetCompliance(t *testing.T) {
	t.Parallel()

	router, plans, st := newTestRouter(t)
	seedPlan(plans)

	if err := st.SetActual(testDay, "LINEA001", "778123", model.ActualShifts{Shift1: 102}); err != nil {
		t.Fatalf("SetActual failed: %v", err)
	}

	w := doRequest(t, router, http.MethodGet, "/api/compliance?day=0", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var cards []ComplianceCard
	if err := json.Unmarshal(w.Body.Bytes(), &cards); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}

	card := cards[0]
	if card.Shift1.Percent == nil || *card.Shift1.Percent != 102 {
		t.Fatalf("shift1 percent=%v, want 102", card.Shift1.Percent)
	}
	if card.Shift1.Severity != "ok" || card.Shift1.Text != "102%" {
		t.Fatalf("shift1=%+v", card.Shift1)
	}
	// T2 无计划量：中性占位
	if card.Shift2.Percent != nil || card.Shift2.Text != "—" {
		t.Fatalf("shift2=%+v", card.Shift2)
	}
}

func TestGetCompliance_RequiresDay(t *testing.T) {
	t.Parallel()

	router, plans, _ := newTestRouter(t)
	seedPlan(plans)

	w := doRequest(t, router, http.MethodGet, "/api/compliance", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestImportPlan_InvalidFile(t *testing.T) {
	t.Parallel()

	router, plans, _ := newTestRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "basura.xlsx")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := fw.Write([]byte("esto no es un xlsx")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	_ = mw.Close()

	w := doRequest(t, router, http.MethodPost, "/api/plan/import", &body, mw.FormDataContentType())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
	if plans.Loaded() {
		t.Fatalf("failed import must not load a plan")
	}
}
