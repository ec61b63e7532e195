package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"planboard/internal/calculator"
	"planboard/internal/model"
	"planboard/internal/service/plan"
)

// ShiftCompliance 单班次达成情况
type ShiftCompliance struct {
	Plan     float64             `json:"plan"`
	Actual   float64             `json:"actual"`
	Percent  *float64            `json:"percent"` // null 表示无计划量
	Severity calculator.Severity `json:"severity"`
	Text     string              `json:"text"`
}

// ComplianceCard 单 SKU 单日达成率卡片
type ComplianceCard struct {
	Key      string          `json:"key"`
	Line     string          `json:"line"`
	Product  string          `json:"product"`
	SKU      string          `json:"sku"`
	DayLabel string          `json:"dayLabel"`
	ShortDay string          `json:"shortDay"`
	Shift1   ShiftCompliance `json:"shift1"`
	Shift2   ShiftCompliance `json:"shift2"`
	Shift3   ShiftCompliance `json:"shift3"`
	Total    ShiftCompliance `json:"total"`
}

// GetCompliance 指定日期的达成率卡片
// GET /api/compliance?day=&line=&q=
func (h *Handler) GetCompliance(c *gin.Context) {
	day := c.Query("day")
	if day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "必须指定日期"})
		return
	}
	idx, err := strconv.Atoi(day)
	if err != nil || idx < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期序号"})
		return
	}

	if !h.plans.Loaded() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "尚未加载计划"})
		return
	}
	dayLabel, ok := h.plans.DayLabelAt(idx)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期序号"})
		return
	}

	actuals, err := h.store.AllActuals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取实际量失败"})
		return
	}

	items := h.plans.Query(plan.Filter{
		Line:     c.Query("line"),
		DayIndex: idx,
		Text:     c.Query("q"),
	})

	cards := make([]ComplianceCard, 0, len(items))
	for _, it := range items {
		dd := it.ByDay[dayLabel]
		key := model.ActualKey(dayLabel, it.Line, it.SKU)
		real := actuals[key]

		cards = append(cards, ComplianceCard{
			Key:      key,
			Line:     it.Line,
			Product:  it.Product,
			SKU:      it.SKU,
			DayLabel: dayLabel,
			ShortDay: model.ShortDayLabel(dayLabel),
			Shift1:   shiftCompliance(dd.Shift1, real.Shift1),
			Shift2:   shiftCompliance(dd.Shift2, real.Shift2),
			Shift3:   shiftCompliance(dd.Shift3, real.Shift3),
			Total:    shiftCompliance(dd.Total, real.Shift1+real.Shift2+real.Shift3),
		})
	}

	c.JSON(http.StatusOK, cards)
}

func shiftCompliance(planQty, actualQty float64) ShiftCompliance {
	pct := calculator.Completion(actualQty, planQty)
	return ShiftCompliance{
		Plan:     planQty,
		Actual:   actualQty,
		Percent:  pct,
		Severity: calculator.Classify(pct),
		Text:     calculator.FormatPercent(pct),
	}
}
