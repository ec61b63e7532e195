package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"planboard/internal/model"
)

// ActualRequest 单条实际量写入请求
type ActualRequest struct {
	DayLabel string  `json:"dayLabel"`
	Line     string  `json:"line"`
	SKU      string  `json:"sku"`
	Shift1   float64 `json:"shift1"`
	Shift2   float64 `json:"shift2"`
	Shift3   float64 `json:"shift3"`
}

// ListActuals 整表读出实际量
// GET /api/actuals
func (h *Handler) ListActuals(c *gin.Context) {
	all, err := h.store.AllActuals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取实际量失败"})
		return
	}
	c.JSON(http.StatusOK, all)
}

// PutActual 写入单条实际量（覆盖写）
// PUT /api/actuals
func (h *Handler) PutActual(c *gin.Context) {
	var req ActualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}

	req.DayLabel = strings.TrimSpace(req.DayLabel)
	req.Line = strings.TrimSpace(req.Line)
	req.SKU = strings.TrimSpace(req.SKU)
	if req.DayLabel == "" || req.Line == "" || req.SKU == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dayLabel / line / sku 不能为空"})
		return
	}

	a := model.ActualShifts{
		Shift1: req.Shift1,
		Shift2: req.Shift2,
		Shift3: req.Shift3,
	}
	if err := h.store.SetActual(req.DayLabel, req.Line, req.SKU, a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存实际量失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":    model.ActualKey(req.DayLabel, req.Line, req.SKU),
		"shift1": a.Shift1,
		"shift2": a.Shift2,
		"shift3": a.Shift3,
	})
}
