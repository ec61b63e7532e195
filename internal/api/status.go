package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized    bool   `json:"initialized"`    // 是否已加载计划
	FileName       string `json:"fileName"`       // 当前计划来源文件
	ItemCount      int    `json:"itemCount"`      // SKU 条目数
	DayCount       int    `json:"dayCount"`       // 日期数
	LineCount      int    `json:"lineCount"`      // 产线数
	LastImportTime string `json:"lastImportTime"` // 最近一次成功导入时间
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	s := h.plans.Summary()

	lastImport := ""
	if e, err := h.store.LatestImport(); err == nil && e != nil {
		lastImport = e.CreatedAt
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:    h.plans.Loaded(),
		FileName:       s.FileName,
		ItemCount:      s.SKUCount,
		DayCount:       s.DayCount,
		LineCount:      s.LineCount,
		LastImportTime: lastImport,
	})
}
