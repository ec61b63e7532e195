package api

import (
	"github.com/gin-gonic/gin"

	"planboard/internal/importer"
	"planboard/internal/service/plan"
	"planboard/internal/store"
)

// Handler 仪表盘 API 处理器
type Handler struct {
	store       *store.Store
	plans       *plan.Manager
	coordinator *importer.Coordinator
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.Store, plans *plan.Manager, coordinator *importer.Coordinator) *Handler {
	return &Handler{
		store:       st,
		plans:       plans,
		coordinator: coordinator,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 计划加载与查询
	router.POST("/plan/import", h.ImportPlan)
	router.POST("/plan/reset", h.ResetPlan)
	router.GET("/plan", h.GetPlan)
	router.GET("/plan/days", h.ListDays)
	router.GET("/plan/lines", h.ListLines)
	router.GET("/plan/items", h.ListItems)
	router.GET("/plan/summary", h.GetSummary)
	router.GET("/plan/charts", h.GetCharts)

	// 实际量录入
	router.GET("/actuals", h.ListActuals)
	router.PUT("/actuals", h.PutActual)

	// 达成率卡片
	router.GET("/compliance", h.GetCompliance)
}
