package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"planboard/internal/model"
	"planboard/internal/service/plan"
)

// PlanResponse 完整计划数据
type PlanResponse struct {
	Items    []*model.PlanItem `json:"items"`
	Days     []model.DayColumn `json:"days"`
	FileName string            `json:"fileName"`
}

// ImportPlan 上传并解析计划表
// POST /api/plan/import (multipart, 字段名 file)
// 解析失败返回 400 与可读信息，当前计划保持不变
func (h *Handler) ImportPlan(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取上传文件失败"})
		return
	}
	defer f.Close()

	result, err := h.coordinator.ImportReader(f, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fileName":  result.FileName,
		"itemCount": len(result.Items),
		"dayCount":  len(result.Days),
	})
}

// ResetPlan 清空当前计划
// POST /api/plan/reset
func (h *Handler) ResetPlan(c *gin.Context) {
	h.plans.Reset()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetPlan 获取当前完整计划
// GET /api/plan
func (h *Handler) GetPlan(c *gin.Context) {
	p := h.plans.Snapshot()
	if p == nil {
		c.JSON(http.StatusOK, PlanResponse{
			Items: []*model.PlanItem{},
			Days:  []model.DayColumn{},
		})
		return
	}
	c.JSON(http.StatusOK, PlanResponse{
		Items:    p.Items,
		Days:     p.Days,
		FileName: p.FileName,
	})
}

// ListDays 日期筛选项
// GET /api/plan/days
func (h *Handler) ListDays(c *gin.Context) {
	c.JSON(http.StatusOK, h.plans.Days())
}

// ListLines 产线筛选项
// GET /api/plan/lines
func (h *Handler) ListLines(c *gin.Context) {
	c.JSON(http.StatusOK, h.plans.Lines())
}

// ListItems 过滤后的计划条目
// GET /api/plan/items?line=&day=&q=
func (h *Handler) ListItems(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.plans.Query(filter))
}

// GetSummary KPI 卡片数据
// GET /api/plan/summary
func (h *Handler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.plans.Summary())
}

// GetCharts 图表数据
// GET /api/plan/charts
func (h *Handler) GetCharts(c *gin.Context) {
	c.JSON(http.StatusOK, h.plans.ChartData())
}

// parseFilter 解析列表筛选参数；day 非法时已写出 400
func parseFilter(c *gin.Context) (plan.Filter, bool) {
	filter := plan.Filter{
		Line:     c.Query("line"),
		DayIndex: -1,
		Text:     c.Query("q"),
	}

	if day := c.Query("day"); day != "" {
		idx, err := strconv.Atoi(day)
		if err != nil || idx < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期序号"})
			return plan.Filter{}, false
		}
		filter.DayIndex = idx
	}
	return filter, true
}
