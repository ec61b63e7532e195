package plan

import (
	"sort"
	"strings"
	"sync"

	"planboard/internal/model"
)

// Manager 进程级当前计划持有者
// 只有整表解析成功后才整体替换，读方永远看不到半成品
type Manager struct {
	mu   sync.RWMutex
	plan *model.ParsedPlan
}

// NewManager 创建计划持有者，初始为空
func NewManager() *Manager {
	return &Manager{}
}

// Replace 整体替换当前计划（仅在解析成功后调用）
func (m *Manager) Replace(p *model.ParsedPlan) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plan = p
}

// Reset 清空当前计划
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plan = nil
}

// Loaded 是否已加载计划
func (m *Manager) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.plan != nil
}

// Snapshot 当前计划；未加载返回 nil
// 返回值只读，调用方不得修改
func (m *Manager) Snapshot() *model.ParsedPlan {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.plan
}

// DayView 日期筛选项
type DayView struct {
	Index       int    `json:"index"`
	Label       string `json:"label"`
	ShortLabel  string `json:"shortLabel"`
	StartOffset int    `json:"startOffset"`
}

// Days 按表头顺序返回日期列表
func (m *Manager) Days() []DayView {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.plan == nil {
		return []DayView{}
	}
	out := make([]DayView, 0, len(m.plan.Days))
	for i, d := range m.plan.Days {
		out = append(out, DayView{
			Index:       i,
			Label:       d.Label,
			ShortLabel:  model.ShortDayLabel(d.Label),
			StartOffset: d.StartOffset,
		})
	}
	return out
}

// DayLabelAt 第 idx 个日期的原始标签
func (m *Manager) DayLabelAt(idx int) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.plan == nil || idx < 0 || idx >= len(m.plan.Days) {
		return "", false
	}
	return m.plan.Days[idx].Label, true
}

// Lines 排序去重后的产线列表（筛选项）
func (m *Manager) Lines() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.plan == nil {
		return []string{}
	}
	seen := make(map[string]bool)
	var lines []string
	for _, it := range m.plan.Items {
		if !seen[it.Line] {
			seen[it.Line] = true
			lines = append(lines, it.Line)
		}
	}
	sort.Strings(lines)
	return lines
}

// Summary KPI 卡片数据
type Summary struct {
	TotalPallets float64 `json:"totalPallets"`
	SKUCount     int     `json:"skuCount"`
	LineCount    int     `json:"lineCount"`
	DayCount     int     `json:"dayCount"`
	FileName     string  `json:"fileName"`
}

// Summary 汇总 KPI
func (m *Manager) Summary() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.plan == nil {
		return Summary{}
	}
	s := Summary{
		SKUCount: len(m.plan.Items),
		DayCount: len(m.plan.Days),
		FileName: m.plan.FileName,
	}
	lines := make(map[string]bool)
	for _, it := range m.plan.Items {
		s.TotalPallets += it.TotalPallets
		lines[it.Line] = true
	}
	s.LineCount = len(lines)
	return s
}

// ChartPoint 单个图表数据点
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartData 图表数据：按日合计（柱状）与按产线合计（环形）
type ChartData struct {
	ByDay  []ChartPoint `json:"byDay"`
	ByLine []ChartPoint `json:"byLine"`
}

// ChartData 计算图表数据
// 日序与表头一致；产线按首次出现顺序
func (m *Manager) ChartData() ChartData {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data := ChartData{ByDay: []ChartPoint{}, ByLine: []ChartPoint{}}
	if m.plan == nil {
		return data
	}

	for _, d := range m.plan.Days {
		var sum float64
		for _, it := range m.plan.Items {
			sum += it.ByDay[d.Label].Total
		}
		data.ByDay = append(data.ByDay, ChartPoint{
			Label: model.ShortDayLabel(d.Label),
			Value: sum,
		})
	}

	byLine := make(map[string]int)
	for _, it := range m.plan.Items {
		idx, ok := byLine[it.Line]
		if !ok {
			idx = len(data.ByLine)
			byLine[it.Line] = idx
			data.ByLine = append(data.ByLine, ChartPoint{Label: it.Line})
		}
		data.ByLine[idx].Value += it.TotalPallets
	}

	return data
}

// Filter 列表筛选条件
type Filter struct {
	Line     string // 为空表示全部产线
	DayIndex int    // -1 表示全部日期
	Text     string // line/product/sku 模糊匹配
}

// Query 过滤当前计划
// 选定日期时：剔除该日全 0 的条目，并按班次视图排序
// （产线、最早开工班次、当日合计降序、产品名）
func (m *Manager) Query(f Filter) []*model.PlanItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.plan == nil {
		return []*model.PlanItem{}
	}

	dayLabel := ""
	if f.DayIndex >= 0 {
		if f.DayIndex >= len(m.plan.Days) {
			return []*model.PlanItem{}
		}
		dayLabel = m.plan.Days[f.DayIndex].Label
	}

	q := strings.ToLower(strings.TrimSpace(f.Text))

	out := make([]*model.PlanItem, 0, len(m.plan.Items))
	for _, it := range m.plan.Items {
		if f.Line != "" && it.Line != f.Line {
			continue
		}
		if q != "" {
			hay := strings.ToLower(it.Line + " " + it.Product + " " + it.SKU)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		if dayLabel != "" {
			dd := it.ByDay[dayLabel]
			if dd.Shift1+dd.Shift2+dd.Shift3+dd.Total <= 0 {
				continue
			}
		}
		out = append(out, it)
	}

	if dayLabel != "" {
		sortForShiftView(out, dayLabel)
	}
	return out
}

// sortForShiftView 班次视图排序
func sortForShiftView(items []*model.PlanItem, dayLabel string) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}

		da, db := a.ByDay[dayLabel], b.ByDay[dayLabel]
		sa, sb := firstPlannedShift(da), firstPlannedShift(db)
		if sa != sb {
			return sa < sb
		}
		if da.Total != db.Total {
			return da.Total > db.Total
		}
		return a.Product < b.Product
	})
}

// firstPlannedShift 当日最早有计划量的班次；全 0 排最后
func firstPlannedShift(q model.ShiftQuantities) int {
	switch {
	case q.Shift1 > 0:
		return 1
	case q.Shift2 > 0:
		return 2
	case q.Shift3 > 0:
		return 3
	default:
		return 9
	}
}
