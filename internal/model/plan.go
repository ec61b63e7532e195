package model

import (
	"errors"
	"fmt"
	"strings"
)

// ShiftQuantities 单日三班次计划量
type ShiftQuantities struct {
	Shift1 float64 `json:"shift1"` // T1 班次
	Shift2 float64 `json:"shift2"` // T2 班次
	Shift3 float64 `json:"shift3"` // T3 班次
	Total  float64 `json:"total"`  // 当日合计
}

// PlanItem 单个 SKU 在整个日期范围内的生产计划
type PlanItem struct {
	Line         string                     `json:"line"`         // 产线（从上一个显式声明行继承）
	Product      string                     `json:"product"`      // 产品描述（可为空）
	SKU          string                     `json:"sku"`          // SKU 标识，必填
	TotalPallets float64                    `json:"totalPallets"` // 托盘合计（与日期无关）
	ByDay        map[string]ShiftQuantities `json:"byDay"`        // 日期标签 -> 班次计划量
}

// DayColumn 表头中识别出的一个日期列组
type DayColumn struct {
	Label       string `json:"label"`       // 原始日期文本，如 "Friday, 19-September-2025"
	StartOffset int    `json:"startOffset"` // 四个子列（T1/T2/T3/合计）的起始列号
}

// ParsedPlan 一次成功解析得到的完整计划数据
// 整体替换，不做局部修改
type ParsedPlan struct {
	Items    []*PlanItem `json:"items"`    // 按源表行序
	Days     []DayColumn `json:"days"`     // 按表头从左到右
	FileName string      `json:"fileName"` // 来源文件名
}

// ActualShifts 用户录入的单日三班次实际量
type ActualShifts struct {
	Shift1 float64 `json:"shift1"`
	Shift2 float64 `json:"shift2"`
	Shift3 float64 `json:"shift3"`
}

// ActualKey 实际量存储的组合键
func ActualKey(dayLabel, line, sku string) string {
	return dayLabel + "|" + line + "|" + sku
}

// SplitActualKey 拆解组合键，非法键返回错误
func SplitActualKey(key string) (dayLabel, line, sku string, err error) {
	parts := strings.SplitN(key, "|", 3)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("invalid actual key: %q", key)
	}
	return parts[0], parts[1], parts[2], nil
}

// ColumnSchema 计划表的固定列布局
// 固定列在前，日期列组按 DayWidth 宽度依次排布
type ColumnSchema struct {
	LineCol    int `toml:"line_col"`    // 产线列
	ProductCol int `toml:"product_col"` // 产品描述列
	SKUCol     int `toml:"sku_col"`     // SKU 列
	TotalCol   int `toml:"total_col"`   // 托盘合计列
	DayWidth   int `toml:"day_width"`   // 每个日期占用的连续列数
}

// DefaultColumnSchema 模板 AR01 的默认列布局
func DefaultColumnSchema() ColumnSchema {
	return ColumnSchema{
		LineCol:    0,
		ProductCol: 1,
		SKUCol:     2,
		TotalCol:   3,
		DayWidth:   4,
	}
}

// Validate 解析开始前校验一次布局
func (s ColumnSchema) Validate() error {
	cols := []int{s.LineCol, s.ProductCol, s.SKUCol, s.TotalCol}
	seen := make(map[int]bool, len(cols))
	for _, c := range cols {
		if c < 0 {
			return errors.New("column schema: negative column index")
		}
		if seen[c] {
			return fmt.Errorf("column schema: duplicated column index %d", c)
		}
		seen[c] = true
	}
	if s.DayWidth < 4 {
		return fmt.Errorf("column schema: day width %d, need at least 4 (T1/T2/T3/合计)", s.DayWidth)
	}
	return nil
}
