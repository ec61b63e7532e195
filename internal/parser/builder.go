package parser

import (
	"planboard/internal/model"
)

// BuildPlan 从表头下一行开始按源表行序装配 PlanItem
// 产线名自上向下继承：行内出现新产线名就切换，尚未出现产线名的数据行无法归属，跳过
func BuildPlan(matrix [][]any, headerRow int, days []model.DayColumn, schema model.ColumnSchema) ([]*model.PlanItem, error) {
	var items []*model.PlanItem
	currentLine := ""

	for r := headerRow + 1; r < len(matrix); r++ {
		row := matrix[r]

		kind := Classify(row, days, schema)
		if kind == RowEndOfTable {
			break
		}
		if kind != RowData {
			continue
		}

		if line := cellAt(row, schema.LineCol); line != "" {
			currentLine = line
		}
		if currentLine == "" {
			continue
		}

		// byDay 对每个识别出的日期都有条目，全 0 也保留
		byDay := make(map[string]model.ShiftQuantities, len(days))
		for _, d := range days {
			byDay[d.Label] = model.ShiftQuantities{
				Shift1: ToNumber(cellValue(row, d.StartOffset)),
				Shift2: ToNumber(cellValue(row, d.StartOffset+1)),
				Shift3: ToNumber(cellValue(row, d.StartOffset+2)),
				Total:  ToNumber(cellValue(row, d.StartOffset+3)),
			}
		}

		items = append(items, &model.PlanItem{
			Line:         currentLine,
			Product:      cellAt(row, schema.ProductCol),
			SKU:          cellAt(row, schema.SKUCol),
			TotalPallets: ToNumber(cellValue(row, schema.TotalCol)),
			ByDay:        byDay,
		})
	}

	if len(items) == 0 {
		return nil, ErrEmptyResult
	}
	return items, nil
}

// ParsePlan 矩阵级解析入口：定位表头、识别日期列、装配计划
// 任一步失败都返回错误且不产出部分结果
func ParsePlan(matrix [][]any, fileName string, schema model.ColumnSchema) (*model.ParsedPlan, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	headerRow, err := FindHeaderRow(matrix, schema)
	if err != nil {
		return nil, err
	}

	days, err := DetectDayColumns(matrix, headerRow, schema)
	if err != nil {
		return nil, err
	}

	items, err := BuildPlan(matrix, headerRow, days, schema)
	if err != nil {
		return nil, err
	}

	return &model.ParsedPlan{
		Items:    items,
		Days:     days,
		FileName: fileName,
	}, nil
}
