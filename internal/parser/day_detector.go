package parser

import (
	"regexp"
	"strconv"
	"strings"

	"planboard/internal/model"
)

// 日期单元格形如 "Friday, 19-September-2025"，星期前缀可省略
var (
	reDayWithWeekday = regexp.MustCompile(`,\s*\d{1,2}-[A-Za-z]+-\d{4}`)
	reDayBare        = regexp.MustCompile(`\d{1,2}-[A-Za-z]+-\d{4}`)
)

// normalizeHeaderCell 小写并去重音，用于匹配 "Línea"/"linea"/"line"
func normalizeHeaderCell(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")
	return r.Replace(s)
}

// FindHeaderRow 定位表头行：首列等于 "Línea" 的那一行
func FindHeaderRow(matrix [][]any, schema model.ColumnSchema) (int, error) {
	for i, row := range matrix {
		v := normalizeHeaderCell(cellAt(row, schema.LineCol))
		if v == "linea" || v == "line" {
			return i, nil
		}
	}
	return -1, ErrHeaderNotFound
}

// DetectDayColumns 在表头上一行从左到右识别日期列组
// 每个日期默认占用 schema.DayWidth 个连续子列（T1/T2/T3/合计），逐日不再单独校验
func DetectDayColumns(matrix [][]any, headerRow int, schema model.ColumnSchema) ([]model.DayColumn, error) {
	dateRowIdx := headerRow - 1
	if dateRowIdx < 0 {
		return nil, ErrDateRowMissing
	}

	dateRow := matrix[dateRowIdx]
	var days []model.DayColumn
	for c := range dateRow {
		s := cellAt(dateRow, c)
		if s == "" {
			continue
		}
		if reDayWithWeekday.MatchString(s) || reDayBare.MatchString(s) {
			days = append(days, model.DayColumn{Label: s, StartOffset: c})
		}
	}

	if len(days) == 0 {
		return nil, ErrNoDayColumnsFound
	}
	return days, nil
}

// cellAt 取单元格的文本视图，数值按最短十进制转写，越界列按空单元格处理
func cellAt(row []any, idx int) string {
	switch v := cellValue(row, idx).(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// cellValue 取单元格原始值，数值单元格不转写成文本，越界列按 nil 处理
func cellValue(row []any, idx int) any {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}
