package parser

import (
	"strings"

	"planboard/internal/model"
)

// RowKind 行分类结果
type RowKind int

const (
	RowData       RowKind = iota // 数据行，进入装配
	RowSummary                   // 汇总行（Total cajas / Total tarimas），丢弃
	RowSeparator                 // 产线分隔行（只重复产线名），丢弃
	RowSkipNoSKU                 // 有内容但无 SKU，丢弃
	RowEndOfTable                // 表尾哨兵：整行空白且数值全 0，停止扫描
)

// Classify 对表头以下的每一行做分类
// 分类本身不会失败，无法归属的行一律丢弃；RowEndOfTable 是控制信号而非错误
func Classify(row []any, days []model.DayColumn, schema model.ColumnSchema) RowKind {
	line := cellAt(row, schema.LineCol)
	product := cellAt(row, schema.ProductCol)
	sku := cellAt(row, schema.SKUCol)

	prodLower := strings.ToLower(product)
	lineLower := strings.ToLower(line)

	// 1) 汇总行：汇总/分隔判定必须先于无 SKU 判定，这两类行本来就没有 SKU
	if strings.Contains(prodLower, "total (cajas") ||
		strings.Contains(prodLower, "total cajas") ||
		strings.Contains(prodLower, "total tarimas") {
		return RowSummary
	}

	// 2) 产线分隔行：无产品、无 SKU，产线列只是重复 "LINEA001" 这类名字
	if product == "" && sku == "" &&
		(strings.HasPrefix(lineLower, "line") || strings.HasPrefix(lineLower, "línea")) {
		return RowSeparator
	}

	if sku == "" {
		// 完全空白且数值全 0 的行是表尾；其余无 SKU 行只是不可操作，跳过即可
		if line == "" && product == "" && allZero(row, days, schema) {
			return RowEndOfTable
		}
		return RowSkipNoSKU
	}

	return RowData
}

// allZero 合计列与每个日期的四个子列都解析为 0
func allZero(row []any, days []model.DayColumn, schema model.ColumnSchema) bool {
	if ToNumber(cellValue(row, schema.TotalCol)) != 0 {
		return false
	}
	for _, d := range days {
		for off := 0; off < schema.DayWidth; off++ {
			if ToNumber(cellValue(row, d.StartOffset+off)) != 0 {
				return false
			}
		}
	}
	return true
}
