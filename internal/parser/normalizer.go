package parser

import (
	"math"
	"strconv"
	"strings"
)

// ToNumber 把任意单元格值规整为有限数值，永不失败
// 源表是人工填写的，空白和乱填都按 0 处理
func ToNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(n)
	case float32:
		return finiteOrZero(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		return parseLocaleNumber(n)
	default:
		return 0
	}
}

// parseLocaleNumber 按 es-AR 书写习惯解析：句点是千分位，逗号是小数点
func parseLocaleNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(n)
}

func finiteOrZero(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
