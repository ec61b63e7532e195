package calculator

import (
	"fmt"
	"math"
)

// Severity 达成率等级，取值与前端样式类保持一致
type Severity string

const (
	SeverityNeutral Severity = ""     // 无计划量，比值无定义
	SeverityOK      Severity = "ok"   // 98% ~ 110%
	SeverityWarn    Severity = "warn" // 85% ~ <98%
	SeverityBad     Severity = "bad"  // <85% 或 >110%
)

// Completion 实际/计划达成率（百分比，可超过 100）
// 计划量 <= 0 返回 nil：0 计划不代表 0% 可达成，也避免除零
func Completion(actual, plan float64) *float64 {
	if plan <= 0 {
		return nil
	}
	p := (actual / plan) * 100
	return &p
}

// Classify 百分比分级
func Classify(p *float64) Severity {
	if p == nil {
		return SeverityNeutral
	}
	switch {
	case *p >= 98 && *p <= 110:
		return SeverityOK
	case *p >= 85 && *p < 98:
		return SeverityWarn
	default:
		return SeverityBad
	}
}

// FormatPercent 显示文本：nil 用占位符，其余取整数百分比
// 半数远离零取整，102.5 显示 103% 而不是 %.0f 的银行家取整
func FormatPercent(p *float64) string {
	if p == nil {
		return "—"
	}
	return fmt.Sprintf("%d%%", int(math.Round(*p)))
}
