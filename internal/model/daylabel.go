package model

import (
	"regexp"
	"strings"
)

// 日期短标签只依赖内置查表，不依赖运行环境 locale

// monthNumbers 英文月份名 -> 两位月份
var monthNumbers = map[string]string{
	"january": "01", "february": "02", "march": "03", "april": "04",
	"may": "05", "june": "06", "july": "07", "august": "08",
	"september": "09", "october": "10", "november": "11", "december": "12",
}

// weekdayShortES 英文星期缩写 -> 西语缩写（模板面向西语用户）
var weekdayShortES = map[string]string{
	"Mon": "Lun", "Tue": "Mar", "Wed": "Mié", "Thu": "Jue",
	"Fri": "Vie", "Sat": "Sáb", "Sun": "Dom",
}

var reDayLabel = regexp.MustCompile(`(\d{1,2})-([A-Za-z]+)-(\d{4})`)

// ShortDayLabel 把 "Friday, 19-September-2025" 压缩成 "Vie 19/09"
// 无法识别时截断原文返回
func ShortDayLabel(label string) string {
	m := reDayLabel.FindStringSubmatch(label)
	if m == nil {
		if len(label) > 16 {
			return label[:16]
		}
		return label
	}

	dd := m[1]
	if len(dd) == 1 {
		dd = "0" + dd
	}

	mm, ok := monthNumbers[strings.ToLower(m[2])]
	if !ok {
		mm = "??"
	}

	// 星期前缀可选："Friday, ..." 或纯 "19-September-2025"
	wd := ""
	if i := strings.Index(label, ","); i > 0 {
		wd = strings.TrimSpace(label[:i])
		if len(wd) > 3 {
			wd = wd[:3]
		}
		if es, ok := weekdayShortES[wd]; ok {
			wd = es
		}
	}

	if wd == "" {
		return dd + "/" + mm
	}
	return wd + " " + dd + "/" + mm
}
