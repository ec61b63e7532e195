package parser

import "errors"

// 解析失败分类：一次加载内不可恢复，直接向界面透出
// 失败的加载不得覆盖已有计划
var (
	// ErrHeaderNotFound 任何行的首列都不是 "Línea"
	ErrHeaderNotFound = errors.New("未找到 'Línea' 表头行")
	// ErrDateRowMissing 表头行是第一行，上方没有日期行
	ErrDateRowMissing = errors.New("表头行上方缺少日期行")
	// ErrNoDayColumnsFound 日期行中没有匹配到任何日期文本
	ErrNoDayColumnsFound = errors.New("日期行中未识别到日期列")
	// ErrEmptyResult 表存在但没有产出任何计划记录
	ErrEmptyResult = errors.New("未能构建任何计划记录（0 行）")
)
