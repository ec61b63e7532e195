package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"planboard/internal/model"
)

// Parser 计划表 Excel 解析器
type Parser struct {
	fileID         string
	schema         model.ColumnSchema
	preferredSheet string
}

// NewParser 创建解析器
// preferredSheet 存在则读它，否则回落到第一个工作表
func NewParser(preferredSheet string) *Parser {
	return &Parser{
		fileID:         uuid.New().String(),
		schema:         model.DefaultColumnSchema(),
		preferredSheet: preferredSheet,
	}
}

// FileID 本次解析的文件 ID（用于导入日志）
func (p *Parser) FileID() string {
	return p.fileID
}

// SetSchema 覆盖默认列布局
func (p *Parser) SetSchema(schema model.ColumnSchema) {
	p.schema = schema
}

// ParseReader 从上传流解析
func (p *Parser) ParseReader(r io.Reader, fileName string) (*model.ParsedPlan, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer f.Close()

	return p.parseWorkbook(f, fileName)
}

// ParseFile 从本地路径解析
func (p *Parser) ParseFile(path, fileName string) (*model.ParsedPlan, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer f.Close()

	return p.parseWorkbook(f, fileName)
}

func (p *Parser) parseWorkbook(f *excelize.File, fileName string) (*model.ParsedPlan, error) {
	sheet := pickSheet(f, p.preferredSheet)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	matrix, err := cellMatrix(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return ParsePlan(matrix, fileName, p.schema)
}

// cellMatrix 读取工作表为保留类型的单元格矩阵
// 数值单元格取存储值而不是显示文本，小数点不会被当成千分位剥掉；文本单元格保持字符串
func cellMatrix(f *excelize.File, sheet string) ([][]any, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	matrix := make([][]any, len(rows))
	for r, row := range rows {
		cells := make([]any, len(row))
		for c, v := range row {
			cells[c] = v
			if v == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				continue
			}
			if !isNumericCell(f, sheet, axis) {
				continue
			}
			raw, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
			if err != nil {
				continue
			}
			if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
				cells[c] = n
			}
		}
		matrix[r] = cells
	}
	return matrix, nil
}

// isNumericCell 数值单元格通常不带 t 属性，Unset 和 Number 都算数值
// 共享字符串、内联字符串、公式文本等一律按文本处理
func isNumericCell(f *excelize.File, sheet, axis string) bool {
	ct, err := f.GetCellType(sheet, axis)
	if err != nil {
		return false
	}
	return ct == excelize.CellTypeNumber || ct == excelize.CellTypeUnset
}

func pickSheet(f *excelize.File, preferred string) string {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ""
	}
	for _, name := range sheets {
		if name == preferred {
			return name
		}
	}
	return sheets[0]
}
