package importer

import (
	"io"

	"planboard/internal/model"
	"planboard/internal/parser"
	"planboard/internal/service/plan"
	"planboard/internal/store"
)

// Coordinator 加载协调器
// 整表解析成功才替换当前计划；失败时旧计划原样保留，只记一条失败日志
type Coordinator struct {
	store          *store.Store
	plans          *plan.Manager
	preferredSheet string
}

// NewCoordinator 创建协调器
func NewCoordinator(st *store.Store, plans *plan.Manager, preferredSheet string) *Coordinator {
	return &Coordinator{
		store:          st,
		plans:          plans,
		preferredSheet: preferredSheet,
	}
}

// ImportReader 从上传流导入
func (c *Coordinator) ImportReader(r io.Reader, fileName string) (*model.ParsedPlan, error) {
	p := parser.NewParser(c.preferredSheet)

	logID, logErr := c.store.CreateImportLog(p.FileID(), fileName)

	result, err := p.ParseReader(r, fileName)
	return c.finish(result, err, logID, logErr == nil)
}

// ImportFile 从本地路径导入
func (c *Coordinator) ImportFile(path, fileName string) (*model.ParsedPlan, error) {
	p := parser.NewParser(c.preferredSheet)

	logID, logErr := c.store.CreateImportLog(p.FileID(), fileName)

	result, err := p.ParseFile(path, fileName)
	return c.finish(result, err, logID, logErr == nil)
}

func (c *Coordinator) finish(result *model.ParsedPlan, err error, logID int64, logged bool) (*model.ParsedPlan, error) {
	if err != nil {
		if logged {
			// 日志失败不掩盖解析错误
			_ = c.store.FinishImportLog(logID, 0, 0, "failed", err.Error())
		}
		return nil, err
	}

	c.plans.Replace(result)
	if logged {
		_ = c.store.FinishImportLog(logID, len(result.Items), len(result.Days), "ok", "")
	}
	return result, nil
}
