package store

import (
	"database/sql"
	"fmt"
)

// ImportLogEntry 一次加载的审计记录
type ImportLogEntry struct {
	ID           int64  `json:"id"`
	FileID       string `json:"fileId"`
	Filename     string `json:"filename"`
	ItemCount    int    `json:"itemCount"`
	DayCount     int    `json:"dayCount"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage"`
	CreatedAt    string `json:"createdAt"`
}

// CreateImportLog 创建导入日志，返回日志 ID
func (s *Store) CreateImportLog(fileID, filename string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (file_id, filename, status)
		VALUES (?, ?, 'processing')
	`, fileID, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// FinishImportLog 完成导入日志：status 取 'ok' 或 'failed'
func (s *Store) FinishImportLog(id int64, itemCount, dayCount int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			item_count = ?,
			day_count = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, itemCount, dayCount, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

// LatestImport 最近一次成功导入；没有则返回 nil
func (s *Store) LatestImport() (*ImportLogEntry, error) {
	var e ImportLogEntry
	err := s.db.QueryRow(`
		SELECT id, file_id, filename, item_count, day_count, status, error_message, created_at
		FROM import_logs
		WHERE status = 'ok'
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&e.ID, &e.FileID, &e.Filename, &e.ItemCount, &e.DayCount, &e.Status, &e.ErrorMessage, &e.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest import failed: %w", err)
	}
	return &e, nil
}
