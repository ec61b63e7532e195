package store

import (
	"database/sql"
	"fmt"

	"planboard/internal/model"
)

// GetActual 读取单条实际量记录
func (s *Store) GetActual(dayLabel, line, sku string) (model.ActualShifts, bool, error) {
	var a model.ActualShifts
	err := s.db.QueryRow(`
		SELECT shift1, shift2, shift3 FROM actuals
		WHERE day_label = ? AND line = ? AND sku = ?
	`, dayLabel, line, sku).Scan(&a.Shift1, &a.Shift2, &a.Shift3)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.ActualShifts{}, false, nil
		}
		return model.ActualShifts{}, false, fmt.Errorf("query actual failed: %w", err)
	}
	return a, true, nil
}

// SetActual 写入/覆盖单条实际量记录
// 单用户单线程录入，last-write-wins 即可
func (s *Store) SetActual(dayLabel, line, sku string, a model.ActualShifts) error {
	_, err := s.db.Exec(`
		INSERT INTO actuals (day_label, line, sku, shift1, shift2, shift3)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(day_label, line, sku) DO UPDATE SET
			shift1 = excluded.shift1,
			shift2 = excluded.shift2,
			shift3 = excluded.shift3,
			updated_at = CURRENT_TIMESTAMP
	`, dayLabel, line, sku, a.Shift1, a.Shift2, a.Shift3)
	if err != nil {
		return fmt.Errorf("upsert actual failed: %w", err)
	}
	return nil
}

// AllActuals 整表读出：组合键 -> 班次三元组
// 渲染端每次整体加载
func (s *Store) AllActuals() (map[string]model.ActualShifts, error) {
	rows, err := s.db.Query(`SELECT day_label, line, sku, shift1, shift2, shift3 FROM actuals`)
	if err != nil {
		return nil, fmt.Errorf("query actuals failed: %w", err)
	}
	defer rows.Close()

	out := make(map[string]model.ActualShifts)
	for rows.Next() {
		var dayLabel, line, sku string
		var a model.ActualShifts
		if err := rows.Scan(&dayLabel, &line, &sku, &a.Shift1, &a.Shift2, &a.Shift3); err != nil {
			return nil, fmt.Errorf("scan actual failed: %w", err)
		}
		out[model.ActualKey(dayLabel, line, sku)] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate actuals failed: %w", err)
	}
	return out, nil
}
