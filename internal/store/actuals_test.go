package store

import (
	"path/filepath"
	"testing"

	"planboard/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "planboard.db"))
	if err != nil {
		t.Fatalf("New store failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNew_UnopenablePath(t *testing.T) {
	t.Parallel()

	// dbPath 指向已存在的目录，连接必然失败且必须返回错误
	if _, err := New(t.TempDir()); err == nil {
		t.Fatalf("expected error when database path is a directory")
	}
}

func TestActuals_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	day := "Friday, 19-September-2025"
	want := model.ActualShifts{Shift1: 110, Shift2: 0, Shift3: 15}
	if err := s.SetActual(day, "LINEA001", "778123", want); err != nil {
		t.Fatalf("SetActual failed: %v", err)
	}

	got, ok, err := s.GetActual(day, "LINEA001", "778123")
	if err != nil {
		t.Fatalf("GetActual failed: %v", err)
	}
	if !ok {
		t.Fatalf("actual not found after insert")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestActuals_MissingKey(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, ok, err := s.GetActual("day", "line", "sku")
	if err != nil {
		t.Fatalf("GetActual failed: %v", err)
	}
	if ok {
		t.Fatalf("expected absent entry")
	}
}

func TestActuals_UpsertOverwrites(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	day := "Friday, 19-September-2025"
	if err := s.SetActual(day, "L1", "A", model.ActualShifts{Shift1: 10}); err != nil {
		t.Fatalf("SetActual failed: %v", err)
	}
	if err := s.SetActual(day, "L1", "A", model.ActualShifts{Shift1: 25, Shift2: 5}); err != nil {
		t.Fatalf("SetActual (second) failed: %v", err)
	}

	got, ok, err := s.GetActual(day, "L1", "A")
	if err != nil || !ok {
		t.Fatalf("GetActual failed: %v ok=%v", err, ok)
	}
	if got.Shift1 != 25 || got.Shift2 != 5 {
		t.Fatalf("last write should win: %+v", got)
	}
}

func TestActuals_AllActualsKeyedByComposite(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	day := "Friday, 19-September-2025"
	if err := s.SetActual(day, "L1", "A", model.ActualShifts{Shift1: 10}); err != nil {
		t.Fatalf("SetActual failed: %v", err)
	}
	if err := s.SetActual(day, "L2", "B", model.ActualShifts{Shift3: 7}); err != nil {
		t.Fatalf("SetActual failed: %v", err)
	}

	all, err := s.AllActuals()
	if err != nil {
		t.Fatalf("AllActuals failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d entries, want 2", len(all))
	}
	if got := all[model.ActualKey(day, "L1", "A")]; got.Shift1 != 10 {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestImportLog_Lifecycle(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	id, err := s.CreateImportLog("file-id-1", "semana38.xlsx")
	if err != nil {
		t.Fatalf("CreateImportLog failed: %v", err)
	}

	// 处理中的日志不算最近成功导入
	if e, err := s.LatestImport(); err != nil || e != nil {
		t.Fatalf("LatestImport=%+v err=%v, want nil", e, err)
	}

	if err := s.FinishImportLog(id, 12, 6, "ok", ""); err != nil {
		t.Fatalf("FinishImportLog failed: %v", err)
	}

	e, err := s.LatestImport()
	if err != nil {
		t.Fatalf("LatestImport failed: %v", err)
	}
	if e == nil || e.Filename != "semana38.xlsx" || e.ItemCount != 12 || e.DayCount != 6 {
		t.Fatalf("unexpected latest import: %+v", e)
	}
}
