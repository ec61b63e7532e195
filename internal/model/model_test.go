package model

import "testing"

func TestShortDayLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"Friday, 19-September-2025", "Vie 19/09"},
		{"Saturday, 20-September-2025", "Sáb 20/09"},
		{"Monday, 1-January-2026", "Lun 01/01"},
		{"19-September-2025", "19/09"},
		{"sin fecha alguna dentro", "sin fecha alguna"},
		{"corto", "corto"},
	}
	for _, c := range cases {
		if got := ShortDayLabel(c.in); got != c.want {
			t.Fatalf("ShortDayLabel(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestActualKeyRoundTrip(t *testing.T) {
	t.Parallel()

	key := ActualKey("Friday, 19-September-2025", "LINEA001", "778123")
	day, line, sku, err := SplitActualKey(key)
	if err != nil {
		t.Fatalf("SplitActualKey failed: %v", err)
	}
	if day != "Friday, 19-September-2025" || line != "LINEA001" || sku != "778123" {
		t.Fatalf("round trip mismatch: %q %q %q", day, line, sku)
	}

	if _, _, _, err := SplitActualKey("sin separadores"); err == nil {
		t.Fatalf("expected error for malformed key")
	}
}

func TestColumnSchemaValidate(t *testing.T) {
	t.Parallel()

	if err := DefaultColumnSchema().Validate(); err != nil {
		t.Fatalf("default schema should be valid: %v", err)
	}

	s := DefaultColumnSchema()
	s.TotalCol = s.LineCol
	if err := s.Validate(); err == nil {
		t.Fatalf("duplicated columns should fail")
	}

	s = DefaultColumnSchema()
	s.DayWidth = 3
	if err := s.Validate(); err == nil {
		t.Fatalf("day width < 4 should fail")
	}

	s = DefaultColumnSchema()
	s.LineCol = -1
	if err := s.Validate(); err == nil {
		t.Fatalf("negative column should fail")
	}
}
