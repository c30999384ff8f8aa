package layout

import (
	"testing"
)

func TestNew_Offsets(t *testing.T) {
	head := []Field{
		{"id", 4},
		{"name", 10},
		{"flag", 1},
	}
	officer := []Field{
		{"title", 2},
		{"holder", 8},
	}

	l, err := New(head, officer, 3, 60)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := l.Offset("id"); got != 0 {
		t.Errorf("Offset(id) = %d, want 0", got)
	}
	if got := l.Offset("name"); got != 4 {
		t.Errorf("Offset(name) = %d, want 4", got)
	}
	if got := l.Offset("flag"); got != 14 {
		t.Errorf("Offset(flag) = %d, want 14", got)
	}
	if got := l.Width("name"); got != 10 {
		t.Errorf("Width(name) = %d, want 10", got)
	}
	if got := l.HeadEnd(); got != 15 {
		t.Errorf("HeadEnd() = %d, want 15", got)
	}
	if got := l.Stride(); got != 10 {
		t.Errorf("Stride() = %d, want 10", got)
	}
	if got := l.StrideOffset("holder"); got != 2 {
		t.Errorf("StrideOffset(holder) = %d, want 2", got)
	}
	if got := l.OfficerOffset(0); got != 15 {
		t.Errorf("OfficerOffset(0) = %d, want 15", got)
	}
	if got := l.OfficerOffset(2); got != 35 {
		t.Errorf("OfficerOffset(2) = %d, want 35", got)
	}
	if got := l.MaxOfficers(); got != 3 {
		t.Errorf("MaxOfficers() = %d, want 3", got)
	}
	if got := l.TotalWidth(); got != 60 {
		t.Errorf("TotalWidth() = %d, want 60", got)
	}
}

func TestNew_InvalidConfiguration(t *testing.T) {
	testCases := []struct {
		name        string
		head        []Field
		officer     []Field
		maxOfficers int
		totalWidth  int
	}{
		{
			name:       "zero field width",
			head:       []Field{{"id", 0}},
			totalWidth: 10,
		},
		{
			name:       "negative field width",
			head:       []Field{{"id", -3}},
			totalWidth: 10,
		},
		{
			name:        "zero officer field width",
			head:        []Field{{"id", 2}},
			officer:     []Field{{"title", 0}},
			maxOfficers: 1,
			totalWidth:  10,
		},
		{
			name:       "duplicate field name",
			head:       []Field{{"id", 2}, {"id", 4}},
			totalWidth: 10,
		},
		{
			name:        "duplicate officer field name",
			head:        []Field{{"id", 2}},
			officer:     []Field{{"title", 2}, {"title", 2}},
			maxOfficers: 1,
			totalWidth:  20,
		},
		{
			name:        "head plus officer region overflows total width",
			head:        []Field{{"id", 8}},
			officer:     []Field{{"title", 4}},
			maxOfficers: 2,
			totalWidth:  15,
		},
		{
			name:       "non-positive total width",
			head:       []Field{{"id", 2}},
			totalWidth: 0,
		},
		{
			name:        "negative max officers",
			head:        []Field{{"id", 2}},
			officer:     []Field{{"title", 2}},
			maxOfficers: -1,
			totalWidth:  10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.head, tc.officer, tc.maxOfficers, tc.totalWidth)
			if err == nil {
				t.Fatalf("expected LayoutError, got nil")
			}
			if _, ok := err.(*LayoutError); !ok {
				t.Errorf("expected *LayoutError, got %T", err)
			}
		})
	}
}

func TestDefault_Geometry(t *testing.T) {
	l := Default()

	if got := l.TotalWidth(); got != 1440 {
		t.Errorf("TotalWidth() = %d, want 1440", got)
	}

	// Column offsets of the quarterly extract.
	checks := map[string]int{
		FieldDocumentNumber: 0,
		FieldName:           12,
		FieldStatus:         204,
		FieldEntityType:     205,
		FieldPrincipalLine1: 220,
	}
	for name, want := range checks {
		if got := l.Offset(name); got != want {
			t.Errorf("Offset(%s) = %d, want %d", name, got, want)
		}
	}

	if got := l.Stride(); got != 129 {
		t.Errorf("Stride() = %d, want 129", got)
	}
	if got := l.OfficerOffset(0); got != l.HeadEnd() {
		t.Errorf("OfficerOffset(0) = %d, want HeadEnd %d", got, l.HeadEnd())
	}
	if end := l.OfficerOffset(l.MaxOfficers() - 1) + l.Stride(); end > l.TotalWidth() {
		t.Errorf("officer region ends at %d, beyond total width %d", end, l.TotalWidth())
	}
}
