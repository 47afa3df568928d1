package model

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

// Slot index harus unique DAN partial (hanya baris yang belum di-soft-delete).
// Tanpa where-clause, slot session yang sudah dihapus tetap memblokir
// pembuatan ulang slot yang sama.
func TestActivitySessionSlotIndexPartial(t *testing.T) {
	s, err := schema.Parse(&ActivitySessionModel{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}

	idx, ok := s.ParseIndexes()["uq_activity_sessions_slot"]
	if !ok {
		t.Fatal("index uq_activity_sessions_slot tidak ditemukan")
	}
	if idx.Class != "UNIQUE" {
		t.Errorf("class = %q, mau UNIQUE", idx.Class)
	}
	if idx.Where != "activity_sessions_deleted_at IS NULL" {
		t.Errorf("where = %q, mau partial pada deleted_at IS NULL", idx.Where)
	}

	wantCols := []string{
		"activity_sessions_owner_type",
		"activity_sessions_owner_id",
		"activity_sessions_date",
		"activity_sessions_start_time",
		"activity_sessions_end_time",
	}
	if len(idx.Fields) != len(wantCols) {
		t.Fatalf("jumlah kolom index = %d, mau %d", len(idx.Fields), len(wantCols))
	}
	for i, want := range wantCols {
		if got := idx.Fields[i].DBName; got != want {
			t.Errorf("kolom #%d = %q, mau %q", i, got, want)
		}
	}
}
