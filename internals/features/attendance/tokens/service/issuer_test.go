package service

import (
	"testing"
	"time"

	tokenModel "kampusku_backend/internals/features/attendance/tokens/model"
	helper "kampusku_backend/internals/helpers"
)

func intPtr(v int) *int { return &v }

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.ParseInLocation("2006-01-02 15:04", s, time.UTC)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestCheckTokenUsable(t *testing.T) {
	// Token QR di-issue 10:05 dengan TTL 30 menit → jendela 10:05..10:35.
	base := tokenModel.CheckinTokenModel{
		CheckinTokenKind:       tokenModel.TokenKindQR,
		CheckinTokenUsableFrom: ts(t, "2025-12-01 10:05"),
		CheckinTokenExpiresAt:  ts(t, "2025-12-01 10:35"),
		CheckinTokenActive:     true,
	}

	tests := []struct {
		name   string
		mutate func(tok *tokenModel.CheckinTokenModel)
		now    string
		usable bool
	}{
		{"di dalam jendela", nil, "2025-12-01 10:10", true},
		{"tepat di awal jendela", nil, "2025-12-01 10:05", true},
		{"tepat di akhir jendela", nil, "2025-12-01 10:35", true},
		{"sebelum jendela", nil, "2025-12-01 10:00", false},
		{"setelah jendela", nil, "2025-12-01 10:40", false},
		{
			"nonaktif",
			func(tok *tokenModel.CheckinTokenModel) { tok.CheckinTokenActive = false },
			"2025-12-01 10:10", false,
		},
		{
			"uses masih sisa",
			func(tok *tokenModel.CheckinTokenModel) {
				tok.CheckinTokenMaxUses = intPtr(3)
				tok.CheckinTokenUses = 2
			},
			"2025-12-01 10:10", true,
		},
		{
			"uses habis",
			func(tok *tokenModel.CheckinTokenModel) {
				tok.CheckinTokenMaxUses = intPtr(3)
				tok.CheckinTokenUses = 3
			},
			"2025-12-01 10:10", false,
		},
		{
			"tanpa cap tak terbatas",
			func(tok *tokenModel.CheckinTokenModel) { tok.CheckinTokenUses = 100000 },
			"2025-12-01 10:10", true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := base
			if tt.mutate != nil {
				tt.mutate(&tok)
			}
			aerr := CheckTokenUsable(&tok, ts(t, tt.now))
			if tt.usable && aerr != nil {
				t.Fatalf("token harus usable, dapat: %v", aerr)
			}
			if !tt.usable {
				if aerr == nil {
					t.Fatal("token harus ditolak")
				}
				if aerr.Kind != helper.ErrKindWindow {
					t.Errorf("kind = %q, want %q", aerr.Kind, helper.ErrKindWindow)
				}
			}
		})
	}
}

func TestGenerateTokenValue(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		v, err := generateTokenValue()
		if err != nil {
			t.Fatalf("generateTokenValue: %v", err)
		}
		if len(v) < 24 {
			t.Fatalf("token terlalu pendek: %q", v)
		}
		if seen[v] {
			t.Fatalf("token berulang: %q", v)
		}
		seen[v] = true
	}
}
