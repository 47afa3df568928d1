package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestErrorKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want int
	}{
		{ErrKindWindow, fiber.StatusBadRequest},
		{ErrKindInvalidInput, fiber.StatusBadRequest},
		{ErrKindState, fiber.StatusBadRequest},
		{ErrKindLocation, fiber.StatusForbidden},
		{ErrKindAuthorization, fiber.StatusForbidden},
		{ErrKindOwnership, fiber.StatusUnprocessableEntity},
		{ErrKindDuplicate, fiber.StatusConflict},
		{ErrKindNotFound, fiber.StatusNotFound},
		{ErrKindTransient, fiber.StatusServiceUnavailable},
		{ErrKindInternal, fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.kind.HTTPStatus(); got != tt.want {
			t.Errorf("%s.HTTPStatus() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestAsAppErrorUnwrapsChain(t *testing.T) {
	inner := NewAppError(ErrKindWindow, "token kedaluwarsa")
	wrapped := fmt.Errorf("check-in gagal: %w", inner)

	ae, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("AsAppError tidak menemukan *AppError di chain")
	}
	if ae.Kind != ErrKindWindow {
		t.Errorf("kind = %q, want %q", ae.Kind, ErrKindWindow)
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Error("error biasa tidak boleh terdeteksi sebagai AppError")
	}
}

func TestIsTransientPG(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"40001", true}, // serialization failure
		{"40P01", true}, // deadlock
		{"55P03", true}, // lock not available
		{"23505", false},
		{"42P01", false},
	}
	for _, tt := range tests {
		err := fmt.Errorf("db: %w", &pgconn.PgError{Code: tt.code})
		if got := IsTransientPG(err); got != tt.want {
			t.Errorf("IsTransientPG(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
	if IsTransientPG(errors.New("bukan pg error")) {
		t.Error("error non-PG tidak boleh transient")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("23505 harus unique violation")
	}
	if !IsUniqueViolation(gorm.ErrDuplicatedKey) {
		t.Error("gorm.ErrDuplicatedKey harus unique violation")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "40001"}) {
		t.Error("40001 bukan unique violation")
	}
}

func TestClassifyDBError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ""},
		{"record not found", gorm.ErrRecordNotFound, ErrKindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, ErrKindDuplicate},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, ErrKindTransient},
		{"lainnya", errors.New("boom"), ErrKindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := ClassifyDBError(tt.err, "pesan")
			if tt.err == nil {
				if ae != nil {
					t.Fatalf("nil harus tetap nil, dapat %v", ae)
				}
				return
			}
			if ae == nil {
				t.Fatal("hasil nil, padahal harus AppError")
			}
			if ae.Kind != tt.want {
				t.Errorf("kind = %q, want %q", ae.Kind, tt.want)
			}
		})
	}
}
