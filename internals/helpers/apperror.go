// file: internals/helpers/apperror.go
package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorKind: klasifikasi error bisnis yang stabil, supaya caller bisa
// render feedback yang tepat tanpa parse pesan mentah.
type ErrorKind string

const (
	ErrKindWindow        ErrorKind = "WINDOW"         // token di luar jendela waktu / uses habis
	ErrKindLocation      ErrorKind = "LOCATION"       // geofence dilanggar / koordinat hilang
	ErrKindOwnership     ErrorKind = "OWNERSHIP"      // sesi tidak bisa ditelusuri ke owner valid
	ErrKindAuthorization ErrorKind = "AUTHORIZATION"  // actor tidak berhak atas scope
	ErrKindDuplicate     ErrorKind = "DUPLICATE"      // constraint violation (sudah ada/terhubung)
	ErrKindTransient     ErrorKind = "TRANSIENT"      // lock contention / deadlock, layak retry
	ErrKindNotFound      ErrorKind = "NOT_FOUND"      // resource tidak ditemukan
	ErrKindInvalidInput  ErrorKind = "INVALID_INPUT"  // payload tidak bisa diparse/dinormalisasi
	ErrKindState         ErrorKind = "STATE"          // aksi tidak diizinkan pada status sekarang
	ErrKindInternal      ErrorKind = "INTERNAL"       // kegagalan tak terduga
)

// AppError: error bisnis dengan kind yang stabil. Dipakai sebagai return
// value biasa (bukan panic) untuk kegagalan yang memang expected.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func WrapAppError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// AsAppError: unwrap chain sampai ketemu *AppError.
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func (k ErrorKind) HTTPStatus() int {
	switch k {
	case ErrKindWindow, ErrKindInvalidInput, ErrKindState:
		return fiber.StatusBadRequest
	case ErrKindLocation:
		return fiber.StatusForbidden
	case ErrKindAuthorization:
		return fiber.StatusForbidden
	case ErrKindOwnership:
		return fiber.StatusUnprocessableEntity
	case ErrKindDuplicate:
		return fiber.StatusConflict
	case ErrKindNotFound:
		return fiber.StatusNotFound
	case ErrKindTransient:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// JsonAppError: render *AppError (atau error lain) ke envelope JSON standar.
// Kind dipakai sebagai error_code supaya klien bisa branch tanpa parse pesan.
func JsonAppError(c *fiber.Ctx, err error) error {
	if ae, ok := AsAppError(err); ok {
		resp := ErrorResponse{
			Success:   false,
			Message:   ae.Message,
			ErrorCode: string(ae.Kind),
		}
		return c.Status(ae.Kind.HTTPStatus()).JSON(resp)
	}
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

/* ===============================
   Klasifikasi error Postgres
=================================*/

// SQLSTATE yang dianggap transient (layak retry singkat di level record).
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgUniqueViolation      = "23505"
)

// IsUniqueViolation: true kalau err adalah pelanggaran unique constraint.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsTransientPG: true untuk lock contention / deadlock / serialization failure.
func IsTransientPG(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
		return true
	}
	return false
}

// ClassifyDBError: bungkus error persistence jadi AppError dengan kind yang pas.
func ClassifyDBError(err error, message string) *AppError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return WrapAppError(ErrKindNotFound, message, err)
	case IsUniqueViolation(err):
		return WrapAppError(ErrKindDuplicate, message, err)
	case IsTransientPG(err):
		return WrapAppError(ErrKindTransient, message, err)
	default:
		return WrapAppError(ErrKindInternal, message, err)
	}
}
