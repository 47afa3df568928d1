// file: internals/features/attendance/checkins/controller/attendance_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "kampusku_backend/internals/features/academics/activities/model"
	activityService "kampusku_backend/internals/features/academics/activities/service"
	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
	"kampusku_backend/internals/features/attendance/checkins/dto"
	checkinModel "kampusku_backend/internals/features/attendance/checkins/model"
	"kampusku_backend/internals/features/attendance/checkins/service"
	tokenModel "kampusku_backend/internals/features/attendance/tokens/model"
	helper "kampusku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

/* ===================== CHECK-IN ===================== */
// POST /api/a/attendances/check-in
// Siswa check-in untuk dirinya sendiri (student_record_id dari claim JWT).
// Staff boleh check-in atas nama siswa lain — itu butuh hak kelola scope
// pada owner sesi token.
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ownRecordID, hasOwn := helper.GetStudentRecordIDFromToken(c)
	targetRecordID := ownRecordID
	onBehalf := false
	if req.StudentRecordId != nil && (!hasOwn || *req.StudentRecordId != ownRecordID) {
		targetRecordID = *req.StudentRecordId
		onBehalf = true
	}
	if targetRecordID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Akun ini tidak punya student record")
	}

	var att *checkinModel.AttendanceModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if onBehalf {
			// Scope check butuh owner sesi token, jadi token dibaca duluan.
			var tok tokenModel.CheckinTokenModel
			if err := tx.Where("checkin_tokens_value = ?", req.TokenValue).Take(&tok).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.NewAppError(helper.ErrKindNotFound, "Token tidak dikenal")
				}
				return helper.ClassifyDBError(err, "Gagal membaca token")
			}
			var sess sessionModel.ActivitySessionModel
			if err := tx.Where("activity_sessions_id = ?", tok.CheckinTokenSessionId).Take(&sess).Error; err != nil {
				return helper.ClassifyDBError(err, "Gagal membaca session token")
			}
			ref := activityModel.OwnerRef{Type: sess.ActivitySessionOwnerType, ID: sess.ActivitySessionOwnerId}
			if err := activityService.RequireScopeManager(tx, userID, helper.GetRoleFromToken(c), ref); err != nil {
				return err
			}
		}

		var ierr error
		att, ierr = service.NewCheckinService(tx).CheckInWithToken(tx, req.TokenValue, targetRecordID, req.ParticipationId, req.Lat, req.Lng, req.Meta)
		return ierr
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonCreated(c, "Check-in tercatat", dto.FromAttendanceModel(*att))
}

/* ===================== DIRECT RECORD ===================== */
// POST /api/a/attendances/direct
// Pencatatan tanpa token (import/adjustment/manual) oleh pengelola scope.
func (ctrl *AttendanceController) RecordDirect(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.DirectAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var att *checkinModel.AttendanceModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var sess sessionModel.ActivitySessionModel
		if err := tx.Where("activity_sessions_id = ?", req.AttendanceSessionId).Take(&sess).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewAppError(helper.ErrKindNotFound, "Session tidak ditemukan")
			}
			return helper.ClassifyDBError(err, "Gagal membaca session")
		}
		ref := activityModel.OwnerRef{Type: sess.ActivitySessionOwnerType, ID: sess.ActivitySessionOwnerId}
		if err := activityService.RequireScopeManager(tx, userID, helper.GetRoleFromToken(c), ref); err != nil {
			return err
		}

		var ierr error
		att, ierr = service.NewCheckinService(tx).RecordDirect(tx, req.AttendanceSessionId, req.AttendanceStudentRecordId, req.AttendanceMethod, req.AttendanceParticipationId, req.Meta)
		return ierr
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonCreated(c, "Attendance tercatat", dto.FromAttendanceModel(*att))
}

/* ===================== VALIDATE ===================== */
// POST /api/a/attendances/:id/validate
func (ctrl *AttendanceController) ValidateAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	attendanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ValidateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	withHours := req.WithHours == nil || *req.WithHours

	var att *checkinModel.AttendanceModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.requireManagerOfAttendance(tx, c, userID, attendanceID); err != nil {
			return err
		}
		var ierr error
		att, ierr = service.NewCheckinService(tx).ValidateAttendance(tx, attendanceID, req.Minutes, withHours)
		return ierr
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonUpdated(c, "Attendance divalidasi", dto.FromAttendanceModel(*att))
}

// POST /api/a/attendances/validate-session
func (ctrl *AttendanceController) ValidateSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ValidateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	withHours := req.WithHours == nil || *req.WithHours

	var done int
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var sess sessionModel.ActivitySessionModel
		if err := tx.Where("activity_sessions_id = ?", req.AttendanceSessionId).Take(&sess).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewAppError(helper.ErrKindNotFound, "Session tidak ditemukan")
			}
			return helper.ClassifyDBError(err, "Gagal membaca session")
		}
		ref := activityModel.OwnerRef{Type: sess.ActivitySessionOwnerType, ID: sess.ActivitySessionOwnerId}
		if err := activityService.RequireScopeManager(tx, userID, helper.GetRoleFromToken(c), ref); err != nil {
			return err
		}

		var ierr error
		done, ierr = service.NewCheckinService(tx).ValidateSessionAttendances(tx, req.AttendanceSessionId, req.Minutes, withHours)
		return ierr
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonUpdated(c, "Attendance sesi divalidasi", fiber.Map{
		"attendances_session_id": req.AttendanceSessionId,
		"validated_count":        done,
	})
}

/* ===================== VOID ===================== */
// POST /api/a/attendances/:id/void
func (ctrl *AttendanceController) VoidAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	attendanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var att *checkinModel.AttendanceModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.requireManagerOfAttendance(tx, c, userID, attendanceID); err != nil {
			return err
		}
		var ierr error
		att, ierr = service.NewCheckinService(tx).VoidAttendance(tx, attendanceID)
		return ierr
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonUpdated(c, "Attendance di-void", dto.FromAttendanceModel(*att))
}

/* ===================== LIST ===================== */
// GET /api/a/attendances?session_id=&page=&per_page=
func (ctrl *AttendanceController) ListBySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Query("session_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id tidak valid")
	}

	paging := helper.ResolvePaging(c, 25, 200)
	base := ctrl.DB.Model(&checkinModel.AttendanceModel{}).
		Where("attendances_session_id = ?", sessionID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []checkinModel.AttendanceModel
	if err := base.
		Order("attendances_check_in_at NULLS LAST, attendances_id").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromAttendanceModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/attendances/mine — riwayat attendance milik siswa yang login.
func (ctrl *AttendanceController) ListMine(c *fiber.Ctx) error {
	recordID, ok := helper.GetStudentRecordIDFromToken(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Akun ini tidak punya student record")
	}

	paging := helper.ResolvePaging(c, 25, 200)
	base := ctrl.DB.Model(&checkinModel.AttendanceModel{}).
		Where("attendances_student_record_id = ?", recordID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []checkinModel.AttendanceModel
	if err := base.
		Order("attendances_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromAttendanceModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== HOURS LEDGER ===================== */
// GET /api/a/hours-records?student_record_id=&owner_type=&owner_id=&period_id=
func (ctrl *AttendanceController) ListHoursRecords(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&checkinModel.HoursRecordModel{})

	if s := c.Query("student_record_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_record_id tidak valid")
		}
		q = q.Where("hours_records_student_record_id = ?", id)
	}
	if ot := c.Query("owner_type"); ot != "" {
		id, err := uuid.Parse(c.Query("owner_id"))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "owner_id tidak valid")
		}
		q = q.Where("hours_records_owner_type = ? AND hours_records_owner_id = ?", ot, id)
	}
	if p := c.Query("period_id"); p != "" {
		id, err := uuid.Parse(p)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "period_id tidak valid")
		}
		q = q.Where("hours_records_period_id = ?", id)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []checkinModel.HoursRecordModel
	if err := q.
		Order("hours_records_date DESC, hours_records_id").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromHoursRecordModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== shared ===================== */

// requireManagerOfAttendance: telusuri attendance → session → owner lalu cek
// hak kelola scope pemanggil.
func (ctrl *AttendanceController) requireManagerOfAttendance(tx *gorm.DB, c *fiber.Ctx, userID uuid.UUID, attendanceID uuid.UUID) error {
	var att checkinModel.AttendanceModel
	if err := tx.Where("attendances_id = ?", attendanceID).Take(&att).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NewAppError(helper.ErrKindNotFound, "Attendance tidak ditemukan")
		}
		return helper.ClassifyDBError(err, "Gagal membaca attendance")
	}
	var sess sessionModel.ActivitySessionModel
	if err := tx.Where("activity_sessions_id = ?", att.AttendanceSessionId).Take(&sess).Error; err != nil {
		return helper.ClassifyDBError(err, "Gagal membaca session attendance")
	}
	ref := activityModel.OwnerRef{Type: sess.ActivitySessionOwnerType, ID: sess.ActivitySessionOwnerId}
	return activityService.RequireScopeManager(tx, userID, helper.GetRoleFromToken(c), ref)
}
