// file: internals/features/academics/activities/service/periods.go
package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/activities/model"
	helper "kampusku_backend/internals/helpers"
)

// FindPeriodForDate: periode akademik yang mencakup tanggal tsb.
// nil (tanpa error) kalau tidak ada periode yang cocok — hours record tetap
// bisa dibuat tanpa period stamp.
func FindPeriodForDate(db *gorm.DB, date time.Time) (*model.AcademicPeriodModel, error) {
	var p model.AcademicPeriodModel
	err := db.
		Where("academic_periods_start_date <= ? AND academic_periods_end_date >= ?", date, date).
		Order("academic_periods_start_date DESC").
		Take(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, helper.ClassifyDBError(err, "Gagal mencari periode akademik")
	}
	return &p, nil
}
