// file: internals/features/academics/sessions/service/batch_scheduler.go
package service

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	activityModel "kampusku_backend/internals/features/academics/activities/model"
	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/dbtime"
)

const dateLayout = "2006-01-02"

// Kode hari yang diterima (case-insensitive): angka (0/7=minggu, 1=senin..6=sabtu,
// gaya ISO 1..7 juga jalan), Inggris 3 huruf, Spanyol 2/3 huruf, Indonesia 3 huruf.
var weekdayCodes = map[string]time.Weekday{
	// English, 3 huruf
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
	// Spanyol, 2 huruf
	"do": time.Sunday, "lu": time.Monday, "ma": time.Tuesday, "mi": time.Wednesday,
	"ju": time.Thursday, "vi": time.Friday, "sa": time.Saturday,
	// Spanyol, 3 huruf
	"dom": time.Sunday, "lun": time.Monday, "mar": time.Tuesday, "mie": time.Wednesday,
	"jue": time.Thursday, "vie": time.Friday, "sab": time.Saturday,
	// Indonesia, 3 huruf ("sab" sudah kebetulan sama dengan Spanyol)
	"min": time.Sunday, "sen": time.Monday, "sel": time.Tuesday, "rab": time.Wednesday,
	"kam": time.Thursday, "jum": time.Friday,
}

// ParseWeekdays menormalisasi daftar kode hari jadi set time.Weekday
// (duplikat dibuang). Kode tak dikenal → invalid_input.
func ParseWeekdays(codes []string) (map[time.Weekday]bool, *helper.AppError) {
	out := make(map[time.Weekday]bool, len(codes))
	for _, raw := range codes {
		code := strings.ToLower(strings.TrimSpace(raw))
		code = strings.ReplaceAll(code, "é", "e") // "mié" → "mie"
		if code == "" {
			continue
		}
		if n, err := strconv.Atoi(code); err == nil {
			// 0 dan 7 dua-duanya minggu; 1..6 = senin..sabtu
			if n < 0 || n > 7 {
				return nil, helper.NewAppError(helper.ErrKindInvalidInput, "Kode hari di luar rentang: "+raw)
			}
			out[time.Weekday(n%7)] = true
			continue
		}
		wd, ok := weekdayCodes[code]
		if !ok {
			return nil, helper.NewAppError(helper.ErrKindInvalidInput, "Kode hari tidak dikenal: "+raw)
		}
		out[wd] = true
	}
	if len(out) == 0 {
		return nil, helper.NewAppError(helper.ErrKindInvalidInput, "Tidak ada kode hari valid")
	}
	return out, nil
}

// ExpandDateRange: semua tanggal di [start, end] yang jatuh pada weekday terpilih.
func ExpandDateRange(start, end time.Time, weekdays map[time.Weekday]bool) []time.Time {
	var out []time.Time
	start = truncateDate(start)
	end = truncateDate(end)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if weekdays[d.Weekday()] {
			out = append(out, d)
		}
	}
	return out
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ScheduleRequest: input materialisasi batch. Isi Dates ATAU RangeStart/
// RangeEnd+Weekdays, tidak dua-duanya.
type ScheduleRequest struct {
	Owner      activityModel.OwnerRef
	StartTime  string
	EndTime    string
	Dates      []string
	RangeStart string
	RangeEnd   string
	Weekdays   []string
}

type ScheduleService struct {
	DB *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

// Materialize membuat session untuk tiap tanggal terpilih, idempotent:
// find-or-create per (owner, date, start, end), jadi re-run dengan tanggal
// overlap tidak menduplikasi slot. Session baru selalu planned.
func (s *ScheduleService) Materialize(tx *gorm.DB, req ScheduleRequest) ([]sessionModel.ActivitySessionModel, error) {
	db := s.DB
	if tx != nil {
		db = tx
	}

	if err := req.Owner.Validate(); err != nil {
		return nil, helper.WrapAppError(helper.ErrKindOwnership, "Owner reference tidak valid", err)
	}

	startTod, err := dbtime.Parse(req.StartTime)
	if err != nil {
		return nil, helper.WrapAppError(helper.ErrKindInvalidInput, "Jam mulai tidak bisa diparse", err)
	}
	endTod, err := dbtime.Parse(req.EndTime)
	if err != nil {
		return nil, helper.WrapAppError(helper.ErrKindInvalidInput, "Jam selesai tidak bisa diparse", err)
	}

	dates, aerr := s.resolveDates(req)
	if aerr != nil {
		return nil, aerr
	}

	out := make([]sessionModel.ActivitySessionModel, 0, len(dates))
	for _, date := range dates {
		var sess sessionModel.ActivitySessionModel
		err := db.
			Where("activity_sessions_owner_type = ?", req.Owner.Type).
			Where("activity_sessions_owner_id = ?", req.Owner.ID).
			Where("activity_sessions_date = ?", date).
			Where("activity_sessions_start_time = ?", startTod).
			Where("activity_sessions_end_time = ?", endTod).
			Attrs(sessionModel.ActivitySessionModel{
				ActivitySessionOwnerType: req.Owner.Type,
				ActivitySessionOwnerId:   req.Owner.ID,
				ActivitySessionDate:      date,
				ActivitySessionStartTime: startTod,
				ActivitySessionEndTime:   endTod,
				ActivitySessionStatus:    StatusPlanned,
			}).
			FirstOrCreate(&sess).Error
		if err != nil {
			// Race dengan request paralel: unique index menang, baris live
			// sudah ada — ambil ulang supaya tetap masuk hasil.
			if helper.IsUniqueViolation(err) {
				if ferr := db.
					Where("activity_sessions_owner_type = ?", req.Owner.Type).
					Where("activity_sessions_owner_id = ?", req.Owner.ID).
					Where("activity_sessions_date = ?", date).
					Where("activity_sessions_start_time = ?", startTod).
					Where("activity_sessions_end_time = ?", endTod).
					First(&sess).Error; ferr != nil {
					return nil, helper.ClassifyDBError(ferr, "Gagal mengambil session yang sudah ada")
				}
				out = append(out, sess)
				continue
			}
			return nil, helper.ClassifyDBError(err, "Gagal membuat session")
		}
		out = append(out, sess)
	}
	return out, nil
}

func (s *ScheduleService) resolveDates(req ScheduleRequest) ([]time.Time, *helper.AppError) {
	// Mode (a): daftar tanggal eksplisit
	if len(req.Dates) > 0 {
		seen := make(map[string]bool, len(req.Dates))
		dates := make([]time.Time, 0, len(req.Dates))
		for _, raw := range req.Dates {
			raw = strings.TrimSpace(raw)
			if raw == "" || seen[raw] {
				continue
			}
			d, err := time.ParseInLocation(dateLayout, raw, time.Local)
			if err != nil {
				return nil, helper.WrapAppError(helper.ErrKindInvalidInput, "Tanggal tidak bisa diparse: "+raw, err)
			}
			seen[raw] = true
			dates = append(dates, d)
		}
		if len(dates) == 0 {
			return nil, helper.NewAppError(helper.ErrKindInvalidInput, "Daftar tanggal kosong")
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		return dates, nil
	}

	// Mode (b): rentang tanggal + subset weekday
	if req.RangeStart == "" || req.RangeEnd == "" {
		return nil, helper.NewAppError(helper.ErrKindInvalidInput, "Butuh daftar tanggal atau rentang tanggal")
	}
	start, err := time.ParseInLocation(dateLayout, strings.TrimSpace(req.RangeStart), time.Local)
	if err != nil {
		return nil, helper.WrapAppError(helper.ErrKindInvalidInput, "Awal rentang tidak bisa diparse", err)
	}
	end, err := time.ParseInLocation(dateLayout, strings.TrimSpace(req.RangeEnd), time.Local)
	if err != nil {
		return nil, helper.WrapAppError(helper.ErrKindInvalidInput, "Akhir rentang tidak bisa diparse", err)
	}
	if end.Before(start) {
		return nil, helper.NewAppError(helper.ErrKindInvalidInput, "Akhir rentang sebelum awal rentang")
	}

	weekdays, aerr := ParseWeekdays(req.Weekdays)
	if aerr != nil {
		return nil, aerr
	}
	dates := ExpandDateRange(start, end, weekdays)
	if len(dates) == 0 {
		return nil, helper.NewAppError(helper.ErrKindInvalidInput, "Rentang tidak menghasilkan tanggal")
	}
	return dates, nil
}
