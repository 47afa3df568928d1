// file: internals/databases/migrate.go
package database

import (
	"log"
	"os"

	activityModel "kampusku_backend/internals/features/academics/activities/model"
	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	checkinModel "kampusku_backend/internals/features/attendance/checkins/model"
	tokenModel "kampusku_backend/internals/features/attendance/tokens/model"
	userModel "kampusku_backend/internals/features/users/model"
)

// AutoMigrate hanya jalan kalau RUN_MIGRATIONS=true — di production skema
// dikelola lewat migration tool terpisah.
func AutoMigrate() {
	if os.Getenv("RUN_MIGRATIONS") != "true" {
		return
	}
	log.Println("[DB] 🛠 Menjalankan AutoMigrate...")

	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&activityModel.AcademicPeriodModel{},
		&activityModel.AcademicProjectModel{},
		&activityModel.AcademicProcessModel{},
		&activityModel.AcademicEventModel{},
		&activityModel.ScopeAdminModel{},
		&studentModel.StudentRecordModel{},
		&sessionModel.ActivitySessionModel{},
		&sessionModel.JobLockModel{},
		&tokenModel.CheckinTokenModel{},
		&checkinModel.AttendanceModel{},
		&checkinModel.HoursRecordModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
