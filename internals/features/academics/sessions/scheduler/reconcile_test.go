package scheduler

import (
	"testing"
	"time"

	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
)

// Pin aturan single-writer: lease hanya boleh diambil alih kalau belum ada
// pemegang, pemegangnya kita sendiri, atau TTL-nya sudah lewat.
func TestLeaseGrantable(t *testing.T) {
	now := time.Date(2025, 12, 1, 9, 0, 0, 0, time.Local)

	lock := func(owner string, expires time.Time) *sessionModel.JobLockModel {
		return &sessionModel.JobLockModel{
			JobLockName:      reconcileLockName,
			JobLockOwner:     owner,
			JobLockExpiresAt: expires,
		}
	}

	tests := []struct {
		name  string
		lock  *sessionModel.JobLockModel
		owner string
		want  bool
	}{
		{"belum ada lock", nil, "node-a", true},
		{"node lain, lease masih hidup", lock("node-b", now.Add(30 * time.Second)), "node-a", false},
		{"node lain, lease basi", lock("node-b", now.Add(-1 * time.Second)), "node-a", true},
		{"node lain, expires tepat sekarang", lock("node-b", now), "node-a", true},
		{"re-acquire oleh pemegang sendiri", lock("node-a", now.Add(30 * time.Second)), "node-a", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := leaseGrantable(tt.lock, tt.owner, now); got != tt.want {
				t.Errorf("leaseGrantable = %v, mau %v", got, tt.want)
			}
		})
	}
}
