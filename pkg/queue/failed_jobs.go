package queue

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/charvi/pkg/logger"
)

// FailedJobRecord is the durable copy of a job that ran out of
// retries, written so operators can inspect or replay it.
type FailedJobRecord struct {
	ID       uint   `gorm:"primaryKey"`
	JobType  string `gorm:"size:255;index"`
	Payload  string `gorm:"type:text"`
	Error    string `gorm:"type:text"`
	Attempts int
	FailedAt time.Time
}

func (FailedJobRecord) TableName() string { return "charvi_failed_jobs" }

var (
	failedDBMu sync.RWMutex
	failedDB   *gorm.DB
)

// UseDB enables persisting failed jobs to the given database. Without
// it failures are only kept in memory. Call once at boot, after
// database.Connect.
func UseDB(db *gorm.DB) {
	failedDBMu.Lock()
	defer failedDBMu.Unlock()
	failedDB = db
	db.AutoMigrate(&FailedJobRecord{})
}

func (m *manager) recordFailure(job Job, jobType string, err error) {
	m.mu.Lock()
	m.failed = append(m.failed, FailedJob{
		Job:      job,
		Err:      err,
		FailedAt: time.Now(),
		Attempts: m.maxRetry,
	})
	m.mu.Unlock()

	failedDBMu.RLock()
	db := failedDB
	failedDBMu.RUnlock()
	if db == nil {
		return
	}

	payload, merr := json.Marshal(job)
	if merr != nil {
		payload = []byte(fmt.Sprintf("%+v", job))
	}
	rec := FailedJobRecord{
		JobType:  jobType,
		Payload:  string(payload),
		Error:    err.Error(),
		Attempts: m.maxRetry,
		FailedAt: time.Now(),
	}
	if dberr := db.Create(&rec).Error; dberr != nil {
		logger.Error("queue: persist failed job", "type", jobType, "error", dberr)
	}
}
