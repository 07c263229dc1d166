// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hunlearn/lang-portal/internal/database/study"
)

// SessionJanitor periodically stamps an end time on study sessions
// that were started but never closed. Neither frontend generation
// closes sessions itself, so without this every session stays open
// forever and end_time is always null.
type SessionJanitor struct {
	study    *study.Repository
	schedule string
	maxAge   time.Duration

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.Mutex
	isRunning bool
}

// NewSessionJanitor creates a janitor closing sessions older than
// maxAge on the given cron schedule.
func NewSessionJanitor(studyRepo *study.Repository, schedule string, maxAge time.Duration) *SessionJanitor {
	return &SessionJanitor{
		study:    studyRepo,
		schedule: schedule,
		maxAge:   maxAge,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the schedule. Calling Start on a running janitor is a
// no-op.
func (j *SessionJanitor) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.isRunning {
		return nil
	}

	entryID, err := j.cron.AddFunc(j.schedule, j.runOnce)
	if err != nil {
		return fmt.Errorf("failed to schedule session janitor: %w", err)
	}
	j.entryID = entryID

	j.cron.Start()
	j.isRunning = true
	log.Printf("Session janitor: started (schedule %q, max age %v)", j.schedule, j.maxAge)
	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (j *SessionJanitor) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.isRunning {
		return
	}

	ctx := j.cron.Stop()
	<-ctx.Done()
	j.isRunning = false
	log.Printf("Session janitor: stopped")
}

// RunOnce closes stale sessions immediately, outside the schedule.
func (j *SessionJanitor) RunOnce() {
	j.runOnce()
}

func (j *SessionJanitor) runOnce() {
	cutoff := time.Now().Add(-j.maxAge)
	closed, err := j.study.CloseStale(cutoff)
	if err != nil {
		log.Printf("Session janitor: failed to close stale sessions: %v", err)
		return
	}
	if closed > 0 {
		log.Printf("Session janitor: closed %d stale sessions", closed)
	}
}
