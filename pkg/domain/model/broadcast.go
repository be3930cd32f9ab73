package model

import (
	"time"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
)

// BroadcastStatus is the per-user delivery outcome
type BroadcastStatus string

const (
	BroadcastStatusSent  BroadcastStatus = "sent"
	BroadcastStatusError BroadcastStatus = "error"
)

// BroadcastResult is the outcome of one user's delivery pipeline. One entry
// exists per directory user, in listing order.
type BroadcastResult struct {
	UserID   types.UserID    `json:"user" firestore:"user"`
	UserName string          `json:"userName,omitempty" firestore:"user_name,omitempty"`
	Status   BroadcastStatus `json:"status" firestore:"status"`
	Error    string          `json:"error,omitempty" firestore:"error,omitempty"`
}

// SentResult creates a successful result for a user
func SentResult(user *User) *BroadcastResult {
	return &BroadcastResult{
		UserID:   user.ID,
		UserName: user.DisplayName,
		Status:   BroadcastStatusSent,
	}
}

// ErrorResult creates a failed result for a user
func ErrorResult(user *User, err error) *BroadcastResult {
	return &BroadcastResult{
		UserID:   user.ID,
		UserName: user.DisplayName,
		Status:   BroadcastStatusError,
		Error:    err.Error(),
	}
}

// BroadcastRun records one broadcast invocation with its per-user results
type BroadcastRun struct {
	ID          types.BroadcastID  `json:"id" firestore:"id"`
	StartedAt   time.Time          `json:"startedAt" firestore:"started_at"`
	CompletedAt time.Time          `json:"completedAt" firestore:"completed_at"`
	UserCount   int                `json:"userCount" firestore:"user_count"`
	SentCount   int                `json:"sentCount" firestore:"sent_count"`
	ErrorCount  int                `json:"errorCount" firestore:"error_count"`
	Results     []*BroadcastResult `json:"results" firestore:"results"`
}

// NewBroadcastRun creates a run record from collected results
func NewBroadcastRun(startedAt time.Time, results []*BroadcastResult) *BroadcastRun {
	run := &BroadcastRun{
		ID:          types.NewBroadcastID(),
		StartedAt:   startedAt,
		CompletedAt: time.Now(),
		UserCount:   len(results),
		Results:     results,
	}
	for _, r := range results {
		switch r.Status {
		case BroadcastStatusSent:
			run.SentCount++
		case BroadcastStatusError:
			run.ErrorCount++
		}
	}
	return run
}
