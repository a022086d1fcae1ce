// Package types defines the shared data model for reminder extraction.
package types

import "time"

// TaskType categorizes what kind of reminder a candidate represents.
type TaskType string

const (
	TaskBill        TaskType = "bill"
	TaskMeeting     TaskType = "meeting"
	TaskDeadline    TaskType = "deadline"
	TaskAppointment TaskType = "appointment"
	TaskTask        TaskType = "task"
	TaskPayment     TaskType = "payment"
	TaskReminder    TaskType = "reminder"
)

// IsValid returns true if the task type is one of the known values.
func (t TaskType) IsValid() bool {
	switch t {
	case TaskBill, TaskMeeting, TaskDeadline, TaskAppointment, TaskTask, TaskPayment, TaskReminder:
		return true
	}
	return false
}

// UntitledPlaceholder is the title value some models emit when they could
// not name a task. Candidates carrying it are treated as having no title.
const UntitledPlaceholder = "Untitled Task"

// ReminderCandidate is a structured reminder proposal extracted from text.
// Candidates require user confirmation before they become reminders; the
// extraction core never persists them.
//
// Invariants maintained by the extraction pipeline:
//   - Title is non-empty and Date matches YYYY-MM-DD, always.
//   - Confidence is clamped to [0,1].
//   - Time, when set, matches 24-hour HH:MM.
type ReminderCandidate struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        *string  `json:"time"`
	Description string   `json:"description"`
	Type        TaskType `json:"type"`
	Amount      *string  `json:"amount"`
	Confidence  float64  `json:"confidence"`
	Entities    []string `json:"entities"`
	SourceText  string   `json:"sourceText"`
}

// Reminder is a confirmed candidate with identity attached by the caller.
// The extraction core only ever produces candidates; promoting one to a
// Reminder is the caller's responsibility.
type Reminder struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        *string   `json:"time"`
	Description string    `json:"description"`
	Type        TaskType  `json:"type"`
	Amount      *string   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromCandidate builds a Reminder from a confirmed candidate.
func FromCandidate(c ReminderCandidate, id string, now time.Time) Reminder {
	return Reminder{
		ID:          id,
		Title:       c.Title,
		Date:        c.Date,
		Time:        c.Time,
		Description: c.Description,
		Type:        c.Type,
		Amount:      c.Amount,
		CreatedAt:   now,
	}
}
