package models

import (
	"time"

	"github.com/danielhkuo/perma-check/dailytask"
	"github.com/danielhkuo/perma-check/survey"
)

// Request types

type AnswerRequest struct {
	Value *int `json:"value"`
}

// Response types

type CreateSessionResponse struct {
	SessionID  string       `json:"session_id"`
	SessionKey string       `json:"session_key"`
	State      SessionState `json:"state"`
}

type SubmitResponse struct {
	State  SessionState       `json:"state"`
	Result survey.ScoreResult `json:"result"`
}

type CatalogResponse struct {
	Scale      survey.Scale    `json:"scale"`
	ScaleSteps []int           `json:"scale_steps"`
	TotalItems int             `json:"total_items"`
	Maximum    int             `json:"maximum"`
	Domains    []survey.Domain `json:"domains"`
}

type DailyTasksResponse struct {
	Default dailytask.Dosage `json:"default"`
	Tasks   []dailytask.Task `json:"tasks"`
}

// Domain types

type CurrentItem struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Domain string `json:"domain"`
	Answer *int   `json:"answer"`
}

// SessionState is the read-only view a client renders. Answers are nil
// when unanswered.
type SessionState struct {
	SessionID     string          `json:"session_id"`
	Phase         survey.Phase    `json:"phase"`
	Cursor        int             `json:"cursor"`
	TotalItems    int             `json:"total_items"`
	Progress      float64         `json:"progress"`
	ProgressLabel string          `json:"progress_label"`
	CurrentItem   CurrentItem     `json:"current_item"`
	Answers       map[string]*int `json:"answers"`
	CanAdvance    bool            `json:"can_advance"`
	CanSubmit     bool            `json:"can_submit"`
	AllAnswered   bool            `json:"all_answered"`
	StartedAt     time.Time       `json:"started_at"`
	Started       string          `json:"started"`
}

// ExportSnapshot is the serializable export artifact. ShareSlug is empty
// when the archive is disabled.
type ExportSnapshot struct {
	ID         string             `json:"id"`
	ShareSlug  string             `json:"share_slug,omitempty"`
	ComputedAt time.Time          `json:"computed_at"`
	Archived   bool               `json:"archived"`
	Result     survey.ScoreResult `json:"result"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
