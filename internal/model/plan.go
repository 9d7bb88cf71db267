package model

import "time"

// Plan statuses. A plan starts as a draft and is marked complete by its owner.
const (
	PlanStatusDraft    = "draft"
	PlanStatusComplete = "complete"
)

// BusinessProfile describes the business a plan is generated for.
// All fields are free-form text; RevenueModel and Goals are optional.
// It is built once by the caller and never mutated.
type BusinessProfile struct {
	BusinessName   string `json:"business_name"`
	Industry       string `json:"industry"`
	BusinessType   string `json:"business_type"`
	Location       string `json:"location"`
	TargetAudience string `json:"target_audience"`
	UniqueValue    string `json:"unique_value"`
	RevenueModel   string `json:"revenue_model,omitempty"`
	Goals          string `json:"goals,omitempty"`
}

// Section is one titled block of a generated plan.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Plan is the parsed, sectioned result of one generation or revision pass.
// A revision produces a new Plan row; the prior one is kept as-is.
// This is a pure domain model with no database-specific dependencies or tags.
type Plan struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Industry  string          `json:"industry"`
	Status    string          `json:"status"`
	Profile   BusinessProfile `json:"profile"`
	Sections  []Section       `json:"sections"`
	CreatedAt time.Time       `json:"created_at"`
}
