package model

import "time"

// Course is one entry in the learning catalog.
type Course struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Level           string    `json:"level"`
	DurationMinutes int       `json:"duration_minutes"`
	Lessons         int       `json:"lessons"`
	CreatedAt       time.Time `json:"created_at"`
}

// Enrollment tracks a user's progress through a course.
// Progress is a percentage in [0, 100]; CompletedAt is set when it reaches 100.
type Enrollment struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	CourseID    string     `json:"course_id"`
	Progress    int        `json:"progress"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	EnrolledAt  time.Time  `json:"enrolled_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
