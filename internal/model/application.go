package model

import "time"

// ApplicationStatus tracks a candidate through the hiring funnel.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewing, ApplicationInterview, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// JobApplication is a candidate submission for a job opening.
// ResumeKey is the object storage key; ResumeURL is only filled on responses.
type JobApplication struct {
	ID           string            `json:"id"`
	JobID        string            `json:"job_id"`
	JobTitle     string            `json:"job_title"`
	FullName     string            `json:"full_name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	ResumeKey    string            `json:"resume_key"`
	ResumeURL    string            `json:"resume_url,omitempty"`
	CoverLetter  string            `json:"cover_letter"`
	LinkedInURL  string            `json:"linkedin_url"`
	PortfolioURL string            `json:"portfolio_url"`
	Status       ApplicationStatus `json:"status"`
	Notes        string            `json:"notes"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
