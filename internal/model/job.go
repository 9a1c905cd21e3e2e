package model

import "time"

// ContractType describes the engagement offered by a job opening.
type ContractType string

const (
	ContractFullTime   ContractType = "full_time"
	ContractPartTime   ContractType = "part_time"
	ContractInternship ContractType = "internship"
	ContractFreelance  ContractType = "freelance"
)

// Valid reports whether c is a known contract type.
func (c ContractType) Valid() bool {
	switch c {
	case ContractFullTime, ContractPartTime, ContractInternship, ContractFreelance:
		return true
	}
	return false
}

// JobOpening is a position published on the careers page.
type JobOpening struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Slug         string       `json:"slug"`
	Department   string       `json:"department"`
	Location     string       `json:"location"`
	ContractType ContractType `json:"contract_type"`
	Description  string       `json:"description"`
	Requirements []string     `json:"requirements"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
