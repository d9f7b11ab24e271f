package domain

import "time"

// JobStatus is the reservation state of a job posting.
type JobStatus string

const (
	JobAvailable JobStatus = "available"
	JobReserved  JobStatus = "reserved"
)

// Job is a posting on the board. It is owned by at most one tradesman at a time.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	Status      JobStatus `json:"status"`
	PostedBy    string    `json:"posted_by,omitempty"`
	ReservedBy  string    `json:"reserved_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
