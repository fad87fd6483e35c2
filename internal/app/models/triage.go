package models

import "time"

// EmergencyRequestSummary is one entry of a doctor's emergency queue.
type EmergencyRequestSummary struct {
	ID            int64
	PatientName   string
	Symptoms      string
	PatientNotes  string
	ContactNumber string
	UrgencyLevel  UrgencyLevel
	CreatedAt     time.Time
}

type TriageQuery struct {
	Search   string
	Urgency  string
	Time     string
	SortBy   string
	Order    string
	Page     int
	PageSize int
}

type TriagePage struct {
	Items       []EmergencyRequestSummary
	Page        int
	PageSize    int
	TotalItems  int
	TotalPages  int
	UrgencyStat map[UrgencyLevel]int
}
