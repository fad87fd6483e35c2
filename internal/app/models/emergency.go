package models

import (
	"medvault-client/internal/pkg/constvars"
	"strings"
	"time"
)

type UrgencyLevel string

const (
	UrgencyHigh   UrgencyLevel = constvars.UrgencyLevelHigh
	UrgencyMedium UrgencyLevel = constvars.UrgencyLevelMedium
	UrgencyLow    UrgencyLevel = constvars.UrgencyLevelLow
)

func ParseUrgencyLevel(value string) (UrgencyLevel, bool) {
	level := UrgencyLevel(strings.ToUpper(strings.TrimSpace(value)))
	return level, level.IsValid()
}

func (u UrgencyLevel) IsValid() bool {
	switch u {
	case UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	}
	return false
}

// Rank orders levels for triage; unknown levels rank below LOW.
func (u UrgencyLevel) Rank() int {
	switch u {
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	}
	return 0
}

func (u UrgencyLevel) String() string {
	return string(u)
}

// DraftField names one editable field of an EmergencyRequestDraft. The names
// match the JSON keys of the submitted payload.
type DraftField string

const (
	FieldUrgencyLevel       DraftField = "urgencyLevel"
	FieldSymptoms           DraftField = "symptoms"
	FieldContactNumber      DraftField = "contactNumber"
	FieldLocation           DraftField = "location"
	FieldMedicalHistory     DraftField = "medicalHistory"
	FieldPatientNotes       DraftField = "patientNotes"
	FieldAllergies          DraftField = "allergies"
	FieldCurrentMedications DraftField = "currentMedications"
)

var DraftFields = []DraftField{
	FieldUrgencyLevel,
	FieldSymptoms,
	FieldContactNumber,
	FieldLocation,
	FieldMedicalHistory,
	FieldPatientNotes,
	FieldAllergies,
	FieldCurrentMedications,
}

func (f DraftField) Label() string {
	if label, ok := constvars.DraftFieldLabels[string(f)]; ok {
		return label
	}
	return string(f)
}

// EmergencyRequestDraft is the in-progress request while the modal is open.
// Symptoms and ContactNumber are required; everything else is optional.
type EmergencyRequestDraft struct {
	UrgencyLevel       UrgencyLevel `json:"urgencyLevel"`
	Symptoms           string       `json:"symptoms" validate:"notblank"`
	ContactNumber      string       `json:"contactNumber" validate:"notblank"`
	Location           string       `json:"location"`
	MedicalHistory     string       `json:"medicalHistory"`
	PatientNotes       string       `json:"patientNotes"`
	Allergies          string       `json:"allergies"`
	CurrentMedications string       `json:"currentMedications"`
}

func NewEmergencyRequestDraft() EmergencyRequestDraft {
	return EmergencyRequestDraft{UrgencyLevel: UrgencyMedium}
}

// Trimmed returns a copy with surrounding whitespace removed from every text field.
func (d EmergencyRequestDraft) Trimmed() EmergencyRequestDraft {
	return EmergencyRequestDraft{
		UrgencyLevel:       d.UrgencyLevel,
		Symptoms:           strings.TrimSpace(d.Symptoms),
		ContactNumber:      strings.TrimSpace(d.ContactNumber),
		Location:           strings.TrimSpace(d.Location),
		MedicalHistory:     strings.TrimSpace(d.MedicalHistory),
		PatientNotes:       strings.TrimSpace(d.PatientNotes),
		Allergies:          strings.TrimSpace(d.Allergies),
		CurrentMedications: strings.TrimSpace(d.CurrentMedications),
	}
}

// EmergencyRequestPayload is the server-bound snapshot of a validated and
// confirmed draft. It is built once per accepted confirmation and exposes no
// setters.
type EmergencyRequestPayload struct {
	userID    string
	timestamp time.Time
	fields    EmergencyRequestDraft
}

func NewEmergencyRequestPayload(draft EmergencyRequestDraft, identity Identity, now time.Time) EmergencyRequestPayload {
	return EmergencyRequestPayload{
		userID:    identity.ID,
		timestamp: now.UTC(),
		fields:    draft.Trimmed(),
	}
}

func (p EmergencyRequestPayload) UserID() string {
	return p.userID
}

func (p EmergencyRequestPayload) Timestamp() time.Time {
	return p.timestamp
}

// Fields returns the trimmed draft values carried by the payload.
func (p EmergencyRequestPayload) Fields() EmergencyRequestDraft {
	return p.fields
}
