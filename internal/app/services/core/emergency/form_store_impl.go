package emergency

import (
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/exceptions"
)

type emergencyFormStore struct {
	draft models.EmergencyRequestDraft
	open  bool
}

func NewEmergencyFormStore() contracts.EmergencyFormStore {
	return &emergencyFormStore{
		draft: models.NewEmergencyRequestDraft(),
	}
}

func (s *emergencyFormStore) Get() models.EmergencyRequestDraft {
	return s.draft
}

// Set stores value as typed. Whitespace is only removed when the payload is built.
func (s *emergencyFormStore) Set(field models.DraftField, value string) error {
	switch field {
	case models.FieldUrgencyLevel:
		level, ok := models.ParseUrgencyLevel(value)
		if !ok {
			return exceptions.ErrInvalidUrgencyLevel(value)
		}
		s.draft.UrgencyLevel = level
	case models.FieldSymptoms:
		s.draft.Symptoms = value
	case models.FieldContactNumber:
		s.draft.ContactNumber = value
	case models.FieldLocation:
		s.draft.Location = value
	case models.FieldMedicalHistory:
		s.draft.MedicalHistory = value
	case models.FieldPatientNotes:
		s.draft.PatientNotes = value
	case models.FieldAllergies:
		s.draft.Allergies = value
	case models.FieldCurrentMedications:
		s.draft.CurrentMedications = value
	default:
		return exceptions.ErrUnknownDraftField(string(field))
	}
	return nil
}

func (s *emergencyFormStore) Reset() {
	s.draft = models.NewEmergencyRequestDraft()
}

func (s *emergencyFormStore) Open() {
	s.Reset()
	s.open = true
}

func (s *emergencyFormStore) Close() {
	s.Reset()
	s.open = false
}

func (s *emergencyFormStore) IsOpen() bool {
	return s.open
}
