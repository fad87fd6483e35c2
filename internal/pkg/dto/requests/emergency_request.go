package requests

// EmergencyRequest is the body of POST /api/patient/emergency-request/{userId}.
type EmergencyRequest struct {
	UrgencyLevel       string `json:"urgencyLevel"`
	Symptoms           string `json:"symptoms"`
	PatientNotes       string `json:"patientNotes"`
	ContactNumber      string `json:"contactNumber"`
	Location           string `json:"location"`
	MedicalHistory     string `json:"medicalHistory"`
	Allergies          string `json:"allergies"`
	CurrentMedications string `json:"currentMedications"`
	Timestamp          string `json:"timestamp"`
}

// AcceptEmergency is the body of POST /api/doctor/accept-emergency/{doctorId}/{emergencyId}.
// A nil ProposedTime is sent as JSON null.
type AcceptEmergency struct {
	ProposedTime *string `json:"proposedTime"`
}
