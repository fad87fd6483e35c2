package responses

// ErrorBody is what the backend returns alongside a non-2xx status.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type EmergencyRequestItem struct {
	ID            int64  `json:"id"`
	PatientName   string `json:"patientName"`
	Symptoms      string `json:"symptoms"`
	PatientNotes  string `json:"patientNotes"`
	ContactNumber string `json:"contactNumber"`
	UrgencyLevel  string `json:"urgencyLevel"`
	// CreatedAt is either RFC 3339 or a zone-less local date-time.
	CreatedAt string `json:"createdAt"`
}

type AcceptEmergency struct {
	Message       string `json:"message"`
	AppointmentID int64  `json:"appointmentId,omitempty"`
}
