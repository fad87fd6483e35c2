package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingUserIDKey         = "user_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingEmergencyIDKey    = "emergency_id"
	LoggingStateKey          = "state"
	LoggingFromStateKey      = "from_state"
	LoggingToStateKey        = "to_state"
	LoggingUrgencyLevelKey   = "urgency_level"
	LoggingOutcomeKey        = "outcome"
	LoggingMissingFieldsKey  = "missing_fields"
	LoggingStatusCodeKey     = "status_code"
	LoggingURLKey            = "url"
	LoggingDurationKey       = "duration"
	LoggingSessionKeyKey     = "session_key"
	LoggingResponseLengthKey = "response_length"
)
