package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"oneof":       "must be one of [%s]",
	"notblank":    "must not be blank",
	"required_if": "is required when %s is %s",
}

// Client Error Messages
const (
	ErrClientRequiredFieldsMissing      = "Please provide the required information before sending the request"
	ErrClientCannotProcessRequest       = "We are unable to process your request at this time"
	ErrClientNotLoggedIn                = "You are not signed in, please log in again"
	ErrClientNotAuthorized              = "You are not authorized to perform this action"
	ErrClientSessionExpired             = "Your session has expired, please log in again"
	ErrClientFailedToSendEmergency      = "Failed to send emergency request"
	ErrClientConnectivity               = "Unable to send emergency request due to network issues"
	ErrClientServerLongRespond          = "The server took too long to respond"
	ErrClientTooManyRequests            = "Too many requests, please wait a moment and try again"
	ErrClientSomethingWrongWithApp      = "Something went wrong with the application"
	ErrClientCannotCloseWhileSubmitting = "The emergency request is still being sent"
	ErrClientRequestAlreadyInProgress   = "An emergency request is already in progress"
	ErrClientFailedToLoadEmergencies    = "Failed to load emergency requests"
	ErrClientFailedToAcceptEmergency    = "Failed to accept emergency request"
)

// Developer Error Messages
const (
	ErrDevValidationFailed          = "validation failed"
	ErrDevUnknownDraftField         = "unknown emergency request draft field %q"
	ErrDevInvalidUrgencyLevel       = "invalid urgency level %q"
	ErrDevSessionMissing            = "no session identity found in storage"
	ErrDevSessionIdentityIncomplete = "session identity lacks id or role"
	ErrDevSessionRoleMismatch       = "session role %q does not match required role %q"
	ErrDevSessionTokenExpired       = "session token expired"
	ErrDevSessionTokenMalformed     = "session token cannot be parsed"
	ErrDevSessionStorageRead        = "failed to read session storage"
	ErrDevCannotParseJSON           = "failed to parse JSON"
	ErrDevCannotMarshalJSON         = "failed to marshal JSON"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevUnexpectedStatus          = "unexpected status code %d from %s"
	ErrDevServerDeadlineExceeded    = "deadline exceeded while waiting for server"
	ErrDevRateLimiterWait           = "outbound rate limiter wait failed"
	ErrDevCloseWhileSubmitting      = "modal close requested while workflow is submitting"
	ErrDevSubmitInvalidState        = "submit requested in state %s"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisSetData              = "failed to set data to redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevInvalidConfig             = "invalid configuration: %s"
)
