package exceptions

import (
	"fmt"
	"medvault-client/internal/pkg/constvars"
)

var (
	// Validation
	ErrRequiredFieldsMissing = func(err error, detail string) *CustomError {
		return BuildNewCustomError(err, ClassValidation, constvars.StatusBadRequest, constvars.ErrClientRequiredFieldsMissing, fmt.Sprintf("%s: %s", constvars.ErrDevValidationFailed, detail))
	}
	ErrUnknownDraftField = func(field string) *CustomError {
		return BuildNewCustomError(nil, ClassValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnknownDraftField, field))
	}
	ErrInvalidUrgencyLevel = func(level string) *CustomError {
		return BuildNewCustomError(nil, ClassValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidUrgencyLevel, level))
	}

	// Session
	ErrSessionMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassPrecondition, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionMissing)
	}
	ErrSessionIdentityIncomplete = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassPrecondition, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionIdentityIncomplete)
	}
	ErrSessionRoleMismatch = func(role, requiredRole string) *CustomError {
		return BuildNewCustomError(nil, ClassPrecondition, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevSessionRoleMismatch, role, requiredRole))
	}
	ErrSessionTokenExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassPrecondition, constvars.StatusUnauthorized, constvars.ErrClientSessionExpired, constvars.ErrDevSessionTokenExpired)
	}
	ErrSessionTokenMalformed = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassPrecondition, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionTokenMalformed)
	}
	ErrSessionStorageRead = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassPrecondition, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionStorageRead)
	}

	// Workflow
	ErrCloseWhileSubmitting = func() *CustomError {
		return BuildNewCustomError(nil, ClassPrecondition, constvars.StatusConflict, constvars.ErrClientCannotCloseWhileSubmitting, constvars.ErrDevCloseWhileSubmitting)
	}
	ErrSubmitInvalidState = func(state string) *CustomError {
		return BuildNewCustomError(nil, ClassPrecondition, constvars.StatusConflict, constvars.ErrClientRequestAlreadyInProgress, fmt.Sprintf(constvars.ErrDevSubmitInvalidState, state))
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassInternal, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevCannotMarshalJSON)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error, clientMessage string) *CustomError {
		return BuildNewCustomError(err, ClassTransport, constvars.StatusServiceUnavailable, clientMessage, constvars.ErrDevSendHTTPRequest)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassTransport, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrUnexpectedStatus = func(statusCode int, url, clientMessage string) *CustomError {
		return BuildNewCustomError(nil, ClassTransport, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevUnexpectedStatus, statusCode, url))
	}
	ErrRateLimiterWait = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassTransport, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevRateLimiterWait)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, ClassInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevRedisDeleteData)
	}

	// Config
	ErrInvalidConfig = func(reason string) *CustomError {
		return BuildNewCustomError(nil, ClassInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, fmt.Sprintf(constvars.ErrDevInvalidConfig, reason))
	}
)
