package models

type WorkflowState string

const (
	StateEditing              WorkflowState = "EDITING"
	StateValidating           WorkflowState = "VALIDATING"
	StateAwaitingConfirmation WorkflowState = "AWAITING_CONFIRMATION"
	StateSubmitting           WorkflowState = "SUBMITTING"
	StateSucceeded            WorkflowState = "SUCCEEDED"
	StateFailed               WorkflowState = "FAILED"
)

func (s WorkflowState) String() string {
	return string(s)
}

// IsTerminal reports whether the state ends a submission attempt.
func (s WorkflowState) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed
}

type OutcomeKind string

const (
	OutcomeSubmitted          OutcomeKind = "SUBMITTED"
	OutcomeValidationFailed   OutcomeKind = "VALIDATION_FAILED"
	OutcomeDeclined           OutcomeKind = "DECLINED"
	OutcomePreconditionFailed OutcomeKind = "PRECONDITION_FAILED"
	OutcomeNetworkError       OutcomeKind = "NETWORK_ERROR"
)

// WorkflowOutcome is produced exactly once per submission attempt.
type WorkflowOutcome struct {
	Kind          OutcomeKind
	MissingFields []DraftField
	Message       string
	Err           error
}

func (o WorkflowOutcome) IsSuccess() bool {
	return o.Kind == OutcomeSubmitted
}

func SubmittedOutcome() WorkflowOutcome {
	return WorkflowOutcome{Kind: OutcomeSubmitted}
}

func ValidationFailedOutcome(missing []DraftField, err error) WorkflowOutcome {
	return WorkflowOutcome{Kind: OutcomeValidationFailed, MissingFields: missing, Err: err}
}

func DeclinedOutcome() WorkflowOutcome {
	return WorkflowOutcome{Kind: OutcomeDeclined}
}

func PreconditionFailedOutcome(message string, err error) WorkflowOutcome {
	return WorkflowOutcome{Kind: OutcomePreconditionFailed, Message: message, Err: err}
}

func NetworkErrorOutcome(message string, err error) WorkflowOutcome {
	return WorkflowOutcome{Kind: OutcomeNetworkError, Message: message, Err: err}
}

// ValidationResult is either valid or carries the missing required fields.
type ValidationResult struct {
	Valid         bool
	MissingFields []DraftField
	Err           error
}
