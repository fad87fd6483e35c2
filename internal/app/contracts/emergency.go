package contracts

import (
	"context"
	"medvault-client/internal/app/models"
)

// EmergencyFormStore holds the draft and modal visibility for one open
// emergency-request modal. It never validates required fields and never
// performs I/O.
type EmergencyFormStore interface {
	Get() models.EmergencyRequestDraft
	Set(field models.DraftField, value string) error
	Reset()
	Open()
	Close()
	IsOpen() bool
}

type EmergencyDraftValidator interface {
	Validate(draft models.EmergencyRequestDraft) models.ValidationResult
}

// ConfirmationGate asks the human whether the request should be sent. It
// blocks until an answer arrives or ctx is done.
type ConfirmationGate interface {
	Confirm(ctx context.Context, prompt models.ConfirmationPrompt) (bool, error)
}

// DialogRenderer shows the dialog that corresponds to a workflow transition.
type DialogRenderer interface {
	Render(ctx context.Context, dialog models.Dialog)
}

type EmergencyRequestClient interface {
	SendEmergencyRequest(ctx context.Context, identity *models.Identity, payload models.EmergencyRequestPayload) error
}

type EmergencyWorkflow interface {
	State() models.WorkflowState
	Store() EmergencyFormStore
	Open()
	Close() error
	Submit(ctx context.Context) models.WorkflowOutcome
}
