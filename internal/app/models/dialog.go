package models

type DialogKind string

const (
	DialogWarning      DialogKind = "warning"
	DialogConfirmation DialogKind = "confirmation"
	DialogProgress     DialogKind = "progress"
	DialogSuccess      DialogKind = "success"
	DialogError        DialogKind = "error"
)

// Dialog is what a renderer shows after a workflow transition.
type Dialog struct {
	Kind         DialogKind
	Title        string
	Message      string
	Items        []string
	Footer       string
	ConfirmLabel string
	CancelLabel  string
}

// ConfirmationPrompt is handed to the confirmation gate once the draft is valid.
type ConfirmationPrompt struct {
	UrgencyLevel UrgencyLevel
	Dialog       Dialog
}
