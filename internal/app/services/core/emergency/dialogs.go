package emergency

import (
	"fmt"
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/constvars"
)

func hotlineItems() []string {
	items := make([]string, 0, len(constvars.EmergencyHotlines))
	for _, hotline := range constvars.EmergencyHotlines {
		items = append(items, fmt.Sprintf("%s: %s", hotline.Service, hotline.Number))
	}
	return items
}

// HotlinesDialog is the idle screen shown before any request is started.
func HotlinesDialog() models.Dialog {
	return models.Dialog{
		Kind:    models.DialogWarning,
		Title:   constvars.DialogTitleHotlines,
		Message: constvars.DialogMessageLifeThreatForm,
		Items:   hotlineItems(),
	}
}

func WarningDialog(missing []models.DraftField) models.Dialog {
	items := make([]string, 0, len(missing))
	for _, field := range missing {
		items = append(items, field.Label())
	}
	return models.Dialog{
		Kind:    models.DialogWarning,
		Title:   constvars.DialogTitleMissingInformation,
		Message: constvars.DialogMessageProvideRequired,
		Items:   items,
		Footer:  constvars.DialogMessageLifeThreatForm,
	}
}

func ConfirmationDialog(level models.UrgencyLevel) models.Dialog {
	items := make([]string, 0, len(constvars.EmergencyNotificationSummary)+1)
	items = append(items, constvars.EmergencyNotificationSummary...)
	items = append(items, fmt.Sprintf("Prioritize as %s urgency", level))
	return models.Dialog{
		Kind:         models.DialogConfirmation,
		Title:        constvars.DialogTitleConfirmEmergency,
		Message:      "This will immediately:",
		Items:        items,
		Footer:       constvars.DialogMessageGenuineOnly,
		ConfirmLabel: "Yes, Send Emergency Request",
		CancelLabel:  "Cancel",
	}
}

func ProgressDialog() models.Dialog {
	return models.Dialog{
		Kind:    models.DialogProgress,
		Title:   constvars.DialogTitleSending,
		Message: constvars.DialogMessageNotifying,
		Footer:  constvars.DialogMessageKeepPhone,
	}
}

func SuccessDialog() models.Dialog {
	return models.Dialog{
		Kind:    models.DialogSuccess,
		Title:   constvars.DialogTitleSent,
		Message: constvars.DialogMessageRequestSentTo,
		Items:   append([]string(nil), constvars.EmergencyAfterSubmitGuidance...),
	}
}

// ErrorDialog carries the failure text plus the hotlines to call instead.
func ErrorDialog(message string) models.Dialog {
	return models.Dialog{
		Kind:    models.DialogError,
		Title:   constvars.DialogTitleConnectionError,
		Message: message,
		Items:   hotlineItems(),
		Footer:  constvars.DialogMessageLifeThreatening,
	}
}

func PreconditionDialog(message string) models.Dialog {
	return models.Dialog{
		Kind:    models.DialogError,
		Title:   constvars.DialogTitleNotSignedIn,
		Message: message,
		Items:   hotlineItems(),
		Footer:  constvars.DialogMessageLifeThreatening,
	}
}
