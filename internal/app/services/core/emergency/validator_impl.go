package emergency

import (
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/exceptions"
	"medvault-client/internal/pkg/utils"
)

type emergencyDraftValidator struct{}

func NewEmergencyDraftValidator() contracts.EmergencyDraftValidator {
	return emergencyDraftValidator{}
}

// Validate checks only the required fields. Missing fields are reported in
// declaration order: symptoms, then contactNumber.
func (emergencyDraftValidator) Validate(draft models.EmergencyRequestDraft) models.ValidationResult {
	err := utils.ValidateStruct(draft.Trimmed())
	if err == nil {
		return models.ValidationResult{Valid: true}
	}

	failed := utils.FailedFields(err)
	missing := make([]models.DraftField, 0, len(failed))
	for _, name := range failed {
		missing = append(missing, models.DraftField(name))
	}
	return models.ValidationResult{
		Valid:         false,
		MissingFields: missing,
		Err:           exceptions.ErrRequiredFieldsMissing(err, utils.FormatAllValidationErrors(err)),
	}
}
