package utils

import (
	"errors"
	"medvault-client/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FailedFields lists the (json) names of the fields that failed validation, in
// struct declaration order.
func FailedFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fieldErr.Field())
	}
	return fields
}

func FormatAllValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return constvars.ErrDevValidationFailed
	}
	var messages []string
	for _, fieldErr := range validationErrors {
		customMessage, ok := constvars.CustomValidationErrorMessages[fieldErr.Tag()]
		if !ok {
			customMessage = "is invalid"
		}
		if strings.Contains(customMessage, "%s") {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
		messages = append(messages, fieldErr.Field()+" "+customMessage)
	}
	return strings.Join(messages, ", ")
}
