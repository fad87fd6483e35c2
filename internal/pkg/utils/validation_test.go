package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleForm struct {
	Symptoms      string `json:"symptoms" validate:"notblank"`
	ContactNumber string `json:"contactNumber" validate:"notblank"`
	Location      string `json:"location"`
}

func TestFailedFields(t *testing.T) {
	t.Run("Blank Fields Reported In Order", func(t *testing.T) {
		err := ValidateStruct(sampleForm{Symptoms: "   ", ContactNumber: ""})

		assert.Error(t, err)
		assert.Equal(t, []string{"symptoms", "contactNumber"}, FailedFields(err))
		assert.Equal(t, "symptoms must not be blank, contactNumber must not be blank", FormatAllValidationErrors(err))
	})

	t.Run("Valid Struct", func(t *testing.T) {
		err := ValidateStruct(sampleForm{Symptoms: "fever", ContactNumber: "123"})

		assert.NoError(t, err)
		assert.Nil(t, FailedFields(err))
	})
}
