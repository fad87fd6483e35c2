package utils

import (
	"medvault-client/internal/pkg/constvars"
	"strings"
)

// SplitSymptoms separates the chief complaint from trailing notes, which the
// backend joins into one column with "|".
func SplitSymptoms(symptoms string) (main, notes string) {
	if symptoms == "" {
		return "", ""
	}
	parts := strings.Split(symptoms, constvars.SymptomsNotesSeparator)
	main = strings.TrimSpace(parts[0])
	notes = strings.TrimSpace(strings.Join(parts[1:], constvars.SymptomsNotesSeparator))
	return main, notes
}

func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
