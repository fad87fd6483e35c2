package terminal

import (
	"bytes"
	"context"
	"io"
	"medvault-client/internal/app/models"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestDialogRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewDialogRenderer(&buf)

	r.Render(context.Background(), models.Dialog{
		Kind:    models.DialogError,
		Title:   "Connection Error",
		Message: "Failed to send emergency request",
		Items:   []string{"National Emergency: 108", "Ambulance: 102", "Fire: 101"},
		Footer:  "Call the hotlines",
	})

	out := buf.String()
	assert.Contains(t, out, "Connection Error")
	assert.Contains(t, out, "Failed to send emergency request")
	assert.Contains(t, out, "National Emergency: 108")
	assert.Contains(t, out, "Fire: 101")
	assert.Contains(t, out, "╭", "dialogs are boxed")
}

func TestPromptGate(t *testing.T) {
	prompt := models.ConfirmationPrompt{
		UrgencyLevel: models.UrgencyHigh,
		Dialog:       models.Dialog{Kind: models.DialogConfirmation, Title: "Send Emergency Request?", ConfirmLabel: "Yes", CancelLabel: "Cancel"},
	}

	tests := []struct {
		name     string
		input    string
		expected bool
		err      error
	}{
		{name: "Yes", input: "y\n", expected: true},
		{name: "Yes Word Mixed Case", input: " YES \n", expected: true},
		{name: "Empty Line Declines", input: "\n", expected: false},
		{name: "Anything Else Declines", input: "sure\n", expected: false},
		{name: "EOF Is An Error", input: "", expected: false, err: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			gate := NewPromptGate(strings.NewReader(tt.input), &out, NewDialogRenderer(&out))

			accepted, err := gate.Confirm(context.Background(), prompt)

			assert.Equal(t, tt.expected, accepted)
			assert.Equal(t, tt.err, err)
			assert.Contains(t, out.String(), "Send Emergency Request?")
		})
	}
}

func TestPromptGateCancelled(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()

	var out bytes.Buffer
	gate := NewPromptGate(reader, &out, NewDialogRenderer(&out))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	accepted, err := gate.Confirm(ctx, models.ConfirmationPrompt{})
	assert.False(t, accepted)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPromptGateResumesAfterCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	reader, writer := io.Pipe()
	var out bytes.Buffer
	gate := NewPromptGate(reader, &out, NewDialogRenderer(&out))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	_, err := gate.Confirm(ctx, models.ConfirmationPrompt{})
	cancel()
	require.ErrorIs(t, err, context.DeadlineExceeded)

	go func() {
		_, _ = writer.Write([]byte("y\n"))
	}()
	accepted, err := gate.Confirm(context.Background(), models.ConfirmationPrompt{})
	require.NoError(t, err)
	assert.True(t, accepted, "the line typed after a cancelled prompt answers the next one")

	require.NoError(t, writer.Close())
	accepted, err = gate.Confirm(context.Background(), models.ConfirmationPrompt{})
	assert.False(t, accepted)
	assert.Equal(t, io.EOF, err)
}

func TestPromptGateReadsOnlyWhilePrompting(t *testing.T) {
	defer goleak.VerifyNone(t)

	reader, writer := io.Pipe()
	defer writer.Close()
	var out bytes.Buffer
	NewPromptGate(reader, &out, NewDialogRenderer(&out))

	written := make(chan error, 1)
	go func() {
		_, err := writer.Write([]byte("y\n"))
		written <- err
	}()
	select {
	case <-written:
		t.Fatal("input was consumed without an open prompt")
	case <-time.After(20 * time.Millisecond):
	}
	require.NoError(t, reader.Close())
	assert.Error(t, <-written)
}

func TestStaticGate(t *testing.T) {
	var out bytes.Buffer
	accepted, err := NewStaticGate(true, NewDialogRenderer(&out)).Confirm(context.Background(), models.ConfirmationPrompt{
		Dialog: models.Dialog{Kind: models.DialogConfirmation, Title: "Send Emergency Request?"},
	})
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Contains(t, out.String(), "Send Emergency Request?", "the summary is still shown")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	accepted, err = NewStaticGate(true, nil).Confirm(ctx, models.ConfirmationPrompt{})
	assert.False(t, accepted)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTriageView(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	page := &models.TriagePage{
		Items: []models.EmergencyRequestSummary{
			{ID: 7, PatientName: "Asha Rao", Symptoms: "Chest pain | since morning", ContactNumber: "9999999999", UrgencyLevel: models.UrgencyHigh, CreatedAt: now.Add(-90 * time.Minute)},
		},
		Page:        1,
		PageSize:    10,
		TotalItems:  1,
		TotalPages:  1,
		UrgencyStat: map[models.UrgencyLevel]int{models.UrgencyHigh: 1},
	}

	var buf bytes.Buffer
	NewTriageView(&buf).Render(page, now)

	out := buf.String()
	assert.Contains(t, out, "HIGH 1")
	assert.Contains(t, out, "Asha Rao")
	assert.Contains(t, out, "Chest pain")
	assert.Contains(t, out, "notes: since morning")
	assert.Contains(t, out, "1h ago")
	assert.Contains(t, out, "Page 1 of 1 (1 requests)")
}

func TestTriageViewEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewTriageView(&buf).Render(&models.TriagePage{UrgencyStat: map[models.UrgencyLevel]int{}}, time.Now())
	assert.Contains(t, buf.String(), "No emergency requests match")
}
