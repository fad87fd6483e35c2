package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	mu        sync.Mutex
	submitted []string
	lists     atomic.Int32
	accepted  []string
}

func newBackend(t *testing.T) (*backend, string) {
	t.Helper()
	b := &backend{}
	r := chi.NewRouter()
	r.Post("/api/patient/emergency-request/{userId}", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.submitted = append(b.submitted, string(body))
		b.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
	r.Get("/api/doctor/emergency-requests/{doctorId}", func(w http.ResponseWriter, r *http.Request) {
		b.lists.Add(1)
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		_, _ = w.Write([]byte(`[{"id":7,"patientName":"Asha Rao","symptoms":"chest pain","contactNumber":"9999999999","urgencyLevel":"HIGH","createdAt":"2025-03-01T10:00:00"}]`))
	})
	r.Post("/api/doctor/accept-emergency/{doctorId}/{emergencyId}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.accepted = append(b.accepted, chi.URLParam(r, "emergencyId"))
		b.mu.Unlock()
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		_, _ = w.Write([]byte(`{"message":"Emergency accepted, patient notified"}`))
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return b, server.URL
}

func (b *backend) submissions() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.submitted...)
}

func storageFile(t *testing.T, user string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "localStorage.json")
	require.NoError(t, os.WriteFile(path, []byte(user), 0o600))
	return path
}

const (
	patientStorage = `{"user":{"id":42,"role":"PATIENT","name":"Asha Rao","email":"asha@example.com"}}`
	doctorStorage  = `{"user":{"id":9,"role":"DOCTOR","name":"Dr. Iyer","email":"iyer@example.com"}}`
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", constvars.AppEnvDevelopment)
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("LOGGER_LEVEL", "error")
	t.Setenv("SESSION_STORE", constvars.SessionStoreFile)
	t.Setenv("METRICS_TEXTFILE_PATH", "")
}

func TestHotlines(t *testing.T) {
	setTestEnv(t)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"hotlines"}, strings.NewReader(""), &out))

	assert.Contains(t, out.String(), "National Emergency: 108")
	assert.Contains(t, out.String(), "Ambulance: 102")
	assert.Contains(t, out.String(), "Fire: 101")
}

func TestRequestCommand(t *testing.T) {
	t.Run("Sent With Yes", func(t *testing.T) {
		setTestEnv(t)
		metricsPath := filepath.Join(t.TempDir(), "medvault.prom")
		t.Setenv("METRICS_TEXTFILE_PATH", metricsPath)
		b, url := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"--backend-url", url,
			"--storage-file", storageFile(t, patientStorage),
			"request", "--urgency", "HIGH", "--symptoms", "  chest pain ", "--contact", "9999999999", "--yes",
		}, strings.NewReader(""), &out)
		require.NoError(t, err)

		sent := b.submissions()
		require.Len(t, sent, 1)
		assert.Contains(t, sent[0], `"symptoms":"chest pain"`)
		assert.Contains(t, sent[0], `"urgencyLevel":"HIGH"`)
		assert.Contains(t, out.String(), "Send Emergency Request")

		metricsText, err := os.ReadFile(metricsPath)
		require.NoError(t, err)
		assert.Contains(t, string(metricsText), `medvault_emergency_workflow_outcomes_total{outcome="SUBMITTED"} 1`)
	})

	t.Run("Declined At Prompt", func(t *testing.T) {
		setTestEnv(t)
		b, url := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"--backend-url", url,
			"--storage-file", storageFile(t, patientStorage),
			"request", "--symptoms", "fever", "--contact", "9999999999",
		}, strings.NewReader("n\n"), &out)
		require.NoError(t, err)

		assert.Empty(t, b.submissions())
		assert.Contains(t, out.String(), "Send emergency request? [y/N]: ")
		assert.Contains(t, out.String(), "Emergency request not sent.")
	})

	t.Run("Confirmed At Prompt", func(t *testing.T) {
		setTestEnv(t)
		b, url := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"--backend-url", url,
			"--storage-file", storageFile(t, patientStorage),
			"request", "--symptoms", "fever", "--contact", "9999999999",
		}, strings.NewReader("yes\n"), &out)
		require.NoError(t, err)
		assert.Len(t, b.submissions(), 1)
	})

	t.Run("Missing Required Fields", func(t *testing.T) {
		setTestEnv(t)
		b, url := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"--backend-url", url,
			"--storage-file", storageFile(t, patientStorage),
			"request", "--contact", "9999999999", "--yes",
		}, strings.NewReader(""), &out)

		var outcomeErr *outcomeError
		require.True(t, errors.As(err, &outcomeErr))
		assert.Equal(t, models.OutcomeValidationFailed, outcomeErr.outcome.Kind)
		assert.Contains(t, err.Error(), models.FieldSymptoms.Label())
		assert.Empty(t, b.submissions())
	})

	t.Run("Not Signed In", func(t *testing.T) {
		setTestEnv(t)
		b, url := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"--backend-url", url,
			"--storage-file", filepath.Join(t.TempDir(), "missing.json"),
			"request", "--symptoms", "fever", "--contact", "9999999999", "--yes",
		}, strings.NewReader(""), &out)

		var outcomeErr *outcomeError
		require.True(t, errors.As(err, &outcomeErr))
		assert.Equal(t, models.OutcomePreconditionFailed, outcomeErr.outcome.Kind)
		assert.Empty(t, b.submissions())
	})

	t.Run("Invalid Urgency", func(t *testing.T) {
		setTestEnv(t)
		_, url := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"--backend-url", url,
			"--storage-file", storageFile(t, patientStorage),
			"request", "--urgency", "CRITICAL", "--yes",
		}, strings.NewReader(""), &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--urgency")
	})
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	setTestEnv(t)
	var out bytes.Buffer

	err := run(context.Background(), []string{"--session-store", "memcached", "hotlines"}, strings.NewReader(""), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_STORE")
}

func TestTriageCommands(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		setTestEnv(t)
		_, url := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"--backend-url", url,
			"--storage-file", storageFile(t, doctorStorage),
			"triage", "list", "--urgency", "HIGH",
		}, strings.NewReader(""), &out)
		require.NoError(t, err)

		assert.Contains(t, out.String(), "Asha Rao")
		assert.Contains(t, out.String(), "Page 1 of 1 (1 requests)")
	})

	t.Run("List Requires Doctor", func(t *testing.T) {
		setTestEnv(t)
		b, url := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"--backend-url", url,
			"--storage-file", storageFile(t, patientStorage),
			"triage", "list",
		}, strings.NewReader(""), &out)
		require.Error(t, err)
		assert.Zero(t, b.lists.Load())
	})

	t.Run("Accept", func(t *testing.T) {
		setTestEnv(t)
		b, url := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"--backend-url", url,
			"--storage-file", storageFile(t, doctorStorage),
			"triage", "accept", "7", "--proposed-time", "2025-03-01T10:30",
		}, strings.NewReader(""), &out)
		require.NoError(t, err)

		assert.Contains(t, out.String(), "Emergency accepted, patient notified")
		b.mu.Lock()
		assert.Equal(t, []string{"7"}, b.accepted)
		b.mu.Unlock()
	})

	t.Run("Accept Invalid ID", func(t *testing.T) {
		setTestEnv(t)
		_, url := newBackend(t)
		var out bytes.Buffer

		err := run(context.Background(), []string{
			"--backend-url", url,
			"--storage-file", storageFile(t, doctorStorage),
			"triage", "accept", "seven",
		}, strings.NewReader(""), &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "seven")
	})

	t.Run("Watch Until Cancelled", func(t *testing.T) {
		setTestEnv(t)
		t.Setenv("TRIAGE_REFRESH_CRON_SPEC", "@every 1h")
		b, url := newBackend(t)
		var out bytes.Buffer

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- run(ctx, []string{
				"--backend-url", url,
				"--storage-file", storageFile(t, doctorStorage),
				"triage", "watch",
			}, strings.NewReader(""), &out)
		}()

		assert.Eventually(t, func() bool { return b.lists.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("watch did not stop after cancellation")
		}
		assert.Contains(t, out.String(), "Asha Rao")
	})
}
