package doctorEmergencies

import (
	"context"
	"io"
	"medvault-client/internal/app/config"
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/constvars"
	"medvault-client/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, router http.Handler) *triageClient {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	cfg := &config.InternalConfig{
		App:     config.App{Timezone: "UTC"},
		Backend: config.Backend{BaseUrl: server.URL},
		Triage:  config.Triage{RequestTimeoutInSeconds: 5},
	}
	return NewTriageClient(cfg, zap.NewNop()).(*triageClient)
}

var doctor = &models.Identity{ID: "9", Role: "DOCTOR", Token: "doc-token"}

func TestListEmergencyRequests(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/doctor/emergency-requests/{doctorId}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "9", chi.URLParam(r, "doctorId"))
		assert.Equal(t, "Bearer doc-token", r.Header.Get(constvars.HeaderAuthorization))
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		_, _ = w.Write([]byte(`[
			{"id":1,"patientName":"Asha Rao","symptoms":"chest pain | since morning","contactNumber":"9999999999","urgencyLevel":"HIGH","createdAt":"2025-03-01T10:00:00"},
			{"id":2,"patientName":"Ravi","symptoms":"fever","contactNumber":"8888888888","urgencyLevel":"low","createdAt":"2025-03-01T09:00:00.5Z"},
			{"id":3,"patientName":"Meera","symptoms":"cut","contactNumber":"7777777777","urgencyLevel":"MEDIUM","createdAt":"yesterday"}
		]`))
	})
	client := newTestClient(t, r)

	items, err := client.ListEmergencyRequests(context.Background(), doctor)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, models.UrgencyHigh, items[0].UrgencyLevel)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), items[0].CreatedAt)
	assert.Equal(t, models.UrgencyLow, items[1].UrgencyLevel, "urgency is normalised")
	assert.True(t, items[2].CreatedAt.IsZero(), "unparsable timestamps become zero")
}

func TestListEmergencyRequestsFailure(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/doctor/emergency-requests/{doctorId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Doctor not found"}`))
	})
	client := newTestClient(t, r)

	items, err := client.ListEmergencyRequests(context.Background(), doctor)
	assert.Nil(t, items)
	assert.True(t, exceptions.IsClass(err, exceptions.ClassTransport))
	assert.Equal(t, "Doctor not found", exceptions.ClientMessageOf(err, ""))
}

func TestAcceptEmergency(t *testing.T) {
	var gotBody string
	r := chi.NewRouter()
	r.Post("/api/doctor/accept-emergency/{doctorId}/{emergencyId}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "9", chi.URLParam(r, "doctorId"))
		assert.Equal(t, "17", chi.URLParam(r, "emergencyId"))
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{"message":"Emergency accepted","appointmentId":55}`))
	})
	client := newTestClient(t, r)

	t.Run("With Proposed Time", func(t *testing.T) {
		proposed := "2025-03-01T11:00"
		message, err := client.AcceptEmergency(context.Background(), doctor, 17, &proposed)
		require.NoError(t, err)
		assert.Equal(t, "Emergency accepted", message)
		assert.JSONEq(t, `{"proposedTime":"2025-03-01T11:00"}`, gotBody)
	})

	t.Run("Without Proposed Time Sends Null", func(t *testing.T) {
		blank := "  "
		_, err := client.AcceptEmergency(context.Background(), doctor, 17, &blank)
		require.NoError(t, err)
		assert.JSONEq(t, `{"proposedTime":null}`, gotBody)
	})
}

func TestAcceptEmergencyFailure(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/doctor/accept-emergency/{doctorId}/{emergencyId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	client := newTestClient(t, r)

	_, err := client.AcceptEmergency(context.Background(), doctor, 17, nil)
	assert.True(t, exceptions.IsClass(err, exceptions.ClassTransport))
	assert.Equal(t, constvars.ErrClientFailedToAcceptEmergency, exceptions.ClientMessageOf(err, ""))
}
