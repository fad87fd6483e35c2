package triage

import (
	"context"
	"errors"
	"medvault-client/internal/app/models"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingRecorder struct {
	mu      sync.Mutex
	results []string
}

func (r *countingRecorder) ObserveOutcome(kind models.OutcomeKind) {}
func (r *countingRecorder) ObserveTransport(result string, duration time.Duration) {}
func (r *countingRecorder) ObserveTriageRefresh(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

func TestWorkerKeepsLastGoodList(t *testing.T) {
	client := &fakeTriageClient{items: sampleQueue()}
	recorder := &countingRecorder{}
	w := NewWorker(zap.NewNop(), newTestConfig(), client, doctorSession, recorder)

	w.RefreshNow(context.Background())
	items, refreshedAt, err := w.Snapshot()
	require.NoError(t, err)
	assert.Len(t, items, 4)
	assert.False(t, refreshedAt.IsZero())

	client.setErr(errors.New("backend down"))
	w.RefreshNow(context.Background())

	items, againAt, err := w.Snapshot()
	assert.Error(t, err)
	assert.Len(t, items, 4, "a failed refresh keeps the previous list")
	assert.Equal(t, refreshedAt, againAt)
	assert.Equal(t, []string{"success", "failure"}, recorder.results)
}

func TestWorkerSchedule(t *testing.T) {
	client := &fakeTriageClient{items: sampleQueue()}
	w := NewWorker(zap.NewNop(), newTestConfig(), client, doctorSession, nil)

	var mu sync.Mutex
	var refreshes int
	w.OnRefresh(func(items []models.EmergencyRequestSummary) {
		mu.Lock()
		defer mu.Unlock()
		refreshes++
	})

	w.Start(context.Background())
	defer w.Stop()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return refreshes >= 2
	}, 5*time.Second, 50*time.Millisecond, "initial refresh plus at least one scheduled refresh")
}

func TestWorkerInvalidSpecFallsBack(t *testing.T) {
	cfg := newTestConfig()
	cfg.Triage.RefreshCronSpec = "every now and then"
	client := &fakeTriageClient{items: sampleQueue()}
	w := NewWorker(zap.NewNop(), cfg, client, doctorSession, nil)

	w.Start(context.Background())
	w.Stop()

	assert.Equal(t, 1, client.calls(), "start refreshes immediately even with the fallback schedule")
}
