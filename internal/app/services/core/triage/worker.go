package triage

import (
	"context"
	"medvault-client/internal/app/config"
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/models"
	"medvault-client/internal/app/services/shared/metrics"
	"medvault-client/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker keeps a doctor's emergency queue fresh on a cron schedule. A failed
// refresh is logged and the last good list is kept.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	client    contracts.TriageClient
	session   contracts.SessionProvider
	recorder  contracts.MetricsRecorder
	onRefresh func([]models.EmergencyRequestSummary)
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc

	mu          sync.RWMutex
	items       []models.EmergencyRequestSummary
	refreshedAt time.Time
	lastErr     error
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, client contracts.TriageClient, session contracts.SessionProvider, recorder contracts.MetricsRecorder) *Worker {
	if recorder == nil {
		recorder = metrics.NewNopRecorder()
	}
	return &Worker{log: log, cfg: cfg, client: client, session: session, recorder: recorder}
}

// OnRefresh registers fn to receive every successfully fetched list. It must
// be called before Start.
func (w *Worker) OnRefresh(fn func([]models.EmergencyRequestSummary)) {
	w.onRefresh = fn
}

// Start refreshes once and then on every tick of the configured cron spec.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Triage.RefreshCronSpec
	_, err := c.AddFunc(spec, func() { w.RefreshNow(w.runCtx) })
	if err != nil {
		w.log.Warn("triage.worker: failed to schedule with provided cron spec; falling back to default",
			zap.String("cron_spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(constvars.TriageDefaultCronSpec, func() { w.RefreshNow(w.runCtx) })
	}

	w.RefreshNow(w.runCtx)
	c.Start()
	w.cron = c
}

// Stop halts the schedule and waits for an in-flight refresh to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) RefreshNow(ctx context.Context) {
	requestID := uuid.New().String()
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)

	items, err := w.fetch(ctx)
	if err != nil {
		w.recorder.ObserveTriageRefresh(metrics.ResultFailure)
		w.log.Warn("triage.worker: refresh failed; keeping last list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		w.mu.Lock()
		w.lastErr = err
		w.mu.Unlock()
		return
	}

	w.recorder.ObserveTriageRefresh(metrics.ResultSuccess)
	w.mu.Lock()
	w.items = items
	w.refreshedAt = time.Now()
	w.lastErr = nil
	w.mu.Unlock()

	if w.onRefresh != nil {
		w.onRefresh(append([]models.EmergencyRequestSummary(nil), items...))
	}
}

func (w *Worker) fetch(ctx context.Context) ([]models.EmergencyRequestSummary, error) {
	doctor, err := w.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(w.cfg.Triage.RequestTimeoutInSeconds) * time.Second
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return w.client.ListEmergencyRequests(ctx, doctor)
}

// Snapshot returns a copy of the last good list, when it was fetched and the
// error of the latest refresh, if any.
func (w *Worker) Snapshot() ([]models.EmergencyRequestSummary, time.Time, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]models.EmergencyRequestSummary(nil), w.items...), w.refreshedAt, w.lastErr
}
