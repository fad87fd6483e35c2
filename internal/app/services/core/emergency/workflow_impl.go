package emergency

import (
	"context"
	"medvault-client/internal/app/config"
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/models"
	"medvault-client/internal/app/services/shared/metrics"
	"medvault-client/internal/pkg/constvars"
	"medvault-client/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// emergencyWorkflow drives one emergency-request modal from Editing through
// Submitting to Succeeded or Failed. Only the state field is guarded so that
// Close can be refused from another goroutine while a call is in flight; the
// draft itself belongs to the goroutine calling Submit.
type emergencyWorkflow struct {
	store              contracts.EmergencyFormStore
	validator          contracts.EmergencyDraftValidator
	gate               contracts.ConfirmationGate
	renderer           contracts.DialogRenderer
	session            contracts.SessionProvider
	client             contracts.EmergencyRequestClient
	recorder           contracts.MetricsRecorder
	log                *zap.Logger
	now                func() time.Time
	requestTimeout     time.Duration
	minProgressDisplay time.Duration

	mu    sync.Mutex
	state models.WorkflowState
}

func NewEmergencyWorkflow(
	store contracts.EmergencyFormStore,
	validator contracts.EmergencyDraftValidator,
	gate contracts.ConfirmationGate,
	renderer contracts.DialogRenderer,
	session contracts.SessionProvider,
	client contracts.EmergencyRequestClient,
	recorder contracts.MetricsRecorder,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.EmergencyWorkflow {
	if recorder == nil {
		recorder = metrics.NewNopRecorder()
	}
	return &emergencyWorkflow{
		store:              store,
		validator:          validator,
		gate:               gate,
		renderer:           renderer,
		session:            session,
		client:             client,
		recorder:           recorder,
		log:                logger,
		now:                time.Now,
		requestTimeout:     time.Duration(internalConfig.Emergency.RequestTimeoutInSeconds) * time.Second,
		minProgressDisplay: time.Duration(internalConfig.Emergency.MinProgressDisplayInMilliseconds) * time.Millisecond,
		state:              models.StateEditing,
	}
}

func (w *emergencyWorkflow) State() models.WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *emergencyWorkflow) Store() contracts.EmergencyFormStore {
	return w.store
}

// Open shows the modal with a fresh draft. It is ignored while submitting.
func (w *emergencyWorkflow) Open() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == models.StateSubmitting {
		return
	}
	w.store.Open()
	w.state = models.StateEditing
}

// Close discards the draft and hides the modal. The in-flight call is never
// aborted, so closing while submitting is refused.
func (w *emergencyWorkflow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == models.StateSubmitting {
		w.log.Warn("emergencyWorkflow.Close refused while submitting",
			zap.String(constvars.LoggingStateKey, w.state.String()),
		)
		return exceptions.ErrCloseWhileSubmitting()
	}
	w.store.Close()
	w.state = models.StateEditing
	return nil
}

func (w *emergencyWorkflow) Submit(ctx context.Context) models.WorkflowOutcome {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if requestID == "" {
		requestID = uuid.New().String()
		ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
	}

	current := w.State()
	w.log.Info("emergencyWorkflow.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStateKey, current.String()),
	)

	switch {
	case current == models.StateEditing:
	case current.IsTerminal():
		w.transition(requestID, models.StateEditing)
	default:
		err := exceptions.ErrSubmitInvalidState(current.String())
		w.log.Warn("emergencyWorkflow.Submit rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return w.finish(requestID, models.PreconditionFailedOutcome(err.ClientMessage, err))
	}

	w.transition(requestID, models.StateValidating)
	result := w.validator.Validate(w.store.Get())
	if !result.Valid {
		w.transition(requestID, models.StateEditing)
		w.renderer.Render(ctx, WarningDialog(result.MissingFields))
		return w.finish(requestID, models.ValidationFailedOutcome(result.MissingFields, result.Err))
	}

	w.transition(requestID, models.StateAwaitingConfirmation)
	draft := w.store.Get()
	accepted, err := w.gate.Confirm(ctx, models.ConfirmationPrompt{
		UrgencyLevel: draft.UrgencyLevel,
		Dialog:       ConfirmationDialog(draft.UrgencyLevel),
	})
	if err != nil {
		w.log.Info("emergencyWorkflow.Submit confirmation aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		accepted = false
	}
	if !accepted {
		w.transition(requestID, models.StateEditing)
		return w.finish(requestID, models.DeclinedOutcome())
	}

	identity, err := w.session.CurrentUser(ctx)
	if err == nil && identity == nil {
		err = exceptions.ErrSessionMissing(nil)
	}
	if err != nil {
		w.log.Warn("emergencyWorkflow.Submit no usable session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		w.transition(requestID, models.StateEditing)
		message := exceptions.ClientMessageOf(err, constvars.ErrClientNotLoggedIn)
		w.renderer.Render(ctx, PreconditionDialog(message))
		return w.finish(requestID, models.PreconditionFailedOutcome(message, err))
	}

	payload := models.NewEmergencyRequestPayload(draft, *identity, w.now())
	w.transition(requestID, models.StateSubmitting)
	w.renderer.Render(ctx, ProgressDialog())

	err = w.send(ctx, requestID, identity, payload)
	if err != nil {
		message := exceptions.ClientMessageOf(err, constvars.ErrClientConnectivity)
		w.log.Error("emergencyWorkflow.Submit transport failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, payload.UserID()),
			zap.String(constvars.LoggingUrgencyLevelKey, draft.UrgencyLevel.String()),
			zap.Error(err),
		)
		w.transition(requestID, models.StateFailed)
		w.renderer.Render(ctx, ErrorDialog(message))
		return w.finish(requestID, models.NetworkErrorOutcome(message, err))
	}

	w.store.Close()
	w.transition(requestID, models.StateSucceeded)
	w.renderer.Render(ctx, SuccessDialog())
	return w.finish(requestID, models.SubmittedOutcome())
}

// send performs the single transport call of an attempt and keeps the
// progress dialog up for at least minProgressDisplay.
func (w *emergencyWorkflow) send(ctx context.Context, requestID string, identity *models.Identity, payload models.EmergencyRequestPayload) error {
	started := time.Now()

	sendCtx, cancel := context.WithTimeout(ctx, w.requestTimeout)
	err := w.client.SendEmergencyRequest(sendCtx, identity, payload)
	cancel()

	elapsed := time.Since(started)
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultFailure
	}
	w.recorder.ObserveTransport(result, elapsed)
	w.log.Debug("emergencyWorkflow.send finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Duration(constvars.LoggingDurationKey, elapsed),
	)

	if remaining := w.minProgressDisplay - elapsed; remaining > 0 {
		timer := time.NewTimer(remaining)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
		}
	}
	return err
}

func (w *emergencyWorkflow) transition(requestID string, to models.WorkflowState) {
	w.mu.Lock()
	from := w.state
	w.state = to
	w.mu.Unlock()

	w.log.Debug("emergencyWorkflow state transition",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFromStateKey, from.String()),
		zap.String(constvars.LoggingToStateKey, to.String()),
	)
}

func (w *emergencyWorkflow) finish(requestID string, outcome models.WorkflowOutcome) models.WorkflowOutcome {
	w.recorder.ObserveOutcome(outcome.Kind)

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOutcomeKey, string(outcome.Kind)),
		zap.String(constvars.LoggingStateKey, w.State().String()),
	}
	if len(outcome.MissingFields) > 0 {
		missing := make([]string, 0, len(outcome.MissingFields))
		for _, field := range outcome.MissingFields {
			missing = append(missing, string(field))
		}
		fields = append(fields, zap.Strings(constvars.LoggingMissingFieldsKey, missing))
	}
	w.log.Info("emergencyWorkflow.Submit finished", fields...)
	return outcome
}
