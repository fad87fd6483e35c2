package emergency

import (
	"context"
	"medvault-client/internal/app/config"
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/models"
	"sync"
	"time"

	"go.uber.org/zap"
)

type fakeGate struct {
	answer  bool
	err     error
	prompts []models.ConfirmationPrompt
}

func (g *fakeGate) Confirm(ctx context.Context, prompt models.ConfirmationPrompt) (bool, error) {
	g.prompts = append(g.prompts, prompt)
	return g.answer, g.err
}

type recordingRenderer struct {
	mu      sync.Mutex
	dialogs []models.Dialog
}

func (r *recordingRenderer) Render(ctx context.Context, dialog models.Dialog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dialogs = append(r.dialogs, dialog)
}

func (r *recordingRenderer) kinds() []models.DialogKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]models.DialogKind, 0, len(r.dialogs))
	for _, d := range r.dialogs {
		kinds = append(kinds, d.Kind)
	}
	return kinds
}

func (r *recordingRenderer) last() models.Dialog {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.dialogs) == 0 {
		return models.Dialog{}
	}
	return r.dialogs[len(r.dialogs)-1]
}

type stubSession struct {
	identity *models.Identity
	err      error
}

func (s stubSession) CurrentUser(ctx context.Context) (*models.Identity, error) {
	return s.identity, s.err
}

// fakeClient records every payload. When release is set, calls block until it
// is closed, signalling started first.
type fakeClient struct {
	mu       sync.Mutex
	err      error
	payloads []models.EmergencyRequestPayload
	started  chan struct{}
	release  chan struct{}
}

func (c *fakeClient) SendEmergencyRequest(ctx context.Context, identity *models.Identity, payload models.EmergencyRequestPayload) error {
	c.mu.Lock()
	c.payloads = append(c.payloads, payload)
	c.mu.Unlock()

	if c.release != nil {
		close(c.started)
		select {
		case <-c.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return c.err
}

func (c *fakeClient) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.payloads)
}

type fakeRecorder struct {
	mu       sync.Mutex
	outcomes []models.OutcomeKind
	results  []string
}

func (r *fakeRecorder) ObserveOutcome(kind models.OutcomeKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, kind)
}

func (r *fakeRecorder) ObserveTransport(result string, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

func (r *fakeRecorder) ObserveTriageRefresh(result string) {}

var fixedNow = time.Date(2025, 3, 1, 4, 30, 0, 0, time.UTC)

type workflowFixture struct {
	workflow *emergencyWorkflow
	gate     *fakeGate
	renderer *recordingRenderer
	client   *fakeClient
	recorder *fakeRecorder
}

func newWorkflowFixture(session contracts.SessionProvider) *workflowFixture {
	f := &workflowFixture{
		gate:     &fakeGate{answer: true},
		renderer: &recordingRenderer{},
		client:   &fakeClient{},
		recorder: &fakeRecorder{},
	}
	if session == nil {
		session = stubSession{identity: &models.Identity{ID: "42", Role: "PATIENT", Name: "Asha"}}
	}
	cfg := &config.InternalConfig{
		Emergency: config.Emergency{RequestTimeoutInSeconds: 5},
	}
	w := NewEmergencyWorkflow(
		NewEmergencyFormStore(),
		NewEmergencyDraftValidator(),
		f.gate,
		f.renderer,
		session,
		f.client,
		f.recorder,
		cfg,
		zap.NewNop(),
	).(*emergencyWorkflow)
	w.now = func() time.Time { return fixedNow }
	f.workflow = w
	return f
}

// fill opens the modal and types the given values into the draft.
func (f *workflowFixture) fill(values map[models.DraftField]string) {
	f.workflow.Open()
	for _, field := range models.DraftFields {
		if value, ok := values[field]; ok {
			if err := f.workflow.Store().Set(field, value); err != nil {
				panic(err)
			}
		}
	}
}
