package contracts

import (
	"medvault-client/internal/app/models"
	"time"
)

type MetricsRecorder interface {
	ObserveOutcome(kind models.OutcomeKind)
	ObserveTransport(result string, duration time.Duration)
	ObserveTriageRefresh(result string)
}
