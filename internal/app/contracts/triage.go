package contracts

import (
	"context"
	"medvault-client/internal/app/models"
)

type TriageClient interface {
	ListEmergencyRequests(ctx context.Context, doctor *models.Identity) ([]models.EmergencyRequestSummary, error)
	AcceptEmergency(ctx context.Context, doctor *models.Identity, emergencyID int64, proposedTime *string) (string, error)
}

type TriageUsecase interface {
	Board(ctx context.Context, query models.TriageQuery) (*models.TriagePage, error)
	Accept(ctx context.Context, emergencyID int64, proposedTime *string) (string, error)
}
