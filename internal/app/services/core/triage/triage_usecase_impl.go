package triage

import (
	"context"
	"medvault-client/internal/app/config"
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

type triageUsecase struct {
	TriageClient contracts.TriageClient
	Session      contracts.SessionProvider
	PageSize     int
	Log          *zap.Logger
	now          func() time.Time
}

// NewTriageUsecase expects session to already enforce the doctor role.
func NewTriageUsecase(triageClient contracts.TriageClient, session contracts.SessionProvider, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.TriageUsecase {
	return &triageUsecase{
		TriageClient: triageClient,
		Session:      session,
		PageSize:     internalConfig.Triage.PageSize,
		Log:          logger,
		now:          time.Now,
	}
}

func (uc *triageUsecase) Board(ctx context.Context, query models.TriageQuery) (*models.TriagePage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("triageUsecase.Board called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.Session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	items, err := uc.TriageClient.ListEmergencyRequests(ctx, doctor)
	if err != nil {
		uc.Log.Error("triageUsecase.Board error listing emergency requests",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
		return nil, err
	}

	return BuildTriagePage(items, NormalizeQuery(query, uc.PageSize), uc.now()), nil
}

func (uc *triageUsecase) Accept(ctx context.Context, emergencyID int64, proposedTime *string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("triageUsecase.Accept called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEmergencyIDKey, emergencyID),
	)

	doctor, err := uc.Session.CurrentUser(ctx)
	if err != nil {
		return "", err
	}

	message, err := uc.TriageClient.AcceptEmergency(ctx, doctor, emergencyID, proposedTime)
	if err != nil {
		uc.Log.Error("triageUsecase.Accept error accepting emergency",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
		return "", err
	}
	return message, nil
}
