package session

import (
	"context"
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/constvars"
	"medvault-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// redisSession reads the identity the portal stored under the "user" key,
// optionally prefixed with a namespace.
type redisSession struct {
	RedisRepository contracts.RedisRepository
	Key             string
	Log             *zap.Logger
}

func NewRedisSession(redisRepository contracts.RedisRepository, namespace string, logger *zap.Logger) contracts.SessionProvider {
	key := constvars.SessionStorageUserKey
	if namespace != "" {
		key = namespace + ":" + key
	}
	return &redisSession{
		RedisRepository: redisRepository,
		Key:             key,
		Log:             logger,
	}
}

func (s *redisSession) CurrentUser(ctx context.Context) (*models.Identity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("redisSession.CurrentUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionKeyKey, s.Key),
	)

	sessionData, err := s.RedisRepository.Get(ctx, s.Key)
	if err != nil {
		s.Log.Error("redisSession.CurrentUser error fetching session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSessionStorageRead(err)
	}
	if sessionData == "" {
		return nil, nil
	}
	return parseIdentity([]byte(sessionData))
}
