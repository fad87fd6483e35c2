package session

import (
	"context"
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/constvars"
	"medvault-client/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// SessionGuard wraps a provider and turns every unusable session into a
// precondition error: no identity, missing id or role, a role other than the
// required one, or a bearer token whose exp claim has passed. Signatures are
// not verified here; the backend does that.
type SessionGuard struct {
	provider     contracts.SessionProvider
	requiredRole string
	log          *zap.Logger
	now          func() time.Time
}

func NewSessionGuard(provider contracts.SessionProvider, requiredRole string, logger *zap.Logger) *SessionGuard {
	return &SessionGuard{
		provider:     provider,
		requiredRole: requiredRole,
		log:          logger,
		now:          time.Now,
	}
}

// WithClock replaces the time source used for token expiry checks.
func (g *SessionGuard) WithClock(now func() time.Time) *SessionGuard {
	g.now = now
	return g
}

func (g *SessionGuard) CurrentUser(ctx context.Context) (*models.Identity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	identity, err := g.provider.CurrentUser(ctx)
	if err != nil {
		if exceptions.IsClass(err, exceptions.ClassPrecondition) {
			return nil, err
		}
		return nil, exceptions.ErrSessionMissing(err)
	}
	if identity == nil {
		g.log.Info("SessionGuard.CurrentUser no active session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrSessionMissing(nil)
	}
	if !identity.IsComplete() {
		return nil, exceptions.ErrSessionIdentityIncomplete(nil)
	}
	if g.requiredRole != "" && !identity.HasRole(g.requiredRole) {
		g.log.Warn("SessionGuard.CurrentUser role mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, identity.ID),
			zap.String("role", identity.Role),
			zap.String("required_role", g.requiredRole),
		)
		return nil, exceptions.ErrSessionRoleMismatch(identity.Role, g.requiredRole)
	}

	if identity.Token != "" {
		err = g.checkTokenExpiry(identity.Token)
		if err != nil {
			g.log.Warn("SessionGuard.CurrentUser rejected token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, identity.ID),
				zap.Error(err),
			)
			return nil, err
		}
	}
	return identity, nil
}

func (g *SessionGuard) checkTokenExpiry(token string) error {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return exceptions.ErrSessionTokenMalformed(err)
	}
	if !claims.VerifyExpiresAt(g.now().Unix(), false) {
		return exceptions.ErrSessionTokenExpired(nil)
	}
	return nil
}
