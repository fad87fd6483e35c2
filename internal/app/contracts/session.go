package contracts

import (
	"context"
	"medvault-client/internal/app/models"
)

// SessionProvider resolves the signed-in user. A nil identity with a nil
// error means nobody is signed in.
type SessionProvider interface {
	CurrentUser(ctx context.Context) (*models.Identity, error)
}
