package session

import (
	"bytes"
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// parseIdentity decodes a stored user object. A JSON null means signed out.
func parseIdentity(value []byte) (*models.Identity, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return nil, nil
	}

	identity := new(models.Identity)
	err := json.Unmarshal(value, identity)
	if err != nil {
		return nil, exceptions.ErrSessionStorageRead(err)
	}
	return identity, nil
}
