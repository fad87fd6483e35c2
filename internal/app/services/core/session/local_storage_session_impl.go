package session

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/constvars"
	"medvault-client/internal/pkg/exceptions"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// localStorageSession reads the identity from a JSON document that mirrors the
// browser's local storage: a flat object whose values are JSON-encoded strings.
type localStorageSession struct {
	Path string
	Log  *zap.Logger
}

func NewLocalStorageSession(path string, logger *zap.Logger) contracts.SessionProvider {
	return &localStorageSession{
		Path: path,
		Log:  logger,
	}
}

func (s *localStorageSession) CurrentUser(ctx context.Context) (*models.Identity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("localStorageSession.CurrentUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionKeyKey, constvars.SessionStorageUserKey),
	)

	content, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		s.Log.Error("localStorageSession.CurrentUser error reading storage file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSessionStorageRead(err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}

	storage := make(map[string]json.RawMessage)
	err = json.Unmarshal(content, &storage)
	if err != nil {
		s.Log.Error("localStorageSession.CurrentUser error parsing storage file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSessionStorageRead(err)
	}

	raw, ok := storage[constvars.SessionStorageUserKey]
	if !ok {
		return nil, nil
	}

	// Browsers store strings; an inline object is accepted too.
	value := []byte(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var encoded string
		err = json.Unmarshal(raw, &encoded)
		if err != nil {
			return nil, exceptions.ErrSessionStorageRead(err)
		}
		value = []byte(encoded)
	}

	return parseIdentity(value)
}
