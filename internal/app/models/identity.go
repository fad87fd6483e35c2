package models

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Identity is the signed-in user as persisted under the "user" storage key by
// the portal login.
type Identity struct {
	ID         string `json:"id"`
	Role       string `json:"role"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Token      string `json:"token,omitempty"`
	FirstLogin bool   `json:"firstLogin,omitempty"`
}

// UnmarshalJSON accepts the id as either a JSON string or a JSON integer; the
// backend serialises user ids as numbers. Any other id leaves the identity
// incomplete.
func (i *Identity) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID         json.RawMessage `json:"id"`
		Role       string          `json:"role"`
		Name       string          `json:"name"`
		Email      string          `json:"email"`
		Token      string          `json:"token"`
		FirstLogin bool            `json:"firstLogin"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := decodeIdentityID(aux.ID)
	if err != nil {
		return err
	}

	*i = Identity{
		ID:         id,
		Role:       aux.Role,
		Name:       aux.Name,
		Email:      aux.Email,
		Token:      aux.Token,
		FirstLogin: aux.FirstLogin,
	}
	return nil
}

func decodeIdentityID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
		return "", nil
	case raw[0] == '"':
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return "", err
		}
		return id, nil
	}

	if _, err := strconv.ParseInt(string(raw), 10, 64); err != nil {
		return "", nil
	}
	return string(raw), nil
}

func (i *Identity) HasRole(role string) bool {
	return strings.EqualFold(i.Role, role)
}

func (i *Identity) IsComplete() bool {
	return strings.TrimSpace(i.ID) != "" && strings.TrimSpace(i.Role) != ""
}
