package telegram

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/gotd/td/session"
)

// sessionStorage keeps the gotd session payload base64-encoded in the
// TELEGRAM_SESSION environment variable. An empty value means no session.
type sessionStorage struct {
	env EnvStore
}

func (s *sessionStorage) LoadSession(_ context.Context) ([]byte, error) {
	raw, err := s.env.Get(EnvSession)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, session.ErrNotFound
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding stored session: %w", err)
	}
	return data, nil
}

func (s *sessionStorage) StoreSession(_ context.Context, data []byte) error {
	return s.env.Set(EnvSession, base64.StdEncoding.EncodeToString(data))
}
