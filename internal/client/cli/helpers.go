package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/phatneglo/uac-server/internal/client/storage"
)

// requireSession loads the saved session and fails with a hint when
// the user is not logged in or the token has expired.
func (c *Cli) requireSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not authenticated, run 'uac login' first")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.Expired() {
		return nil, fmt.Errorf("session expired, run 'uac login' again")
	}

	return session, nil
}
