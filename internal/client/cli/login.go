package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/phatneglo/uac-server/internal/client/storage"
	"github.com/phatneglo/uac-server/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username or email: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	token, err := c.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	// The token subject is the canonical username; fetch the profile
	// so the session stores the numeric id as well.
	user, err := c.apiClient.Me(ctx, token.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	session := &storage.Session{
		Username:    user.Username,
		UserID:      user.ID,
		AccessToken: token.AccessToken,
		ExpiresAt:   time.Now().Unix() + token.ExpiresIn,
	}

	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("Login successful!")
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Access token expires in: %d seconds\n", token.ExpiresIn)

	return nil
}
