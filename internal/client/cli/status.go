package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	isAuth, err := c.sessions.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'uac login' to authenticate.")
		return nil
	}

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)
	remaining := time.Until(expiresAt)

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))

	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("Token has expired. Please login again.")
	}

	return nil
}
