package cli

import (
	"context"
	"time"
)

func (c *Cli) runMe(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	user, err := c.apiClient.Me(ctx, session.AccessToken)
	if err != nil {
		return err
	}

	c.io.Println("=== Profile ===")
	c.io.Printf("User ID:   %d\n", user.ID)
	c.io.Printf("Username:  %s\n", user.Username)
	c.io.Printf("Email:     %s\n", user.Email)
	if user.FirstName != "" || user.LastName != "" {
		c.io.Printf("Name:      %s %s\n", user.FirstName, user.LastName)
	}
	c.io.Printf("Active:    %t\n", user.IsActive)
	c.io.Printf("Created:   %s\n", user.CreatedAt.Format(time.RFC3339))
	if user.LastLogin != nil {
		c.io.Printf("Last login: %s\n", user.LastLogin.Format(time.RFC3339))
	}

	return nil
}

func (c *Cli) runRoles(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	roles, err := c.apiClient.MyRoles(ctx, session.AccessToken)
	if err != nil {
		return err
	}

	c.io.Println("=== Roles ===")
	c.io.Printf("Username: %s\n", roles.Username)
	for i, id := range roles.Roles {
		name := ""
		if i < len(roles.RoleNames) {
			name = roles.RoleNames[i]
		}
		c.io.Printf("  %s  %s\n", id, name)
	}

	return nil
}
