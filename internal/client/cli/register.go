package cli

import (
	"context"
	"fmt"

	"github.com/phatneglo/uac-server/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Registering user...")

	user, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Registration successful!")
	c.io.Printf("User ID:  %d\n", user.ID)
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Println()
	c.io.Println("Run 'uac login' to start a session.")

	return nil
}
