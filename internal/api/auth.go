package api

import "context"

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out TokenResponse
	if err := c.post(ctx, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns its token.
func (c *Client) Register(ctx context.Context, email, password, name string) (*TokenResponse, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	var out TokenResponse
	if err := c.post(ctx, "/api/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Verify validates a token and returns the attached identity.
func (c *Client) Verify(ctx context.Context, token string) (*VerifyResponse, error) {
	body := map[string]string{"token": token}
	var out VerifyResponse
	if err := c.post(ctx, "/api/auth/verify", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestPasswordReset asks the server to mail reset instructions.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.post(ctx, "/api/auth/request-reset", body, nil)
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return c.post(ctx, "/api/auth/reset-password", body, nil)
}
