// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
)

// Credentials is the login request body.
type Credentials struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// LoginResult carries the backend-issued token for a successful login.
type LoginResult struct {
	UserID string
	Token  string
}

// Login authenticates against the backend and installs the issued token
// on the client. Invalid credentials surface as *APIError.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	env, _, err := c.doEnvelope(ctx, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return LoginResult{}, err
	}
	c.SetToken(env.Token)
	return LoginResult{UserID: creds.UserID, Token: env.Token}, nil
}
