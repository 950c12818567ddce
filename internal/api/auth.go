package api

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
)

// Login exchanges credentials for a bearer token through the OAuth2 password
// grant endpoint (form-encoded, per the server contract).
func (c *Client) Login(ctx context.Context, creds model.Credentials) (*oauth2.Token, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/auth/login/access-token",
		form:   form,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return &oauth2.Token{
		AccessToken: payload.AccessToken,
		TokenType:   payload.TokenType,
	}, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	var user model.User
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/auth/register",
		body:   req,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Profile returns the current user. The server exposes this through its
// token-introspection endpoint rather than a dedicated "current user" route.
func (c *Client) Profile(ctx context.Context) (*model.User, error) {
	var user model.User
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/auth/test-token",
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
