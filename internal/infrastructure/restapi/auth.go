package restapi

import (
	"context"
	"net/http"

	"github.com/dmehra2102/menudash/internal/domain"
)

const loginPath = "/api/auth/login"

type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

// Login exchanges operator credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, contentType, err := jsonBody(map[string]any{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	var resp loginResponse
	err = c.do(ctx, request{
		method:      http.MethodPost,
		route:       loginPath,
		path:        loginPath,
		body:        body,
		contentType: contentType,
	}, &resp)
	if err != nil {
		return "", err
	}

	if resp.Token != "" {
		return resp.Token, nil
	}
	if resp.AccessToken != "" {
		return resp.AccessToken, nil
	}
	return "", &APIError{Method: http.MethodPost, Path: loginPath, Status: http.StatusOK, Err: domain.ErrServer, Message: "no token in response"}
}
