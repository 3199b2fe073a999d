package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"chat-sync/domain/chat"
	"chat-sync/errors"
)

// HTTPProfileClient fetches the chat identity and transport auth token
// from the profile service.
type HTTPProfileClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPProfileClient(baseURL, bearerToken string) *HTTPProfileClient {
	return &HTTPProfileClient{
		baseURL: baseURL,
		token:   bearerToken,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPProfileClient) FetchIdentity(ctx context.Context) (chat.Identity, error) {
	var identity chat.Identity
	if err := c.getJSON(ctx, "/api/chat/identity", &identity); err != nil {
		return chat.Identity{}, err
	}
	return identity, nil
}

// FetchToken issues a transport auth token for the current user.
func (c *HTTPProfileClient) FetchToken(ctx context.Context) (string, error) {
	var payload struct {
		Token string `json:"token"`
	}
	if err := c.getJSON(ctx, "/api/chat/token", &payload); err != nil {
		return "", err
	}
	return payload.Token, nil
}

func (c *HTTPProfileClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.ErrIdentityUnavailable
	default:
		return fmt.Errorf("profile service returned %d for %s", resp.StatusCode, path)
	}
}

// StaticProfile serves a fixed identity without any network call. Used
// in dev mode and tests.
type StaticProfile struct {
	Identity chat.Identity
}

func (s StaticProfile) FetchIdentity(_ context.Context) (chat.Identity, error) {
	return s.Identity, nil
}
