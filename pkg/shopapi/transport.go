package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// doAuthed performs an authenticated request. The current access token is
// attached as a bearer header when present; an absent token sends the request
// unauthenticated and lets the server decide.
//
// On a 401/403 the request goes through at most one refresh cycle: the retry
// marker is flipped before the refresh starts, so a retried request that
// fails with another authorization error propagates as-is instead of
// recursing into a second refresh.
func (c *Client) doAuthed(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out any,
	expectStatus int,
) error {
	payload, err := marshalBody(body)
	if err != nil {
		return err
	}

	token := ""
	if c.tokens != nil {
		// A token store read failure downgrades to an unauthenticated
		// request rather than blocking the operation.
		token, _ = c.tokens.AccessToken(ctx)
	}

	resp, err := c.send(ctx, method, path, query, payload, token)
	if err != nil {
		return err
	}

	if !isAuthFailureStatus(resp.StatusCode) {
		return decodeJSON(resp, out, expectStatus)
	}

	origErr := readError(resp)

	if c.tokens == nil {
		return origErr
	}

	refreshToken, err := c.tokens.RefreshToken(ctx)
	if err != nil || refreshToken == "" {
		// No refresh token stored: nothing to attempt, fail immediately.
		return origErr
	}

	newAccess, err := c.refreshAccessToken(ctx, refreshToken)
	if err != nil {
		// Any failure during refresh forces guest mode on subsequent calls
		// and surfaces the original authorization failure.
		_ = c.tokens.ClearAccessToken(ctx)
		return origErr
	}

	if err := c.tokens.StoreAccessToken(ctx, newAccess); err != nil {
		return fmt.Errorf("failed to persist refreshed access token: %w", err)
	}

	// Resend exactly once with the rewritten authorization header.
	resp, err = c.send(ctx, method, path, query, payload, newAccess)
	if err != nil {
		return fmt.Errorf("retry after refresh failed: %w", err)
	}

	return decodeJSON(resp, out, expectStatus)
}

// doPublic performs an unauthenticated request with no refresh cycle.
func (c *Client) doPublic(
	ctx context.Context,
	method, path string,
	body, out any,
	expectStatus int,
) error {
	payload, err := marshalBody(body)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, method, path, nil, payload, "")
	if err != nil {
		return err
	}

	return decodeJSON(resp, out, expectStatus)
}

// send builds and executes one HTTP request. The payload is kept as bytes so
// a retried request can replay the identical body.
func (c *Client) send(
	ctx context.Context,
	method, path string,
	query url.Values,
	payload []byte,
	bearer string,
) (*http.Response, error) {
	target := c.url(path)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// refreshAccessToken calls the refresh endpoint out-of-band, bypassing the
// normal request path so a rejected refresh cannot trigger another refresh.
func (c *Client) refreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return "", err
	}

	resp, err := c.send(ctx, http.MethodPost, "/auth/refresh", nil, payload, "")
	if err != nil {
		return "", err
	}

	var refreshed struct {
		AccessToken string `json:"accessToken"`
	}
	if err := decodeJSON(resp, &refreshed, http.StatusOK); err != nil {
		return "", err
	}
	if refreshed.AccessToken == "" {
		return "", fmt.Errorf("refresh response missing access token")
	}
	return refreshed.AccessToken, nil
}

func marshalBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return payload, nil
}

func isAuthFailureStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// readError drains a failed response into a typed *APIError.
func readError(resp *http.Response) *APIError {
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return parseErrorResponse(resp.StatusCode, body)
}

// decodeJSON consumes a response, returning a typed *APIError for unexpected
// statuses and unmarshaling the body into target otherwise. A nil target
// discards the body.
func decodeJSON(resp *http.Response, target any, expectStatus int) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectStatus {
		return parseErrorResponse(resp.StatusCode, body)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
