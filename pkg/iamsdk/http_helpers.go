package iamsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/goiamhq/goiam-go/pkg/reqid"
)

// newRequest builds an HTTP request against the client's base URL with a
// fresh correlation ID attached.
func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Request-ID", reqid.New().String())
	return req, nil
}

// doJSON sends req and runs the shared response cascade every operation
// follows: transport failure -> TransportError, non-2xx status -> APIError,
// malformed body -> DecodeError, success == false -> AuthError carrying the
// server message (or authFallback when absent).
//
// When missingData is non-empty the envelope must carry a data payload and
// its absence is reported as an InvalidResponseError with that message.
// Operations that discard the payload pass an empty missingData and may
// receive a nil pointer.
func doJSON[T any](
	c *Client,
	req *http.Request,
	op, authFallback, missingData string,
) (*T, error) {
	logger := c.logger.With(
		"op", op,
		"method", req.Method,
		"url", req.URL.String(),
		"req_id", req.Header.Get("X-Request-ID"),
	)
	logger.Debug("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("request failed", "error", err)
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	logger.Debug("received response", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}

	if !env.Success {
		message := env.Message
		if message == "" {
			message = authFallback
		}
		return nil, &AuthError{Op: op, Message: message}
	}

	if env.Data == nil && missingData != "" {
		return nil, &InvalidResponseError{Op: op, Message: missingData}
	}

	return env.Data, nil
}
