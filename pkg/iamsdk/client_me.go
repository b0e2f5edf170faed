package iamsdk

import (
	"context"
	"net/http"
)

// Me fetches the profile of the user the access token belongs to, including
// the roles, resources and policies granted to them.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	const op = "me"

	req, err := c.newRequest(ctx, http.MethodGet, "/me/v1/me", nil)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return doJSON[User](c, req, op,
		"user fetch failed",
		"no user data received",
	)
}
