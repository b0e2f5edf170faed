package iamsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Verify exchanges the authorization code issued by the GoIAM login flow for
// an access token. The request authenticates with HTTP Basic credentials
// built from the client ID and secret.
//
// The returned token is opaque to the SDK: it is not parsed, cached or
// validated here. Callers own its lifecycle and supply it back on
// subsequent calls.
func (c *Client) Verify(ctx context.Context, code string) (string, error) {
	const op = "verify"

	query := url.Values{}
	query.Set("code", code)

	req, err := c.newRequest(ctx, http.MethodGet, "/auth/v1/verify?"+query.Encode(), nil)
	if err != nil {
		return "", &TransportError{Op: op, Err: err}
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)

	data, err := doJSON[verifyData](c, req, op,
		"authentication failed",
		"no access token received",
	)
	if err != nil {
		return "", err
	}

	return data.AccessToken, nil
}
