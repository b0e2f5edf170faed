/*
Package iamsdk provides a client SDK for the GoIAM identity and access
management service.

# Overview

The SDK is a thin, typed layer over the GoIAM HTTP API. A Client holds the
connection configuration (base endpoint and OAuth client credentials) and a
reusable HTTP transport; it exposes four operations that each perform one
request/response cycle:

	client := iamsdk.New("https://iam.example.com", clientID, clientSecret)

	// Exchange an authorization code for an access token
	token, err := client.Verify(ctx, code)

	// Fetch the authenticated user's profile
	user, err := client.Me(ctx, token)

	// Manage resource records
	err = client.CreateResource(ctx, iamsdk.NewResource("Reports", "Monthly reports", "reports"), token)
	err = client.DeleteResource(ctx, resourceID, token)

The Client is safe for concurrent use: it keeps no mutable state beyond the
configuration captured at construction, and calls in flight are independent
of each other. Cancellation and deadlines are driven entirely by the
caller-supplied context and the HTTP client's timeout.

# Error Handling

Failures are classified by where in the request cycle they are detected:
TransportError (no response obtained), APIError (non-2xx status),
DecodeError (body does not parse), AuthError (the service reported
success=false) and InvalidResponseError (success reported but the expected
payload is missing). All are ordinary return values that callers branch on
with errors.As:

	var apiErr *iamsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		// re-authenticate
	}

The SDK never retries, caches tokens or logs failures on the caller's
behalf. Tokens returned by Verify are opaque; refreshing or persisting them
is the caller's responsibility.
*/
package iamsdk
