package iamsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// CreateResource registers the resource with the GoIAM service. Populate the
// resource via NewResource; ID, project and audit fields are assigned
// server-side. Any resource data the server echoes back is discarded, the
// caller already owns the record it submitted.
func (c *Client) CreateResource(ctx context.Context, resource *Resource, token string) error {
	const op = "create resource"

	body, err := json.Marshal(resource)
	if err != nil {
		return &DecodeError{Op: op, Err: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/resource/v1/", bytes.NewReader(body))
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	_, err = doJSON[Resource](c, req, op, "resource creation failed", "")
	return err
}

// DeleteResource removes the resource with the given ID. Whether the server
// deletes the record outright or soft deletes it (reporting a deleted_at
// timestamp on later reads) is a server-side policy the SDK does not
// inspect.
func (c *Client) DeleteResource(ctx context.Context, resourceID, token string) error {
	const op = "delete resource"

	req, err := c.newRequest(ctx, http.MethodDelete, "/resource/v1/"+url.PathEscape(resourceID), nil)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	_, err = doJSON[Resource](c, req, op, "resource deletion failed", "")
	return err
}
