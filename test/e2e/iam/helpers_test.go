package iam_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

/*
 * Common constants and helpers for the SDK end-to-end tests. These spin up
 * an in-process fake of the GoIAM service that implements the documented
 * HTTP contract (auth verify, me, resource create/delete) with an in-memory
 * resource store, so the full client flows can run without a deployment.
 */

const (
	testClientID     = "test-client-id"
	testClientSecret = "test-client-secret"
	testAuthCode     = "valid-code"
	testAccessToken  = "e2e-access-token"
	testProjectID    = "proj-e2e"
	testUserID       = "user-e2e"
)

type storedResource struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Key         string     `json:"key"`
	Enabled     bool       `json:"enabled"`
	ProjectID   string     `json:"project_id"`
	CreatedAt   *time.Time `json:"created_at"`
	CreatedBy   string     `json:"created_by"`
}

// fakeIAM is an in-memory stand-in for the GoIAM service.
type fakeIAM struct {
	mu        sync.Mutex
	resources map[string]storedResource
	nextID    int
}

// setupIAMServer starts the fake service and returns its base URL together
// with the fake itself for state assertions. The server is shut down when
// the test finishes.
func setupIAMServer(t *testing.T) (string, *fakeIAM) {
	t.Helper()

	f := &fakeIAM{resources: make(map[string]storedResource)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/v1/verify", f.handleVerify)
	mux.HandleFunc("GET /me/v1/me", f.handleMe)
	mux.HandleFunc("POST /resource/v1/", f.handleCreateResource)
	mux.HandleFunc("DELETE /resource/v1/{id}", f.handleDeleteResource)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	return ts.URL, f
}

func (f *fakeIAM) handleVerify(w http.ResponseWriter, r *http.Request) {
	id, secret, ok := r.BasicAuth()
	if !ok || id != testClientID || secret != testClientSecret {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"message": "Invalid client credentials",
		})
		return
	}

	if r.URL.Query().Get("code") != testAuthCode {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Invalid code",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]string{"access_token": testAccessToken},
	})
}

func (f *fakeIAM) handleMe(w http.ResponseWriter, r *http.Request) {
	if !bearerOK(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"message": "Invalid token",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"id":          testUserID,
			"project_id":  testProjectID,
			"name":        "E2E User",
			"email":       "e2e@example.com",
			"phone":       "",
			"enabled":     true,
			"profile_pic": "",
			"expiry":      nil,
			"roles": map[string]any{
				"role-admin": map[string]string{"id": "role-admin", "name": "Administrator"},
			},
			"resources":  map[string]any{},
			"policies":   map[string]any{},
			"created_at": "2024-01-01T00:00:00Z",
			"created_by": "bootstrap",
			"updated_at": nil,
			"updated_by": "",
		},
	})
}

func (f *fakeIAM) handleCreateResource(w http.ResponseWriter, r *http.Request) {
	if !bearerOK(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"message": "Invalid token",
		})
		return
	}

	var res storedResource
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "malformed resource",
		})
		return
	}

	f.mu.Lock()
	f.nextID++
	res.ID = fmt.Sprintf("res-%d", f.nextID)
	res.ProjectID = testProjectID
	now := time.Now().UTC()
	res.CreatedAt = &now
	res.CreatedBy = testUserID
	f.resources[res.ID] = res
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Resource created successfully",
		"data":    res,
	})
}

func (f *fakeIAM) handleDeleteResource(w http.ResponseWriter, r *http.Request) {
	if !bearerOK(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"message": "Invalid token",
		})
		return
	}

	id := r.PathValue("id")

	f.mu.Lock()
	_, exists := f.resources[id]
	delete(f.resources, id)
	f.mu.Unlock()

	if !exists {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "Resource not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// resourceCount reports how many resources the fake currently stores.
func (f *fakeIAM) resourceCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.resources)
}

func bearerOK(r *http.Request) bool {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ") == testAccessToken &&
		strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
