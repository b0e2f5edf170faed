package iamsdk

import "time"

// ============================================================================
// Response Envelope
// ============================================================================

// envelope is the JSON response wrapper every GoIAM endpoint returns:
// {"success": bool, "message": string|null, "data": object|null}.
// When success is true and the operation is expected to return data, a nil
// Data field is a contract violation, not an empty result.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    *T     `json:"data,omitempty"`
}

// verifyData is the payload of a successful code verification.
type verifyData struct {
	AccessToken string `json:"access_token"`
}

// ============================================================================
// User Types
// ============================================================================

// User is the identity record returned by the Me endpoint. It is a read-only
// snapshot owned by the server; the client never mutates it.
type User struct {
	ID             string                  `json:"id"`
	ProjectID      string                  `json:"project_id"`
	Name           string                  `json:"name"`
	Email          string                  `json:"email"`
	Phone          string                  `json:"phone"`
	Enabled        bool                    `json:"enabled"`
	ProfilePic     string                  `json:"profile_pic"`
	LinkedClientID string                  `json:"linked_client_id,omitempty"`
	Expiry         *time.Time              `json:"expiry"`
	Roles          map[string]UserRole     `json:"roles"`
	Resources      map[string]UserResource `json:"resources"`
	Policies       map[string]UserPolicy   `json:"policies"`
	CreatedAt      *time.Time              `json:"created_at"`
	CreatedBy      string                  `json:"created_by"`
	UpdatedAt      *time.Time              `json:"updated_at"`
	UpdatedBy      string                  `json:"updated_by"`
}

// UserRole is a role granted to a user, keyed by role ID in User.Roles.
type UserRole struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserResource describes a resource the user has access to, keyed by
// resource ID in User.Resources. RoleIDs and PolicyIDs are sets encoded as
// maps of ID to true.
type UserResource struct {
	RoleIDs   map[string]bool `json:"role_ids"`
	PolicyIDs map[string]bool `json:"policy_ids"`
	Key       string          `json:"key"`
	Name      string          `json:"name"`
}

// UserPolicy is a policy attached to a user, keyed by policy ID in
// User.Policies.
type UserPolicy struct {
	Name    string             `json:"name"`
	Mapping *UserPolicyMapping `json:"mapping,omitempty"`
}

// UserPolicyMapping binds policy arguments to their values.
type UserPolicyMapping struct {
	Arguments map[string]UserPolicyMappingValue `json:"arguments,omitempty"`
}

// UserPolicyMappingValue is a single policy argument value. Only static
// values are currently expressed.
type UserPolicyMappingValue struct {
	Static string `json:"static,omitempty"`
}

// ============================================================================
// Resource Types
// ============================================================================

// Resource is a resource record managed through the resource endpoints.
// Callers populate Name, Description and Key; every other field is
// server-owned and filled in by responses. A non-nil DeletedAt marks a
// soft-deleted record.
type Resource struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Key         string     `json:"key"`
	Enabled     bool       `json:"enabled"`
	ProjectID   string     `json:"project_id"`
	CreatedAt   *time.Time `json:"created_at"`
	CreatedBy   string     `json:"created_by"`
	UpdatedAt   *time.Time `json:"updated_at"`
	UpdatedBy   string     `json:"updated_by"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// NewResource returns a Resource ready for CreateResource. It is enabled by
// default; ID, project and audit fields are left for the server to assign.
func NewResource(name, description, key string) *Resource {
	return &Resource{
		Name:        name,
		Description: description,
		Key:         key,
		Enabled:     true,
	}
}
