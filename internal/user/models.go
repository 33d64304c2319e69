package user

import "time"

// User is a registered account row.
type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	FullName  *string    `json:"full_name,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CreateInput carries the fields needed to create a user.
type CreateInput struct {
	Email    string
	Username string
	FullName *string
}

// Patch is a partial update. Only non-nil fields are applied, one by one.
type Patch struct {
	Email    *string
	Username *string
	FullName *string
	IsActive *bool
}
