// Package entity contains the core business objects of the Alerty client.
package entity

// Credentials is the session record kept in secure storage after a login.
// Optional fields are pointers so that a partial record can be told apart
// from one that explicitly carries an empty value.
type Credentials struct {
	Token     string  // Bearer token issued by the backend (JWT).
	Username  *string // Username used to log in, if any.
	Dni       *string // National id used to log in, if any.
	Role      *string // Role reported by the backend.
	CompanyID *int64  // Company the session is scoped to.
	UserID    *int64  // Backend id of the logged-in user.
}

// HasCompany reports whether the session is scoped to a company.
func (c *Credentials) HasCompany() bool {
	return c != nil && c.CompanyID != nil && *c.CompanyID > 0
}

// HasUser reports whether the session carries a backend user id.
func (c *Credentials) HasUser() bool {
	return c != nil && c.UserID != nil && *c.UserID > 0
}

// DisplayName returns the username, falling back to the dni.
func (c *Credentials) DisplayName() string {
	if c == nil {
		return ""
	}
	if c.Username != nil && *c.Username != "" {
		return *c.Username
	}
	if c.Dni != nil {
		return *c.Dni
	}

	return ""
}
