package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "strings"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below; the zero value is RoleUnknown.
type Role string

const (
	RoleUnknown      Role = ""
	RoleRetailer     Role = "retailer"
	RoleWholesaler   Role = "wholesaler"
	RoleAdmin        Role = "admin"
	RoleManufacturer Role = "manufacturer"
	RoleDelivery     Role = "delivery"
)

// roleCodes is the single closed translation table from backend numeric
// role codes to the role enumeration. Unmapped codes resolve to RoleUnknown,
// never to a guessed default.
var roleCodes = map[int]Role{
	0: RoleRetailer,
	1: RoleWholesaler,
	2: RoleAdmin,
	3: RoleManufacturer,
	4: RoleDelivery,
}

// RoleFromCode translates a backend numeric role code into a Role.
// Unknown codes yield RoleUnknown.
func RoleFromCode(code int) Role {
	if r, ok := roleCodes[code]; ok {
		return r
	}
	return RoleUnknown
}

// ParseRole normalizes a role string and reports whether it names a known role.
func ParseRole(value string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(value)))
	if r.Valid() {
		return r, true
	}
	return RoleUnknown, false
}

// Valid reports whether the role is a member of the closed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleRetailer, RoleWholesaler, RoleAdmin, RoleManufacturer, RoleDelivery:
		return true
	default:
		return false
	}
}

// Claims represents the identity fields decoded from an external-provider
// credential. Produced once per authentication attempt; immutable.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// Account is the backend-shaped user record returned by the user directory.
// Role carries the raw numeric code; translation to the Role enumeration
// happens in exactly one place, at the session boundary.
type Account struct {
	LoginID  string `json:"loginID"`
	UserID   string `json:"userID"`
	UserName string `json:"userName"`
	Role     int    `json:"role"`
	PhoneNo  string `json:"phoneNo,omitempty"`
	Address  string `json:"address,omitempty"`
	Remarks  string `json:"remarks,omitempty"`
	IsActive bool   `json:"isActive"`
}

// User is the canonical profile merged from identity claims and the backend
// account record.
type User struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Picture  string `json:"picture,omitempty"`
	UserID   string `json:"user_id,omitempty"`
	Role     Role   `json:"role,omitempty"`
	PhoneNo  string `json:"phone_no,omitempty"`
	Address  string `json:"address,omitempty"`
	Remarks  string `json:"remarks,omitempty"`
	IsActive bool   `json:"is_active,omitempty"`
}

// Session is the authoritative auth state for one browser session. ID is an
// opaque session identifier assigned by the service layer; the remaining
// fields are mutated only through the transitions in session.go.
type Session struct {
	ID              string `json:"id,omitempty"`
	IsRegistered    bool   `json:"is_registered"`
	IsAuthenticated bool   `json:"is_authenticated"`
	User            *User  `json:"user,omitempty"`
	Token           string `json:"token,omitempty"`
}

// EmptySession returns the documented initial session state.
func EmptySession() Session {
	return Session{}
}

// Role returns the session user's role, or RoleUnknown when no user is set.
func (s Session) Role() Role {
	if s.User == nil {
		return RoleUnknown
	}
	return s.User.Role
}
