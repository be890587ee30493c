package auth

import "errors"

// ErrMissingRole is returned by Login when the backend account's role code
// does not resolve through the closed role table. The transition is refused
// and the prior state is returned unchanged.
var ErrMissingRole = errors.New("unauthorized: missing role")

// The four session transitions are pure reductions: input is the current
// state plus the action payload, output is the next state. They never perform
// I/O and never mutate their receiver.

// SetIdentity merges decoded provider claims into the session user,
// preserving any previously set role, token, and flags. It never changes
// IsAuthenticated. Absent optional claims are treated as omitted, not cleared.
func SetIdentity(s Session, claims Claims) Session {
	user := User{}
	if s.User != nil {
		user = *s.User
	}
	if claims.Email != "" {
		user.Email = claims.Email
	}
	if claims.Name != "" {
		user.Name = claims.Name
	}
	if claims.Picture != "" {
		user.Picture = claims.Picture
	}
	s.User = &user
	return s
}

// Register marks the session as registered and merges email and role into
// the user. It does not touch IsAuthenticated or Token. The role is stored
// as given, including values outside the closed enumeration; authorization
// checks compare against the enumeration so an unrecognized role never
// grants access.
func Register(s Session, email string, role Role) Session {
	user := User{}
	if s.User != nil {
		user = *s.User
	}
	user.Email = email
	user.Role = role
	s.IsRegistered = true
	s.User = &user
	return s
}

// Login translates a backend account into the canonical user shape and, iff
// the numeric role resolves through the closed table, marks the session
// authenticated and stores the bearer token. When the role does not resolve
// the input state is returned unchanged together with ErrMissingRole.
func Login(s Session, token string, account Account) (Session, error) {
	return LoginAs(s, token, account, RoleFromCode(account.Role))
}

// LoginAs is Login with the role already resolved. Callers that translate
// role codes through a configurable mapper use this form; the guarantee is
// the same: an invalid role refuses the transition and leaves the prior
// state unchanged.
func LoginAs(s Session, token string, account Account, role Role) (Session, error) {
	if !role.Valid() {
		return s, ErrMissingRole
	}

	user := User{}
	if s.User != nil {
		user = *s.User
	}
	user.Email = account.LoginID
	user.Name = account.UserName
	user.UserID = account.UserID
	user.Role = role
	user.PhoneNo = account.PhoneNo
	user.Address = account.Address
	user.Remarks = account.Remarks
	user.IsActive = account.IsActive

	s.IsAuthenticated = true
	s.Token = token
	s.User = &user
	return s, nil
}

// Logout unconditionally resets to the empty initial session.
func Logout(Session) Session {
	return EmptySession()
}
