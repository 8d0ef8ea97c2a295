package domain

import (
	"errors"
	"strings"
)

// Role distinguishes administrators from regular customers.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Theme is the dashboard colour scheme a user prefers.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var (
	ErrEmptyName    = errors.New("name is required")
	ErrInvalidEmail = errors.New("email must contain '@'")
	ErrInvalidRole  = errors.New("role must be admin or user")
	ErrInvalidTheme = errors.New("theme must be light or dark")
)

// Address is a postal address attached to a user profile.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Preferences holds notification and display settings.
type Preferences struct {
	Notifications bool
	Newsletter    bool
	Theme         Theme
}

// User is a customer or administrator account.
type User struct {
	Email       string
	Name        string
	Role        Role
	Avatar      string
	Phone       string
	Address     *Address
	Preferences *Preferences
}

// NewUser builds a user ensuring required invariants. An empty role defaults
// to RoleUser.
func NewUser(email, name string, role Role) (User, error) {
	if role == "" {
		role = RoleUser
	}
	user := User{
		Email: strings.TrimSpace(email),
		Name:  strings.TrimSpace(name),
		Role:  role,
	}
	if err := user.Validate(); err != nil {
		return User{}, err
	}
	return user, nil
}

// Validate enforces invariants on the entity.
func (u User) Validate() error {
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	switch u.Role {
	case RoleUser, RoleAdmin:
	default:
		return ErrInvalidRole
	}
	if u.Preferences != nil {
		switch u.Preferences.Theme {
		case "", ThemeLight, ThemeDark:
		default:
			return ErrInvalidTheme
		}
	}
	return nil
}

// IsAdmin reports whether the user carries the admin flag.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// UniqueKey implements resource.Keyed. Emails are unique regardless of case.
func (u User) UniqueKey() string { return strings.ToLower(strings.TrimSpace(u.Email)) }

// Clone returns a copy that shares no pointers with u.
func (u User) Clone() User {
	if u.Address != nil {
		addr := *u.Address
		u.Address = &addr
	}
	if u.Preferences != nil {
		prefs := *u.Preferences
		u.Preferences = &prefs
	}
	return u
}

// Patch lists the user fields that may be changed after creation. Nil fields
// are left untouched; Address and Preferences replace the stored value as a
// whole.
type Patch struct {
	Email       *string
	Name        *string
	Role        *Role
	Avatar      *string
	Phone       *string
	Address     *Address
	Preferences *Preferences
}

// Apply implements resource.Patch.
func (p Patch) Apply(u User) User {
	u = u.Clone()
	if p.Email != nil {
		u.Email = strings.TrimSpace(*p.Email)
	}
	if p.Name != nil {
		u.Name = strings.TrimSpace(*p.Name)
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		addr := *p.Address
		u.Address = &addr
	}
	if p.Preferences != nil {
		prefs := *p.Preferences
		u.Preferences = &prefs
	}
	return u
}
