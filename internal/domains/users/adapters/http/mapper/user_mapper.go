package mapper

import (
	userdomain "github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// Address is the transport-level postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Preferences is the transport-level preference set.
type Preferences struct {
	Notifications bool   `json:"notifications"`
	Newsletter    bool   `json:"newsletter"`
	Theme         string `json:"theme" binding:"omitempty,oneof=light dark"`
}

// User represents the transport-level user payload.
type User struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	Name        string       `json:"name"`
	Role        string       `json:"role"`
	Avatar      string       `json:"avatar,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Address     *Address     `json:"address,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

// CreateUser is the admin payload for creating a user.
type CreateUser struct {
	Email       string       `json:"email" binding:"required,email"`
	Name        string       `json:"name" binding:"required"`
	Role        string       `json:"role" binding:"omitempty,oneof=admin user"`
	Avatar      string       `json:"avatar"`
	Phone       string       `json:"phone"`
	Address     *Address     `json:"address"`
	Preferences *Preferences `json:"preferences"`
}

// UpdateUser is the admin partial update payload. Keys outside this set are
// ignored.
type UpdateUser struct {
	Email       *string      `json:"email" binding:"omitempty,email"`
	Name        *string      `json:"name"`
	Role        *string      `json:"role" binding:"omitempty,oneof=admin user"`
	Avatar      *string      `json:"avatar"`
	Phone       *string      `json:"phone"`
	Address     *Address     `json:"address"`
	Preferences *Preferences `json:"preferences"`
}

// UpdateProfile is the self-service partial update payload. Email and role
// cannot be changed through it.
type UpdateProfile struct {
	Name        *string      `json:"name"`
	Avatar      *string      `json:"avatar"`
	Phone       *string      `json:"phone"`
	Address     *Address     `json:"address"`
	Preferences *Preferences `json:"preferences"`
}

// ToDomainUser converts a create payload to the domain entity.
func ToDomainUser(model CreateUser) (userdomain.User, error) {
	user, err := userdomain.NewUser(model.Email, model.Name, userdomain.Role(model.Role))
	if err != nil {
		return userdomain.User{}, err
	}
	user.Avatar = model.Avatar
	user.Phone = model.Phone
	user.Address = toDomainAddress(model.Address)
	user.Preferences = toDomainPreferences(model.Preferences)
	return user, user.Validate()
}

// ToPatch converts an admin update payload to a domain patch.
func ToPatch(model UpdateUser) userdomain.Patch {
	patch := userdomain.Patch{
		Email:       model.Email,
		Name:        model.Name,
		Avatar:      model.Avatar,
		Phone:       model.Phone,
		Address:     toDomainAddress(model.Address),
		Preferences: toDomainPreferences(model.Preferences),
	}
	if model.Role != nil {
		role := userdomain.Role(*model.Role)
		patch.Role = &role
	}
	return patch
}

// ToProfilePatch converts a profile update payload to a domain patch.
func ToProfilePatch(model UpdateProfile) userdomain.Patch {
	return userdomain.Patch{
		Name:        model.Name,
		Avatar:      model.Avatar,
		Phone:       model.Phone,
		Address:     toDomainAddress(model.Address),
		Preferences: toDomainPreferences(model.Preferences),
	}
}

// FromProjection converts a stored user into a transport representation.
func FromProjection(rec projection.Projection[userdomain.User]) User {
	u := rec.Entity
	out := User{
		ID:        rec.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Avatar:    u.Avatar,
		Phone:     u.Phone,
		CreatedAt: projection.FormatTimestamp(rec.Metadata.CreatedAt),
		UpdatedAt: projection.FormatTimestamp(rec.Metadata.UpdatedAt),
	}
	if u.Address != nil {
		out.Address = &Address{
			Street:  u.Address.Street,
			City:    u.Address.City,
			State:   u.Address.State,
			ZipCode: u.Address.ZipCode,
			Country: u.Address.Country,
		}
	}
	if u.Preferences != nil {
		out.Preferences = &Preferences{
			Notifications: u.Preferences.Notifications,
			Newsletter:    u.Preferences.Newsletter,
			Theme:         string(u.Preferences.Theme),
		}
	}
	return out
}

func toDomainAddress(a *Address) *userdomain.Address {
	if a == nil {
		return nil
	}
	return &userdomain.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

func toDomainPreferences(p *Preferences) *userdomain.Preferences {
	if p == nil {
		return nil
	}
	return &userdomain.Preferences{
		Notifications: p.Notifications,
		Newsletter:    p.Newsletter,
		Theme:         userdomain.Theme(p.Theme),
	}
}
