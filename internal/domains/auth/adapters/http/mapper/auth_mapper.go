package mapper

import (
	"github.com/Apurer/storefront-api/internal/domains/auth/ports"
	usermapper "github.com/Apurer/storefront-api/internal/domains/users/adapters/http/mapper"
)

type Login struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type Register struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type Refresh struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Session is the login and registration response body.
type Session struct {
	User   usermapper.User `json:"user"`
	Tokens Tokens          `json:"tokens"`
}

func ToRegistration(model Register) ports.Registration {
	return ports.Registration{Email: model.Email, Password: model.Password, Name: model.Name}
}

func FromSession(s ports.Session) Session {
	return Session{
		User:   usermapper.FromProjection(s.User),
		Tokens: FromTokens(s),
	}
}

func FromTokens(s ports.Session) Tokens {
	return Tokens{AccessToken: s.Tokens.AccessToken, RefreshToken: s.Tokens.RefreshToken}
}
