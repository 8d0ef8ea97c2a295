package domain

import (
	"errors"
	"maps"
	"strings"
)

// Type classifies an activity feed entry.
type Type string

const (
	TypeOrderPlaced    Type = "order_placed"
	TypeOrderCancelled Type = "order_cancelled"
	TypeItemSaved      Type = "item_saved"
	TypeItemRemoved    Type = "item_removed"
	TypeProfileUpdated Type = "profile_updated"
	TypeLogin          Type = "login"
)

var (
	ErrMissingUser  = errors.New("activity must belong to a user")
	ErrInvalidType  = errors.New("activity type is invalid")
	ErrMissingTitle = errors.New("activity title is required")
)

// Activity is one entry of a user's activity feed.
type Activity struct {
	UserID      string
	Type        Type
	Title       string
	Description string
	Metadata    map[string]any
}

func (a Activity) Validate() error {
	if strings.TrimSpace(a.UserID) == "" {
		return ErrMissingUser
	}
	switch a.Type {
	case TypeOrderPlaced, TypeOrderCancelled, TypeItemSaved, TypeItemRemoved, TypeProfileUpdated, TypeLogin:
	default:
		return ErrInvalidType
	}
	if strings.TrimSpace(a.Title) == "" {
		return ErrMissingTitle
	}
	return nil
}

// Clone copies the top level of Metadata.
func (a Activity) Clone() Activity {
	if a.Metadata != nil {
		a.Metadata = maps.Clone(a.Metadata)
	}
	return a
}
