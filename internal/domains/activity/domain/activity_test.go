package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := Activity{UserID: "1", Type: TypeLogin, Title: "Login"}
	require.NoError(t, valid.Validate())

	missingUser := valid
	missingUser.UserID = ""
	require.ErrorIs(t, missingUser.Validate(), ErrMissingUser)

	badType := valid
	badType.Type = "teleported"
	require.ErrorIs(t, badType.Validate(), ErrInvalidType)

	noTitle := valid
	noTitle.Title = " "
	require.ErrorIs(t, noTitle.Validate(), ErrMissingTitle)
}

func TestCloneCopiesMetadata(t *testing.T) {
	a := Activity{Metadata: map[string]any{"orderNumber": "ORD-001"}}
	clone := a.Clone()
	clone.Metadata["orderNumber"] = "ORD-999"

	require.Equal(t, "ORD-001", a.Metadata["orderNumber"])
}
