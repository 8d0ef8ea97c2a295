package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, SavedItem{UserID: "1", ProductID: "prod-1", Price: 99.99}.Validate())
	require.ErrorIs(t, SavedItem{ProductID: "prod-1"}.Validate(), ErrMissingUser)
	require.ErrorIs(t, SavedItem{UserID: "1"}.Validate(), ErrMissingProduct)
	require.ErrorIs(t, SavedItem{UserID: "1", ProductID: "p", Price: -1}.Validate(), ErrNegativePrice)
}
