package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Email    string  `json:"email" binding:"required,email"`
	Quantity int     `json:"quantity" binding:"gt=0"`
	Role     string  `json:"role" binding:"omitempty,oneof=admin user"`
	Nested   *nested `json:"nested"`
}

type nested struct {
	Theme string `json:"theme" binding:"omitempty,oneof=light dark"`
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	Init()
	err := binding.Validator.ValidateStruct(&payload{Email: "nope", Role: "root", Nested: &nested{Theme: "neon"}})
	require.Error(t, err)

	details := ToDetails(err)
	require.Equal(t, "must be a valid email", details["email"])
	require.Equal(t, "must be greater than 0", details["quantity"])
	require.Equal(t, "must be one of: admin, user", details["role"])
	require.Equal(t, "must be one of: light, dark", details["nested.theme"])
}

func TestToDetailsJSONErrors(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"quantity":"two"}`), &p)
	require.Equal(t, map[string]string{"quantity": "must be a int"}, ToDetails(err))

	err = json.Unmarshal([]byte(`{`), &p)
	require.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	require.Nil(t, ToDetails(nil))
}
