package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gin's binding validator reads "binding" tags
type sample struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Quantity int    `json:"quantity" binding:"gte=0"`
}

func engine(t *testing.T) *validator.Validate {
	t.Helper()
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}

func TestToDetailsJSONSyntax(t *testing.T) {
	var dst map[string]any
	err := json.Unmarshal([]byte("{nope"), &dst)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetailsValidationErrors(t *testing.T) {
	v := engine(t)

	err := v.Struct(sample{Email: "not-an-email", Password: "abc", Quantity: -2})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be at least 4 characters long", details["password"])
	assert.Equal(t, "must be greater than or equal to 0", details["quantity"])
}

func TestToDetailsFallback(t *testing.T) {
	details := ToDetails(errors.New("something else"))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, details)
}
