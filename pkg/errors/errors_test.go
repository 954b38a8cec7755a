package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, ErrNotFound, CodeOf(NotFound("stock item", nil)))
	assert.Equal(t, ErrValidation, CodeOf(Validation("bad quantity", nil)))
	assert.Equal(t, ErrAuthentication, CodeOf(Authentication(nil)))
	assert.Equal(t, ErrConflict, CodeOf(Conflict("duplicate email", nil)))
	assert.Equal(t, ErrInternal, CodeOf(fmt.Errorf("plain error")))
}

func TestCodeSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("failed to update stock: %w", NotFound("stock item", nil))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestErrorMessage(t *testing.T) {
	err := NotFound("organ record", nil)
	assert.Equal(t, "organ record not found", err.Error())

	wrapped := Validation("invalid expiry date", fmt.Errorf("parse failure"))
	assert.Contains(t, wrapped.Error(), "invalid expiry date")
	assert.Contains(t, wrapped.Error(), "parse failure")
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Internal(cause)
	assert.Equal(t, cause, err.Unwrap())
}
