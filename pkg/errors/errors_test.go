package errors

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedError(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", Clone(ErrForbidden, "not yours"))

	got := FromError(wrapped)
	assert.Equal(t, "FORBIDDEN", got.Code)
	assert.Equal(t, http.StatusForbidden, got.Status)
	assert.Equal(t, "not yours", got.Message)
}

func TestFromErrorFallsBackToInternal(t *testing.T) {
	got := FromError(sql.ErrConnDone)
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.True(t, errors.Is(got, sql.ErrConnDone))
	assert.Nil(t, FromError(nil))
}

func TestCloneDoesNotMutateSentinel(t *testing.T) {
	clone := Clone(ErrValidation, "Only found reports can be claimed.")
	assert.Equal(t, "Only found reports can be claimed.", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
	assert.Equal(t, clone.Message, clone.Error())
}

func TestWrapError(t *testing.T) {
	err := Wrap(errors.New("timeout"), ErrUploadFailed.Code, ErrUploadFailed.Status, "upload photo")
	assert.Equal(t, "upload photo: timeout", err.Error())
	assert.Equal(t, http.StatusBadGateway, err.Status)
}
