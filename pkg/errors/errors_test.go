package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/doctorconsult/appcore/pkg/errors"
)

func TestAppError_Message(t *testing.T) {
	err := apperrors.NewInvalidTransitionError("only a pending appointment can be approved")
	assert.Equal(t, "INVALID_TRANSITION: only a pending appointment can be approved", err.Error())
}

func TestAppError_WrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := apperrors.NewFetchFailedError("failed to fetch appointments", cause)

	assert.Contains(t, err.Error(), "FETCH_FAILED")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestIsType(t *testing.T) {
	err := apperrors.NewMalformedLabelError("bad label")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMalformedLabel))
	assert.False(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidPeriod))
	assert.False(t, apperrors.IsType(stderrors.New("plain"), apperrors.ErrorTypeMalformedLabel))
	assert.False(t, apperrors.IsType(nil, apperrors.ErrorTypeMalformedLabel))
}

func TestIsType_SeesThroughWrapping(t *testing.T) {
	inner := apperrors.NewActionFailedError("failed to pay appointment", stderrors.New("status 500"))
	wrapped := fmt.Errorf("pay: %w", inner)

	require.Error(t, wrapped)
	assert.True(t, apperrors.IsType(wrapped, apperrors.ErrorTypeActionFailed))
}
