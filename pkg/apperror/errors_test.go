package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorString(t *testing.T) {
	plain := New("VAL_001", "Recipient username is required", http.StatusBadRequest)
	assert.Equal(t, "[VAL_001] Recipient username is required", plain.Error())

	wrapped := Wrap("NET_001", "connection refused", http.StatusBadGateway, errors.New("dial tcp: refused"))
	assert.Equal(t, "[NET_001] connection refused: dial tcp: refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NetworkError(cause)
	assert.True(t, errors.Is(err, cause))
}

func TestBackendError_FallsBackToGenericMessage(t *testing.T) {
	err := BackendError(http.StatusBadRequest, "")
	assert.Equal(t, GenericFailure, err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)

	err = BackendError(http.StatusConflict, "Account already exists")
	assert.Equal(t, "Account already exists", err.Message)
}

func TestErrLoginFailed_FallsBackToDefaultReason(t *testing.T) {
	assert.Equal(t, "Login failed", ErrLoginFailed("").Message)
	assert.Equal(t, "Invalid credentials.", ErrLoginFailed("Invalid credentials.").Message)
}

func TestConstructors_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"invalid recipient", ErrInvalidRecipient(), "VAL_001", http.StatusBadRequest},
		{"invalid to account", ErrInvalidToAccount(), "VAL_002", http.StatusBadRequest},
		{"invalid amount", ErrInvalidAmount(), "VAL_003", http.StatusBadRequest},
		{"invalid public key", ErrInvalidPublicKey(), "VAL_004", http.StatusBadRequest},
		{"not authenticated", ErrNotAuthenticated(), "AUTH_003", http.StatusUnauthorized},
		{"forbidden", ErrForbidden(), "AUTH_004", http.StatusForbidden},
		{"invalid token", ErrInvalidToken(errors.New("bad segment")), "AUTH_002", http.StatusUnauthorized},
		{"network", NetworkError(errors.New("refused")), "NET_001", http.StatusBadGateway},
		{"internal", InternalError(errors.New("oops")), "SYS_001", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.err)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}
