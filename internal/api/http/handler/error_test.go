package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/newsletter-server/internal/model"
	"github.com/dtroode/newsletter-server/internal/testutil"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "validation",
			err:         model.NewValidationError("subscriber name must not be empty"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "subscriber name must not be empty",
		},
		{
			name:        "unknown token",
			err:         model.ErrUnknownToken,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "unknown confirmation token",
		},
		{
			name:        "unexpected",
			err:         model.NewUnexpectedError("failed to insert new subscriber", errors.New("pq: connection reset")),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
		{
			name:        "conflict stays a server error",
			err:         model.NewUnexpectedError("failed to insert new subscriber", fmt.Errorf("insert: %w", model.ErrConflict)),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
		{
			name:        "unwrapped",
			err:         errors.New("boom"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := errorStatus(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestHandleError_LogLevel(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  int
	}{
		{name: "validation", err: model.NewValidationError("subscriber email must not be empty"), wantLevel: "INFO", wantCode: http.StatusBadRequest},
		{name: "unknown token", err: model.ErrUnknownToken, wantLevel: "INFO", wantCode: http.StatusUnauthorized},
		{name: "unexpected", err: model.NewUnexpectedError("failed to insert new subscriber", errors.New("boom")), wantLevel: "ERROR", wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := testutil.MakeBufferLogger()
			rec := httptest.NewRecorder()

			handleError(rec, log, "Subscription handler: confirmation failed", tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			lines := buf.Lines(tt.wantLevel)
			require.Len(t, lines, 1)
			assert.Contains(t, lines[0], "confirmation failed")
			if tt.wantLevel == "INFO" {
				assert.Empty(t, buf.Lines("ERROR"))
			}
		})
	}
}
