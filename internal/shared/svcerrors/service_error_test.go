package svcerrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("QRY_1000", "startDate must be a calendar date", nil),
			wantErr: NewInvalidArgumentError("QRY_1000", "startDate must be a calendar date", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("QRY_9000", nil)),
			wantErr: NewInternalError("QRY_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		wantCode     string
		wantStatus   int
		wantInternal bool
		wantCanceled bool
	}{
		{
			name:       "service error kept",
			err:        fmt.Errorf("scan: %w", NewUnavailableError("TAIL_1000", "tail unavailable", nil)),
			wantCode:   "TAIL_1000",
			wantStatus: 503,
		},
		{
			name:         "context canceled",
			err:          fmt.Errorf("reading segment: %w", context.Canceled),
			wantCode:     "SYS_4990",
			wantStatus:   499,
			wantCanceled: true,
		},
		{
			name:         "canceled scan wrapped in internal code",
			err:          NewInternalError("QRY_9000", fmt.Errorf("scanAborted: %w", context.Canceled)),
			wantCode:     "SYS_4990",
			wantStatus:   499,
			wantCanceled: true,
		},
		{
			name:         "undefined",
			err:          errors.New("disk on fire"),
			wantCode:     "SYS_9001",
			wantStatus:   500,
			wantInternal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcErr := FromError(tt.err)

			assert.Equal(t, tt.wantCode, svcErr.Code)
			assert.Equal(t, tt.wantStatus, svcErr.HttpStatusCode)
			assert.Equal(t, tt.wantInternal, svcErr.IsInternalError())
			assert.Equal(t, tt.wantCanceled, svcErr.IsCanceled())
			assert.True(t, errors.Is(tt.err, svcErr) || errors.Is(svcErr, tt.err), "cause chain should be kept")
		})
	}
}
