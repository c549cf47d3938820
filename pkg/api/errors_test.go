package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plandeck/plandeck/pkg/coordinator"
	"github.com/plandeck/plandeck/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"service not found", services.ErrNotFound, http.StatusNotFound},
		{"coordinator not found", coordinator.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("plan x: %w", coordinator.ErrNotFound), http.StatusNotFound},
		{"already initialized", coordinator.ErrAlreadyInitialized, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"validation", services.NewValidationError("planId", "required"), http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}
