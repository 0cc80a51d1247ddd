package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NBFYayI/Todo/internal/constants"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/tasks/?"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantSkip  int
		wantLimit int
	}{
		{"defaults", "", 0, constants.DefaultListLimit},
		{"explicit values", "skip=5&limit=20", 5, 20},
		{"negative skip clamped", "skip=-1", 0, constants.DefaultListLimit},
		{"zero limit falls back", "limit=0", 0, constants.DefaultListLimit},
		{"negative limit falls back", "limit=-10", 0, constants.DefaultListLimit},
		{"limit over maximum falls back", "limit=5000", 0, constants.DefaultListLimit},
		{"limit at maximum kept", "limit=1000", 0, constants.MaxListLimit},
		{"non-numeric values fall back", "skip=abc&limit=xyz", 0, constants.DefaultListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := GetPaginationParams(paginationContext(t, tt.query))
			require.Equal(t, tt.wantSkip, params.Skip)
			require.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}
