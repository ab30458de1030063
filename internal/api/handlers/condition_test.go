package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stampdesk/stampdesk/internal/api/handlers"
)

func TestConditionHandler_Map(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "recognized grade maps to used",
			query:      "?grade=MNH",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"code":"USED"`, `"condition_id":3000`},
		},
		{
			name:       "unrecognized grade omits condition id",
			query:      "?grade=pristine",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"code":"UNSPECIFIED"`},
		},
		{
			name:       "missing grade returns 422",
			query:      "",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterConditionRoutes(api, handlers.NewConditionHandler())

			resp := api.Get("/api/v1/condition" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}

			if tt.name == "unrecognized grade omits condition id" {
				assert.NotContains(t, resp.Body.String(), "condition_id")
			}
		})
	}
}
