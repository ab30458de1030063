package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stampdesk/stampdesk/internal/api/handlers"
)

func TestCategoryHandler_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "stamp country resolves to leaf category",
			query:      "?country=Romania",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"region_code":"EU"`, `"resolved":true`},
		},
		{
			name:       "diacritics are ignored",
			query:      "?country=Rom%C3%A2nia",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"country_label":"Romania"`},
		},
		{
			name:       "home region needs manual category",
			query:      "?country=United%20States",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"region_code":"US"`, `"needs_input":true`, `"resolved":false`},
		},
		{
			name:       "unknown text returns empty selection",
			query:      "?country=Atlantis",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"resolved":false`, `"needs_input":false`},
		},
		{
			name:       "missing country returns 422",
			query:      "",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterCategoryRoutes(api, handlers.NewCategoryHandler())

			resp := api.Get("/api/v1/category" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}
