package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimsContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestRequireManager(t *testing.T) {
	cases := []struct {
		name       string
		claims     map[string]interface{}
		wantStatus int
	}{
		{"viewer rejected", map[string]interface{}{"role": "viewer"}, http.StatusForbidden},
		{"manager passes", map[string]interface{}{"role": "manager"}, http.StatusOK},
		{"super admin passes without manager role", map[string]interface{}{"role": "viewer", "is_super_admin": true}, http.StatusOK},
		{"missing role rejected", map[string]interface{}{}, http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			called := false
			h := RequireManager(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodPost, "/employees", nil)
			req = req.WithContext(claimsContext(t, c.claims))
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, c.wantStatus, rec.Code)
			assert.Equal(t, c.wantStatus == http.StatusOK, called)
		})
	}
}

func TestRequireManagerWithoutToken(t *testing.T) {
	h := RequireManager(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/employees", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
