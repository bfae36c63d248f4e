package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"moshood-fashion/internal/auth"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		expectedStatus int
		expectHandler  bool
	}{
		{
			name:           "Preflight request",
			method:         http.MethodOptions,
			expectedStatus: http.StatusNoContent,
			expectHandler:  false,
		},
		{
			name:           "GET request",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
		{
			name:           "POST request",
			method:         http.MethodPost,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := CORS(testHandler)

			req := httptest.NewRequest(tt.method, "/test", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectHandler, handlerCalled)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestServiceKeyAuth(t *testing.T) {
	logger := zerolog.Nop()
	validKey := "test-service-key-123"

	tests := []struct {
		name           string
		serviceKey     string
		expectedStatus int
		expectHandler  bool
	}{
		{
			name:           "Valid service key",
			serviceKey:     validKey,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
		{
			name:           "Invalid service key",
			serviceKey:     "wrong-key",
			expectedStatus: http.StatusUnauthorized,
			expectHandler:  false,
		},
		{
			name:           "Missing service key",
			serviceKey:     "",
			expectedStatus: http.StatusUnauthorized,
			expectHandler:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := ServiceKeyAuth(validKey, logger)(testHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/overview", nil)
			if tt.serviceKey != "" {
				req.Header.Set("X-Service-Key", tt.serviceKey)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectHandler, handlerCalled)
		})
	}
}

func TestJWTAuth(t *testing.T) {
	logger := zerolog.Nop()
	issuer := auth.NewTokenIssuer("test-secret")
	userID := uuid.New()

	token, err := issuer.Issue(userID, "ada@example.com")
	require.NoError(t, err)

	t.Run("Valid token attaches claims", func(t *testing.T) {
		var claims *auth.Claims
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims = ClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		handler := JWTAuth(issuer, logger)(testHandler)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, claims)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "ada@example.com", claims.Email)
	})

	t.Run("Missing token rejected", func(t *testing.T) {
		handlerCalled := false
		handler := JWTAuth(issuer, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, handlerCalled)
	})

	t.Run("Token signed with wrong secret rejected", func(t *testing.T) {
		wrongToken, err := auth.NewTokenIssuer("other-secret").Issue(userID, "ada@example.com")
		require.NoError(t, err)

		handler := JWTAuth(issuer, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer "+wrongToken)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalJWT(t *testing.T) {
	logger := zerolog.Nop()
	issuer := auth.NewTokenIssuer("test-secret")

	t.Run("Anonymous request passes through without claims", func(t *testing.T) {
		var claims *auth.Claims
		handler := OptionalJWT(issuer, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims = ClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set("X-Guest-Token", "guest-abc")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, claims)
	})

	t.Run("Valid token attaches claims", func(t *testing.T) {
		token, err := issuer.Issue(uuid.New(), "ada@example.com")
		require.NoError(t, err)

		var claims *auth.Claims
		handler := OptionalJWT(issuer, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims = ClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.NotNil(t, claims)
		assert.Equal(t, "ada@example.com", claims.Email)
	})
}

func TestRecovery(t *testing.T) {
	logger := zerolog.Nop()

	handler := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}
