package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dromero87/superheroes-cli/internal/client/models"
	"github.com/dromero87/superheroes-cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewZapLogger(zap.NewNop().Sugar())
}

func newClient(t *testing.T, baseURL string) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(baseURL, 2*time.Second, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRegister_SendsAllFields(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/register", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	err := c.Register(context.Background(), models.RegistrationForm{
		Username: "bat", Email: "b@x.com", Password: "p", Name: "Bruce", Lastname: "Wayne",
	})
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"username": "bat", "email": "b@x.com", "password": "p", "name": "Bruce", "lastname": "Wayne",
	}, got)
}

func TestRegister_ServerErrorMapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	err := c.Register(context.Background(), models.RegistrationForm{Username: "bat"})
	require.ErrorIs(t, err, ErrServer)
}

func TestLogin_CookieCarriedToFollowingRequests(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "bat", creds.Username)
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "s3cr3t", Path: "/"})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/profile", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "s3cr3t" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(models.Profile{Name: "Bruce"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newClient(t, srv.URL)
	ctx := context.Background()

	// Unauthenticated profile fetch is rejected.
	_, err := c.Profile(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, c.Login(ctx, models.Credentials{Username: "bat", Password: "p"}))

	p, err := c.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Bruce", p.Name)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	err := c.Login(context.Background(), models.Credentials{Username: "bat", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout_PostsWithoutBody(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/logout", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	require.NoError(t, c.Logout(context.Background()))
	require.True(t, called)
}

func TestSuperheroes_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/superheroes", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.Superhero{
			{ID: 1, Superhero: "Batman", Image: "/img/batman.jpg"},
			{ID: 2, Superhero: "Superman", Image: "/img/superman.jpg"},
		})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	heroes, err := c.Superheroes(context.Background())
	require.NoError(t, err)
	require.Len(t, heroes, 2)
	require.Equal(t, "Batman", heroes[0].Superhero)
}

func TestSuperheroes_NonListPayloadIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object", `{}`},
		{"null", `null`},
		{"string", `"nope"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newClient(t, srv.URL)
			heroes, err := c.Superheroes(context.Background())
			require.NoError(t, err)
			require.NotNil(t, heroes)
			require.Empty(t, heroes)
		})
	}
}

func TestSuperheroes_GarbledBodyIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"broken`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	_, err := c.Superheroes(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestSuperheroes_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newClient(t, srv.URL)
	_, err := c.Superheroes(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestProfile_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusNotFound, ErrServer},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		c := newClient(t, srv.URL)
		err := c.Logout(context.Background())
		require.True(t, errors.Is(err, tt.want), "status %d: got %v", tt.status, err)
		srv.Close()
	}
}
