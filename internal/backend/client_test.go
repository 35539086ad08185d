package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, func()) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 2*time.Second), srv.Close
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 devient ErrUnauthorized",
			status: http.StatusUnauthorized,
			body:   `{"detail": "token expiré"}`,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrUnauthorized) {
					t.Errorf("attendu ErrUnauthorized, reçu %v", err)
				}
			},
		},
		{
			name:   "403 devient ErrUnauthorized",
			status: http.StatusForbidden,
			body:   `{"detail": "interdit"}`,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrUnauthorized) {
					t.Errorf("attendu ErrUnauthorized, reçu %v", err)
				}
			},
		},
		{
			name:   "404 devient ErrNotFound",
			status: http.StatusNotFound,
			body:   `{"detail": "Not found."}`,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("attendu ErrNotFound, reçu %v", err)
				}
			},
		},
		{
			name:   "400 avec detail",
			status: http.StatusBadRequest,
			body:   `{"detail": "Not enough stock"}`,
			check: func(t *testing.T, err error) {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("attendu ValidationError, reçu %v", err)
				}
				if ve.Detail != "Not enough stock" {
					t.Errorf("detail %q", ve.Detail)
				}
			},
		},
		{
			name:   "400 avec messages de champs",
			status: http.StatusBadRequest,
			body:   `{"username": ["Ce nom est déjà pris."], "phone": ["10 chiffres requis."]}`,
			check: func(t *testing.T, err error) {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("attendu ValidationError, reçu %v", err)
				}
				if len(ve.Fields["username"]) != 1 || len(ve.Fields["phone"]) != 1 {
					t.Errorf("champs %+v", ve.Fields)
				}
			},
		},
		{
			name:   "500 devient StatusError",
			status: http.StatusInternalServerError,
			body:   "boom",
			check: func(t *testing.T, err error) {
				var se *StatusError
				if !errors.As(err, &se) {
					t.Fatalf("attendu StatusError, reçu %v", err)
				}
				if se.StatusCode != http.StatusInternalServerError || se.Body != "boom" {
					t.Errorf("statut %d corps %q", se.StatusCode, se.Body)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})
			defer done()

			_, err := client.ListCart(context.Background(), "token")
			if err == nil {
				t.Fatal("erreur attendue")
			}
			tc.check(t, err)
		})
	}
}

// Backend injoignable : TransportError, jamais confondu avec un 401.
func TestTransportFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond)

	_, err := client.ListCart(context.Background(), "token")
	if !IsTransport(err) {
		t.Errorf("attendu TransportError, reçu %v", err)
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Error("une panne réseau ne doit pas passer pour un 401")
	}
}

func TestBearerAndAnonymousRequests(t *testing.T) {
	var gotAuth string
	client, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	})
	defer done()

	if _, err := client.ListProducts(context.Background(), ProductQuery{}); err != nil {
		t.Fatalf("listProducts: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("requête anonyme avec header Authorization %q", gotAuth)
	}

	if _, err := client.ListCart(context.Background(), "jeton"); err != nil {
		t.Fatalf("listCart: %v", err)
	}
	if gotAuth != "Bearer jeton" {
		t.Errorf("header Authorization %q", gotAuth)
	}
}
