package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"shopease_front_end/internal/backend"
	"shopease_front_end/internal/events"
	"shopease_front_end/internal/models"
)

// fakeWishlist simule les endpoints wishlist du backend.
type fakeWishlist struct {
	mu      sync.Mutex
	entries []models.WishlistEntry
	nextID  int
}

func (f *fakeWishlist) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products/wishlist/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		path := strings.TrimPrefix(r.URL.Path, "/api/products/wishlist/")
		switch {
		case path == "" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(f.entries)

		case path == "add/" && r.Method == http.MethodPost:
			var in struct {
				ProductID int `json:"product_id"`
			}
			json.NewDecoder(r.Body).Decode(&in)
			for _, e := range f.entries {
				if e.Product.ID == in.ProductID {
					w.WriteHeader(http.StatusCreated)
					return
				}
			}
			f.nextID++
			f.entries = append(f.entries, models.WishlistEntry{
				ID:      f.nextID,
				Product: models.Product{ID: in.ProductID},
			})
			w.WriteHeader(http.StatusCreated)

		case strings.HasPrefix(path, "remove/") && r.Method == http.MethodDelete:
			id, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(path, "remove/"), "/"))
			kept := f.entries[:0]
			for _, e := range f.entries {
				if e.Product.ID != id {
					kept = append(kept, e)
				}
			}
			f.entries = kept
			json.NewEncoder(w).Encode(map[string]string{"message": "Removed from wishlist"})

		case path == "count/" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(map[string]int{"count": len(f.entries)})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	return mux
}

func newWishlistStore(t *testing.T) (*Store, *Auth, *events.Bus) {
	t.Helper()
	srv := httptest.NewServer((&fakeWishlist{}).handler())
	t.Cleanup(srv.Close)
	bus := events.NewBus()
	return NewStore(backend.NewClient(srv.URL, 2*time.Second), bus), &Auth{UserID: 1, Bearer: "token"}, bus
}

// Ajout du produit 42 : membre. Retrait : plus membre.
func TestMembershipRoundTrip(t *testing.T) {
	store, auth, _ := newWishlistStore(t)
	ctx := context.Background()

	if member, _ := store.IsMember(ctx, auth, 42); member {
		t.Fatal("42 membre avant ajout")
	}

	if err := store.Add(ctx, auth, 42); err != nil {
		t.Fatalf("add: %v", err)
	}
	if member, err := store.IsMember(ctx, auth, 42); err != nil || !member {
		t.Fatalf("42 devrait être membre (err=%v)", err)
	}
	if count, _ := store.Count(ctx, auth); count != 1 {
		t.Errorf("count %d, attendu 1", count)
	}

	if err := store.Remove(ctx, auth, 42); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if member, _ := store.IsMember(ctx, auth, 42); member {
		t.Error("42 encore membre après retrait")
	}
	if count, _ := store.Count(ctx, auth); count != 0 {
		t.Errorf("count %d, attendu 0", count)
	}
}

func TestAnonymousRejected(t *testing.T) {
	store, _, _ := newWishlistStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, nil, 42); !errors.Is(err, ErrLoginRequired) {
		t.Errorf("add anonyme: %v", err)
	}
	if _, err := store.IsMember(ctx, nil, 42); !errors.Is(err, ErrLoginRequired) {
		t.Errorf("isMember anonyme: %v", err)
	}
}

// Chaque mutation réussie diffuse une notification typée pour que les
// zones indépendantes de l'interface relancent leurs requêtes.
func TestMutationsPublishEvents(t *testing.T) {
	store, auth, bus := newWishlistStore(t)
	ctx := context.Background()

	ch, cancel := bus.Subscribe(auth.UserID)
	defer cancel()

	if err := store.Add(ctx, auth, 42); err != nil {
		t.Fatalf("add: %v", err)
	}

	expect := func(action string, count int) {
		t.Helper()
		select {
		case e := <-ch:
			evt, ok := e.(events.WishlistChanged)
			if !ok {
				t.Fatalf("événement inattendu %T", e)
			}
			if evt.ProductID != 42 || evt.Action != action || evt.Count != count {
				t.Errorf("événement %+v, attendu action=%s count=%d", evt, action, count)
			}
		case <-time.After(time.Second):
			t.Fatalf("aucun événement %s reçu", action)
		}
	}
	expect("added", 1)

	if err := store.Remove(ctx, auth, 42); err != nil {
		t.Fatalf("remove: %v", err)
	}
	expect("removed", 0)
}
