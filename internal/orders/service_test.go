package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopease_front_end/internal/backend"
	"shopease_front_end/internal/models"
)

// fakeOrders simule les endpoints commandes du backend.
type fakeOrders struct {
	orders      map[int]*models.Order
	cancelCalls int
}

func (f *fakeOrders) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/orders/")

		if path == "" && r.Method == http.MethodPost {
			var in backend.OrderCreate
			json.NewDecoder(r.Body).Decode(&in)
			order := &models.Order{
				ID:              100,
				Status:          models.OrderPlaced,
				ShippingAddress: in.ShippingAddress,
				Phone:           in.Phone,
			}
			f.orders[order.ID] = order
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(order)
			return
		}

		if strings.HasSuffix(path, "cancel/") && r.Method == http.MethodPost {
			f.cancelCalls++
			id := atoiOr(strings.TrimSuffix(path, "/cancel/"), 0)
			order, ok := f.orders[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if order.Status != models.OrderPlaced {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"detail": "Order cannot be cancelled"})
				return
			}
			order.Status = models.OrderCancelled
			json.NewEncoder(w).Encode(map[string]string{"detail": "Order cancelled successfully"})
			return
		}

		id := atoiOr(strings.TrimSuffix(path, "/"), 0)
		order, ok := f.orders[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Order not found"})
			return
		}
		json.NewEncoder(w).Encode(order)
	})
	return mux
}

func atoiOr(s string, fallback int) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return fallback
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func newOrderService(t *testing.T, fake *fakeOrders) (*Service, *Auth) {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return NewService(backend.NewClient(srv.URL, 2*time.Second)), &Auth{UserID: 1, Bearer: "token"}
}

func TestCheckoutValidation(t *testing.T) {
	svc, auth := newOrderService(t, &fakeOrders{orders: map[int]*models.Order{}})
	items := []models.CartItem{{ID: 1, Product: models.Product{ID: 7, Price: 500}, Quantity: 2}}

	cases := []struct {
		name  string
		form  CheckoutForm
		field string
	}{
		{"adresse vide", CheckoutForm{ShippingAddress: "  ", Phone: "9876543210"}, "shipping_address"},
		{"téléphone court", CheckoutForm{ShippingAddress: "12 rue X", Phone: "12345"}, "phone"},
		{"téléphone non numérique", CheckoutForm{ShippingAddress: "12 rue X", Phone: "98765abc10"}, "phone"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Checkout(context.Background(), auth, tc.form, items)
			var formErr *FormError
			if !errors.As(err, &formErr) {
				t.Fatalf("attendu FormError, obtenu %v", err)
			}
			if formErr.Field != tc.field {
				t.Errorf("champ %q, attendu %q", formErr.Field, tc.field)
			}
		})
	}

	if _, err := svc.Checkout(context.Background(), auth,
		CheckoutForm{ShippingAddress: "12 rue X", Phone: "9876543210"}, nil); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("panier vide : attendu ErrEmptyCart, obtenu %v", err)
	}
}

func TestCheckoutCreatesOrder(t *testing.T) {
	svc, auth := newOrderService(t, &fakeOrders{orders: map[int]*models.Order{}})
	items := []models.CartItem{{ID: 1, Product: models.Product{ID: 7, Price: 500}, Quantity: 2}}

	order, err := svc.Checkout(context.Background(), auth,
		CheckoutForm{ShippingAddress: " 12 rue X ", Phone: " 9876543210 "}, items)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.Status != models.OrderPlaced {
		t.Errorf("statut %q, attendu PLACED", order.Status)
	}
	if order.Phone != "9876543210" {
		t.Errorf("téléphone non nettoyé: %q", order.Phone)
	}
}

// Une commande livrée ne part jamais en demande d'annulation : refus
// local, statut affiché inchangé.
func TestCancelDeliveredRejectedLocally(t *testing.T) {
	fake := &fakeOrders{orders: map[int]*models.Order{
		5: {ID: 5, Status: models.OrderDelivered},
	}}
	svc, auth := newOrderService(t, fake)

	order, err := svc.Cancel(context.Background(), auth, 5)
	if !errors.Is(err, ErrNotCancellable) {
		t.Fatalf("attendu ErrNotCancellable, obtenu %v", err)
	}
	if fake.cancelCalls != 0 {
		t.Errorf("l'annulation est partie au backend (%d appels)", fake.cancelCalls)
	}
	if order.Status != models.OrderDelivered {
		t.Errorf("statut modifié: %q", order.Status)
	}
}

func TestCancelPlaced(t *testing.T) {
	fake := &fakeOrders{orders: map[int]*models.Order{
		5: {ID: 5, Status: models.OrderPlaced},
	}}
	svc, auth := newOrderService(t, fake)

	order, err := svc.Cancel(context.Background(), auth, 5)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if order.Status != models.OrderCancelled {
		t.Errorf("statut %q, attendu CANCELLED", order.Status)
	}
}

// PROCESSING est annulable côté storefront mais le backend n'accepte que
// PLACED : le refus backend revient en ValidationError et le statut
// affiché reste celui relu.
func TestCancelProcessingBackendRefuses(t *testing.T) {
	fake := &fakeOrders{orders: map[int]*models.Order{
		6: {ID: 6, Status: models.OrderProcessing},
	}}
	svc, auth := newOrderService(t, fake)

	order, err := svc.Cancel(context.Background(), auth, 6)
	if !backend.IsValidation(err) {
		t.Fatalf("attendu ValidationError, obtenu %v", err)
	}
	if fake.cancelCalls != 1 {
		t.Errorf("la demande devait partir au backend (%d appels)", fake.cancelCalls)
	}
	if order.Status != models.OrderProcessing {
		t.Errorf("statut modifié: %q", order.Status)
	}
}

func TestGetMissingOrder(t *testing.T) {
	svc, auth := newOrderService(t, &fakeOrders{orders: map[int]*models.Order{}})
	_, err := svc.Get(context.Background(), auth, 42)
	if !errors.Is(err, backend.ErrNotFound) {
		t.Errorf("attendu ErrNotFound, obtenu %v", err)
	}
}

func TestOrderQR(t *testing.T) {
	qr, err := OrderQR(TrackingURL("http://localhost:3000", 42))
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	if !strings.HasPrefix(qr, "data:image/png;base64,") {
		t.Errorf("data-URI attendu, obtenu %.40q", qr)
	}
}
