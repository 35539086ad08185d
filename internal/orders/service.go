package orders

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"shopease_front_end/internal/backend"
	"shopease_front_end/internal/models"
)

var (
	ErrLoginRequired = errors.New("connexion requise")

	// ErrNotCancellable : l'annulation n'est demandable que depuis PLACED
	// ou PROCESSING. Le backend reste seul décideur de la transition ; ce
	// garde-fou évite juste un aller-retour voué au refus.
	ErrNotCancellable = errors.New("cette commande ne peut plus être annulée")

	ErrEmptyCart = errors.New("le panier est vide")
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// CheckoutForm est le formulaire de commande tel que saisi.
type CheckoutForm struct {
	ShippingAddress string `json:"shipping_address"`
	Phone           string `json:"phone"`
}

// FormError porte une erreur de validation locale, par champ, pour un
// affichage ciblé.
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string { return e.Message }

// Auth identifie l'utilisateur propriétaire des commandes.
type Auth struct {
	UserID int
	Bearer string
}

// Service enchaîne validation locale puis appel backend pour le cycle de
// vie des commandes. Les transitions de statut restent server-authoritative.
type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

// Checkout valide le formulaire, construit les lignes d'écriture depuis
// le panier courant et crée la commande. Un stock insuffisant revient en
// backend.ValidationError, inchangé.
func (s *Service) Checkout(ctx context.Context, auth *Auth, form CheckoutForm, items []models.CartItem) (*models.Order, error) {
	if auth == nil {
		return nil, ErrLoginRequired
	}
	if strings.TrimSpace(form.ShippingAddress) == "" {
		return nil, &FormError{Field: "shipping_address", Message: "Adresse de livraison requise"}
	}
	phone := strings.TrimSpace(form.Phone)
	if !phonePattern.MatchString(phone) {
		return nil, &FormError{Field: "phone", Message: "Numéro de téléphone invalide (10 chiffres attendus)"}
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	writes := make([]models.OrderItemWrite, 0, len(items))
	for _, item := range items {
		writes = append(writes, models.OrderItemWrite{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	return s.api.CreateOrder(ctx, auth.Bearer, backend.OrderCreate{
		ShippingAddress: strings.TrimSpace(form.ShippingAddress),
		Phone:           phone,
		Items:           writes,
	})
}

func (s *Service) List(ctx context.Context, auth *Auth) ([]models.Order, error) {
	if auth == nil {
		return nil, ErrLoginRequired
	}
	orders, err := s.api.ListOrders(ctx, auth.Bearer)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (s *Service) Get(ctx context.Context, auth *Auth, id int) (*models.Order, error) {
	if auth == nil {
		return nil, ErrLoginRequired
	}
	return s.api.GetOrder(ctx, auth.Bearer, id)
}

// Cancel vérifie d'abord le statut courant : hors PLACED/PROCESSING, le
// refus est local et le statut affiché reste inchangé. Sinon la demande
// part au backend, puis la commande est relue.
func (s *Service) Cancel(ctx context.Context, auth *Auth, id int) (*models.Order, error) {
	if auth == nil {
		return nil, ErrLoginRequired
	}

	order, err := s.api.GetOrder(ctx, auth.Bearer, id)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderPlaced && order.Status != models.OrderProcessing {
		return order, ErrNotCancellable
	}

	if err := s.api.CancelOrder(ctx, auth.Bearer, id); err != nil {
		// refus backend : on renvoie la commande telle quelle
		return order, err
	}

	return s.api.GetOrder(ctx, auth.Bearer, id)
}

// Invoice fait transiter la facture PDF produite par le backend.
func (s *Service) Invoice(ctx context.Context, auth *Auth, id int) ([]byte, string, error) {
	if auth == nil {
		return nil, "", ErrLoginRequired
	}
	return s.api.OrderInvoice(ctx, auth.Bearer, id)
}
