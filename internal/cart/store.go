package cart

import (
	"context"
	"errors"
	"sync"

	"shopease_front_end/internal/backend"
	"shopease_front_end/internal/events"
	"shopease_front_end/internal/models"
)

var (
	// ErrLoginRequired : mutation demandée sans identité. Le handler la
	// traduit en redirection vers la page de connexion, l'appel réseau
	// n'a jamais lieu.
	ErrLoginRequired = errors.New("connexion requise")

	// ErrQuantityTooLow : quantité < 1 refusée côté storefront, jamais
	// envoyée au backend.
	ErrQuantityTooLow = errors.New("la quantité minimale est 1")
)

// Auth identifie l'utilisateur pour lequel on mutate le panier.
type Auth struct {
	UserID int
	Bearer string
}

// Store maintient un miroir local du panier, cohérent avec le backend
// après chaque mutation : mutation puis re-fetch complet inconditionnel,
// pas de mutation optimiste, pas de fusion. Les paires mutation/re-fetch
// d'un même utilisateur sont sérialisées par un verrou dédié pour que
// deux mutations concurrentes ne puissent pas entrelacer leurs re-fetch.
type Store struct {
	api *backend.Client
	bus *events.Bus

	mu     sync.RWMutex
	mirror map[int][]models.CartItem
	locks  sync.Map // userID -> *sync.Mutex
}

func NewStore(api *backend.Client, bus *events.Bus) *Store {
	return &Store{
		api:    api,
		bus:    bus,
		mirror: make(map[int][]models.CartItem),
	}
}

func (s *Store) userLock(userID int) *sync.Mutex {
	l, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return l.(*sync.Mutex)
}

// Items renvoie le miroir courant, en le peuplant depuis le backend au
// premier accès.
func (s *Store) Items(ctx context.Context, auth *Auth) ([]models.CartItem, error) {
	if auth == nil {
		return nil, ErrLoginRequired
	}

	s.mu.RLock()
	items, ok := s.mirror[auth.UserID]
	s.mu.RUnlock()
	if ok {
		return items, nil
	}
	return s.Refresh(ctx, auth)
}

// Refresh re-fetch le panier et remplace le miroir.
func (s *Store) Refresh(ctx context.Context, auth *Auth) ([]models.CartItem, error) {
	if auth == nil {
		return nil, ErrLoginRequired
	}
	items, err := s.api.ListCart(ctx, auth.Bearer)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CartItem{}
	}
	s.mu.Lock()
	s.mirror[auth.UserID] = items
	s.mu.Unlock()
	return items, nil
}

// Add ajoute quantity unités (1 si zéro). L'erreur renvoyée conserve la
// distinction validation/transport du client backend.
func (s *Store) Add(ctx context.Context, auth *Auth, productID, quantity int) error {
	if auth == nil {
		return ErrLoginRequired
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return ErrQuantityTooLow
	}
	return s.mutate(ctx, auth, func() error {
		return s.api.AddToCart(ctx, auth.Bearer, productID, quantity)
	})
}

func (s *Store) UpdateQuantity(ctx context.Context, auth *Auth, itemID, quantity int) error {
	if auth == nil {
		return ErrLoginRequired
	}
	if quantity < 1 {
		return ErrQuantityTooLow
	}
	return s.mutate(ctx, auth, func() error {
		return s.api.UpdateCartItem(ctx, auth.Bearer, itemID, quantity)
	})
}

func (s *Store) Remove(ctx context.Context, auth *Auth, itemID int) error {
	if auth == nil {
		return ErrLoginRequired
	}
	return s.mutate(ctx, auth, func() error {
		return s.api.RemoveCartItem(ctx, auth.Bearer, itemID)
	})
}

func (s *Store) Clear(ctx context.Context, auth *Auth) error {
	if auth == nil {
		return ErrLoginRequired
	}
	return s.mutate(ctx, auth, func() error {
		return s.api.ClearCart(ctx, auth.Bearer)
	})
}

// Forget jette le miroir local (déconnexion). Aucun appel réseau.
func (s *Store) Forget(userID int) {
	s.mu.Lock()
	delete(s.mirror, userID)
	s.mu.Unlock()
}

// mutate sérialise mutation + re-fetch sous le verrou de l'utilisateur.
// Après résolution, le miroir reflète exactement ce que le backend
// rapporte à cet instant.
func (s *Store) mutate(ctx context.Context, auth *Auth, op func() error) error {
	lock := s.userLock(auth.UserID)
	lock.Lock()
	defer lock.Unlock()

	if err := op(); err != nil {
		return err
	}

	items, err := s.Refresh(ctx, auth)
	if err != nil {
		return err
	}

	s.bus.Publish(events.CartChanged{User: auth.UserID, Count: len(items)})
	return nil
}
