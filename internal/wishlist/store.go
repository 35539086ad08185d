package wishlist

import (
	"context"
	"errors"

	"shopease_front_end/internal/backend"
	"shopease_front_end/internal/events"
	"shopease_front_end/internal/models"
)

// ErrLoginRequired : la wishlist n'existe que pour un utilisateur connecté.
var ErrLoginRequired = errors.New("connexion requise")

// Auth identifie l'utilisateur propriétaire de la wishlist.
type Auth struct {
	UserID int
	Bearer string
}

// Store gère l'appartenance par produit à la liste d'envies. Pas d'état
// partagé entre zones d'interface : chaque mutation réussie publie un
// événement typé et chaque zone relance sa propre requête.
type Store struct {
	api *backend.Client
	bus *events.Bus
}

func NewStore(api *backend.Client, bus *events.Bus) *Store {
	return &Store{api: api, bus: bus}
}

func (s *Store) Items(ctx context.Context, auth *Auth) ([]models.WishlistEntry, error) {
	if auth == nil {
		return nil, ErrLoginRequired
	}
	entries, err := s.api.ListWishlist(ctx, auth.Bearer)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.WishlistEntry{}
	}
	return entries, nil
}

func (s *Store) Add(ctx context.Context, auth *Auth, productID int) error {
	if auth == nil {
		return ErrLoginRequired
	}
	if err := s.api.AddToWishlist(ctx, auth.Bearer, productID); err != nil {
		return err
	}
	s.publish(ctx, auth, productID, "added")
	return nil
}

func (s *Store) Remove(ctx context.Context, auth *Auth, productID int) error {
	if auth == nil {
		return ErrLoginRequired
	}
	if err := s.api.RemoveFromWishlist(ctx, auth.Bearer, productID); err != nil {
		return err
	}
	s.publish(ctx, auth, productID, "removed")
	return nil
}

// IsMember récupère la liste complète et la parcourt. O(n) par test,
// acceptable : n est petit et l'appel rare.
func (s *Store) IsMember(ctx context.Context, auth *Auth, productID int) (bool, error) {
	entries, err := s.Items(ctx, auth)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.Product.ID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) Count(ctx context.Context, auth *Auth) (int, error) {
	if auth == nil {
		return 0, ErrLoginRequired
	}
	return s.api.WishlistCount(ctx, auth.Bearer)
}

func (s *Store) publish(ctx context.Context, auth *Auth, productID int, action string) {
	// compteur best-effort : l'événement part même si le count échoue
	count, _ := s.api.WishlistCount(ctx, auth.Bearer)
	s.bus.Publish(events.WishlistChanged{
		User:      auth.UserID,
		ProductID: productID,
		Action:    action,
		Count:     count,
	})
}
