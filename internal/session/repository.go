package session

import (
	"context"
	"errors"
)

// Session est le seul état durable côté storefront : la paire de tokens
// et la langue préférée. Tout le reste se re-dérive du backend.
type Session struct {
	Access  string
	Refresh string
	Lang    string
}

func (s Session) Authenticated() bool { return s.Access != "" }

// ErrNoSession : aucun état persisté pour ce navigateur.
var ErrNoSession = errors.New("aucune session persistée")

// Repository abstrait le support de persistance (cookie chiffré, redis)
// pour que le session store n'en dépende pas. Un seul écrivain attendu
// par sid, pas de verrouillage nécessaire.
type Repository interface {
	Get(ctx context.Context, sid string) (Session, error)
	Put(ctx context.Context, sid string, s Session) error
	Clear(ctx context.Context, sid string) error
}
