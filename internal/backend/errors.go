package backend

import (
	"errors"
	"fmt"
)

// Taxonomie des échecs côté backend. Chaque composant attrape ses propres
// erreurs et les convertit localement, rien ne remonte à un handler global.
var (
	// ErrUnauthorized : le backend a répondu 401. À distinguer d'une panne
	// réseau pour permettre le refresh du token plutôt qu'un fallback muet.
	ErrUnauthorized = errors.New("non autorisé par le backend")

	// ErrNotFound : ressource absente, à rendre comme vue vide et non
	// comme bannière d'erreur.
	ErrNotFound = errors.New("ressource introuvable")
)

// TransportError : le backend n'a pas pu être joint (réseau, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend injoignable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError : réponse 400 avec les messages de champs du backend
// (stock insuffisant, champ dupliqué à l'inscription, etc.).
type ValidationError struct {
	Fields map[string][]string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "données rejetées par le backend"
}

// StatusError : tout autre statut non-2xx.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: statut %d: %s", e.StatusCode, e.Body)
}

// IsTransport indique une panne de transport, par opposition à un refus
// applicatif du backend.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
