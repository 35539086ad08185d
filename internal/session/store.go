package session

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shopease_front_end/internal/backend"
	"shopease_front_end/internal/models"
)

// Store maintient l'identité authentifiée courante et la paire de tokens
// nécessaire pour autoriser les requêtes vers le backend.
type Store struct {
	repo Repository
	api  *backend.Client
}

func NewStore(repo Repository, api *backend.Client) *Store {
	return &Store{repo: repo, api: api}
}

// Login persiste la paire puis récupère l'identité. Si la récupération
// échoue, on retombe sur "anonyme" sans erreur : les identifiants restent
// persistés et la prochaine requête retentera.
func (st *Store) Login(ctx context.Context, sid string, pair backend.TokenPair) (*models.User, error) {
	sess, err := st.repo.Get(ctx, sid)
	if err != nil && !errors.Is(err, ErrNoSession) {
		return nil, err
	}
	sess.Access = pair.Access
	sess.Refresh = pair.Refresh
	if err := st.repo.Put(ctx, sid, sess); err != nil {
		return nil, err
	}

	user, err := st.api.Me(ctx, pair.Access)
	if err != nil {
		log.Printf("⚠️  Identité non récupérée après login: %v", err)
		return nil, nil
	}
	return user, nil
}

// Current renvoie l'identité en cours, ou nil si non authentifié.
// Sur un 401 (ou un access token déjà expiré localement), on tente un
// refresh unique ; s'il échoue, les identifiants sont purgés et on
// retombe sur anonyme plutôt que de propager l'erreur.
func (st *Store) Current(ctx context.Context, sid string) *models.User {
	sess, err := st.repo.Get(ctx, sid)
	if err != nil || !sess.Authenticated() {
		return nil
	}

	if !tokenExpired(sess.Access) {
		user, err := st.api.Me(ctx, sess.Access)
		if err == nil {
			return user
		}
		if !errors.Is(err, backend.ErrUnauthorized) {
			// panne de transport : on ne jette pas les identifiants
			log.Printf("⚠️  Échec récupération identité: %v", err)
			return nil
		}
	}

	return st.refreshAndRetry(ctx, sid, sess)
}

func (st *Store) refreshAndRetry(ctx context.Context, sid string, sess Session) *models.User {
	if sess.Refresh == "" {
		st.clearCredentials(ctx, sid, sess)
		return nil
	}

	access, err := st.api.RefreshToken(ctx, sess.Refresh)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) || backend.IsValidation(err) {
			log.Println("🔒 Refresh token expiré, identifiants purgés")
			st.clearCredentials(ctx, sid, sess)
		}
		return nil
	}

	sess.Access = access
	if err := st.repo.Put(ctx, sid, sess); err != nil {
		log.Printf("⚠️  Persistance du token rafraîchi impossible: %v", err)
	}

	user, err := st.api.Me(ctx, access)
	if err != nil {
		return nil
	}
	return user
}

// clearCredentials ne touche pas à la langue : la préférence survit à la
// déconnexion.
func (st *Store) clearCredentials(ctx context.Context, sid string, sess Session) {
	sess.Access = ""
	sess.Refresh = ""
	if err := st.repo.Put(ctx, sid, sess); err != nil {
		log.Printf("⚠️  Purge des identifiants impossible: %v", err)
	}
}

// Logout efface identifiants et identité de façon synchrone, sans appel
// réseau. Idempotent.
func (st *Store) Logout(ctx context.Context, sid string) error {
	sess, err := st.repo.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return nil
		}
		return err
	}
	if sess.Lang == "" {
		return st.repo.Clear(ctx, sid)
	}
	st.clearCredentials(ctx, sid, sess)
	return nil
}

// Session expose l'état persisté brut (pour le bearer et la langue).
func (st *Store) Session(ctx context.Context, sid string) Session {
	sess, err := st.repo.Get(ctx, sid)
	if err != nil {
		return Session{}
	}
	return sess
}

// SetLang met à jour la préférence de langue sans toucher aux tokens.
func (st *Store) SetLang(ctx context.Context, sid, lang string) error {
	sess, err := st.repo.Get(ctx, sid)
	if err != nil && !errors.Is(err, ErrNoSession) {
		return err
	}
	sess.Lang = lang
	return st.repo.Put(ctx, sid, sess)
}

// tokenExpired lit la claim exp sans vérifier la signature : le storefront
// ne détient pas le secret du backend, il veut juste éviter un aller-retour
// condamné d'avance.
func tokenExpired(access string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(access, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}
