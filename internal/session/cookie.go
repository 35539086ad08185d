package session

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "shopease_session"

	keyAccess  = "access_token"
	keyRefresh = "refresh_token"
	keyLang    = "lang"
)

// CookieRepository persiste la session dans un cookie chiffré. C'est le
// support par défaut quand aucun redis n'est configuré : rien à déployer,
// et la paire de tokens survit aux rechargements du navigateur.
type CookieRepository struct {
	store *sessions.CookieStore
}

func NewCookieRepository(secret string) *CookieRepository {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieRepository{store: store}
}

// Le cookie vit dans la requête HTTP : le middleware dépose le couple
// writer/request dans le contexte, le repository le récupère ici.
type httpCarrierKey struct{}

type httpCarrier struct {
	w http.ResponseWriter
	r *http.Request
}

// WithHTTP attache la requête courante au contexte pour le repository cookie.
func WithHTTP(ctx context.Context, w http.ResponseWriter, r *http.Request) context.Context {
	return context.WithValue(ctx, httpCarrierKey{}, &httpCarrier{w: w, r: r})
}

func carrierFrom(ctx context.Context) *httpCarrier {
	c, _ := ctx.Value(httpCarrierKey{}).(*httpCarrier)
	return c
}

func (cr *CookieRepository) Get(ctx context.Context, sid string) (Session, error) {
	hc := carrierFrom(ctx)
	if hc == nil {
		return Session{}, ErrNoSession
	}
	// erreur de décodage = cookie corrompu ou secret changé : session vierge
	sess, _ := cr.store.Get(hc.r, cookieName)
	if sess.IsNew {
		return Session{}, ErrNoSession
	}
	return Session{
		Access:  str(sess.Values[keyAccess]),
		Refresh: str(sess.Values[keyRefresh]),
		Lang:    str(sess.Values[keyLang]),
	}, nil
}

func (cr *CookieRepository) Put(ctx context.Context, sid string, s Session) error {
	hc := carrierFrom(ctx)
	if hc == nil {
		return ErrNoSession
	}
	sess, _ := cr.store.Get(hc.r, cookieName)
	sess.Values[keyAccess] = s.Access
	sess.Values[keyRefresh] = s.Refresh
	sess.Values[keyLang] = s.Lang
	return sess.Save(hc.r, hc.w)
}

func (cr *CookieRepository) Clear(ctx context.Context, sid string) error {
	hc := carrierFrom(ctx)
	if hc == nil {
		return nil
	}
	sess, _ := cr.store.Get(hc.r, cookieName)
	sess.Options.MaxAge = -1
	sess.Values = map[interface{}]interface{}{}
	return sess.Save(hc.r, hc.w)
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}
