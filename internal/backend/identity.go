package backend

import (
	"context"
	"net/http"

	"shopease_front_end/internal/models"
)

// TokenPair est la paire access/refresh émise par le backend à la connexion.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ObtainToken échange des identifiants contre une paire de tokens.
func (c *Client) ObtainToken(ctx context.Context, creds Credentials) (TokenPair, error) {
	var pair TokenPair
	err := c.do(ctx, http.MethodPost, "/api/token/", "", creds, &pair)
	return pair, err
}

// RefreshToken échange un refresh token contre un nouvel access token.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (string, error) {
	in := map[string]string{"refresh": refresh}
	var out struct {
		Access string `json:"access"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/token/refresh/", "", in, &out); err != nil {
		return "", err
	}
	return out.Access, nil
}

// Me renvoie l'identité associée au token d'accès.
func (c *Client) Me(ctx context.Context, bearer string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/me/", bearer, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate porte les champs modifiables du profil, tels que saisis.
type ProfileUpdate struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// UpdateProfile pousse les champs de profil au backend et renvoie
// l'identité mise à jour.
func (c *Client) UpdateProfile(ctx context.Context, bearer string, in ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/api/users/profile/", bearer, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register crée un compte. Les doublons de champs reviennent en ValidationError.
func (c *Client) Register(ctx context.Context, reg Registration) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/users/register/", "", reg, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
