package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client est le seul point de contact avec le collaborateur externe :
// l'API REST du backend ShopEase, en HTTPS avec un bearer token sur
// chaque requête authentifiée.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do exécute une requête JSON et décode la réponse dans out (si non nil).
// bearer vide = requête anonyme. Les statuts non-2xx sont traduits dans
// la taxonomie d'erreurs du package.
func (c *Client) do(ctx context.Context, method, path, bearer string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("décodage réponse %s %s: %w", method, path, err)
	}
	return nil
}

// raw exécute une requête et renvoie le corps brut, pour les téléchargements
// binaires (facture PDF).
func (c *Client) raw(ctx context.Context, path, bearer string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", err
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", decodeError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &TransportError{Err: err}
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return decodeValidation(raw)
	default:
		return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
}

// decodeValidation accepte les deux formes renvoyées par le backend :
// {"detail": "..."} ou {"champ": ["message", ...]}.
func decodeValidation(raw []byte) error {
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &detail); err == nil && detail.Detail != "" {
		return &ValidationError{Detail: detail.Detail}
	}

	var fields map[string][]string
	if err := json.Unmarshal(raw, &fields); err == nil && len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return &ValidationError{Detail: strings.TrimSpace(string(raw))}
}
