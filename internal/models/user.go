package models

// User est la copie en mémoire de l'identité renvoyée par le backend.
// Seul le session store la possède ; aucun autre composant ne la modifie.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}
