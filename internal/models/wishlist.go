package models

type WishlistEntry struct {
	ID        int     `json:"id"`
	Product   Product `json:"product"`
	CreatedAt string  `json:"created_at,omitempty"`
}
