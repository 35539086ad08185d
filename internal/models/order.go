package models

// Statuts de commande, pilotés exclusivement par le backend.
const (
	OrderPlaced     = "PLACED"
	OrderProcessing = "PROCESSING"
	OrderShipped    = "SHIPPED"
	OrderDelivered  = "DELIVERED"
	OrderCancelled  = "CANCELLED"
)

type Order struct {
	ID              int         `json:"id"`
	User            int         `json:"user"`
	CreatedAt       string      `json:"created_at"`
	IsCompleted     bool        `json:"is_completed"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	ShippingAddress string      `json:"shipping_address"`
	Phone           string      `json:"phone"`
	Status          string      `json:"status"`
}

// OrderItem porte le prix au moment de l'achat (copié, pas joint),
// pour garder l'historique exact même si le produit change de prix.
type OrderItem struct {
	ID       int     `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderItemWrite est la forme d'écriture attendue par POST /api/orders/.
type OrderItemWrite struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}
