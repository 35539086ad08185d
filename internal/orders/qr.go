package orders

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// OrderQR génère le QR de suivi de commande en base64, prêt à mettre
// dans <img src="...">.
func OrderQR(orderURL string) (string, error) {
	png, err := qrcode.Encode(orderURL, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// TrackingURL construit l'URL de la page de détail d'une commande sur le
// site public.
func TrackingURL(origin string, orderID int) string {
	return fmt.Sprintf("%s/orders/%d", origin, orderID)
}
