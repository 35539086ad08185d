package events

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// ServeWS pousse les événements de badge (panier, wishlist) vers le
// navigateur. La boucle s'arrête à la première erreur d'écriture.
func ServeWS(bus *Bus, userID int, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ch, cancel := bus.Subscribe(userID)
	defer cancel()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Notifications activées",
	})

	for {
		select {
		case e := <-ch:
			var payload map[string]interface{}
			switch evt := e.(type) {
			case CartChanged:
				payload = map[string]interface{}{
					"type":  "cart_updated",
					"count": evt.Count,
				}
			case WishlistChanged:
				payload = map[string]interface{}{
					"type":       "wishlist_updated",
					"product_id": evt.ProductID,
					"action":     evt.Action,
					"count":      evt.Count,
				}
			default:
				continue
			}
			if err := conn.WriteJSON(payload); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-r.Context().Done():
			return
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
