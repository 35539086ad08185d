package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shopease_front_end/internal/backend"
	"shopease_front_end/internal/cart"
	"shopease_front_end/internal/config"
	"shopease_front_end/internal/events"
	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/orders"
	"shopease_front_end/internal/routes"
	"shopease_front_end/internal/session"
	"shopease_front_end/internal/wishlist"
)

func main() {
	cfg := config.Load()

	api := backend.NewClient(cfg.BackendURL, cfg.RequestTimeout)
	log.Println("✅ Client backend initialisé sur", cfg.BackendURL)

	// Sessions en redis si configuré, sinon cookie chiffré
	var repo session.Repository
	var redisClient *redis.Client
	if cfg.RedisHost != "" {
		redisRepo, err := session.NewRedisRepository(cfg.RedisHost, cfg.RedisPassword)
		if err != nil {
			log.Fatal("❌ Impossible d'initialiser Redis : ", err)
		}
		repo = redisRepo
		redisClient = redisRepo.Client()
		log.Println("✅ Sessions Redis activées")
	} else {
		repo = session.NewCookieRepository(cfg.SessionSecret)
		log.Println("✅ Sessions cookie activées (pas de Redis configuré)")
	}

	bus := events.NewBus()

	h := &handlers.Handler{
		Cfg:      cfg,
		API:      api,
		Sessions: session.NewStore(repo, api),
		Cart:     cart.NewStore(api, bus),
		Wishlist: wishlist.NewStore(api, bus),
		Orders:   orders.NewService(api),
		Bus:      bus,
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, h, redisClient)

	log.Println("🚀 Storefront ShopEase lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Serveur arrêté : ", err)
	}
}
