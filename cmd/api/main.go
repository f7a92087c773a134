package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/marcafacil/booking-api/internal/config"
	dbpkg "github.com/marcafacil/booking-api/internal/db"
	"github.com/marcafacil/booking-api/internal/email"
	"github.com/marcafacil/booking-api/internal/middleware"
	"github.com/marcafacil/booking-api/internal/payments"
	"github.com/marcafacil/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// Redis é opcional; sem ele o rate limit das rotas públicas fica aberto
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	var sender email.Sender = email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom)
	if cfg.SMTPHost == "" {
		sender = email.NewNoopSender()
	}

	var provider payments.Provider = payments.NewStubProvider()
	if cfg.PaymentProvider == "mercadopago" {
		mp, err := payments.NewMercadoPagoProvider(cfg.MPAccessToken)
		if err != nil {
			log.Fatalf("failed to configure mercado pago: %v", err)
		}
		provider = mp
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, rdb, sender, provider)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
