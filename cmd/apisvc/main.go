package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	config "github.com/avvvet/arena-services/configs"
	"github.com/avvvet/arena-services/internal/apisvc/broker"
	"github.com/avvvet/arena-services/internal/apisvc/db"
	handlers "github.com/avvvet/arena-services/internal/apisvc/handlers"
	"github.com/avvvet/arena-services/internal/apisvc/service"
	"github.com/avvvet/arena-services/internal/apisvc/store"
	nats "github.com/avvvet/arena-services/internal/nats"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "api"

var instanceId string

func init() {
	instanceId = "001"
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {

	// pg connection
	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	// Connect to NATS
	n, err := nats.Connect()
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}
	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	b := broker.NewBroker(n.Conn)

	userStore := store.NewUserStore(dbpool)
	userService := service.NewUserService(userStore)

	walletStore := store.NewWalletStore(dbpool)
	walletService := service.NewWalletService(walletStore, b)

	tournamentStore := store.NewTournamentStore(dbpool)
	tournamentService := service.NewTournamentService(tournamentStore)

	transactionStore := store.NewTransactionStore(dbpool)
	transactionService := service.NewTransactionService(transactionStore)

	sessionStore := store.NewSessionStore(dbpool)
	sessionService := service.NewSessionService(sessionStore)

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	rateLimitStr := os.Getenv("RATE_LIMIT")
	rateLimit, err := strconv.Atoi(rateLimitStr)
	if err != nil {
		log.Fatalf("Invalid RATE_LIMIT value: %v", err)
	}
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(userService, walletService, tournamentService, transactionService, sessionService)
	h.InitAuth()
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + os.Getenv("API_SERVICE_PORT"),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
