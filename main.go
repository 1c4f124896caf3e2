package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learning-portal-api/activity"
	"learning-portal-api/auth"
	"learning-portal-api/content"
	"learning-portal-api/handlers"
	"learning-portal-api/store"
	"learning-portal-api/utils"

	"github.com/joho/godotenv"
)

func main() {
	// Set up logging with timestamps
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err == nil {
		utils.LogStartup("Loaded environment from .env")
	}

	utils.LogStartup("Learning Portal API starting...")

	port := utils.GetEnvOrDefault("PORT", "8080")
	backend := utils.GetEnvOrDefault("STORAGE_BACKEND", store.BackendJSON)
	dataDir := utils.GetEnvOrDefault("DATA_DIR", ".")
	dbPath := utils.GetEnvOrDefault("DB_PATH", "./portal.db")
	hashPolicy := utils.GetEnvOrDefault("PASSWORD_HASH", utils.HashPolicySHA256)
	utils.LogStartup("Config: port=%s backend=%s hash=%s", port, backend, hashPolicy)

	catalog, err := content.LoadCatalog(os.Getenv("CATALOG_PATH"))
	if err != nil {
		log.Fatalf("[FATAL] Failed to load course catalog: %v", err)
	}

	bank, err := content.LoadBank(os.Getenv("QUESTIONS_PATH"))
	if err != nil {
		log.Fatalf("[FATAL] Failed to load question bank: %v", err)
	}

	stores, err := store.Open(backend, dataDir, dbPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize storage: %v", err)
	}

	sessionStore := auth.NewSessionStore()
	controller := activity.NewController(stores.Progress)

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		utils.LogShutdown("Received shutdown signal, closing stores...")
		if err := stores.Close(); err != nil {
			utils.LogError("Error closing stores: %v", err)
		} else {
			utils.LogShutdown("Stores closed successfully")
		}
		os.Exit(0)
	}()

	utils.LogStartup("Setting up API routes...")
	router := handlers.NewRouter(stores, sessionStore, controller, catalog, bank, hashPolicy)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	utils.LogStartup("Server ready to accept connections at http://localhost:%s", port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[FATAL] Server failed to start: %v", err)
	}
}
