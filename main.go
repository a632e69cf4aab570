package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cansuyumceylan/FlowSync/config"
	"github.com/cansuyumceylan/FlowSync/middleware"
	"github.com/cansuyumceylan/FlowSync/routes"
	"github.com/cansuyumceylan/FlowSync/services"
	"github.com/cansuyumceylan/FlowSync/utils"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utils.InitJWT(conf.JWTSecret)

	if err := config.InitDB(conf); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	if err := config.InitRedis(conf); err != nil {
		log.Fatalf("failed to init redis: %v", err)
	}

	// The Gemini client is optional: without credentials the suggestion
	// endpoint serves its fixed fallback instead of failing.
	var gemini *services.GeminiClient
	if conf.GeminiAPIKey == "" {
		config.Logger.Warnw("GEMINI_API_KEY not set, mode suggestions will use the fallback")
	} else {
		gemini, err = services.NewGeminiClient(conf.GeminiAPIKey, conf.GeminiAPIEndpoint, conf.GeminiModel)
		if err != nil {
			config.Logger.Warnw("failed to create Gemini client, mode suggestions will use the fallback",
				"error", err)
			gemini = nil
		}
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	middleware.SetupMiddleware(r)

	routes.RegisterRoutes(r, gemini)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		config.Logger.Infow("server starting", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	config.Logger.Infow("server stopped")
}
