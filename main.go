package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spattnaik1998/Augmenting-Wolfram/agent"
	"github.com/spattnaik1998/Augmenting-Wolfram/config"
	"github.com/spattnaik1998/Augmenting-Wolfram/handlers"
	"github.com/spattnaik1998/Augmenting-Wolfram/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// A config failure (missing API keys) leaves the agent nil; the server
	// still comes up and reports itself unhealthy.
	var chatAgent handlers.ChatAgent
	port := "8000"

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize agent, chat requests will be rejected")
	} else {
		llm := services.NewOpenAIService(cfg.OpenAI)
		wolfram := services.NewWolframService(cfg.Wolfram.AppID, cfg.Wolfram.BaseURL)
		chatAgent = agent.New(llm, wolfram)
		port = cfg.Server.Port
		log.Info().Str("model", cfg.OpenAI.Model).Msg("Agent initialized successfully")
	}
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	chatHandler := handlers.NewChatHandler(chatAgent)

	// Setup Gin router
	router := gin.Default()

	// Enable CORS for local frontends
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check
	router.GET("/", chatHandler.Health)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/status", chatHandler.Status)
		api.GET("/examples", chatHandler.Examples)
		api.POST("/chat", chatHandler.Chat)
	}

	log.Info().Str("port", port).Msg("Starting server")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
