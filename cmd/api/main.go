package main

import (
	"context"
	"fmt"
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/astrolabs/webdev-answerbot/internal/api"
	"github.com/astrolabs/webdev-answerbot/internal/api/middleware"
	"github.com/astrolabs/webdev-answerbot/internal/config"
	"github.com/astrolabs/webdev-answerbot/internal/setup"
	"github.com/astrolabs/webdev-answerbot/internal/setup/logger"
)

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg := config.Load()

	logger := logger.New(cfg.LogLevel)
	log.Logger = logger

	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx := context.Background()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer deps.Close()

	log.Info().Msg("Database connected")

	// API
	handler := api.NewHandler(deps.Pipeline, deps.RAG, &logger)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	// OpenAPI document
	container.Add(restfulspec.NewOpenAPIService(restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/apidocs.json",
		PostBuildSwaggerObjectHandler: enrichSwagger,
	}))

	corsHandler := api.NewCORS()

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("address", addr).Msg("Starting Answerbot API")

	server := http.Server{
		Addr:    addr,
		Handler: corsHandler.Handler(container),
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func enrichSwagger(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Webdev Answerbot",
			Description: "Documentation Q&A over embedded doc sites",
			Version:     "1.0.0",
		},
	}
}
