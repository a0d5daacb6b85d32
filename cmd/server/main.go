package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-crm-mcp/internal/config"
	"github.com/xavierca1/ligue-crm-mcp/internal/infra/database"
	"github.com/xavierca1/ligue-crm-mcp/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-crm-mcp/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm-mcp/internal/infra/mcpserver"
	"github.com/xavierca1/ligue-crm-mcp/internal/tool"
	"github.com/xavierca1/ligue-crm-mcp/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	stageRepo := database.NewStageRepository(db)
	catalogRepo := database.NewCatalogRepository(db)
	historyRepo := database.NewHistoryRepository(db)

	// 2. UseCases
	registry := tool.NewRegistryWithTools(tool.Handlers{
		GetLeads:               usecase.NewGetLeadsUseCase(leadRepo, stageRepo),
		UpdateLeadStage:        usecase.NewUpdateLeadStageUseCase(leadRepo, stageRepo),
		UpdateLeadCustomFields: usecase.NewUpdateLeadCustomFieldsUseCase(leadRepo),
		CreateLead:             usecase.NewCreateLeadUseCase(leadRepo, stageRepo),
		SearchPriceCatalog:     usecase.NewSearchPriceCatalogUseCase(catalogRepo),
		GetLeadHistory:         usecase.NewGetLeadHistoryUseCase(historyRepo),
		GetPipelineStats:       usecase.NewGetPipelineStatsUseCase(leadRepo),
	})

	// 3. Transporte
	switch cfg.Transport {
	case "stdio":
		err = mcpserver.ServeStdio(registry)
	case "sse":
		err = mcpserver.ServeSSE(registry, db, cfg.Port)
	case "http":
		err = serveHTTP(registry, db, cfg.Port)
	default:
		log.Fatalf("transporte desconhecido: %q (use stdio, http ou sse)", cfg.Transport)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func serveHTTP(registry *tool.Registry, db *sql.DB, port int) error {
	mcpHandler := handlers.NewMCPHandler(registry)
	toolsHandler := handlers.NewToolsHandler(registry)
	healthHandler := handlers.NewHealthHandler(db, mcpserver.Version)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/mcp", mcpHandler.Handle)
	r.Get("/tools", toolsHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	log.Printf("servidor MCP (HTTP) escutando em %s", addr)
	return http.ListenAndServe(addr, r)
}
