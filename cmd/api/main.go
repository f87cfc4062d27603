package main

import (
	"context"
	"log"
	"os"

	"github.com/Valentin1965/VoltStore/internal/auth"
	"github.com/Valentin1965/VoltStore/internal/catalog"
	"github.com/Valentin1965/VoltStore/internal/db"
	"github.com/Valentin1965/VoltStore/internal/kit"
	"github.com/Valentin1965/VoltStore/internal/llm"
	"github.com/Valentin1965/VoltStore/internal/rates"
	"github.com/Valentin1965/VoltStore/internal/router"
	"github.com/Valentin1965/VoltStore/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	ctx := context.Background()

	// ───────────────────────── DB ─────────────────────────
	pgDB, err := db.ConnectPostgres(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal("❌ Postgres init failed:", err)
	}
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	// Image uploads are optional; without R2 credentials the upload
	// endpoint answers 503 and everything else keeps working.
	var r2Client catalog.Storage
	if storage.Configured() {
		client, err := storage.NewR2Client(ctx)
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		r2Client = client
	} else {
		log.Println("⚠️  R2 not configured, image uploads disabled")
	}

	// ───────────────────────── LLM ─────────────────────────
	// A missing GEMINI_API_KEY is tolerated: recommendations fall back
	// to the deterministic selector and rates stay on cached values.
	llmClient := llm.NewGeminiClient()

	// ───────────────────────── RATES ─────────────────────────
	var rateStore rates.Store
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rateStore = rates.NewRedisStore(addr)
	} else {
		log.Println("⚠️  REDIS_ADDR not set, rate cache is in-memory only")
		rateStore = rates.NewMemoryStore()
	}

	rateCache := rates.NewCache(rates.NewQuoteProvider(llmClient), rateStore)
	rateCache.Start()

	// ───────────────────────── AUTH ─────────────────────────
	adminRepo := auth.NewPostgresAdminRepository(pgDB)
	authService := auth.NewService(adminRepo)

	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		if err := authService.Bootstrap(email, os.Getenv("ADMIN_PASSWORD")); err != nil {
			log.Fatal("❌ Admin bootstrap failed:", err)
		}
	}

	// ───────────────────────── CATALOG ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	catalogService := catalog.NewService(catalogRepo)

	// ───────────────────────── KIT ─────────────────────────
	kitService := kit.NewService(kit.NewAIClient(llmClient), catalogService)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Auth:    auth.NewHandler(authService),
		Catalog: catalog.NewHandler(catalogService, r2Client),
		Kit:     kit.NewHandler(kitService, rateCache, catalogService),
		Rates:   rates.NewHandler(rateCache),
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
