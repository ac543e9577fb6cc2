package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-query/internal/cache"
	"catalog-query/internal/config"
	"catalog-query/internal/database"
	"catalog-query/internal/query"
	"catalog-query/internal/repository"
	"catalog-query/internal/routes"
	"catalog-query/internal/summarizer"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		log.Fatalln("❌ Database connection failed:", err)
	}
	defer closeRepo()

	var sum summarizer.Summarizer = summarizer.NewHostedClient(cfg.SummarizerURL, cfg.SummarizerToken, cfg.SummarizerTimeout)
	if cfg.SummaryCacheTTL > 0 {
		c := cache.New(cfg.SummaryCacheTTL, 5*time.Minute)
		defer c.Close()
		sum = summarizer.NewMemoized(sum, c)
		log.Println("🧠 Summary cache enabled, ttl", cfg.SummaryCacheTTL)
	}

	pipeline := query.NewPipeline(repo, sum)

	router := gin.Default()
	routes.RegisterRoutes(router, pipeline)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Println("🚀 Server running on port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalln("❌ Server error:", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	log.Println("🛑 Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("⚠️ Shutdown error:", err)
	}
}

// openRepository elige el almacén según DB_DRIVER y devuelve su función de cierre.
func openRepository(cfg *config.Config) (repository.CatalogRepository, func(), error) {
	switch cfg.DBDriver {
	case "mongo":
		client, err := database.ConnectMongo(cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}
		return repository.NewMongoRepository(client, cfg.MongoDB), closeFn, nil
	default:
		db, err := database.OpenSQL(cfg.DBDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSQLRepository(db), func() { _ = database.CloseSQL(db) }, nil
	}
}
