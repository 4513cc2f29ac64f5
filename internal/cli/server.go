package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"cyberaware-service/internal/app"
	"cyberaware-service/internal/config"
	"cyberaware-service/internal/infra/memory"
	pgloader "cyberaware-service/internal/infra/postgres"
	redisinfra "cyberaware-service/internal/infra/redis"
	"cyberaware-service/internal/infra/sqlite"
	transport "cyberaware-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the cyber awareness server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var loader memory.BankLoader = memory.NewStaticBankLoader(memory.SeedQuestions())
	if pool != nil {
		loader = pgloader.NewQuestionLoader(pool)
	}

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var questionRepo app.QuestionRepository
	if redisClient != nil {
		questionRepo = redisinfra.NewQuestionRepository(redisClient, loader, quizTTL)
	} else {
		questionRepo = memory.NewQuestionRepository(loader, quizTTL)
	}

	quizService := app.NewQuizService(memory.NewSessionStore(), questionRepo)

	feed := app.NewAlertFeed()

	var reportRepo app.ReportRepository
	switch {
	case cfg.SQLite.Path != "":
		store, err := sqlite.NewReportStore(cfg.SQLite.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		reportRepo = store
	case redisClient != nil:
		reportRepo = redisinfra.NewReportStore(redisClient)
	default:
		reportRepo = memory.NewReportStore()
	}
	reportService := app.NewReportService(reportRepo, feed)

	catalogService := app.NewCatalogService(memory.NewCatalog(time.Now()))

	mux := http.NewServeMux()
	transport.NewHandler(quizService, reportService, catalogService).Register(mux)
	mux.HandleFunc("GET /ws/alerts", transport.NewWSHandler(feed, catalogService).ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting cyber awareness service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
