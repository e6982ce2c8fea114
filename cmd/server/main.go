package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lackeysgame/lackeys/internal/cards"
	"github.com/lackeysgame/lackeys/internal/common/clock"
	"github.com/lackeysgame/lackeys/internal/common/identgen"
	"github.com/lackeysgame/lackeys/internal/corpus"
	"github.com/lackeysgame/lackeys/internal/handlers/httpapi"
	roomRepo "github.com/lackeysgame/lackeys/internal/repositories/room"
	roomService "github.com/lackeysgame/lackeys/internal/services/room"
)

// config holds the environment configuration, prefixed LACKEYS_
type config struct {
	Addr          string `envconfig:"ADDR" default:":8000"`
	PromptsFile   string `envconfig:"PROMPTS_FILE" default:"prompts.csv"`
	FinishersFile string `envconfig:"FINISHERS_FILE" default:"finishers.csv"`
	RoundTotal    int    `envconfig:"ROUND_TOTAL" default:"4"`
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
}

func main() {
	// A local .env is optional
	_ = godotenv.Load()

	var cfg config
	if err := envconfig.Process("lackeys", &cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	prompts, err := corpus.LoadFile(cfg.PromptsFile)
	if err != nil {
		sugar.Fatalw("failed to load prompts", "file", cfg.PromptsFile, "error", err)
	}

	finishers, err := corpus.LoadFile(cfg.FinishersFile)
	if err != nil {
		sugar.Fatalw("failed to load finishers", "file", cfg.FinishersFile, "error", err)
	}

	sugar.Infow("corpora loaded",
		"prompts", prompts.Count(),
		"finishers", finishers.Count(),
	)

	repo, err := buildRepository(&cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to create room repository", "error", err)
	}

	svc, err := roomService.New(&roomService.Config{
		RoundTotal: cfg.RoundTotal,
		RoomRepo:   repo,
		Prompts:    prompts,
		Finishers:  finishers,
		Shuffler:   cards.NewShuffler(&cards.Config{Seed: time.Now().UnixNano()}),
		Clock:      &clock.DefaultClock{},
		IDGen:      identgen.New(&identgen.Config{Seed: time.Now().UnixNano()}),
	})
	if err != nil {
		sugar.Fatalw("failed to create room service", "error", err)
	}

	server, err := httpapi.New(&httpapi.Config{
		Addr:        cfg.Addr,
		RoomService: svc,
		Logger:      sugar,
	})
	if err != nil {
		sugar.Fatalw("failed to create server", "error", err)
	}

	go func() {
		if err := server.Start(); err != nil {
			sugar.Fatalw("server failed", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		sugar.Errorw("error stopping server", "error", err)
	}

	sugar.Info("server has been shut down")
}

// buildRepository picks Redis when an address is configured, otherwise the
// in-memory store.
func buildRepository(cfg *config, sugar *zap.SugaredLogger) (roomRepo.Repository, error) {
	if cfg.RedisAddr == "" {
		sugar.Info("no redis address configured, rooms are stored in memory")
		return roomRepo.NewMemory(), nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	sugar.Infow("using redis room store", "addr", cfg.RedisAddr)

	return roomRepo.NewRedis(&roomRepo.Config{
		RedisClient: redisClient,
	})
}
