package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backend-oneskyquest/internal/config"
	"backend-oneskyquest/internal/db"
	"backend-oneskyquest/internal/server"
	"backend-oneskyquest/internal/store"
	"backend-oneskyquest/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig   func() config.Config
	buildStorage func(config.Config) (store.Storage, error)
	connectRedis func(config.Config) *redis.Client
	seed         func(context.Context, store.Storage) error
	notify       func(chan<- os.Signal, ...os.Signal)
	run          func(context.Context, config.Config, store.Storage, *redis.Client, <-chan os.Signal, ListenFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig:   config.Load,
		buildStorage: buildStorage,
		connectRedis: db.ConnectRedis,
		seed:         store.Seed,
		notify:       signal.Notify,
		run:          Run,
	}
}

func buildStorage(cfg config.Config) (store.Storage, error) {
	if cfg.StoreDriver == config.StoreDriverPostgres {
		pool, err := db.ConnectPostgres(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewPostgresStorage(pool), nil
	}
	return store.NewMemStorage(), nil
}

func realMain(deps mainDeps) {
	cfg := deps.loadConfig()

	storage, err := deps.buildStorage(cfg)
	if err != nil {
		log.Printf("storage setup failed, falling back to in-memory store: %v", err)
		storage = store.NewMemStorage()
	}

	// Seeding is for the in-memory store only; a Postgres store would gain
	// a duplicate sample snapshot on every restart.
	if _, inMemory := storage.(*store.MemStorage); cfg.Seed && inMemory {
		if err := deps.seed(context.Background(), storage); err != nil {
			log.Printf("seeding failed: %v", err)
		}
	}

	rdb := deps.connectRedis(cfg)

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, storage, rdb, signals, nil); err != nil {
		log.Printf("server exited with error: %v", err)
	}
}

type ListenFunc func(app *fiber.App, addr string) error

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

// Run starts the HTTP server and waits for termination signals.
func Run(ctx context.Context, cfg config.Config, storage store.Storage, rdb *redis.Client, signals <-chan os.Signal, listen ListenFunc) error {
	hub := stream.NewHub(rdb)
	srv := server.NewServer(cfg, storage, hub)

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.App, cfg.ServerPort)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.App.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	return nil
}
