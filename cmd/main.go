package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AndrivA89/pinboard/internal/config"
	"github.com/AndrivA89/pinboard/internal/handler"
	"github.com/AndrivA89/pinboard/internal/logger"
	"github.com/AndrivA89/pinboard/internal/repository"
	"github.com/AndrivA89/pinboard/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatalf("Failed to configure logger: %v", err)
	}

	if err = run(cfg, log); err != nil {
		log.Fatal(err)
	}
}

// run owns the driver and the HTTP server. It returns instead of exiting so
// the driver is always closed.
func run(cfg *config.Config, log *logrus.Logger) error {
	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI, neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""))
	if err != nil {
		return errors.Wrap(err, "create Neo4j driver")
	}
	defer func() {
		if err := driver.Close(context.Background()); err != nil {
			log.Errorf("Error closing Neo4j driver: %v", err)
		}
	}()

	repo := repository.New(driver, cfg.Neo4jDatabase, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err = repo.VerifyConnectivity(ctx); err != nil {
		return errors.Wrapf(err, "Neo4j is unreachable at %s", cfg.Neo4jURI)
	}
	if err = repo.EnsureSchema(ctx); err != nil {
		return errors.Wrap(err, "create constraints")
	}

	social := usecase.NewSocialUseCase(repo)
	pins := usecase.NewPinUseCase(repo, cfg.DefaultViewerID)
	users := usecase.NewUserUseCase(repo)
	boards, err := usecase.NewBoardUseCase(repo, cfg.BoardCacheTTL)
	if err != nil {
		return err
	}

	router := handler.NewRouter(log, cfg.RequestTimeout, handler.Handlers{
		Pins:   handler.NewPinHandler(pins, social),
		Boards: handler.NewBoardHandler(boards),
		Users:  handler.NewUserHandler(users, pins, social),
		Store:  repo,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	return serve(srv, quit, log)
}

// serve runs srv until it fails or a signal arrives on quit, then shuts it
// down gracefully.
func serve(srv *http.Server, quit <-chan os.Signal, log logrus.FieldLogger) error {
	serveErr := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return errors.Wrap(err, "HTTP server failed")
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "graceful shutdown")
	}
	return nil
}
