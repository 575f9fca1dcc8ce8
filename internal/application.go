package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/game"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

var ErrUnknownBackend = errors.New("unknown scoreboard backend")

// RunApp - runs the application: one interactive session on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	scoreboardRepo, closeStorage, err := newScoreboardRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeStorage(); closeErr != nil {
			log.Error("could not close scoreboard storage", "error", closeErr)
		}
	}()

	sessionID := uuid.NewString()
	log.Debug("starting session", "sessionID", sessionID, "scoreboardBackend", conf.Scoreboard.Backend)

	seed := conf.BotSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	botService := service.NewBotService(rand.New(rand.NewSource(seed))) //nolint: gosec // the bot only needs casual randomness
	scoreService := service.NewScoreService(logger, scoreboardRepo, sessionID)

	input := console.NewInput(os.Stdin)
	presenter := console.NewPresenter(os.Stdout)

	session := game.NewSession(logger, input, presenter, botService, scoreService)

	if err = session.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Session interrupted, shutting down")
			return nil
		}

		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}

// newScoreboardRepository picks the tally backend from config. The default
// keeps the score in memory for the lifetime of the process.
func newScoreboardRepository(ctx context.Context, conf *config.Config) (repository.ScoreboardRepository, func() error, error) {
	noop := func() error { return nil }

	switch conf.Scoreboard.Backend {
	case config.BackendMemory, "":
		return repository.NewMemoryScoreboardRepository(), noop, nil

	case config.BackendRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisScoreboardRepository(redisStorage.Connection), redisStorage.Close, nil

	case config.BackendSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteScoreboardRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownBackend, conf.Scoreboard.Backend)
	}
}
