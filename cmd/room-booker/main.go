package main

import (
	"context"
	"errors"
	"flag"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"roomBooker/internal/booking"
	"roomBooker/internal/config"
	"roomBooker/internal/events/kafka"
	"roomBooker/internal/http-server/handlers/booking/createBooking"
	"roomBooker/internal/http-server/handlers/booking/getBooking"
	"roomBooker/internal/http-server/handlers/health"
	"roomBooker/internal/http-server/handlers/room/getAvailability"
	"roomBooker/internal/http-server/handlers/room/getRoom"
	"roomBooker/internal/http-server/handlers/room/getRooms"
	"roomBooker/internal/http-server/middleware/mwlogger"
	"roomBooker/internal/lib/logger/handlers/slogpretty"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/services/rooms"
	"roomBooker/internal/storage/fixtures"
	"roomBooker/internal/storage/memory"
	"roomBooker/internal/storage/postgres"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

type store interface {
	rooms.Store
	EnsureRooms(ctx context.Context, rooms []models.Room) (int, error)
	Close() error
}

func main() {
	loadFixtures := flag.Bool("fixtures", false, "insert the standard rooms before serving")

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting room booker",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage),
	)
	log.Debug("Debug messages are enabled")

	loc, err := cfg.Schedule.Location()
	if err != nil {
		log.Error("failed to load timezone", sl.Err(err))
		os.Exit(1)
	}

	grid, err := booking.NewGrid(cfg.Schedule.OpenHour, cfg.Schedule.CloseHour, cfg.Schedule.SlotDuration, loc)
	if err != nil {
		log.Error("invalid schedule", sl.Err(err))
		os.Exit(1)
	}

	st, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	// An in-memory store starts empty, so it always gets the standard rooms.
	if *loadFixtures || cfg.Storage == config.StorageMemory {
		added, err := st.EnsureRooms(context.Background(), fixtures.Rooms())
		if err != nil {
			log.Error("failed to load fixtures", sl.Err(err))
			os.Exit(1)
		}
		log.Info("fixtures loaded", slog.Int("added", added))
	}

	var opts []rooms.Option

	var producer *kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err = kafka.NewProducer(log, cfg.Kafka)
		if err != nil {
			log.Error("failed to init kafka producer", sl.Err(err))
			os.Exit(1)
		}
		opts = append(opts, rooms.WithNotifier(producer))
		log.Info("booking events enabled", slog.String("topic", cfg.Kafka.Topic))
	}

	service := rooms.New(log, st, grid, opts...)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(middleware.Timeout(cfg.HTTPServer.Timeout))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	router.Get("/health", health.New())

	router.Route("/api", func(r chi.Router) {
		r.Get("/rooms", getRooms.New(log, service))
		r.Get("/rooms/{id}", getRoom.New(log, service))
		r.Get("/rooms/{id}/availability/{date}", getAvailability.New(log, service))
		r.Post("/bookings", createBooking.New(log, service))
		r.Get("/bookings/{code}", getBooking.New(log, service))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("failed to close kafka producer", sl.Err(err))
		}
	}

	if err = st.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(cfg *config.Config) (store, error) {
	if cfg.Storage == config.StorageMemory {
		return memory.New(), nil
	}

	pg, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err = pg.Migrate(ctx); err != nil {
		_ = pg.Close()
		return nil, err
	}

	return pg, nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
