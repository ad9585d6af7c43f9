package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpLayer "inmocalc/http"
	"inmocalc/repository"
	"inmocalc/service"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("sin archivo .env, usando variables de entorno")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var repo repository.CalculationRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisRepo := repository.NewCalculationRepositoryRedis(addr)
		defer redisRepo.Close()
		repo = redisRepo
		log.Info().Str("addr", addr).Msg("historial de cálculos en redis")
	} else {
		repo = repository.NewCalculationRepositoryMemory()
		log.Info().Msg("historial de cálculos en memoria")
	}

	amortizationService := service.NewAmortizationService(repo)
	amortizationHandler := httpLayer.NewAmortizationHandler(amortizationService)

	flippingService := service.NewFlippingService(repo)
	flippingHandler := httpLayer.NewFlippingHandler(flippingService)

	termComparisonService := service.NewTermComparisonService(amortizationService)
	termComparisonHandler := httpLayer.NewTermComparisonHandler(termComparisonService)

	rateLimiter := httpLayer.NewRateLimiter(30, time.Minute)
	defer rateLimiter.Stop()

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(rateLimiter.Middleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/amortizacion", amortizationHandler.BuildTable)
		r.Post("/amortizacion/resumen", amortizationHandler.Summary)
		r.Post("/amortizacion/csv", amortizationHandler.ExportCSV)
		r.Post("/amortizacion/plazos", termComparisonHandler.Compare)
		r.Post("/flipping", flippingHandler.Evaluate)
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", port).Msg("API de cálculo inmobiliario corriendo")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("error iniciando el servidor")
		return
	case <-quit:
		log.Info().Msg("apagando el servidor...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error durante el apagado del servidor")
	}

	log.Info().Msg("servidor detenido")
}
