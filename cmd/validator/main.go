package main

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/exp/slog"

	"github.com/ristiisa/credit-card-validator/validator"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout))

	cfg := validator.DefaultConfig()
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("EXPIRY_TZ"); v != "" {
		cfg.ExpiryTZ = v
	}
	if v := os.Getenv("MAX_YEARS_IN_FUTURE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxYearsInFuture = n
		}
	}

	app := validator.NewApp(logger, cfg)
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	app.Shutdown()
}
