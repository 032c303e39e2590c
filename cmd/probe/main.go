// Command probe sends one GET to the local stats endpoint and prints the
// status code and body. It always exits 0.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hamed0406/statsprobe/internal/config"
	"github.com/hamed0406/statsprobe/internal/logging"
	"github.com/hamed0406/statsprobe/internal/probe"
	"github.com/hamed0406/statsprobe/internal/report"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: .env:", err)
	}
	cfg := config.FromEnv()

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: logger:", err)
		logger = logging.Nop()
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chk := probe.NewHTTPChecker(cfg.HTTPTimeout, logger.Logger)
	run(ctx, os.Stdout, chk, config.StatsURL, logger.Logger)
}

// run never panics and never reports failure to the caller; every outcome
// ends up as text on w.
func run(ctx context.Context, w io.Writer, chk probe.Checker, target string, log *zap.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("probe_panic", zap.Any("panic", r))
			fmt.Fprintf(w, "Error: %v\n", r)
		}
	}()

	res := chk.Check(ctx, target)
	if err := report.Write(w, res); err != nil {
		log.Warn("report_write_error", zap.Error(err))
	}
}
