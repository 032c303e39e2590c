// Command stubstats serves a fake /api/stats on localhost:5001 for trying the
// probe without the real backend.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/hamed0406/statsprobe/internal/config"
	"github.com/hamed0406/statsprobe/internal/logging"
	"github.com/hamed0406/statsprobe/internal/stats"
	"github.com/hamed0406/statsprobe/internal/stubapi"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf(".env: %v", err)
	}
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Close()

	store := stats.NewStore()
	if err := seed(context.Background(), store, cfg.StubSeed); err != nil {
		log.Fatal(err)
	}
	api := stubapi.NewServer(logger.Logger, store)

	logger.Warn("stub_listen", zap.String("addr", cfg.StubAddr), zap.Int("seed", cfg.StubSeed))
	if err := http.ListenAndServe(cfg.StubAddr, api.Router()); err != nil {
		log.Fatal(err)
	}
}

// seed adds n students; every odd-numbered one gets two scans.
func seed(ctx context.Context, s *stats.Store, n int) error {
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("STU%03d", i)
		if err := s.AddStudent(ctx, id); err != nil {
			return err
		}
		if i%2 == 1 {
			for j := 0; j < 2; j++ {
				if err := s.RecordAttendance(ctx, id); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
