package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sportsoles/sportsoles-backend/internal/app/service"
	"github.com/sportsoles/sportsoles-backend/pkg/logger"
)

// CartScheduler periodically removes cart items that have gone stale
type CartScheduler struct {
	cron        *cron.Cron
	cartService service.CartService
	schedule    string
	maxAge      time.Duration
}

func NewCartScheduler(cartService service.CartService, schedule string, maxAge time.Duration) *CartScheduler {
	return &CartScheduler{
		cron:        cron.New(),
		cartService: cartService,
		schedule:    schedule,
		maxAge:      maxAge,
	}
}

// Start registers the pruning job and starts the cron loop
func (s *CartScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		logger.Info("Starting scheduled cart pruning", map[string]interface{}{
			"max_age": s.maxAge.String(),
		})

		count, err := s.cartService.PruneStaleItems(s.maxAge)
		if err != nil {
			logger.Error("Scheduled cart pruning failed", err)
			return
		}

		logger.Info("Scheduled cart pruning completed", map[string]interface{}{
			"pruned": count,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for cart pruning", err)
		return err
	}

	s.cron.Start()
	logger.Info("Cart pruning scheduler started", map[string]interface{}{
		"schedule": s.schedule,
		"max_age":  s.maxAge.String(),
	})

	return nil
}

// Stop stops the scheduler
func (s *CartScheduler) Stop() {
	logger.Info("Stopping cart pruning scheduler...")
	s.cron.Stop()
	logger.Info("Cart pruning scheduler stopped")
}
