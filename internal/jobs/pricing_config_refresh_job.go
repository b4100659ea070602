package jobs

import (
	"context"
	"log/slog"

	"quoting/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// refreshSchedule re-reads the pricing configuration every ten minutes.
// Administrative updates invalidate the cache immediately; this job only
// covers edits made directly in the database or by another process.
const refreshSchedule = "0 */10 * * * *"

// PricingConfigRefreshJob periodically discards and re-warms the cached
// pricing configuration.
type PricingConfigRefreshJob struct {
	provider ports.PricingConfigProvider
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPricingConfigRefreshJob creates a refresh job over the given provider.
func NewPricingConfigRefreshJob(provider ports.PricingConfigProvider, logger *slog.Logger) *PricingConfigRefreshJob {
	return &PricingConfigRefreshJob{
		provider: provider,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pricing_config_refresh_job"),
	}
}

// Start begins the periodic refresh.
func (j *PricingConfigRefreshJob) Start() error {
	_, err := j.cron.AddFunc(refreshSchedule, func() {
		ctx := context.Background()

		j.provider.Invalidate()
		if _, refreshErr := j.provider.Config(ctx); refreshErr != nil {
			// Next quote request retries the load; defaults apply if the row is gone
			j.logger.ErrorContext(ctx, "Pricing config refresh failed", "error", refreshErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pricing config refresh job started (running every ten minutes)")
	return nil
}

// Stop stops the refresh job.
func (j *PricingConfigRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pricing config refresh job stopped")
}
