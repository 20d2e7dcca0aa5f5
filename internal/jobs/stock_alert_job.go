package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StockAlertJob periodically sweeps active inventory items and evaluates
// their alert thresholds. Runs every minute; items whose alerts are still
// inside the re-alert window stay quiet.
type StockAlertJob struct {
	stockLevelsHandler queries.GetStockLevelsQueryHandler
	checkAlertsHandler commands.CheckAlertsCommandHandler
	cron               *cron.Cron
	logger             *slog.Logger
}

// NewStockAlertJob creates a job that evaluates inventory alert thresholds.
func NewStockAlertJob(
	stockLevelsHandler queries.GetStockLevelsQueryHandler,
	checkAlertsHandler commands.CheckAlertsCommandHandler,
	logger *slog.Logger,
) *StockAlertJob {
	return &StockAlertJob{
		stockLevelsHandler: stockLevelsHandler,
		checkAlertsHandler: checkAlertsHandler,
		cron:               cron.New(cron.WithSeconds()),
		logger:             logger.With("component", "stock_alert_job"),
	}
}

// Start begins the stock alert job to run every minute.
func (j *StockAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.sweep(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock alert job started (running every minute)")
	return nil
}

// Stop stops the stock alert job.
func (j *StockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stock alert job stopped")
}

func (j *StockAlertJob) sweep(ctx context.Context) {
	levels, err := j.stockLevelsHandler.Handle(ctx, queries.NewGetStockLevelsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stock alert sweep failed to list items", "error", err)
		return
	}

	now := time.Now().UTC()
	for _, level := range levels {
		cmd, cmdErr := commands.NewCheckAlertsCommand(level.ItemID, now)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stock alert sweep failed to build command",
				"itemId", level.ItemID.String(), "error", cmdErr)
			continue
		}

		alerts, handleErr := j.checkAlertsHandler.Handle(ctx, cmd)
		if handleErr != nil {
			// An item deactivated mid-sweep is not a system issue.
			j.logger.ErrorContext(ctx, "Stock alert check failed",
				"itemId", level.ItemID.String(), "error", handleErr)
			continue
		}

		for _, alert := range alerts {
			j.logger.WarnContext(ctx, "Inventory alert raised",
				"itemId", level.ItemID.String(),
				"sku", level.SKU,
				"kind", alert.Kind.String(),
				"message", alert.Message)
		}
	}
}
