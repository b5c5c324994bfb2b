package jobs

import (
	"context"
	"log/slog"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DrugExpiryJob manages the scheduled expiry sweep of the drug catalog.
// Runs hourly to flag drugs whose expiry date has passed.
type DrugExpiryJob struct {
	handler commands.ExpireDrugsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDrugExpiryJob creates a new job for sweeping expired drugs.
// Uses ExpireDrugsCommandHandler to process the catalog every hour.
func NewDrugExpiryJob(handler commands.ExpireDrugsCommandHandler, logger *slog.Logger) *DrugExpiryJob {
	return &DrugExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "drug_expiry_job"),
	}
}

// Start begins the drug expiry job to run at the top of every hour.
func (j *DrugExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireDrugsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Drug expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Drug expiry job started (running hourly)")
	return nil
}

// Stop stops the drug expiry job.
func (j *DrugExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Drug expiry job stopped")
}
