package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"skillio/internal/infrastructure/metrics"
	"skillio/pkg/logger"
)

const jobTimeout = 2 * time.Minute

type Job func(ctx context.Context) error

// Scheduler runs background maintenance jobs on cron specs.
type Scheduler struct {
	cron *cron.Cron
	ctx  context.Context
}

func New(ctx context.Context) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		ctx:  ctx,
	}
}

// Add registers job under spec, e.g. "@hourly" or "@every 5m". An empty spec disables the job.
func (s *Scheduler) Add(name, spec string, job Job) error {
	if spec == "" {
		logger.Info("job %s disabled", name)
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() { s.run(name, job) })
	if err != nil {
		return err
	}
	logger.Info("job %s scheduled with %q", name, spec)
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
	defer cancel()

	start := time.Now()
	err := job(ctx)
	metrics.RecordJobRun(name, err == nil)
	if err != nil {
		logger.Error("job %s failed after %s: %v", name, time.Since(start), err)
		return
	}
	logger.Debug("job %s finished in %s", name, time.Since(start))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
