package accrual

import (
	"context"
	"sync"
	"time"

	"github.com/dnochieng/mvest/internal/config"
	"github.com/dnochieng/mvest/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// inFlightEarnings guards against the same earning being dispatched twice
// while a previous sweep is still working on it.
var inFlightEarnings sync.Map

// Engine is the slice of the investment service the sweep drives.
type Engine interface {
	FindDueEarnings(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.DueEarning, error)
	CreditDueEarning(ctx context.Context, due domain.DueEarning) error
}

type Service struct {
	engine        Engine
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
	accrualWindow time.Duration
}

func New(cfg *config.Config, engine Engine) *Service {
	return &Service{
		engine:        engine,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.SweepInterval,
		accrualWindow: cfg.AccrualWindow,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("accrual sweep started",
		zap.Duration("interval", s.sweepInterval),
		zap.Duration("window", s.accrualWindow))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping accrual sweep")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep matures every due earning. Each earning is credited in its own
// transaction; one failure is logged and does not block the rest of the batch.
func (s *Service) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.accrualWindow)
	due, err := s.engine.FindDueEarnings(ctx, cutoff, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch due earnings", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, earning := range due {
		earning := earning

		if _, loaded := inFlightEarnings.LoadOrStore(earning.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlightEarnings.Delete(earning.ID)
				if err := s.engine.CreditDueEarning(ctx, earning); err != nil {
					zap.L().Error("failed to credit earning",
						zap.Int("earningID", earning.ID),
						zap.Int("investmentID", earning.InvestmentID),
						zap.Error(err))
				}
				return nil
			})
			if err != nil {
				inFlightEarnings.Delete(earning.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching due earnings", zap.Error(err))
	}
}
