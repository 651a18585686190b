package worker

import (
	"context"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSettleDue = "booking:settle_due"

// settleDueSchedule runs the sweep every five minutes. Settlement is a
// scheduled transition, reads never mutate booking state.
const settleDueSchedule = "*/5 * * * *"

// Settlement owns the background promotion of unpaid reservations whose
// stay has started.
type Settlement struct {
	service   usecase.BookingService
	server    *asynq.Server
	scheduler *asynq.Scheduler
	log       *zap.Logger
}

func NewSettlement(service usecase.BookingService, cfg utils.RedisConfig, log *zap.Logger) *Settlement {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		// The sweep is a single UPDATE, one worker is enough.
		Concurrency: 1,
		Queues: map[string]int{
			"default": 1,
		},
	})

	scheduler := asynq.NewScheduler(redisOpt, nil)

	return &Settlement{
		service:   service,
		server:    server,
		scheduler: scheduler,
		log:       log.With(zap.String("worker", "settlement")),
	}
}

// Start registers the periodic task and launches the worker and scheduler.
func (s *Settlement) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSettleDue, s.handleSettleDue)

	entryID, err := s.scheduler.Register(settleDueSchedule, asynq.NewTask(TypeSettleDue, nil))
	if err != nil {
		return err
	}

	if err := s.server.Start(mux); err != nil {
		return err
	}
	if err := s.scheduler.Start(); err != nil {
		s.server.Shutdown()
		return err
	}

	s.log.Info("Settlement worker started",
		zap.String("task", TypeSettleDue),
		zap.String("schedule", settleDueSchedule),
		zap.String("entry_id", entryID),
	)
	return nil
}

func (s *Settlement) Shutdown() {
	s.scheduler.Shutdown()
	s.server.Shutdown()
	s.log.Info("Settlement worker stopped")
}

func (s *Settlement) handleSettleDue(ctx context.Context, task *asynq.Task) error {
	settled, err := s.service.SettleDueReservations(ctx)
	if err != nil {
		s.log.Error("Settlement sweep failed", zap.Error(err))
		return err
	}

	if settled > 0 {
		s.log.Info("Settlement sweep completed", zap.Int64("settled", settled))
	}
	return nil
}
