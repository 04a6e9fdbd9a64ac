package worker

import (
	"context"
	"sync"
	"time"

	"colour-trade/internal/round"
	"colour-trade/internal/service"

	"github.com/rs/zerolog"
)

// SettlementWorker is the authoritative settlement trigger. It wakes
// shortly after every round boundary and settles the round that just
// closed. Redundant triggers (a second instance, the HTTP endpoint)
// are harmless: settlement is idempotent per round.
type SettlementWorker struct {
	service       service.SettlementService
	roundDuration time.Duration
	settleDelay   time.Duration
	logger        zerolog.Logger
	stopChan      chan struct{}
	wg            *sync.WaitGroup
}

func NewSettlementWorker(svc service.SettlementService, roundDuration, settleDelay time.Duration, logger zerolog.Logger) *SettlementWorker {
	return &SettlementWorker{
		service:       svc,
		roundDuration: roundDuration,
		settleDelay:   settleDelay,
		logger:        logger,
		stopChan:      make(chan struct{}),
		wg:            &sync.WaitGroup{},
	}
}

func (w *SettlementWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		w.logger.Info().Dur("round_duration", w.roundDuration).Msg("Settlement worker started")

		for {
			// Realign every cycle so drift never accumulates
			now := time.Now()
			window := round.WindowAt(now, w.roundDuration)
			timer := time.NewTimer(window.End.Add(w.settleDelay).Sub(now))

			select {
			case <-timer.C:
				w.logger.Debug().Time("round_start", window.Start).Msg("Settling closed round")
				if _, err := w.service.SettleRound(ctx, window.Start); err != nil {
					w.logger.Error().Err(err).Time("round_start", window.Start).Msg("Failed to settle round")
				}
			case <-w.stopChan:
				timer.Stop()
				w.logger.Info().Msg("Settlement worker stopping")
				return
			case <-ctx.Done():
				timer.Stop()
				w.logger.Info().Msg("Settlement worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *SettlementWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
