package service

import (
	"context"
	"sync"

	"crypto-wallet-client/internal/core/domain"
	"crypto-wallet-client/internal/core/ports"

	"github.com/rs/zerolog"
)

// LiveUpdateService implements ports.LiveUpdater: at most one push-channel
// subscription per active identity. On a balance-update signal it refreshes
// the account and then the transaction list, strictly in that order and
// awaited sequentially, so the view never observes a torn half-refresh.
type LiveUpdateService struct {
	sub    ports.PushSubscriber
	wallet ports.WalletController
	log    zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	userID int64
	wg     sync.WaitGroup
}

// NewLiveUpdateService creates a listener with no active subscription.
func NewLiveUpdateService(sub ports.PushSubscriber, wallet ports.WalletController, log zerolog.Logger) *LiveUpdateService {
	return &LiveUpdateService{
		sub:    sub,
		wallet: wallet,
		log:    log.With().Str("component", "live_update").Logger(),
	}
}

// Track switches the subscription to the given identity, tearing down any
// previous connection first. A nil identity only tears down. Tracking the
// already-tracked identity is a no-op so repeated login renders do not churn
// the connection.
func (s *LiveUpdateService) Track(identity *domain.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if identity != nil && s.cancel != nil && s.userID == identity.ID {
		return
	}

	s.teardownLocked()
	if identity == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	events, err := s.sub.Subscribe(ctx, identity.ID)
	if err != nil {
		cancel()
		s.log.Warn().Err(err).Int64("user_id", identity.ID).Msg("push subscription failed")
		return
	}

	s.cancel = cancel
	s.userID = identity.ID
	s.wg.Add(1)
	go s.consume(ctx, events)
}

// Close tears down the active subscription and waits for the consumer to
// drain.
func (s *LiveUpdateService) Close() {
	s.mu.Lock()
	s.teardownLocked()
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *LiveUpdateService) teardownLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.userID = 0
	}
}

func (s *LiveUpdateService) consume(ctx context.Context, events <-chan domain.ServerEvent) {
	defer s.wg.Done()
	for ev := range events {
		if ev.Type != domain.EventBalanceUpdated {
			continue
		}
		// Account first, then transactions, both awaited: the balance a user
		// sees and the list beneath it refresh as one logical step.
		if err := s.wallet.LoadAccount(ctx); err != nil {
			s.log.Warn().Err(err).Msg("push-triggered account refresh failed")
		}
		if err := s.wallet.LoadTransactions(ctx); err != nil {
			s.log.Warn().Err(err).Msg("push-triggered transaction refresh failed")
		}
	}
}
