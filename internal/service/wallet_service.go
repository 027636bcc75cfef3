package service

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"crypto-wallet-client/internal/core/domain"
	"crypto-wallet-client/internal/core/ports"
	"crypto-wallet-client/pkg/apperror"

	"github.com/rs/zerolog"
)

// RateSource is the slice of the rate ticker the wallet controller needs.
type RateSource interface {
	Current() float64
	Reset()
}

// WalletService implements ports.WalletController. Balance is a cached
// projection of the backend ledger: speculatively decremented on transfer
// submission, reconciled by re-fetching, never the system of record.
//
// Overlapping wallet mutations (two rapid transfers) are an accepted race:
// both proceed and the last completed write wins, matching the backend being
// the only real ledger.
type WalletService struct {
	backend ports.BackendClient
	creds   ports.CredentialStore
	rate    RateSource
	log     zerolog.Logger

	mu        sync.Mutex
	balance   float64
	accountID *int64
	txs       []domain.Transaction
}

// NewWalletService creates an empty wallet controller.
func NewWalletService(
	backend ports.BackendClient,
	creds ports.CredentialStore,
	rate RateSource,
	log zerolog.Logger,
) *WalletService {
	return &WalletService{
		backend: backend,
		creds:   creds,
		rate:    rate,
		log:     log.With().Str("component", "wallet").Logger(),
	}
}

// SetupAccount links a public key to the authenticated user. On success the
// balance and account id come from the response; on failure prior state is
// left untouched.
func (s *WalletService) SetupAccount(ctx context.Context, publicKey string) error {
	publicKey = strings.TrimSpace(publicKey)
	if publicKey == "" {
		return apperror.ErrInvalidPublicKey()
	}

	acct, err := s.backend.SetupAccount(ctx, publicKey)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.balance = acct.Balance
	id := acct.AccountID
	s.accountID = &id
	s.mu.Unlock()

	s.log.Info().Int64("account_id", acct.AccountID).Msg("account linked")
	return nil
}

// LoadAccount refreshes balance and account id from the backend. Without a
// stored credential this is a silent no-op: an unauthenticated probe would be
// pointless steady-state noise right after logout.
func (s *WalletService) LoadAccount(ctx context.Context) error {
	if !s.authenticated() {
		s.log.Debug().Msg("skipping account refresh, no credential")
		return nil
	}

	acct, err := s.backend.GetAccount(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.balance = acct.Balance
	id := acct.AccountID
	s.accountID = &id
	s.mu.Unlock()
	return nil
}

// LoadTransactions refreshes the transaction list. No-op when
// unauthenticated.
func (s *WalletService) LoadTransactions(ctx context.Context) error {
	if !s.authenticated() {
		s.log.Debug().Msg("skipping transaction refresh, no credential")
		return nil
	}

	txs, err := s.backend.GetTransactions(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.txs = txs
	s.mu.Unlock()
	return nil
}

// Transfer validates the form locally, submits the transfer, applies the
// optimistic balance decrement (floored at zero), then re-fetches
// transactions to reconcile. Validation failures name the offending field
// and never reach the network.
func (s *WalletService) Transfer(ctx context.Context, input ports.TransferInput) error {
	username := strings.TrimSpace(input.RecipientUsername)
	if username == "" {
		return apperror.ErrInvalidRecipient()
	}

	toAccount, err := strconv.ParseInt(strings.TrimSpace(input.ToAccount), 10, 64)
	if err != nil || toAccount <= 0 {
		return apperror.ErrInvalidToAccount()
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(input.Amount), 64)
	if err != nil || amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	if _, err := s.backend.TransferETH(ctx, ports.TransferRequest{
		RecipientUsername: username,
		ToAccount:         toAccount,
		Amount:            amount,
	}); err != nil {
		return err
	}

	// Optimistic decrement, floored so a racing refresh can never leave a
	// visibly negative balance.
	s.mu.Lock()
	s.balance = s.balance - amount
	if s.balance < 0 {
		s.balance = 0
	}
	s.mu.Unlock()

	s.log.Info().Int64("to_account", toAccount).Float64("amount", amount).Msg("transfer accepted")

	if err := s.LoadTransactions(ctx); err != nil {
		// The transfer itself succeeded; a failed reconcile only delays the
		// refreshed list until the next load or push signal.
		s.log.Warn().Err(err).Msg("post-transfer reconcile failed")
	}
	return nil
}

// CloseAccount deletes the user's ledger account and empties local account
// state on success.
func (s *WalletService) CloseAccount(ctx context.Context) error {
	if err := s.backend.CloseAccount(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.clearStateLocked()
	s.mu.Unlock()

	s.log.Info().Msg("account closed")
	return nil
}

// Reset clears all wallet state back to empty defaults, including the
// simulated rate. Called on logout to prevent leakage across sessions.
func (s *WalletService) Reset() {
	s.mu.Lock()
	s.clearStateLocked()
	s.mu.Unlock()
	s.rate.Reset()
}

func (s *WalletService) clearStateLocked() {
	s.balance = 0
	s.accountID = nil
	s.txs = nil
}

// Snapshot returns the display projection: transactions sorted by descending
// block number then descending nonce, with a USD value derived for entries
// the backend left blank. The derivation uses the transaction's own recorded
// rate when present, else the current simulated rate, so it can differ
// between renders as the ticker moves.
func (s *WalletService) Snapshot() domain.WalletSnapshot {
	currentRate := s.rate.Current()

	s.mu.Lock()
	snap := domain.WalletSnapshot{
		Balance:      s.balance,
		ExchangeRate: currentRate,
		Transactions: make([]domain.Transaction, len(s.txs)),
	}
	if s.accountID != nil {
		id := *s.accountID
		snap.AccountID = &id
	}
	copy(snap.Transactions, s.txs)
	s.mu.Unlock()

	domain.SortForDisplay(snap.Transactions)
	for i := range snap.Transactions {
		tx := &snap.Transactions[i]
		if tx.USDValue != nil {
			continue
		}
		rate := currentRate
		if tx.USDRateUsed != nil {
			rate = *tx.USDRateUsed
		}
		usd := roundCents(tx.ValueETH * rate)
		tx.USDValue = &usd
	}
	return snap
}

func (s *WalletService) authenticated() bool {
	token, err := s.creds.Load()
	return err == nil && token != ""
}
