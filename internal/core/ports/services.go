package ports

import (
	"context"

	"crypto-wallet-client/internal/core/domain"
)

// TokenDecoder extracts an identity from a session token without verifying
// the signature. Verification belongs to the backend; the client only needs
// the claims, and it must reject expired or malformed tokens.
type TokenDecoder interface {
	Decode(token string) (*domain.Identity, error)
}

// PushSubscriber opens one push-channel subscription scoped to a user and
// yields typed server events. The channel closes when the connection drops or
// ctx is canceled.
type PushSubscriber interface {
	Subscribe(ctx context.Context, userID int64) (<-chan domain.ServerEvent, error)
}

// SessionController owns the credential lifecycle: two states,
// Unauthenticated and Authenticated, with identity always re-derived from the
// last stored credential.
type SessionController interface {
	Login(ctx context.Context, username, password string) (*domain.Identity, error)
	Register(ctx context.Context, input RegisterInput) error
	Logout() error
	Identity() *domain.Identity
}

// WalletController owns account/balance/transaction state and the operations
// that mutate it. Load operations are silent no-ops when no credential is
// stored.
type WalletController interface {
	SetupAccount(ctx context.Context, publicKey string) error
	LoadAccount(ctx context.Context) error
	LoadTransactions(ctx context.Context) error
	Transfer(ctx context.Context, input TransferInput) error
	CloseAccount(ctx context.Context) error
	Reset()
	Snapshot() domain.WalletSnapshot
}

// LiveUpdater maintains at most one push subscription per active identity and
// refreshes wallet state on balance-change signals.
type LiveUpdater interface {
	// Track switches the subscription to the given identity; nil tears the
	// current subscription down without opening a new one.
	Track(identity *domain.Identity)
	Close()
}

// RegisterInput is the user-supplied registration form.
type RegisterInput struct {
	Username  string  `validate:"required,min=3,max=50"`
	Email     string  `validate:"required,email"`
	FirstName string  `validate:"required"`
	LastName  string  `validate:"required"`
	Password  string  `validate:"required,min=8,max=128"`
	PublicKey *string `validate:"-"`
}

// TransferInput is the raw transfer form as collected from the user. Fields
// stay strings so validation failures can name the offending field before any
// parsing or network traffic.
type TransferInput struct {
	RecipientUsername string
	ToAccount         string
	Amount            string
}
