package ports

import (
	"context"

	"crypto-wallet-client/internal/core/domain"
)

// BackendClient wraps the wallet backend REST API, one method per endpoint.
// Implementations attach the currently stored bearer credential to every call
// without the caller passing it explicitly. Failures surface as
// *apperror.AppError: NET_* when no response was received, BKD_* with the
// extracted detail message otherwise. No retries, no client-side timeouts.
type BackendClient interface {
	// Login exchanges form-encoded credentials for a signed session token.
	Login(ctx context.Context, username, password string) (*TokenResponse, error)
	// Register creates a user. It does not log the user in.
	Register(ctx context.Context, req RegisterRequest) error
	// SetupAccount links an external-chain public key to the authenticated
	// user and returns the created ledger account.
	SetupAccount(ctx context.Context, publicKey string) (*AccountState, error)
	// GetAccount fetches the authenticated user's ledger account.
	GetAccount(ctx context.Context) (*AccountState, error)
	// TransferETH submits a transfer for backend-side execution.
	TransferETH(ctx context.Context, req TransferRequest) (*TransferResult, error)
	// GetTransactions fetches the authenticated user's transaction history.
	GetTransactions(ctx context.Context) ([]domain.Transaction, error)
	// CloseAccount deletes the authenticated user's ledger account.
	CloseAccount(ctx context.Context) error

	// Admin passthroughs, rejected by the backend for non-admin tokens.
	ListUsers(ctx context.Context) ([]domain.AdminUser, error)
	ListAccounts(ctx context.Context) ([]domain.AdminAccount, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// TokenResponse is the login result.
type TokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	PublicKey   *string `json:"public_key"`
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Password  string  `json:"password"`
	Role      string  `json:"role"`
	PublicKey *string `json:"public_key"`
}

// AccountState is the balance/account pair returned by account endpoints.
type AccountState struct {
	Balance   float64 `json:"balance"`
	AccountID int64   `json:"account_id"`
}

// TransferRequest is the validated transfer payload.
type TransferRequest struct {
	RecipientUsername string  `json:"recipient_username"`
	ToAccount         int64   `json:"to_account"`
	Amount            float64 `json:"amount"`
}

// TransferResult acknowledges an executed transfer.
type TransferResult struct {
	TransactionHash string `json:"transaction_hash"`
}
