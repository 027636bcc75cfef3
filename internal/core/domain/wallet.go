package domain

// WalletSnapshot is the view-facing projection of the wallet controller state.
// Balance is a cached projection of the backend ledger, never the system of
// record: it is speculatively decremented on transfer submission and
// reconciled by re-fetching.
type WalletSnapshot struct {
	Balance      float64       `json:"balance"`
	AccountID    *int64        `json:"account_id"`
	Transactions []Transaction `json:"transactions"`
	ExchangeRate float64       `json:"exchange_rate"`
}

// AdminUser is a backend user record visible to admin identities only.
type AdminUser struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role"`
	PublicKey *string `json:"public_key"`
}

// AdminAccount is a backend ledger account record visible to admins.
type AdminAccount struct {
	AccountID int64   `json:"account_id"`
	UserID    int64   `json:"user_id"`
	Balance   float64 `json:"balance"`
	IsActive  bool    `json:"is_active"`
}
