package dto

// LoginRequest is the login form posted by the UI.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the registration form posted by the UI.
type RegisterRequest struct {
	Username  string  `json:"username" binding:"required,min=3,max=50"`
	Email     string  `json:"email" binding:"required,email"`
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Password  string  `json:"password" binding:"required,min=8,max=128"`
	PublicKey *string `json:"public_key"`
}

// SetupRequest links a public key to the logged-in user.
type SetupRequest struct {
	PublicKey string `json:"public_key" binding:"required"`
}

// TransferRequest is the raw transfer form. Fields stay strings; the wallet
// controller owns the per-field validation and its messages.
type TransferRequest struct {
	RecipientUsername string `json:"recipient_username"`
	ToAccount         string `json:"to_account"`
	Amount            string `json:"amount"`
}

// SessionResponse reports session state to the UI.
type SessionResponse struct {
	Authenticated bool        `json:"authenticated"`
	Identity      interface{} `json:"identity,omitempty"`
}

// MessageResponse is a plain acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}
