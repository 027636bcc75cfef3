package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"crypto-wallet-client/internal/core/domain"
	"crypto-wallet-client/internal/core/ports"
	"crypto-wallet-client/pkg/apperror"

	"github.com/rs/zerolog"
)

// Client implements ports.BackendClient over the wallet backend REST API.
// Every call loads the stored bearer credential at request time, so callers
// never pass it explicitly. There are no retries and no client-side timeouts:
// failures propagate immediately as tagged *apperror.AppError values.
type Client struct {
	baseURL string
	http    *http.Client
	creds   ports.CredentialStore
	log     zerolog.Logger
}

// NewClient creates a backend API client rooted at baseURL.
func NewClient(baseURL string, creds ports.CredentialStore, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		creds:   creds,
		log:     log.With().Str("component", "backend_client").Logger(),
	}
}

// Login exchanges form-encoded credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (*ports.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out ports.TokenResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a user account. No session state changes.
func (c *Client) Register(ctx context.Context, payload ports.RegisterRequest) error {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/auth", payload)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// SetupAccount links a public key to the authenticated user. The key travels
// as a query parameter, matching the backend contract.
func (c *Client) SetupAccount(ctx context.Context, publicKey string) (*ports.AccountState, error) {
	path := "/user/set-up-account?" + url.Values{"public_key": {publicKey}}.Encode()
	req, err := c.newRequest(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}

	var out ports.AccountState
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAccount fetches the authenticated user's balance and account id.
func (c *Client) GetAccount(ctx context.Context) (*ports.AccountState, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/user/account", nil)
	if err != nil {
		return nil, err
	}

	var out ports.AccountState
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TransferETH submits a transfer for backend-side execution.
func (c *Client) TransferETH(ctx context.Context, payload ports.TransferRequest) (*ports.TransferResult, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/user/transfer-eth", payload)
	if err != nil {
		return nil, err
	}

	var out ports.TransferResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTransactions fetches the authenticated user's transaction history.
func (c *Client) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/user/user-transactions", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// CloseAccount deletes the authenticated user's ledger account.
func (c *Client) CloseAccount(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/user/delete-account", nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ListUsers returns all backend users. Admin tokens only.
func (c *Client) ListUsers(ctx context.Context) ([]domain.AdminUser, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/admin/users", nil)
	if err != nil {
		return nil, err
	}

	var out []domain.AdminUser
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAccounts returns all backend ledger accounts. Admin tokens only.
func (c *Client) ListAccounts(ctx context.Context) ([]domain.AdminAccount, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/admin/accounts", nil)
	if err != nil {
		return nil, err
	}

	var out []domain.AdminAccount
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteUser removes a user and its account. Admin tokens only.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/admin/delete-user/%d", userID), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("building request: %w", err))
	}

	// The credential snapshot is taken at call time; absence means the call
	// goes out unauthenticated and the backend decides.
	token, err := c.creds.Load()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("loading credential: %w", err))
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encoding request body: %w", err))
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do executes the request and decodes a success body into out (when non-nil).
// A transport failure maps to NET_001; a non-2xx response maps to BKD_001
// with the message extracted from the backend's polymorphic detail payload.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.NetworkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parseErrorDetail(body).Message()
		c.log.Debug().
			Int("status", resp.StatusCode).
			Str("path", req.URL.Path).
			Str("detail", msg).
			Msg("backend rejected request")
		return apperror.BackendError(resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperror.InternalError(fmt.Errorf("decoding %s response: %w", req.URL.Path, err))
	}
	return nil
}
