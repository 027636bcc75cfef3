package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"crypto-wallet-client/config"
	"crypto-wallet-client/internal/adapter/backend"
	"crypto-wallet-client/internal/adapter/credstore"
	httpHandler "crypto-wallet-client/internal/adapter/http/handler"
	"crypto-wallet-client/internal/service"
	"crypto-wallet-client/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires the full client stack against a fake backend: real HTTP
// layer, middleware, controllers, REST client, and websocket push channel.
type testApp struct {
	ui   *httptest.Server
	live *service.LiveUpdateService
}

func newTestApp(t *testing.T, fake *fakeBackend, credFile string) *testApp {
	t.Helper()

	log := logger.New("error", false)

	creds, err := credstore.NewFileStore(credFile)
	require.NoError(t, err)

	apiClient := backend.NewClient(fake.server.URL, creds, log)
	pushClient := backend.NewPushClient(config.BackendConfig{BaseURL: fake.server.URL}, log)

	session := service.NewSessionService(apiClient, creds, service.NewTokenDecoder(), validator.New(), log)
	rate := service.NewRateService(config.RateConfig{
		Base:     3000,
		Floor:    100,
		Drift:    0.02,
		Interval: time.Hour,
	}, log)
	wallet := service.NewWalletService(apiClient, creds, rate, log)
	live := service.NewLiveUpdateService(pushClient, wallet, log)

	// Same rehydration the process entrypoint does: a surviving credential
	// re-establishes the session and resumes the push subscription.
	if identity := session.Identity(); identity != nil {
		ctx := context.Background()
		_ = wallet.LoadAccount(ctx)
		_ = wallet.LoadTransactions(ctx)
		live.Track(identity)
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Session: session,
		Wallet:  wallet,
		Live:    live,
		Backend: apiClient,
		Logger:  log,
		Mode:    gin.TestMode,
	})

	app := &testApp{ui: httptest.NewServer(router), live: live}
	t.Cleanup(func() {
		app.ui.Close()
		app.live.Close()
	})
	return app
}

func (a *testApp) post(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(a.ui.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return decodeResponse(t, resp)
}

func (a *testApp) get(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(a.ui.URL + path)
	require.NoError(t, err)
	return decodeResponse(t, resp)
}

func (a *testApp) delete(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, a.ui.URL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return decodeResponse(t, resp)
}

func decodeResponse(t *testing.T, resp *http.Response) (int, map[string]any) {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func (a *testApp) login(t *testing.T, username, password string) {
	t.Helper()
	status, body := a.post(t, "/api/session", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)
}

func credPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "token")
}

func TestIntegration_LoginWrongCredentials(t *testing.T) {
	fake := newFakeBackend()
	defer fake.close()
	fake.seedUser("user1", "pass1", "user", 0)

	app := newTestApp(t, fake, credPath(t))

	status, body := app.post(t, "/api/session", map[string]string{
		"username": "user1",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_001", body["error_code"])
	assert.Equal(t, "Incorrect username or password", body["message"])
}

func TestIntegration_RegisterLoginSetupTransfer(t *testing.T) {
	fake := newFakeBackend()
	defer fake.close()
	recipient := fake.seedUser("user2", "pass2", "user", 5)

	app := newTestApp(t, fake, credPath(t))

	// Register
	status, _ := app.post(t, "/api/register", map[string]string{
		"username":   "user1",
		"email":      "user1@example.com",
		"first_name": "User",
		"last_name":  "One",
		"password":   "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, status)

	// Login and link a key; the fake opens the account with 10 ETH.
	app.login(t, "user1", "hunter2hunter2")

	status, body := app.post(t, "/api/wallet/setup", map[string]string{"public_key": "0xabc"})
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, 10.0, data["balance"])

	// Transfer
	status, body = app.post(t, "/api/wallet/transfer", map[string]string{
		"recipient_username": "user2",
		"to_account":         fmt.Sprintf("%d", recipient.account.id),
		"amount":             "2.5",
	})
	require.Equal(t, http.StatusOK, status)

	data = body["data"].(map[string]any)
	assert.Equal(t, 7.5, data["balance"])

	txs := data["transactions"].([]any)
	require.Len(t, txs, 1)
	tx := txs[0].(map[string]any)
	assert.Equal(t, "user1", tx["from_username"])
	assert.Equal(t, "user2", tx["to_username"])
	assert.Equal(t, 2.5, tx["value_eth"])
	// The display projection fills in a USD value for entries the backend
	// reports without one.
	assert.Equal(t, 2.5*3000, tx["usd_value"])
}

func TestIntegration_TransferRejectionSurfacesDetail(t *testing.T) {
	fake := newFakeBackend()
	defer fake.close()
	recipient := fake.seedUser("user2", "pass2", "user", 5)
	fake.seedUser("user1", "pass1", "user", 1)

	app := newTestApp(t, fake, credPath(t))
	app.login(t, "user1", "pass1")

	status, body := app.post(t, "/api/wallet/transfer", map[string]string{
		"recipient_username": "user2",
		"to_account":         fmt.Sprintf("%d", recipient.account.id),
		"amount":             "50",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BKD_001", body["error_code"])
	assert.Equal(t, "Insufficient balance", body["message"])

	// The rejected transfer must not have touched the cached balance.
	status, body = app.get(t, "/api/wallet")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1.0, body["data"].(map[string]any)["balance"])
}

func TestIntegration_PushSignalRefreshesWallet(t *testing.T) {
	fake := newFakeBackend()
	defer fake.close()
	u := fake.seedUser("user1", "pass1", "user", 3)

	app := newTestApp(t, fake, credPath(t))
	app.login(t, "user1", "pass1")

	// The dial returns before the fake registers the connection; wait for the
	// registration so the one-shot signal cannot be lost.
	require.Eventually(t, func() bool {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		return len(fake.conns[u.id]) > 0
	}, 3*time.Second, 10*time.Millisecond, "push connection never registered")

	// Simulate an incoming transfer landing on the backend ledger.
	fake.mu.Lock()
	u.account.balance = 8
	fake.mu.Unlock()
	fake.notifyBalance(u.id)

	require.Eventually(t, func() bool {
		status, body := app.get(t, "/api/wallet")
		if status != http.StatusOK {
			return false
		}
		return body["data"].(map[string]any)["balance"] == 8.0
	}, 3*time.Second, 50*time.Millisecond, "push signal never refreshed the balance")
}

func TestIntegration_SessionRehydration(t *testing.T) {
	fake := newFakeBackend()
	defer fake.close()
	fake.seedUser("user1", "pass1", "user", 3)

	credFile := credPath(t)

	app1 := newTestApp(t, fake, credFile)
	app1.login(t, "user1", "pass1")

	// A second process sharing the credential file starts Authenticated.
	app2 := newTestApp(t, fake, credFile)
	status, body := app2.get(t, "/api/session")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["authenticated"])
	assert.Equal(t, "user1", data["identity"].(map[string]any)["username"])

	status, body = app2.get(t, "/api/wallet")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3.0, body["data"].(map[string]any)["balance"])
}

func TestIntegration_LogoutClearsEverything(t *testing.T) {
	fake := newFakeBackend()
	defer fake.close()
	fake.seedUser("user1", "pass1", "user", 3)

	credFile := credPath(t)
	app := newTestApp(t, fake, credFile)
	app.login(t, "user1", "pass1")

	status, _ := app.delete(t, "/api/session")
	require.Equal(t, http.StatusOK, status)

	status, body := app.get(t, "/api/session")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["data"].(map[string]any)["authenticated"])

	status, body = app.get(t, "/api/wallet")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_003", body["error_code"])

	// The cleared credential does not survive into a new process.
	app2 := newTestApp(t, fake, credFile)
	status, body = app2.get(t, "/api/session")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["data"].(map[string]any)["authenticated"])
}

func TestIntegration_AdminFlow(t *testing.T) {
	fake := newFakeBackend()
	defer fake.close()
	fake.seedUser("root", "rootpass", "admin", 0)
	victim := fake.seedUser("user1", "pass1", "user", 3)

	app := newTestApp(t, fake, credPath(t))
	app.login(t, "root", "rootpass")

	status, body := app.get(t, "/api/admin/users")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"].([]any), 2)

	status, body = app.get(t, "/api/admin/accounts")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"].([]any), 1)

	status, _ = app.delete(t, fmt.Sprintf("/api/admin/users/%d", victim.id))
	require.Equal(t, http.StatusOK, status)

	status, body = app.get(t, "/api/admin/users")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"].([]any), 1)
}

func TestIntegration_AdminEndpointsRejectUserRole(t *testing.T) {
	fake := newFakeBackend()
	defer fake.close()
	fake.seedUser("user1", "pass1", "user", 3)

	app := newTestApp(t, fake, credPath(t))
	app.login(t, "user1", "pass1")

	status, body := app.get(t, "/api/admin/users")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "AUTH_004", body["error_code"])
}
