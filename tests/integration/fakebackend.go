package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
)

// fakeBackend is an in-memory stand-in for the wallet backend: the REST
// surface the client talks to plus the per-user websocket push channel. Error
// bodies use the backend's {"detail": ...} shape so the client's extraction
// path is exercised for real.

type fakeUser struct {
	id        int64
	username  string
	email     string
	firstName string
	lastName  string
	password  string
	role      string
	publicKey *string
	account   *fakeAccount
	txs       []fakeTransaction
}

type fakeAccount struct {
	id      int64
	balance float64
}

type fakeTransaction struct {
	Hash         string  `json:"hash"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	FromUsername string  `json:"from_username"`
	ToUsername   string  `json:"to_username"`
	ValueETH     float64 `json:"value_eth"`
	BlockNumber  int64   `json:"block_number"`
	Nonce        int64   `json:"nonce"`
}

type fakeBackend struct {
	server *httptest.Server
	secret []byte

	mu          sync.Mutex
	usersByName map[string]*fakeUser
	nextUserID  int64
	nextAcctID  int64
	blockNumber int64
	conns       map[int64][]*websocket.Conn
}

func newFakeBackend() *fakeBackend {
	f := &fakeBackend{
		secret:      []byte("fake-backend-secret"),
		usersByName: make(map[string]*fakeUser),
		nextUserID:  1,
		nextAcctID:  1,
		conns:       make(map[int64][]*websocket.Conn),
	}

	// Go 1.21's ServeMux has no method or {wildcard} patterns; guard the
	// method in a wrapper and parse the trailing id segment in the handlers.
	requireMethod := func(method string, h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
				return
			}
			h(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/token", requireMethod(http.MethodPost, f.handleToken))
	mux.HandleFunc("/auth", requireMethod(http.MethodPost, f.handleRegister))
	mux.HandleFunc("/user/set-up-account", requireMethod(http.MethodPost, f.handleSetup))
	mux.HandleFunc("/user/account", requireMethod(http.MethodGet, f.handleAccount))
	mux.HandleFunc("/user/transfer-eth", requireMethod(http.MethodPost, f.handleTransfer))
	mux.HandleFunc("/user/user-transactions", requireMethod(http.MethodGet, f.handleTransactions))
	mux.HandleFunc("/user/delete-account", requireMethod(http.MethodDelete, f.handleDeleteAccount))
	mux.HandleFunc("/admin/users", requireMethod(http.MethodGet, f.handleAdminUsers))
	mux.HandleFunc("/admin/accounts", requireMethod(http.MethodGet, f.handleAdminAccounts))
	mux.HandleFunc("/admin/delete-user/", requireMethod(http.MethodDelete, f.handleAdminDeleteUser))
	mux.HandleFunc("/user/ws/", requireMethod(http.MethodGet, f.handleWebsocket))

	f.server = httptest.NewServer(mux)
	return f
}

func (f *fakeBackend) close() {
	f.mu.Lock()
	for _, conns := range f.conns {
		for _, c := range conns {
			c.Close()
		}
	}
	f.mu.Unlock()
	f.server.Close()
}

// seedUser registers a user directly, bypassing the HTTP surface. A non-zero
// balance also creates a ledger account.
func (f *fakeBackend) seedUser(username, password, role string, balance float64) *fakeUser {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := &fakeUser{
		id:        f.nextUserID,
		username:  username,
		email:     username + "@example.com",
		firstName: "Seed",
		lastName:  "User",
		password:  password,
		role:      role,
	}
	f.nextUserID++

	if balance > 0 {
		key := fmt.Sprintf("0xseed%04d", u.id)
		u.publicKey = &key
		u.account = &fakeAccount{id: f.nextAcctID, balance: balance}
		f.nextAcctID++
	}

	f.usersByName[username] = u
	return u
}

// notifyBalance pushes the balance-change signal to every open connection for
// the user.
func (f *fakeBackend) notifyBalance(userID int64) {
	f.mu.Lock()
	conns := append([]*websocket.Conn(nil), f.conns[userID]...)
	f.mu.Unlock()
	for _, c := range conns {
		c.WriteMessage(websocket.TextMessage, []byte("update_balance"))
	}
}

func (f *fakeBackend) issueToken(u *fakeUser) string {
	claims := jwt.MapClaims{
		"sub":  u.username,
		"id":   u.id,
		"role": u.role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	if u.publicKey != nil {
		claims["public_key"] = *u.publicKey
	} else {
		claims["public_key"] = nil
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(f.secret)
	if err != nil {
		panic(err)
	}
	return token
}

// authenticate resolves the bearer credential to a user. Callers hold no lock.
func (f *fakeBackend) authenticate(r *http.Request) *fakeUser {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil
	}

	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) { return f.secret, nil })
	if err != nil || !parsed.Valid {
		return nil
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.usersByName {
		if u.id == int64(id) {
			return u
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

func (f *fakeBackend) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed form body")
		return
	}

	f.mu.Lock()
	u := f.usersByName[r.PostForm.Get("username")]
	f.mu.Unlock()

	if u == nil || u.password != r.PostForm.Get("password") {
		writeDetail(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	resp := map[string]any{
		"access_token": f.issueToken(u),
		"token_type":   "bearer",
	}
	if u.publicKey != nil {
		resp["public_key"] = *u.publicKey
	}
	writeJSON(w, http.StatusOK, resp)
}

func (f *fakeBackend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Password  string `json:"password"`
		Role      string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.usersByName[req.Username]; exists {
		writeDetail(w, http.StatusBadRequest, "Username already registered")
		return
	}
	u := &fakeUser{
		id:        f.nextUserID,
		username:  req.Username,
		email:     req.Email,
		firstName: req.FirstName,
		lastName:  req.LastName,
		password:  req.Password,
		role:      req.Role,
	}
	f.nextUserID++
	f.usersByName[req.Username] = u

	writeJSON(w, http.StatusCreated, map[string]any{"id": u.id, "username": u.username})
}

func (f *fakeBackend) handleSetup(w http.ResponseWriter, r *http.Request) {
	u := f.authenticate(r)
	if u == nil {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	key := r.URL.Query().Get("public_key")
	if key == "" {
		writeDetail(w, http.StatusBadRequest, "public_key is required")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if u.account != nil {
		writeDetail(w, http.StatusBadRequest, "Account already exists")
		return
	}
	u.publicKey = &key
	u.account = &fakeAccount{id: f.nextAcctID, balance: 10}
	f.nextAcctID++

	writeJSON(w, http.StatusOK, map[string]any{
		"balance":    u.account.balance,
		"account_id": u.account.id,
	})
}

func (f *fakeBackend) handleAccount(w http.ResponseWriter, r *http.Request) {
	u := f.authenticate(r)
	if u == nil {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if u.account == nil {
		writeDetail(w, http.StatusNotFound, "Account not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"balance":    u.account.balance,
		"account_id": u.account.id,
	})
}

func (f *fakeBackend) handleTransfer(w http.ResponseWriter, r *http.Request) {
	u := f.authenticate(r)
	if u == nil {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req struct {
		RecipientUsername string  `json:"recipient_username"`
		ToAccount         int64   `json:"to_account"`
		Amount            float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	f.mu.Lock()
	recipient := f.usersByName[req.RecipientUsername]
	switch {
	case u.account == nil:
		f.mu.Unlock()
		writeDetail(w, http.StatusBadRequest, "Sender has no account")
		return
	case recipient == nil || recipient.account == nil || recipient.account.id != req.ToAccount:
		f.mu.Unlock()
		writeDetail(w, http.StatusNotFound, "Recipient account not found")
		return
	case u.account.balance < req.Amount:
		f.mu.Unlock()
		writeDetail(w, http.StatusBadRequest, "Insufficient balance")
		return
	}

	u.account.balance -= req.Amount
	recipient.account.balance += req.Amount
	f.blockNumber++

	tx := fakeTransaction{
		Hash:         fmt.Sprintf("0x%08x", f.blockNumber),
		From:         fmt.Sprintf("0x%040x", u.account.id),
		To:           fmt.Sprintf("0x%040x", recipient.account.id),
		FromUsername: u.username,
		ToUsername:   recipient.username,
		ValueETH:     req.Amount,
		BlockNumber:  f.blockNumber,
		Nonce:        int64(len(u.txs)),
	}
	u.txs = append(u.txs, tx)
	recipient.txs = append(recipient.txs, tx)
	senderID, recipientID := u.id, recipient.id
	f.mu.Unlock()

	f.notifyBalance(senderID)
	f.notifyBalance(recipientID)

	writeJSON(w, http.StatusOK, map[string]any{"transaction_hash": tx.Hash})
}

func (f *fakeBackend) handleTransactions(w http.ResponseWriter, r *http.Request) {
	u := f.authenticate(r)
	if u == nil {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	f.mu.Lock()
	txs := append([]fakeTransaction(nil), u.txs...)
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"transactions": txs})
}

func (f *fakeBackend) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	u := f.authenticate(r)
	if u == nil {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if u.account == nil {
		writeDetail(w, http.StatusNotFound, "Account not found")
		return
	}
	u.account = nil
	writeJSON(w, http.StatusOK, map[string]any{"message": "Account deleted"})
}

func (f *fakeBackend) requireAdmin(w http.ResponseWriter, r *http.Request) *fakeUser {
	u := f.authenticate(r)
	if u == nil {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return nil
	}
	if u.role != "admin" {
		writeDetail(w, http.StatusForbidden, "Not enough permissions")
		return nil
	}
	return u
}

func (f *fakeBackend) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	if f.requireAdmin(w, r) == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]map[string]any, 0, len(f.usersByName))
	for _, u := range f.usersByName {
		entry := map[string]any{
			"id":         u.id,
			"username":   u.username,
			"email":      u.email,
			"first_name": u.firstName,
			"last_name":  u.lastName,
			"role":       u.role,
		}
		if u.publicKey != nil {
			entry["public_key"] = *u.publicKey
		}
		users = append(users, entry)
	}
	writeJSON(w, http.StatusOK, users)
}

func (f *fakeBackend) handleAdminAccounts(w http.ResponseWriter, r *http.Request) {
	if f.requireAdmin(w, r) == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	accounts := make([]map[string]any, 0)
	for _, u := range f.usersByName {
		if u.account == nil {
			continue
		}
		accounts = append(accounts, map[string]any{
			"account_id": u.account.id,
			"user_id":    u.id,
			"balance":    u.account.balance,
			"is_active":  true,
		})
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (f *fakeBackend) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	if f.requireAdmin(w, r) == nil {
		return
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/admin/delete-user/"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for name, u := range f.usersByName {
		if u.id == id {
			delete(f.usersByName, name)
			writeJSON(w, http.StatusOK, map[string]any{"message": "User deleted"})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "User not found")
}

var upgrader = websocket.Upgrader{}

func (f *fakeBackend) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/user/ws/"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	f.mu.Lock()
	f.conns[id] = append(f.conns[id], conn)
	f.mu.Unlock()

	// Drain the read side so close frames are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
