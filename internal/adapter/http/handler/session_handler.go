package handler

import (
	"crypto-wallet-client/internal/adapter/http/dto"
	"crypto-wallet-client/internal/core/ports"
	"crypto-wallet-client/pkg/apperror"
	"crypto-wallet-client/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SessionHandler drives the login/register/logout flows, wiring the session
// transition to the wallet refresh and the live-update subscription the same
// way the views do: login loads account and transactions, logout resets the
// wallet and drops the push channel.
type SessionHandler struct {
	session ports.SessionController
	wallet  ports.WalletController
	live    ports.LiveUpdater
	log     zerolog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(
	session ports.SessionController,
	wallet ports.WalletController,
	live ports.LiveUpdater,
	log zerolog.Logger,
) *SessionHandler {
	return &SessionHandler{session: session, wallet: wallet, live: live, log: log}
}

// Login handles POST /api/session.
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	identity, err := h.session.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Post-login refresh; failures surface on the wallet view, never block
	// the session transition.
	if err := h.wallet.LoadAccount(c.Request.Context()); err != nil {
		h.log.Warn().Err(err).Msg("post-login account load failed")
	}
	if err := h.wallet.LoadTransactions(c.Request.Context()); err != nil {
		h.log.Warn().Err(err).Msg("post-login transaction load failed")
	}
	h.live.Track(identity)

	response.OK(c, dto.SessionResponse{Authenticated: true, Identity: identity})
}

// Logout handles DELETE /api/session.
func (h *SessionHandler) Logout(c *gin.Context) {
	h.live.Track(nil)
	if err := h.session.Logout(); err != nil {
		response.Error(c, err)
		return
	}
	h.wallet.Reset()
	response.OK(c, dto.MessageResponse{Message: "logged out"})
}

// Current handles GET /api/session.
func (h *SessionHandler) Current(c *gin.Context) {
	identity := h.session.Identity()
	response.OK(c, dto.SessionResponse{
		Authenticated: identity != nil,
		Identity:      identity,
	})
}

// Register handles POST /api/register.
func (h *SessionHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.session.Register(c.Request.Context(), ports.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		PublicKey: req.PublicKey,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.MessageResponse{Message: "user created"})
}
