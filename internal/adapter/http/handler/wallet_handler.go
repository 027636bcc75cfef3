package handler

import (
	"crypto-wallet-client/internal/adapter/http/dto"
	"crypto-wallet-client/internal/core/ports"
	"crypto-wallet-client/pkg/apperror"
	"crypto-wallet-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler exposes wallet state and operations to the UI. All mutation
// is delegated to the wallet controller; the handler only shapes input and
// output.
type WalletHandler struct {
	wallet ports.WalletController
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallet ports.WalletController) *WalletHandler {
	return &WalletHandler{wallet: wallet}
}

// Get handles GET /api/wallet.
func (h *WalletHandler) Get(c *gin.Context) {
	response.OK(c, h.wallet.Snapshot())
}

// Refresh handles POST /api/wallet/refresh: account then transactions, the
// same order the push listener uses.
func (h *WalletHandler) Refresh(c *gin.Context) {
	if err := h.wallet.LoadAccount(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.wallet.LoadTransactions(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.wallet.Snapshot())
}

// Setup handles POST /api/wallet/setup.
func (h *WalletHandler) Setup(c *gin.Context) {
	var req dto.SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidPublicKey())
		return
	}

	if err := h.wallet.SetupAccount(c.Request.Context(), req.PublicKey); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, h.wallet.Snapshot())
}

// Transfer handles POST /api/wallet/transfer.
func (h *WalletHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.wallet.Transfer(c.Request.Context(), ports.TransferInput{
		RecipientUsername: req.RecipientUsername,
		ToAccount:         req.ToAccount,
		Amount:            req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.wallet.Snapshot())
}

// Close handles DELETE /api/wallet/account.
func (h *WalletHandler) Close(c *gin.Context) {
	if err := h.wallet.CloseAccount(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.MessageResponse{Message: "account closed"})
}
