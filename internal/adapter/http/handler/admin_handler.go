package handler

import (
	"strconv"

	"crypto-wallet-client/internal/adapter/http/dto"
	"crypto-wallet-client/internal/core/ports"
	"crypto-wallet-client/pkg/apperror"
	"crypto-wallet-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the backend's admin endpoints to admin identities.
// These are plain passthroughs; the backend re-checks the role on every call.
type AdminHandler struct {
	backend ports.BackendClient
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(backend ports.BackendClient) *AdminHandler {
	return &AdminHandler{backend: backend}
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.backend.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}

// ListAccounts handles GET /api/admin/accounts.
func (h *AdminHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.backend.ListAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, accounts)
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, apperror.Validation("user id must be a positive number"))
		return
	}

	if err := h.backend.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.MessageResponse{Message: "user deleted"})
}
