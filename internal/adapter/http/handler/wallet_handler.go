package handler

import (
	"visionland/internal/adapter/http/dto"
	"visionland/internal/core/ports"
	"visionland/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles the simulated wallet session endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Connect handles POST /api/v1/wallet/connect.
func (h *WalletHandler) Connect(c *gin.Context) {
	result, err := h.walletSvc.Connect(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ConnectWalletResponse{
		Address:     result.Wallet.Address,
		Token:       result.Token,
		TokenExpiry: result.TokenExpiry.Unix(),
	})
}

// Disconnect handles POST /api/v1/wallet/disconnect.
func (h *WalletHandler) Disconnect(c *gin.Context) {
	if err := h.walletSvc.Disconnect(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WalletStatusResponse{Connected: false})
}

// Current handles GET /api/v1/wallet.
func (h *WalletHandler) Current(c *gin.Context) {
	wallet, connected := h.walletSvc.Current(c.Request.Context())
	response.OK(c, dto.WalletStatusResponse{
		Connected: connected,
		Address:   wallet.Address,
	})
}

// Balance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) Balance(c *gin.Context) {
	result, err := h.walletSvc.Balance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Address: result.Address,
		Balance: result.Balance,
		ChainID: result.ChainID,
	})
}
