package delivery

import (
	"net/http"

	accountdto "mailagent-backend/internal/account/dto"
	"mailagent-backend/internal/account/usecase"
	"mailagent-backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AccountHandler struct {
	accountUsecase usecase.AccountUsecase
	logger         *zap.Logger
}

func NewAccountHandler(accountUsecase usecase.AccountUsecase, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		accountUsecase: accountUsecase,
		logger:         logger,
	}
}

func (h *AccountHandler) GetConnectURL(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"url": h.accountUsecase.AuthURL(c.GetString("userID"))})
}

func (h *AccountHandler) ConnectGmail(c *gin.Context) {
	var req accountdto.ConnectTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountUsecase.ConnectGmailWithToken(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "gmail account connected", "account": account})
}

func (h *AccountHandler) ConnectGmailWithCode(c *gin.Context) {
	var req accountdto.ConnectCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountUsecase.ConnectGmailWithCode(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "gmail account connected", "account": account})
}

func (h *AccountHandler) GetAccounts(c *gin.Context) {
	accounts, err := h.accountUsecase.GetAccounts(c.GetString("userID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

func (h *AccountHandler) Disconnect(c *gin.Context) {
	if err := h.accountUsecase.Disconnect(c.GetString("userID"), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email account disconnected"})
}

func (h *AccountHandler) Sync(c *gin.Context) {
	imported, err := h.accountUsecase.Sync(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sync complete", "imported": imported})
}

func (h *AccountHandler) respondError(c *gin.Context, err error) {
	status, message := shared.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("account request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": message})
}
