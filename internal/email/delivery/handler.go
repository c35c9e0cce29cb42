package delivery

import (
	"net/http"
	"strconv"

	emaildto "mailagent-backend/internal/email/dto"
	"mailagent-backend/internal/email/repository"
	"mailagent-backend/internal/email/usecase"
	"mailagent-backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EmailHandler struct {
	emailUsecase usecase.EmailUsecase
	logger       *zap.Logger
}

func NewEmailHandler(emailUsecase usecase.EmailUsecase, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{
		emailUsecase: emailUsecase,
		logger:       logger,
	}
}

func (h *EmailHandler) GetEmails(c *gin.Context) {
	query := usecase.ListQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   c.DefaultQuery("sort_by", repository.SortNewest),
		Limit:    intQuery(c, "limit", 50),
		Offset:   intQuery(c, "offset", 0),
	}

	emails, err := h.emailUsecase.ListEmails(c.GetString("userID"), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, emaildto.EmailsResponse{
		Emails: emails,
		Limit:  query.Limit,
		Offset: query.Offset,
		Count:  len(emails),
	})
}

func (h *EmailHandler) GetEmail(c *gin.Context) {
	email, err := h.emailUsecase.GetEmailByID(c.GetString("userID"), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, email)
}

func (h *EmailHandler) UpdateCategory(c *gin.Context) {
	var req emaildto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.emailUsecase.UpdateCategory(c.GetString("userID"), c.Param("id"), req.Category); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category updated"})
}

func (h *EmailHandler) MarkRead(c *gin.Context) {
	if err := h.emailUsecase.MarkRead(c.GetString("userID"), c.Param("id"), true); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email marked as read"})
}

func (h *EmailHandler) MarkUnread(c *gin.Context) {
	if err := h.emailUsecase.MarkRead(c.GetString("userID"), c.Param("id"), false); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email marked as unread"})
}

func (h *EmailHandler) ToggleStar(c *gin.Context) {
	if err := h.emailUsecase.ToggleStar(c.GetString("userID"), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "star toggled"})
}

func (h *EmailHandler) Archive(c *gin.Context) {
	if err := h.emailUsecase.Archive(c.GetString("userID"), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email archived"})
}

func (h *EmailHandler) DeleteEmail(c *gin.Context) {
	if err := h.emailUsecase.DeleteEmail(c.GetString("userID"), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email deleted"})
}

func (h *EmailHandler) LoadMockInbox(c *gin.Context) {
	emails, err := h.emailUsecase.LoadMockInbox(c.GetString("userID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emaildto.EmailsResponse{
		Emails: emails,
		Limit:  50,
		Count:  len(emails),
	})
}

func (h *EmailHandler) CreateDraft(c *gin.Context) {
	var req emaildto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.emailUsecase.CreateDraft(c.GetString("userID"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

func (h *EmailHandler) GetDrafts(c *gin.Context) {
	drafts, err := h.emailUsecase.GetDrafts(c.GetString("userID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}

func (h *EmailHandler) UpdateDraft(c *gin.Context) {
	var req emaildto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.emailUsecase.UpdateDraft(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *EmailHandler) DeleteDraft(c *gin.Context) {
	if err := h.emailUsecase.DeleteDraft(c.GetString("userID"), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "draft deleted"})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func (h *EmailHandler) respondError(c *gin.Context, err error) {
	status, message := shared.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("email request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": message})
}
