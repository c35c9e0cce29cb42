package delivery

import (
	"net/http"

	promptdto "mailagent-backend/internal/prompt/dto"
	"mailagent-backend/internal/prompt/usecase"
	"mailagent-backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PromptHandler struct {
	promptUsecase usecase.PromptUsecase
	logger        *zap.Logger
}

func NewPromptHandler(promptUsecase usecase.PromptUsecase, logger *zap.Logger) *PromptHandler {
	return &PromptHandler{
		promptUsecase: promptUsecase,
		logger:        logger,
	}
}

func (h *PromptHandler) GetPrompts(c *gin.Context) {
	templates, err := h.promptUsecase.GetAll()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *PromptHandler) GetPromptByID(c *gin.Context) {
	template, err := h.promptUsecase.GetByID(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *PromptHandler) CreatePrompt(c *gin.Context) {
	var req promptdto.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.promptUsecase.Create(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, template)
}

func (h *PromptHandler) UpdatePrompt(c *gin.Context) {
	var req promptdto.UpdatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.promptUsecase.Update(c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *PromptHandler) ActivatePrompt(c *gin.Context) {
	template, err := h.promptUsecase.SetActive(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *PromptHandler) DeletePrompt(c *gin.Context) {
	if err := h.promptUsecase.Delete(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "prompt deleted successfully"})
}

func (h *PromptHandler) respondError(c *gin.Context, err error) {
	status, message := shared.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("prompt request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": message})
}
