package delivery

import (
	"net/http"

	agentdto "mailagent-backend/internal/agent/dto"
	"mailagent-backend/internal/agent/usecase"
	"mailagent-backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AgentHandler struct {
	agentUsecase usecase.AgentUsecase
	logger       *zap.Logger
}

func NewAgentHandler(agentUsecase usecase.AgentUsecase, logger *zap.Logger) *AgentHandler {
	return &AgentHandler{
		agentUsecase: agentUsecase,
		logger:       logger,
	}
}

func (h *AgentHandler) Process(c *gin.Context) {
	var req agentdto.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.agentUsecase.Process(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AgentHandler) ProcessEmail(c *gin.Context) {
	var req agentdto.ProcessEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, err := h.agentUsecase.ProcessEmail(c.Request.Context(), c.GetString("userID"), req.EmailID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, email)
}

func (h *AgentHandler) Chat(c *gin.Context) {
	var req agentdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.agentUsecase.Chat(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AgentHandler) GenerateReply(c *gin.Context) {
	var req agentdto.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.agentUsecase.GenerateReply(c.Request.Context(), c.GetString("userID"), c.Param("emailId"), req.Tone)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *AgentHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.agentUsecase.Health(c.Request.Context()))
}

func (h *AgentHandler) respondError(c *gin.Context, err error) {
	status, message := shared.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("agent request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": message})
}
