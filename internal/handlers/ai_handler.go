package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kheireldine/ai-investor-portal/internal/errors"
	"github.com/kheireldine/ai-investor-portal/internal/services"
)

// AIHandler forwards investor prompts to the upstream generative model.
type AIHandler struct {
	generator    services.Generator
	promptSuffix string
}

// NewAIHandler creates a new AIHandler. The prompt suffix is appended to
// every prompt before forwarding so responses come back as Markdown.
func NewAIHandler(generator services.Generator, promptSuffix string) *AIHandler {
	return &AIHandler{generator: generator, promptSuffix: promptSuffix}
}

// AIPromptRequest represents the AI request payload.
type AIPromptRequest struct {
	Prompt string `json:"prompt" binding:"required,notblank"`
}

// AIResponse represents the generated Markdown text.
type AIResponse struct {
	Response string `json:"response"`
}

// Generate forwards a prompt to the AI service
// @Summary     Generate AI content
// @Description Forward a prompt to the upstream model and return its Markdown answer
// @Tags        ai
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AIPromptRequest true "Prompt"
// @Success     200 {object} AIResponse "Generated text"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Upstream failure"
// @Router      /ai [post]
func (h *AIHandler) Generate(c *gin.Context) {
	// Identity comes from the validated bearer token like every other
	// protected route.
	if _, err := getInvestorID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req AIPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	text, err := h.generator.Generate(c.Request.Context(), req.Prompt+h.promptSuffix)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrUpstream, err))
		return
	}

	c.JSON(http.StatusOK, AIResponse{Response: text})
}
