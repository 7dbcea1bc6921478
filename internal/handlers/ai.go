package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/decideforme/internal/ai"
	"github.com/localnerve/decideforme/internal/models"
	"github.com/localnerve/decideforme/internal/types"
	"github.com/localnerve/decideforme/internal/utils"
)

// AIHandler handles the chat assistant, photo analysis, comparisons and feedback
type AIHandler struct{}

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Text  string `json:"text" validate:"required"`
	Image string `json:"image"`
}

// AnalyzeRequest is the body of POST /api/analyze
type AnalyzeRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=Face Outfit Inspiration General"`
	Context string `json:"context"`
	Image   string `json:"image" validate:"required"`
}

// SaveAnalysisRequest is the body of POST /api/analyze/save
type SaveAnalysisRequest struct {
	Analysis string `json:"analysis" validate:"required"`
	Image    string `json:"image"`
}

// CompareRequest is the body of POST /api/compare
type CompareRequest struct {
	A string `json:"a" validate:"required"`
	B string `json:"b" validate:"required"`
}

// CompareResponse carries a comparison, or a null comparison and a message
type CompareResponse struct {
	Comparison *models.Comparison `json:"comparison"`
	Message    string             `json:"message,omitempty"`
}

// FeedbackRequest is the body of POST /api/feedback
type FeedbackRequest struct {
	Msg  string `json:"msg" validate:"required"`
	Type string `json:"type" validate:"required,oneof=Feedback 'Bug Report'"`
}

// GetChat handles GET /api/chat
// @Summary Chat transcript
// @Tags AI
// @Produce json
// @Success 200 {array} models.ChatMessage
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /chat [get]
func (h *AIHandler) GetChat(c *fiber.Ctx) error {
	return c.JSON(session(c).Chat.History(c.UserContext()))
}

// SendChat handles POST /api/chat
// @Summary Ask the assistant
// @Description Answers in the context of the profile, vibe and recent transcript. Model failures answer with a fallback text.
// @Tags AI
// @Accept json
// @Produce json
// @Param body body ChatRequest true "Message and optional image data URI"
// @Success 200 {object} services.ChatReply
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct "Superseded by a newer message"
// @Router /chat [post]
func (h *AIHandler) SendChat(c *fiber.Ctx) error {
	var body ChatRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	reply, err := session(c).Chat.Send(c.UserContext(), body.Text, body.Image)
	if err != nil {
		return err
	}
	return c.JSON(reply)
}

// ClearChat handles DELETE /api/chat
// @Summary Clear the chat transcript
// @Tags AI
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /chat [delete]
func (h *AIHandler) ClearChat(c *fiber.Ctx) error {
	if err := session(c).Chat.ClearHistory(c.UserContext()); err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, nil)
}

// Analyze handles POST /api/analyze
// @Summary Analyze a photo
// @Tags AI
// @Accept json
// @Produce json
// @Param body body AnalyzeRequest true "Photo kind, optional context and image"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct "Superseded by a newer analysis"
// @Router /analyze [post]
func (h *AIHandler) Analyze(c *fiber.Ctx) error {
	var body AnalyzeRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	analysis, err := session(c).Chat.Analyze(c.UserContext(), body.Kind, body.Context, body.Image)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"analysis": analysis})
}

// SaveAnalysis handles POST /api/analyze/save
// @Summary Save a photo analysis as a decision
// @Tags AI
// @Accept json
// @Produce json
// @Param body body SaveAnalysisRequest true "Analysis and image"
// @Success 201 {object} models.SavedDecision
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /analyze/save [post]
func (h *AIHandler) SaveAnalysis(c *fiber.Ctx) error {
	var body SaveAnalysisRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	saved, err := session(c).Chat.SaveAnalysis(c.UserContext(), body.Analysis, body.Image)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, saved, fiber.StatusCreated)
}

// Compare handles POST /api/compare
// @Summary Compare two options
// @Description Scores both options on several criteria. A failed comparison is a null comparison with a message.
// @Tags AI
// @Accept json
// @Produce json
// @Param body body CompareRequest true "Options"
// @Success 200 {object} CompareResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct "Superseded by a newer comparison"
// @Router /compare [post]
func (h *AIHandler) Compare(c *fiber.Ctx) error {
	var body CompareRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	cmp, err := session(c).Chat.Compare(c.UserContext(), body.A, body.B)
	switch {
	case err == nil:
		return c.JSON(CompareResponse{Comparison: cmp})
	case errors.Is(err, ai.ErrStale):
		return types.Conflict("Superseded by a newer comparison", "ai.stale")
	case errors.Is(err, ai.ErrNotConfigured):
		return c.JSON(CompareResponse{Message: ai.MissingKeyMessage})
	}
	return c.JSON(CompareResponse{Message: ai.CompareFailedMessage})
}

// SendFeedback handles POST /api/feedback
// @Summary Send feedback or a bug report
// @Tags AI
// @Accept json
// @Produce json
// @Param body body FeedbackRequest true "Feedback"
// @Success 201 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /feedback [post]
func (h *AIHandler) SendFeedback(c *fiber.Ctx) error {
	var body FeedbackRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	s := session(c)
	ctx := c.UserContext()
	if err := s.Storage.AddFeedback(ctx, s.Users.User(ctx).Username, body.Msg, body.Type); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Success", "ok": true})
}

