package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/decideforme/internal/models"
	"github.com/localnerve/decideforme/internal/types"
	"github.com/localnerve/decideforme/internal/utils"
)

// UserHandler handles the signed in user's profile, decisions, spin wheel and quiz
type UserHandler struct{}

// ProfileRequest is the body of PUT /api/user
type ProfileRequest struct {
	ID          string              `json:"id"`
	Name        string              `json:"name" validate:"required"`
	Username    string              `json:"username" validate:"required"`
	Email       string              `json:"email" validate:"required"`
	Avatar      string              `json:"avatar"`
	Age         string              `json:"age"`
	Gender      string              `json:"gender"`
	Preferences *models.Preferences `json:"preferences"`
}

// SpinRequest is the body of POST /api/user/spin
type SpinRequest struct {
	Options types.FlexList[string] `json:"options" validate:"min=2,max=12,dive,required"`
}

// SpinResponse is the wheel state of GET /api/user/spins
type SpinResponse struct {
	Rotation float64                   `json:"rotation"`
	History  []models.SpinHistoryEntry `json:"history"`
}

// QuizRequest is the body of POST /api/quiz
type QuizRequest struct {
	Answers []string `json:"answers" validate:"required,dive,required"`
}

// GetProfile handles GET /api/user
// @Summary Get the session profile
// @Tags User
// @Produce json
// @Success 200 {object} models.UserAccount
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	return c.JSON(withoutSecret(session(c).Users.User(c.UserContext())))
}

// UpdateProfile handles PUT /api/user
// @Summary Update the session profile
// @Description Overwrites the session profile and merges it into the matching account
// @Tags User
// @Accept json
// @Produce json
// @Param body body ProfileRequest true "Profile"
// @Success 200 {object} models.UserAccount
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var body ProfileRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	s := session(c)
	ctx := c.UserContext()

	user := s.Users.User(ctx)
	if body.ID != "" {
		user.ID = body.ID
	}
	user.Name = body.Name
	user.Username = body.Username
	user.Email = body.Email
	user.Avatar = body.Avatar
	user.Age = body.Age
	user.Gender = body.Gender
	if body.Preferences != nil {
		user.Preferences = body.Preferences
	}

	if err := s.Users.UpdateUser(ctx, user); err != nil {
		return err
	}
	return c.JSON(withoutSecret(user))
}

// GetDecisions handles GET /api/user/decisions
// @Summary List saved decisions
// @Tags Decisions
// @Produce json
// @Success 200 {array} models.SavedDecision
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/decisions [get]
func (h *UserHandler) GetDecisions(c *fiber.Ctx) error {
	return c.JSON(session(c).Users.SavedDecisions(c.UserContext()))
}

// SaveDecision handles POST /api/user/decisions
// @Summary Save a decision
// @Tags Decisions
// @Accept json
// @Produce json
// @Param body body models.SavedDecision true "Decision"
// @Success 201 {object} models.SavedDecision
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/decisions [post]
func (h *UserHandler) SaveDecision(c *fiber.Ctx) error {
	var body models.SavedDecision
	if err := parseBody(c, &body); err != nil {
		return err
	}

	saved, err := session(c).Users.SaveDecision(c.UserContext(), body)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, saved, fiber.StatusCreated)
}

// DeleteDecision handles DELETE /api/user/decisions/:id
// @Summary Delete a saved decision
// @Tags Decisions
// @Produce json
// @Param id path string true "Decision ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/decisions/{id} [delete]
func (h *UserHandler) DeleteDecision(c *fiber.Ctx) error {
	if err := session(c).Users.DeleteDecision(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, nil)
}

// GetSpins handles GET /api/user/spins
// @Summary Wheel rotation and recent winners
// @Tags Decisions
// @Produce json
// @Success 200 {object} SpinResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/spins [get]
func (h *UserHandler) GetSpins(c *fiber.Ctx) error {
	s := session(c)
	ctx := c.UserContext()

	return c.JSON(SpinResponse{
		Rotation: s.Users.Rotation(ctx),
		History:  s.Users.SpinHistory(ctx),
	})
}

// Spin handles POST /api/user/spin
// @Summary Spin the wheel
// @Description Turns the wheel over 2 to 12 options and records the winner once it stops
// @Tags Decisions
// @Accept json
// @Produce json
// @Param body body SpinRequest true "Wheel options"
// @Success 200 {object} models.SpinOutcome
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct "Wheel still turning"
// @Router /user/spin [post]
func (h *UserHandler) Spin(c *fiber.Ctx) error {
	var body SpinRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	outcome, err := session(c).Wheel.Spin(c.UserContext(), body.Options.Slice())
	if err != nil {
		return err
	}
	return c.JSON(outcome)
}

// GetQuiz handles GET /api/quiz
// @Summary Quiz questions
// @Tags Quiz
// @Produce json
// @Success 200 {array} models.QuizQuestion
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /quiz [get]
func (h *UserHandler) GetQuiz(c *fiber.Ctx) error {
	return c.JSON(session(c).Quiz.Questions(c.UserContext()))
}

// SubmitQuiz handles POST /api/quiz
// @Summary Score quiz answers
// @Description Tallies the vibe tag of each answer; ties go to the tag voted for first
// @Tags Quiz
// @Accept json
// @Produce json
// @Param body body QuizRequest true "Vibe tag per answer"
// @Success 200 {object} models.QuizResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /quiz [post]
func (h *UserHandler) SubmitQuiz(c *fiber.Ctx) error {
	var body QuizRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	result, err := session(c).Quiz.Submit(c.UserContext(), body.Answers)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetQuizResult handles GET /api/quiz/result
// @Summary Cached quiz result
// @Tags Quiz
// @Produce json
// @Success 200 {object} models.QuizResult
// @Success 204 "Quiz not taken yet"
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /quiz/result [get]
func (h *UserHandler) GetQuizResult(c *fiber.Ctx) error {
	result := session(c).Quiz.Result(c.UserContext())
	if result == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(result)
}
