package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/decideforme/internal/models"
	"github.com/localnerve/decideforme/internal/types"
	"github.com/localnerve/decideforme/internal/utils"
)

// AdminHandler handles the admin dashboard routes
type AdminHandler struct{}

// StatusRequest is the body of PUT /api/admin/users/:id/status
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Banned"`
}

// CategoriesRequest replaces the category table at a version
type CategoriesRequest struct {
	Version    types.Version                   `json:"version"`
	Categories types.FlexList[models.Category] `json:"categories" validate:"dive"`
}

// QuizRequestBody replaces the quiz bank at a version
type QuizRequestBody struct {
	Version   types.Version                       `json:"version"`
	Questions types.FlexList[models.QuizQuestion] `json:"questions" validate:"dive"`
}

// FeedbackListRequest replaces the feedback queue at a version
type FeedbackListRequest struct {
	Version  types.Version                       `json:"version"`
	Feedback types.FlexList[models.FeedbackItem] `json:"feedback" validate:"dive"`
}

// VersionedResponse carries a table and its version
type VersionedResponse[T any] struct {
	Version types.Version `json:"version"`
	Items   []T           `json:"items"`
}

// Stats handles GET /api/admin/stats
// @Summary Dashboard statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(session(c).Storage.Stats(c.UserContext()))
}

// GetUsers handles GET /api/admin/users
// @Summary List accounts
// @Tags Admin
// @Produce json
// @Success 200 {array} models.UserAccount
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/users [get]
func (h *AdminHandler) GetUsers(c *fiber.Ctx) error {
	users := session(c).Storage.Users(c.UserContext())
	for i := range users {
		users[i] = withoutSecret(users[i])
	}
	return c.JSON(users)
}

// SetUserStatus handles PUT /api/admin/users/:id/status
// @Summary Ban or unban an account
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param body body StatusRequest true "New status"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/users/{id}/status [put]
func (h *AdminHandler) SetUserStatus(c *fiber.Ctx) error {
	var body StatusRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	if err := session(c).Storage.UpdateUserStatus(c.UserContext(), c.Params("id"), body.Status); err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, nil)
}

// UpdateUser handles PATCH /api/admin/users/:id
// @Summary Edit account details
// @Description Merges the present fields over the account; an unknown id changes nothing
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param body body models.UserUpdate true "Fields to change"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var body models.UserUpdate
	if err := parseBody(c, &body); err != nil {
		return err
	}

	id := c.Params("id")
	body.ID = &id
	if err := session(c).Storage.UpdateUserDetails(c.UserContext(), body); err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, nil)
}

// DeleteUser handles DELETE /api/admin/users/:id
// @Summary Delete an account
// @Tags Admin
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := session(c).Storage.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, nil)
}

// GetLogs handles GET /api/admin/logs
// @Summary Activity log
// @Tags Admin
// @Produce json
// @Success 200 {array} models.ActivityLog
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/logs [get]
func (h *AdminHandler) GetLogs(c *fiber.Ctx) error {
	return c.JSON(session(c).Storage.Logs(c.UserContext()))
}

// GetCategories handles GET /api/admin/categories
// @Summary Categories with their version
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/categories [get]
func (h *AdminHandler) GetCategories(c *fiber.Ctx) error {
	items, version := session(c).Storage.CategoriesVersioned(c.UserContext())
	return c.JSON(VersionedResponse[models.Category]{Version: types.Version(version), Items: items})
}

// PutCategories handles PUT /api/admin/categories
// @Summary Replace the categories
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body CategoriesRequest true "Categories and the version they were read at"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /admin/categories [put]
func (h *AdminHandler) PutCategories(c *fiber.Ctx) error {
	var body CategoriesRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	newVersion, err := session(c).Storage.ReplaceCategories(c.UserContext(), body.Categories.Slice(), body.Version.Uint64())
	if err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, &newVersion)
}

// GetQuiz handles GET /api/admin/quiz
// @Summary Quiz bank with its version
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/quiz [get]
func (h *AdminHandler) GetQuiz(c *fiber.Ctx) error {
	items, version := session(c).Storage.QuizQuestionsVersioned(c.UserContext())
	return c.JSON(VersionedResponse[models.QuizQuestion]{Version: types.Version(version), Items: items})
}

// PutQuiz handles PUT /api/admin/quiz
// @Summary Replace the quiz bank
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body QuizRequestBody true "Questions and the version they were read at"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /admin/quiz [put]
func (h *AdminHandler) PutQuiz(c *fiber.Ctx) error {
	var body QuizRequestBody
	if err := parseBody(c, &body); err != nil {
		return err
	}

	newVersion, err := session(c).Storage.ReplaceQuizQuestions(c.UserContext(), body.Questions.Slice(), body.Version.Uint64())
	if err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, &newVersion)
}

// GetFeedback handles GET /api/admin/feedback
// @Summary Feedback queue with its version
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/feedback [get]
func (h *AdminHandler) GetFeedback(c *fiber.Ctx) error {
	items, version := session(c).Storage.FeedbackVersioned(c.UserContext())
	return c.JSON(VersionedResponse[models.FeedbackItem]{Version: types.Version(version), Items: items})
}

// PutFeedback handles PUT /api/admin/feedback
// @Summary Replace the feedback queue
// @Description Used for status changes and deletions alike
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body FeedbackListRequest true "Feedback and the version it was read at"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /admin/feedback [put]
func (h *AdminHandler) PutFeedback(c *fiber.Ctx) error {
	var body FeedbackListRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	newVersion, err := session(c).Storage.ReplaceFeedback(c.UserContext(), body.Feedback.Slice(), body.Version.Uint64())
	if err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, &newVersion)
}

// GetVersions handles GET /api/admin/versions
// @Summary Versions of the editable tables
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /admin/versions [get]
func (h *AdminHandler) GetVersions(c *fiber.Ctx) error {
	versions := session(c).Storage.ContentVersions(c.UserContext())
	out := make(map[string]types.Version, len(versions))
	for key, v := range versions {
		out[key] = types.Version(v)
	}
	return c.JSON(out)
}
