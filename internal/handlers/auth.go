package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/decideforme/internal/models"
	"github.com/localnerve/decideforme/internal/services"
	"github.com/localnerve/decideforme/internal/types"
	"github.com/localnerve/decideforme/internal/utils"
)

// AuthHandler handles sign in, sign up and session routes
type AuthHandler struct{}

// LoginRequest is the body of the login routes
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"`
}

// SignupRequest is the body of POST /api/auth/signup
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// StatusResponse describes the session of the request's profile
type StatusResponse struct {
	Authenticated bool               `json:"authenticated"`
	Admin         bool               `json:"admin"`
	User          models.UserAccount `json:"user"`
}

// LoginResponse reports a successful sign in
type LoginResponse struct {
	Result string             `json:"result"`
	User   models.UserAccount `json:"user"`
}

// withoutSecret strips the stored credential before an account leaves the service
func withoutSecret(u models.UserAccount) models.UserAccount {
	u.PasswordHash = ""
	return u
}

// Status handles GET /api/auth/status
// @Summary Session status
// @Description Session flags and session profile of the calling profile
// @Tags Auth
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	s := session(c)
	ctx := c.UserContext()

	return c.JSON(StatusResponse{
		Authenticated: s.Auth.IsAuthenticated(ctx),
		Admin:         s.Auth.IsAdminAuthenticated(ctx),
		User:          withoutSecret(s.Users.User(ctx)),
	})
}

// Login handles POST /api/auth/login
// @Summary Sign in
// @Description Sign in with an email or username. The admin credential opens an admin session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct "Account banned"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body LoginRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	s := session(c)
	result, err := s.Auth.Login(c.UserContext(), body.Identifier, body.Password)
	if err != nil {
		return err
	}

	switch result {
	case services.LoginBanned:
		return types.Forbidden("This account has been banned", "auth.banned")
	case services.LoginInvalid:
		return utils.ErrorResponse(c, "Invalid credentials", fiber.StatusUnauthorized, "auth.invalid")
	}

	return c.JSON(LoginResponse{
		Result: string(result),
		User:   withoutSecret(s.Users.User(c.UserContext())),
	})
}

// Signup handles POST /api/auth/signup
// @Summary Sign up
// @Description Create an account and sign it in. A registered email keeps its account but still signs in.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "New account"
// @Success 201 {object} models.UserAccount
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body SignupRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	account, err := session(c).Auth.Signup(c.UserContext(), body.Username, body.Email, body.Password)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, withoutSecret(account), fiber.StatusCreated)
}

// ResetPassword handles POST /api/auth/reset-password
// @Summary Request a password reset
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "Account email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var body ResetPasswordRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	sent, err := session(c).Auth.ResetPassword(c.UserContext(), body.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": sent, "message": "If the account exists, a reset link is on its way."})
}

// Logout handles POST /api/auth/logout
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := session(c).Auth.Logout(c.UserContext()); err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, nil)
}

// AdminLogin handles POST /api/auth/admin/login
// @Summary Admin sign in
// @Description Opens an admin session for the admin credential only
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Admin credential"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var body LoginRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	s := session(c)
	if !s.Auth.IsAdminCredential(body.Identifier, body.Password) {
		return utils.ErrorResponse(c, "Invalid admin credentials", fiber.StatusUnauthorized, "auth.invalid")
	}
	if err := s.Auth.AdminLogin(c.UserContext()); err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, nil)
}

// AdminLogout handles POST /api/auth/admin/logout
// @Summary Admin sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Router /auth/admin/logout [post]
func (h *AuthHandler) AdminLogout(c *fiber.Ctx) error {
	if err := session(c).Auth.AdminLogout(c.UserContext()); err != nil {
		return err
	}
	return utils.MutationSuccessResponse(c, nil)
}
