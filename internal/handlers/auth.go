package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/nickstore/internal/services"
	"github.com/localnerve/nickstore/internal/utils"
)

// AuthHandler handles operator login and registration routes
type AuthHandler struct {
	Accounts *services.AccountService
}

// CredentialsRequest is the body of login and register
type CredentialsRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
}

func parseCredentials(c *fiber.Ctx) (string, string, error) {
	var body CredentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return "", "", errInvalidBody
	}
	if err := requireFields(
		field{"username", body.Username != nil},
		field{"password", body.Password != nil},
	); err != nil {
		return "", "", err
	}
	return *body.Username, *body.Password, nil
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Check an operator's username and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username, password, err := parseCredentials(c)
	if err != nil {
		return validationError(c, err.Error())
	}

	account, err := h.Accounts.Login(c.UserContext(), username, password)
	if err != nil {
		return serviceError(c, err, "Account", "login")
	}

	return c.Status(fiber.StatusOK).JSON(LoginResponse{
		Success:  true,
		Message:  "Login successful",
		Username: account.Username,
	})
}

// Register handles POST /api/auth/register
// @Summary Register
// @Description Create an operator account. The new account is not logged in.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Credentials"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	username, password, err := parseCredentials(c)
	if err != nil {
		return validationError(c, err.Error())
	}

	if err := h.Accounts.Register(c.UserContext(), username, password); err != nil {
		return serviceError(c, err, "Account", "register")
	}

	return utils.MutationSuccessResponse(c, "Registration successful")
}
