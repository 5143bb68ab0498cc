package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"samurai-nutrition/internal/middleware"
	"samurai-nutrition/internal/services"
)

// AuthHandler handles HTTP requests for authentication and the user profile.
type AuthHandler struct {
	authService *services.AuthService
	history     *services.HistoryService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler. The history service may be
// nil, in which case logins and registrations are not recorded.
func NewAuthHandler(authService *services.AuthService, history *services.HistoryService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		history:     history,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// RegisterProtectedRoutes registers the routes that require a valid token.
func (h *AuthHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/auth/verify-token", h.HandleVerifyToken)
	router.Get("/profile", h.HandleGetProfile)
	router.Put("/profile", h.HandleUpdateProfile)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	user, token, err := h.authService.Register(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return fail(c, err)
	}

	if h.history != nil {
		h.history.Record(user.ID, "register", "account created", nil, nil, c.IP(), c.Get(fiber.HeaderUserAgent))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "registration successful",
		"user":    user,
		"token":   token,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	if h.history != nil {
		h.history.Record(user.ID, "login", "signed in", nil, nil, c.IP(), c.Get(fiber.HeaderUserAgent))
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"user":    user,
		"token":   token,
	})
}

// HandleVerifyToken confirms the bearer token is still valid and returns
// the user it belongs to.
func (h *AuthHandler) HandleVerifyToken(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(fiber.Map{
		"valid": true,
		"user":  user,
	})
}

// HandleGetProfile returns the authenticated user's profile.
func (h *AuthHandler) HandleGetProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(fiber.Map{"user": user})
}

// UpdateProfileRequest represents a partial profile update. Absent
// fields are left untouched.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

// HandleUpdateProfile applies a partial update to the authenticated
// user's profile.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	updated, err := h.authService.UpdateProfile(user.ID, services.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "profile updated",
		"user":    updated,
	})
}
