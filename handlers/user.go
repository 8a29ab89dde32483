// user.go - Handles user registration and login

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"dress-suggestion-backend/middleware" // Request id for logs
)

type RegisterInput struct { // Struct for registration input
	UserName string `json:"userName" form:"userName" binding:"required"` // Display name (required)
	Email    string `json:"email" form:"email" binding:"required,email"` // Email (required, lookup key)
	Password string `json:"password" form:"password" binding:"required"` // Password (required)
}

type LoginInput struct { // Struct for login input (also used for admin login)
	Email    string `json:"email" form:"email" binding:"required"`       // Email (required)
	Password string `json:"password" form:"password" binding:"required"` // Password (required)
}

// LoginResponse always carries isAdmin on success
type LoginResponse struct {
	Success bool   `json:"success"`
	IsAdmin bool   `json:"isAdmin"`
	Message string `json:"message"`
}

func (h *Handler) Register(c *gin.Context) { // Handler for user registration
	var input RegisterInput
	if !h.bind(c, &input) { // Parse JSON or form input
		return
	}
	if _, err := h.accounts.Register(c.Request.Context(), input.UserName, input.Email, input.Password); err != nil {
		h.respondError(c, err) // Conflict, invalid password or store failure
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: "Registration successful."})
}

func (h *Handler) Login(c *gin.Context) { // Handler for user login
	var input LoginInput
	if !h.bind(c, &input) {
		return
	}
	user, err := h.accounts.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, err) // Not found, bad password or store failure
		return
	}

	message := "User login successful."
	if user.IsAdmin {
		message = "Admin login successful."
	}
	c.JSON(http.StatusOK, LoginResponse{Success: true, IsAdmin: user.IsAdmin, Message: message})
}

func (h *Handler) AdminLogin(c *gin.Context) { // Handler for admin login
	var input LoginInput
	if !h.bind(c, &input) {
		return
	}
	if _, err := h.accounts.AdminLogin(c.Request.Context(), input.Email, input.Password); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: "Admin login successful."})
}

// bind decodes the body by Content-Type and answers 400 when it does not validate
func (h *Handler) bind(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBind(input); err != nil {
		h.log.WithError(err).WithField("request_id", middleware.RequestID(c)).Debug("request body rejected")
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: msgInvalidRequest})
		return false
	}
	return true
}
