package uservalidator

import (
	"lms/middleware"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type RegisterRequest struct {
	Name         string  `json:"name" form:"name" validate:"required,min=5"`
	Email        string  `json:"email" form:"email" validate:"required,email"`
	Password     string  `json:"password" form:"password" validate:"required,min=8"`
	ProfileImage *string `json:"profileImage" form:"profileImage" validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type UpdateProfileRequest struct {
	Name         *string `json:"name" form:"name" validate:"omitempty,min=5"`
	Email        *string `json:"email" form:"email" validate:"omitempty,email"`
	ProfileImage *string `json:"profileImage" form:"profileImage" validate:"omitempty,url"`
}

// errorMessage renders the first failing constraint as a single message
func errorMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required!"
		case "min":
			return fe.Field() + " must be at least " + fe.Param() + " characters long!"
		case "email":
			return "Invalid email!"
		case "url":
			return "Invalid URL!"
		case "uuid":
			return "Invalid " + fe.Field() + "!"
		}
		return fe.Field() + " is invalid!"
	}
	return "Validation failed!"
}

// passwordStrengthID buckets a password by length and character diversity
// (lowercase, uppercase, digit, symbol): 0 too weak, 1 weak, 2 medium,
// 3 strong. Anything below weak is rejected.
func passwordStrengthID(password string) int {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	diversity := 0
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			diversity++
		}
	}

	length := len([]rune(password))
	switch {
	case length >= 10 && diversity == 4:
		return 3
	case length >= 8 && diversity == 4:
		return 2
	case length >= 6 && diversity >= 2:
		return 1
	default:
		return 0
	}
}

// Register validates the registration payload. Schema validation first, then
// the strength classifier: an 8-character password can still be too weak.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, errorMessage(err))
		}

		if passwordStrengthID(reqData.Password) < 1 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Password is too weak")
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, errorMessage(err))
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// ForgotPassword validator middleware
func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ForgotPasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, errorMessage(err))
		}

		c.Locals("validatedForgotPassword", reqData)
		return c.Next()
	}
}

// ResetPassword validates the new password, strength included
func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResetPasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, errorMessage(err))
		}

		if passwordStrengthID(reqData.Password) < 1 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Password is too weak")
		}

		c.Locals("validatedResetPassword", reqData)
		return c.Next()
	}
}

// UpdateProfile validates a partial profile update. Absent fields stay nil so
// the controller only writes what was actually supplied.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, errorMessage(err))
		}

		if reqData.Name == nil && reqData.Email == nil && reqData.ProfileImage == nil {
			if _, err := c.FormFile("avatar"); err != nil {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "At least one field must be provided!")
			}
		}

		c.Locals("validatedUpdateProfile", reqData)
		return c.Next()
	}
}

// GetUser validates the user id path parameter
func GetUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := validate.Var(id, "required,uuid"); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID!")
		}

		c.Locals("targetUserId", id)
		return c.Next()
	}
}
