package coursevalidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Level       *int    `json:"level" validate:"omitempty,lte=3"`
}

type UpdateCourseRequest struct {
	ID          string  `json:"id" validate:"required,uuid"`
	Title       *string `json:"title" validate:"omitempty,min=3"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Level       *int    `json:"level" validate:"omitempty,lte=3"`
}

type EnrollRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
}

type CourseListRequest struct {
	Page  *int `query:"page" validate:"omitempty,gte=1"`
	Limit *int `query:"limit" validate:"omitempty,gte=1"`
}

func errorMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required!"
		case "min":
			return fe.Field() + " must be at least " + fe.Param() + " characters long!"
		case "lte":
			return fe.Field() + " must be at most " + fe.Param() + "!"
		case "gte":
			return fe.Field() + " must be at least " + fe.Param() + "!"
		case "uuid":
			return "Invalid " + fe.Field() + "!"
		}
		return fe.Field() + " is invalid!"
	}
	return "Validation failed!"
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, errorMessage(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, errorMessage(err))
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates the :id path parameter shared by detail and delete
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := validate.Var(id, "required,uuid"); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course ID!")
		}

		c.Locals("courseId", id)
		return c.Next()
	}
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, errorMessage(err))
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// EnrolledList validates the :courseId path parameter
func EnrolledList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("courseId")
		if err := validate.Var(id, "required,uuid"); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course ID!")
		}

		c.Locals("courseId", id)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseListRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, errorMessage(err))
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
