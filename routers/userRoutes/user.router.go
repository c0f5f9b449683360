package userRoutes

import (
	userController "lms/controllers/user"
	"lms/middleware"
	uservalidator "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Post("/register", uservalidator.Register(), userController.Register)
	userGroup.Post("/superadmin", uservalidator.Register(), userController.CreateSuperAdmin)
	userGroup.Get("/verify/:token", userController.VerifyEmail)
	userGroup.Post("/login", uservalidator.Login(), userController.Login)
	userGroup.Post("/forgotpassword", uservalidator.ForgotPassword(), userController.ForgotPassword)
	userGroup.Post("/resetpassword/:token", uservalidator.ResetPassword(), userController.ResetPassword)
	userGroup.Put("/", middleware.JWTMiddleware, uservalidator.UpdateProfile(), userController.UpdateProfile)
	userGroup.Delete("/", middleware.JWTMiddleware, userController.DeleteAccount)

	// Keep last: matches any /user/<id>
	userGroup.Get("/:id", uservalidator.GetUser(), userController.GetUser)
}
