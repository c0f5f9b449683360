package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	coursevalidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course CRUD; mutations are SUPERADMIN only
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleSuperAdmin), coursevalidator.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/", coursevalidator.CourseList(), controllers.GetAllCourses)
	courseGroup.Put("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleSuperAdmin), coursevalidator.UpdateCourse(), controllers.UpdateCourse)

	// Enrollment
	courseGroup.Post("/enroll", middleware.JWTMiddleware, coursevalidator.Enroll(), controllers.EnrollInCourse)
	courseGroup.Get("/enrolled/:courseId", coursevalidator.EnrolledList(), controllers.GetEnrolledUsers)

	// Keep last: matches any /course/<id>
	courseGroup.Get("/:id", coursevalidator.CourseID(), controllers.GetCourseDetails)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleSuperAdmin), coursevalidator.CourseID(), controllers.DeleteCourse)
}
