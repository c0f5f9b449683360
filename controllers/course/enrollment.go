package controllers

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	coursevalidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse runs the existence check, the insert and the popularity
// increment in one transaction. The composite unique index on
// (user_id, course_id) closes the check-then-act window: a concurrent
// duplicate fails on insert and rolls the counter back with it.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
	}

	reqData, ok := c.Locals("validatedEnroll").(*coursevalidator.EnrollRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
	}

	tx := db.Begin()

	var course models.Course
	if err := tx.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	var existing models.Enrollment
	if err := tx.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).First(&existing).Error; err == nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "You are already enrolled in this course")
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: reqData.CourseID,
	}

	if err := tx.Create(&enrollment).Error; err != nil {
		// Unique index backstop: a concurrent enroll got there first
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "You are already enrolled in this course")
	}

	if err := tx.Model(&models.Course{}).Where("id = ?", reqData.CourseID).
		Update("popularity", gorm.Expr("popularity + 1")).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to enroll in course!")
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Failed to commit enrollment:", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to enroll in course!")
	}

	utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)

	return c.JSON(fiber.Map{
		"message":    "Enrolled successfully",
		"enrollment": enrollment,
	})
}

// GetEnrolledUsers lists the public profiles of everyone enrolled in a course
func GetEnrolledUsers(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseId").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("course_id = ?", courseID).
		Preload("User").Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to fetch enrollments!")
	}

	users := make([]models.PublicProfile, 0, len(enrollments))
	for _, e := range enrollments {
		users = append(users, e.User.Public())
	}

	return c.JSON(fiber.Map{
		"users": users,
	})
}
