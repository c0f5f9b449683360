package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	coursevalidator "lms/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*coursevalidator.CreateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	course := models.Course{
		Title: reqData.Title,
		Level: reqData.Level,
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Category != nil {
		course.Category = *reqData.Category
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error saving course to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to create course!")
	}

	return c.JSON(fiber.Map{
		"message": "Course created",
		"course":  course,
	})
}

func GetCourseDetails(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseId").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	return c.JSON(course)
}

func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*coursevalidator.CourseListRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Course{})

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to fetch courses!")
	}

	return c.JSON(fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func UpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseUpdate").(*coursevalidator.UpdateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", reqData.ID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	// Only supplied fields are written
	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Category != nil {
		updates["category"] = *reqData.Category
	}
	if reqData.Level != nil {
		updates["level"] = *reqData.Level
	}

	if len(updates) > 0 {
		if err := db.Model(&course).Updates(updates).Error; err != nil {
			log.Printf("Error updating course %s: %v", reqData.ID, err)
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to update course!")
		}
	}

	return c.JSON(fiber.Map{
		"message": "Course updated",
		"course":  course,
	})
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseId").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	// Enrollments go with the course
	tx := db.Begin()

	if err := tx.Where("course_id = ?", courseID).Delete(&models.Enrollment{}).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to delete course!")
	}

	if err := tx.Delete(&course).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to delete course!")
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Failed to commit course deletion:", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to delete course!")
	}

	return c.JSON(fiber.Map{
		"message": "Course deleted",
		"course":  course,
	})
}
