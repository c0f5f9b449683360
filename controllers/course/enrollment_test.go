package controllers_test

import (
	"net/http"
	"testing"

	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coursePopularity(t *testing.T, courseID string) int {
	t.Helper()

	var course models.Course
	require.NoError(t, database.Database.Db.First(&course, "id = ?", courseID).Error)
	return course.Popularity
}

func TestEnroll(t *testing.T) {
	app := setupTest(t)

	admin := superAdminToken(t, app)
	user := standardToken(t, app, "norma@x.com")
	courseID := createCourse(t, app, admin, "Algorithms")

	resp := doRequest(t, app, "POST", "/course/enroll", user, fiber.Map{"courseId": courseID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	enrollment := decodeBody(t, resp)["enrollment"].(map[string]interface{})
	assert.Equal(t, courseID, enrollment["courseId"])

	assert.Equal(t, 1, coursePopularity(t, courseID))

	resp = doRequest(t, app, "GET", "/course/enrolled/"+courseID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	users := decodeBody(t, resp)["users"].([]interface{})
	require.Len(t, users, 1)
	assert.Equal(t, "norma@x.com", users[0].(map[string]interface{})["email"])
}

func TestEnrollTwice(t *testing.T) {
	app := setupTest(t)

	admin := superAdminToken(t, app)
	user := standardToken(t, app, "norma@x.com")
	courseID := createCourse(t, app, admin, "Algorithms")

	resp := doRequest(t, app, "POST", "/course/enroll", user, fiber.Map{"courseId": courseID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/course/enroll", user, fiber.Map{"courseId": courseID})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "You are already enrolled in this course", decodeBody(t, resp)["error"])

	// Popularity went up exactly once
	assert.Equal(t, 1, coursePopularity(t, courseID))

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollMissingCourse(t *testing.T) {
	app := setupTest(t)

	admin := superAdminToken(t, app)
	user := standardToken(t, app, "norma@x.com")
	courseID := createCourse(t, app, admin, "Algorithms")

	resp := doRequest(t, app, "POST", "/course/enroll", user, fiber.Map{
		"courseId": "44444444-4444-4444-4444-444444444444",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Nothing moved
	assert.Equal(t, 0, coursePopularity(t, courseID))
}

func TestEnrollRequiresAuth(t *testing.T) {
	app := setupTest(t)

	admin := superAdminToken(t, app)
	courseID := createCourse(t, app, admin, "Algorithms")

	resp := doRequest(t, app, "POST", "/course/enroll", "", fiber.Map{"courseId": courseID})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeleteAccountCascadesEnrollments(t *testing.T) {
	app := setupTest(t)

	admin := superAdminToken(t, app)
	user := standardToken(t, app, "norma@x.com")
	courseID := createCourse(t, app, admin, "Algorithms")

	resp := doRequest(t, app, "POST", "/course/enroll", user, fiber.Map{"courseId": courseID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, coursePopularity(t, courseID))

	resp = doRequest(t, app, "DELETE", "/user/", user, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 0, coursePopularity(t, courseID))

	resp = doRequest(t, app, "GET", "/course/enrolled/"+courseID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody(t, resp)["users"])
}

func TestDeleteCourseCascadesEnrollments(t *testing.T) {
	app := setupTest(t)

	admin := superAdminToken(t, app)
	user := standardToken(t, app, "norma@x.com")
	courseID := createCourse(t, app, admin, "Algorithms")

	resp := doRequest(t, app, "POST", "/course/enroll", user, fiber.Map{"courseId": courseID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "DELETE", "/course/"+courseID, admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&count)
	assert.Equal(t, int64(0), count)
}
