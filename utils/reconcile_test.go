package utils

import (
	"fmt"
	"strings"
	"testing"

	"lms/database"
	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDb(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.Migrate(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func TestReconcilePopularity(t *testing.T) {
	db := setupDb(t)

	users := []models.User{
		{Name: "Norma Normal", Email: "norma@x.com", Password: "x"},
		{Name: "Bobby Brown", Email: "bob@x.com", Password: "x"},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}

	drifted := models.Course{Title: "Algorithms", Popularity: 7}
	require.NoError(t, db.Create(&drifted).Error)

	correct := models.Course{Title: "Databases", Popularity: 1}
	require.NoError(t, db.Create(&correct).Error)

	for i := range users {
		require.NoError(t, db.Create(&models.Enrollment{UserID: users[i].ID, CourseID: drifted.ID}).Error)
	}
	require.NoError(t, db.Create(&models.Enrollment{UserID: users[0].ID, CourseID: correct.ID}).Error)

	ReconcilePopularity()

	var fixed models.Course
	require.NoError(t, db.First(&fixed, "id = ?", drifted.ID).Error)
	assert.Equal(t, 2, fixed.Popularity)

	var untouched models.Course
	require.NoError(t, db.First(&untouched, "id = ?", correct.ID).Error)
	assert.Equal(t, 1, untouched.Popularity)
}
