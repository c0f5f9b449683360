package utils

import (
	"lms/database"
	"lms/models"
	"log"

	"github.com/robfig/cron/v3"
)

// StartPopularityReconciler schedules the hourly popularity check. The enroll
// and delete paths keep the counter transactionally correct; this job re-derives
// it from the enrollments table in case anything ever drifts.
func StartPopularityReconciler() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", ReconcilePopularity); err != nil {
		log.Printf("Failed to schedule popularity reconciler: %v", err)
		return c
	}
	c.Start()
	return c
}

// ReconcilePopularity recomputes each course's popularity from its enrollment count
func ReconcilePopularity() {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		log.Printf("Reconciler: failed to fetch courses: %v", err)
		return
	}

	for _, course := range courses {
		var count int64
		if err := db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&count).Error; err != nil {
			log.Printf("Reconciler: failed to count enrollments for course %s: %v", course.ID, err)
			continue
		}

		if int(count) != course.Popularity {
			log.Printf("Reconciler: course %s popularity %d != enrollment count %d, fixing", course.ID, course.Popularity, count)
			if err := db.Model(&models.Course{}).Where("id = ?", course.ID).Update("popularity", count).Error; err != nil {
				log.Printf("Reconciler: failed to fix popularity for course %s: %v", course.ID, err)
			}
		}
	}
}
