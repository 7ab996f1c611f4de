// file: internals/features/tutoring/courses/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coursectl "upkraft_backend/internals/features/tutoring/courses/controller"
)

func CourseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := coursectl.New(db)

	grp := r.Group("/courses")

	grp.Get("/:id", ctl.GetByID)
	grp.Get("/:id/classes", ctl.ListClasses)
}
