// file: internals/features/tutoring/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userctl "upkraft_backend/internals/features/tutoring/users/controller"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userctl.New(db)

	grp := r.Group("/users")

	grp.Get("/me", ctl.Me)
	grp.Get("/by-course/:course_id", ctl.StudentsByCourse)
}
