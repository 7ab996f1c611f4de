// file: internals/features/tutoring/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctl "upkraft_backend/internals/features/tutoring/classes/controller"
	"upkraft_backend/internals/validators"
)

// ClassRoutes registers the scheduling CRUD for tutors.
func ClassRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classctl.New(db, validators.Validate)

	grp := r.Group("/classes")

	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
