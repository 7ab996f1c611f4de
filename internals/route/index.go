// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarRoute "upkraft_backend/internals/features/tutoring/calendar/route"
	classRoute "upkraft_backend/internals/features/tutoring/classes/route"
	courseRoute "upkraft_backend/internals/features/tutoring/courses/route"
	userRoute "upkraft_backend/internals/features/tutoring/users/route"
	authMw "upkraft_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature group under /api behind auth.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api", authMw.AuthMiddleware())

	classRoute.ClassRoutes(api, db)
	calendarRoute.CalendarRoutes(api, db)
	courseRoute.CourseRoutes(api, db)
	userRoute.UserRoutes(api, db)
}
