// file: internals/features/tutoring/calendar/route/calendar_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calctl "upkraft_backend/internals/features/tutoring/calendar/controller"
)

// CalendarRoutes registers the multi-party calendar read endpoint.
// Query shape precedence: ?student_ids= > ?userid= > own sessions.
func CalendarRoutes(r fiber.Router, db *gorm.DB) {
	ctl := calctl.New(db)

	grp := r.Group("/calendar")

	grp.Get("/sessions", ctl.ListSessions)
}
