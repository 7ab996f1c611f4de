// file: internals/features/tutoring/courses/controller/course_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "upkraft_backend/internals/helpers"

	classDTO "upkraft_backend/internals/features/tutoring/classes/dto"
	classModel "upkraft_backend/internals/features/tutoring/classes/model"
	m "upkraft_backend/internals/features/tutoring/courses/model"
)

/* =========================
   Controller & Constructor
   ========================= */

// Read-only surface: course CRUD belongs to the catalog service. This
// backend reads course records and serves their class rosters.
type CourseController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *CourseController { return &CourseController{DB: db} }

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var course m.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("course_id = ?", id).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "course not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", course)
}

// ListClasses returns the scheduled classes of one course, soonest
// first, paginated.
func (ctl *CourseController) ListClasses(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&classModel.ClassModel{}).
		Where("class_course_id = ?", id)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var classes []classModel.ClassModel
	if err := q.Order("class_start_time ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", classDTO.NewClassResponses(classes),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
