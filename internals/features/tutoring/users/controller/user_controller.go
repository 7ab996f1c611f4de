// file: internals/features/tutoring/users/controller/user_controller.go
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
	helperAuth "upkraft_backend/internals/helpers/auth"

	m "upkraft_backend/internals/features/tutoring/users/model"
)

/* =========================
   Controller & Constructor
   ========================= */

// Read-only surface over user records: profile of the acting identity
// and the enrolled-student pickers the calendar UI needs. Account
// management lives in the auth service.
type UserController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *UserController { return &UserController{DB: db} }

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// Me returns the effective actor's profile (the delegated tutor when
// the token carries an act_as claim).
func (ctl *UserController) Me(c *fiber.Ctx) error {
	actorID, err := helperAuth.ResolveActorID(c)
	if err != nil {
		return err
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", actorID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"user":          user,
		"impersonating": helperAuth.IsImpersonating(c),
	})
}

// StudentsByCourse lists the students enrolled in one course (array
// enrollment or the legacy singular column).
func (ctl *UserController) StudentsByCourse(c *fiber.Ctx) error {
	courseID, err := parseUUIDParam(c, "course_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.UserModel{}).
		Where("user_role = ?", m.RoleStudent).
		Where("(? = ANY(COALESCE(user_course_ids, '{}')) OR user_course_id = ?)",
			courseID.String(), courseID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var students []m.UserModel
	if err := q.Order("user_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", students,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
