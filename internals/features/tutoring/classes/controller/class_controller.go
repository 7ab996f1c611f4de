// file: internals/features/tutoring/classes/controller/class_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "upkraft_backend/internals/helpers"
	helperAuth "upkraft_backend/internals/helpers/auth"

	courseModel "upkraft_backend/internals/features/tutoring/courses/model"

	d "upkraft_backend/internals/features/tutoring/classes/dto"
	m "upkraft_backend/internals/features/tutoring/classes/model"
	svc "upkraft_backend/internals/features/tutoring/classes/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate

	Roster *svc.RosterService
	Series *svc.SeriesService
}

func New(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{
		DB:       db,
		Validate: v,
		Roster:   svc.NewRosterService(db),
		Series:   svc.NewSeriesService(db),
	}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation
	// 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return http.StatusBadRequest, "Referenced record not found (FK violation)."
		case "23505":
			return http.StatusConflict, "Duplicate record (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}

// resolveCourseID: explicit body field → ?course_id= query → a course id
// parsed out of the Referer URL (the create form lives on the course
// detail page, so the referring URL carries the id when the body does not).
func resolveCourseID(c *fiber.Ctx, body string) (uuid.UUID, bool) {
	if id, err := uuid.Parse(strings.TrimSpace(body)); err == nil {
		return id, true
	}
	if id, err := uuid.Parse(strings.TrimSpace(c.Query("course_id"))); err == nil {
		return id, true
	}
	return courseIDFromReferer(c.Get(fiber.HeaderReferer))
}

func courseIDFromReferer(referer string) (uuid.UUID, bool) {
	referer = strings.TrimSpace(referer)
	if referer == "" {
		return uuid.Nil, false
	}
	u, err := url.Parse(referer)
	if err != nil {
		return uuid.Nil, false
	}
	for _, key := range []string{"course_id", "courseId"} {
		if id, err := uuid.Parse(u.Query().Get(key)); err == nil {
			return id, true
		}
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(segs); i++ {
		if segs[i] == "courses" || segs[i] == "course" {
			if id, err := uuid.Parse(segs[i+1]); err == nil {
				return id, true
			}
		}
	}
	return uuid.Nil, false
}

/*
========================= Create =========================
*/
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	if !helperAuth.IsTutor(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	actorID, err := helperAuth.ResolveActorID(c)
	if err != nil {
		return err
	}

	var req d.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	courseID, ok := resolveCourseID(c, req.ClassCourseID)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "course id missing: not in body, query or referer")
	}

	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var course courseModel.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("course_id = ?", courseID).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "course not found")
		}
		return writePGError(c, err)
	}

	startUTC, err := helper.ToUTC(req.ClassDate, req.ClassStartTime, req.TimeZone)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	endUTC, err := helper.ToUTC(req.ClassDate, req.ClassEndTime, req.TimeZone)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if !endUTC.After(startUTC) {
		return helper.JsonError(c, http.StatusBadRequest, "class_end_time must be after class_start_time")
	}

	tutorID := &actorID
	class := req.ToModel(courseID, tutorID, startUTC, endUTC)

	if err := ctl.DB.WithContext(c.UserContext()).Create(&class).Error; err != nil {
		return writePGError(c, err)
	}

	// Informational catalog row for the recurring slot. The edit/delete
	// paths never read it; membership lives on the class rows.
	if class.IsSeries() && class.ClassRecurrenceType != nil {
		ctl.upsertRecurrenceGroup(c, &class, req)
	}

	// Reference fan-out: best-effort, after the primary write.
	ctl.Roster.LinkOnCreate(c.UserContext(), class.ClassID, courseID, tutorID)

	return helper.JsonCreated(c, "Class created", d.NewClassResponse(&class))
}

func (ctl *ClassController) upsertRecurrenceGroup(c *fiber.Ctx, class *m.ClassModel, req d.CreateClassRequest) {
	meta, _ := sonic.Marshal(fiber.Map{
		"source_date":  req.ClassDate,
		"source_start": req.ClassStartTime,
		"source_end":   req.ClassEndTime,
		"time_zone":    req.TimeZone,
	})
	group := m.RecurrenceGroupModel{
		RecurrenceGroupID:      *class.ClassRecurrenceID,
		RecurrenceGroupType:    *class.ClassRecurrenceType,
		RecurrenceGroupTutorID: class.ClassTutorID,
		RecurrenceGroupUntil:   class.ClassRecurrenceUntil,
		RecurrenceGroupMeta:    datatypes.JSON(meta),
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&group).Error; err != nil {
		// catalog only, never blocks the class write
		log.Printf("[WARN] recurrence group %s not cataloged: %v", group.RecurrenceGroupID, err)
	}
}

/* =========================
   Get / List
   ========================= */

func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var class m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", id).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class not found")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "ok", d.NewClassResponse(&class))
}

// List returns the acting tutor's own classes, newest first, paginated.
func (ctl *ClassController) List(c *fiber.Ctx) error {
	actorID, err := helperAuth.ResolveActorID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.ClassModel{}).
		Where("class_tutor_id = ?", actorID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var classes []m.ClassModel
	if err := q.Order("class_start_time DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&classes).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonList(c, "ok", d.NewClassResponses(classes),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================
   Update (PUT) — single occurrence or whole series
   ========================= */

func (ctl *ClassController) Update(c *fiber.Ctx) error {
	if !helperAuth.IsTutor(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class not found")
		}
		return writePGError(c, err)
	}

	var req d.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ferr := req.ValidateOrdered(); ferr != nil {
		return helper.JsonError(c, http.StatusBadRequest, ferr.Message)
	}

	if req.Mode() == d.EditAll {
		return ctl.updateSeries(c, &existing, req)
	}
	return ctl.updateSingle(c, &existing, req)
}

func (ctl *ClassController) updateSingle(c *fiber.Ctx, existing *m.ClassModel, req d.UpdateClassRequest) error {
	startUTC, err := helper.ToUTC(*req.ClassDate, req.ClassStartTime, req.Zone())
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	endUTC, err := helper.ToUTC(*req.ClassDate, req.ClassEndTime, req.Zone())
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	existing.ClassTitle = strings.TrimSpace(req.ClassTitle)
	existing.ClassDescription = strings.TrimSpace(req.ClassDescription)
	existing.ClassStartTime = startUTC
	existing.ClassEndTime = endUTC
	if req.ClassJoinURL != nil {
		// field present in the body overwrites, even when empty
		existing.ClassJoinURL = req.ClassJoinURL
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Class updated", d.NewClassResponse(existing))
}

func (ctl *ClassController) updateSeries(c *fiber.Ctx, existing *m.ClassModel, req d.UpdateClassRequest) error {
	if !existing.IsSeries() {
		return helper.JsonError(c, http.StatusBadRequest, "class is not part of a series")
	}

	modified, err := ctl.Series.RescheduleAll(c.UserContext(), *existing.ClassRecurrenceID, svc.SeriesUpdate{
		Title:       strings.TrimSpace(req.ClassTitle),
		Description: strings.TrimSpace(req.ClassDescription),
		StartClock:  req.ClassStartTime,
		EndClock:    req.ClassEndTime,
		Zone:        req.Zone(),
		JoinURL:     req.ClassJoinURL,
	})
	if err != nil {
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "Series updated", fiber.Map{
		"modified_count":      modified,
		"class_recurrence_id": *existing.ClassRecurrenceID,
	})
}

/* =========================
   Delete — single occurrence or whole series
   ========================= */

type deleteAction int

const (
	deleteActionNotFound deleteAction = iota
	deleteActionSingle
	deleteActionSeries
)

// resolveDeleteAction decides how a delete request is dispatched.
// delete_type=all fans out only when the record carries a recurrence
// key; without one it downgrades to a single delete rather than
// erroring. When only a soft-deleted series row remains, the request
// still dispatches as a series delete so repeats stay idempotent and
// report zero affected instead of 404.
func resolveDeleteAction(wantSeries bool, live, tombstone *m.ClassModel) deleteAction {
	if live != nil {
		if wantSeries && live.IsSeries() {
			return deleteActionSeries
		}
		return deleteActionSingle
	}
	if wantSeries && tombstone != nil && tombstone.IsSeries() {
		return deleteActionSeries
	}
	return deleteActionNotFound
}

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	if !helperAuth.IsTutor(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	wantSeries := strings.EqualFold(c.Query("delete_type"), "all")

	var live *m.ClassModel
	var existing m.ClassModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", id).
		First(&existing).Error
	switch {
	case err == nil:
		live = &existing
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return writePGError(c, err)
	}

	var tombstone *m.ClassModel
	if live == nil && wantSeries {
		var tomb m.ClassModel
		if err := ctl.DB.WithContext(c.UserContext()).Unscoped().
			Where("class_id = ?", id).
			First(&tomb).Error; err == nil {
			tombstone = &tomb
		}
	}

	switch resolveDeleteAction(wantSeries, live, tombstone) {
	case deleteActionSeries:
		target := live
		if target == nil {
			target = tombstone
		}
		return ctl.deleteSeries(c, target)
	case deleteActionSingle:
		return ctl.deleteSingle(c, live)
	default:
		return helper.JsonError(c, http.StatusNotFound, "class not found")
	}
}

func (ctl *ClassController) deleteSingle(c *fiber.Ctx, existing *m.ClassModel) error {
	if err := ctl.Roster.UnlinkOnDelete(c.UserContext(), []string{existing.ClassID.String()}); err != nil {
		return writePGError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Class deleted", fiber.Map{
		"class_id": existing.ClassID,
	})
}

func (ctl *ClassController) deleteSeries(c *fiber.Ctx, existing *m.ClassModel) error {
	memberIDs, deleted, err := ctl.Series.DeleteAll(c.UserContext(), ctl.Roster, *existing.ClassRecurrenceID)
	if err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Series deleted", fiber.Map{
		"deleted_count":       deleted,
		"class_recurrence_id": *existing.ClassRecurrenceID,
		"class_ids":           memberIDs,
	})
}
