// file: internals/features/tutoring/calendar/controller/calendar_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "upkraft_backend/internals/helpers"
	helperAuth "upkraft_backend/internals/helpers/auth"

	classDTO "upkraft_backend/internals/features/tutoring/classes/dto"
	classModel "upkraft_backend/internals/features/tutoring/classes/model"
	userModel "upkraft_backend/internals/features/tutoring/users/model"

	svc "upkraft_backend/internals/features/tutoring/calendar/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type CalendarController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *CalendarController {
	return &CalendarController{DB: db}
}

/* =========================
   Date-range filter
   ========================= */

// parseRangeBound accepts YYYY-MM-DD or RFC3339. A date-only upper
// bound covers its whole day (both bounds are inclusive).
func parseRangeBound(s string, upper bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		if upper {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	return nil, errors.New("invalid date (want YYYY-MM-DD or RFC3339): " + s)
}

func applyDateRange(q *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where("class_start_time >= ?", *from)
	}
	if to != nil {
		q = q.Where("class_start_time <= ?", *to)
	}
	return q
}

/* =========================
   ListSessions
   =========================

   One endpoint, three shapes, selected by parameter precedence:
   bulk (?student_ids=a,b,c) > single (?userid=x) > default (none:
   the acting user's own sessions). Optional ?start_date / ?end_date
   restrict on class_start_time, both bounds inclusive. */

func (ctl *CalendarController) ListSessions(c *fiber.Ctx) error {
	actorID, err := helperAuth.ResolveActorID(c)
	if err != nil {
		return err
	}

	from, err := parseRangeBound(c.Query("start_date"), false)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	to, err := parseRangeBound(c.Query("end_date"), true)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if raw := strings.TrimSpace(c.Query("student_ids")); raw != "" {
		return ctl.listBulk(c, actorID, raw, from, to)
	}
	if raw := strings.TrimSpace(c.Query("userid")); raw != "" {
		return ctl.listSingle(c, actorID, raw, from, to)
	}
	return ctl.listDefault(c, actorID, from, to)
}

func (ctl *CalendarController) loadUser(c *fiber.Ctx, id uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// loadClasses batch-loads the class rows for an already-intersected ID
// set, date-filtered, in one query.
func (ctl *CalendarController) loadClasses(c *fiber.Ctx, ids []string, from, to *time.Time) ([]classModel.ClassModel, error) {
	uuids := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if u, err := uuid.Parse(id); err == nil {
			uuids = append(uuids, u)
		}
	}
	if len(uuids) == 0 {
		return []classModel.ClassModel{}, nil
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Where("class_id IN ?", uuids)
	q = applyDateRange(q, from, to)

	var classes []classModel.ClassModel
	if err := q.Order("class_start_time ASC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

/* ---------- default: my own sessions ---------- */

func (ctl *CalendarController) listDefault(c *fiber.Ctx, actorID uuid.UUID, from, to *time.Time) error {
	me, err := ctl.loadUser(c, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "instructor not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	classes, err := ctl.loadClasses(c, me.UserClassIDs, from, to)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"classes": classDTO.NewClassResponses(classes),
		"count":   len(classes),
	})
}

/* ---------- single: sessions shared with one student ---------- */

func (ctl *CalendarController) listSingle(c *fiber.Ctx, actorID uuid.UUID, rawTarget string, from, to *time.Time) error {
	targetID, err := uuid.Parse(rawTarget)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid userid")
	}

	me, err := ctl.loadUser(c, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "instructor not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	student, err := ctl.loadUser(c, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	mine := svc.ToIDSet(me.UserClassIDs)
	shared := svc.Intersect(student.UserClassIDs, mine)

	classes, err := ctl.loadClasses(c, shared, from, to)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"classes": classDTO.NewClassResponses(classes),
		"count":   len(classes),
	})
}

/* ---------- bulk: sessions shared with many students ---------- */

type bulkStudentResult struct {
	StudentID string                   `json:"student_id"`
	Classes   []classDTO.ClassResponse `json:"classes"`
}

func (ctl *CalendarController) listBulk(c *fiber.Ctx, actorID uuid.UUID, rawIDs string, from, to *time.Time) error {
	targetIDs := svc.SplitIDList(rawIDs)
	if len(targetIDs) == 0 {
		return helper.JsonError(c, http.StatusBadRequest, "student_ids is empty")
	}

	me, err := ctl.loadUser(c, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "instructor not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	mine := svc.ToIDSet(me.UserClassIDs)

	// one query for all resolvable students; unknown IDs are skipped
	targetUUIDs := make([]uuid.UUID, 0, len(targetIDs))
	for _, id := range targetIDs {
		if u, err := uuid.Parse(id); err == nil {
			targetUUIDs = append(targetUUIDs, u)
		}
	}
	var students []userModel.UserModel
	if len(targetUUIDs) > 0 {
		if err := ctl.DB.WithContext(c.UserContext()).
			Where("user_id IN ?", targetUUIDs).
			Find(&students).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}
	byID := make(map[string]*userModel.UserModel, len(students))
	for i := range students {
		byID[svc.NormalizeID(students[i].UserID.String())] = &students[i]
	}

	// per-student intersection against the caller's roster, then one
	// batched class load across the union
	perStudent := make(map[string][]string, len(targetIDs))
	ordered := make([]string, 0, len(targetIDs))
	for _, sid := range targetIDs {
		student, ok := byID[sid]
		if !ok {
			continue // silently skipped, not an error
		}
		perStudent[sid] = svc.Intersect(student.UserClassIDs, mine)
		ordered = append(ordered, sid)
	}

	union := make([][]string, 0, len(ordered))
	for _, sid := range ordered {
		union = append(union, perStudent[sid])
	}
	classes, err := ctl.loadClasses(c, svc.Union(union...), from, to)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	// re-partition the single round-trip back per student
	byClassID := make(map[string]*classModel.ClassModel, len(classes))
	loaded := make(map[string]struct{}, len(classes))
	for i := range classes {
		n := svc.NormalizeID(classes[i].ClassID.String())
		byClassID[n] = &classes[i]
		loaded[n] = struct{}{}
	}

	parts := svc.Partition(ordered, perStudent, loaded)
	results := make([]bulkStudentResult, 0, len(parts))
	for _, p := range parts {
		entry := bulkStudentResult{StudentID: p.StudentID, Classes: []classDTO.ClassResponse{}}
		for _, cid := range p.ClassIDs {
			entry.Classes = append(entry.Classes, classDTO.NewClassResponse(byClassID[cid]))
		}
		results = append(results, entry)
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"results":        results,
		"total_students": len(results),
	})
}
