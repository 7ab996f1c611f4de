// file: internals/features/tutoring/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	model "upkraft_backend/internals/features/tutoring/classes/model"
)

/* =========================================================
   Helpers
   ========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func parseDateYYYYMMDD(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// padClock zero-pads a single-digit hour ("9:00" -> "09:00") so the
// lexical comparison below stays a valid time ordering for every clock
// the parser accepts.
func padClock(s string) string {
	s = strings.TrimSpace(s)
	if strings.IndexByte(s, ':') == 1 {
		return "0" + s
	}
	return s
}

// EndAfterStartLexical compares two HH:mm tokens that share one
// calendar date; after zero-padding, plain string ordering is the time
// ordering.
func EndAfterStartLexical(start, end string) bool {
	return padClock(end) > padClock(start)
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type EditType string

const (
	EditSingle EditType = "single"
	EditAll    EditType = "all"
)

// Create: course id may be omitted from the body — the controller falls
// back to the query string and then the Referer URL.
type CreateClassRequest struct {
	ClassCourseID string `json:"class_course_id" validate:"omitempty,uuid"`

	ClassTitle       string `json:"class_title"       validate:"required,max=160"`
	ClassDescription string `json:"class_description" validate:"required"`

	// wall-clock inputs (converted to UTC before storage)
	ClassDate      string `json:"class_date"       validate:"required,datetime=2006-01-02"`
	ClassStartTime string `json:"class_start_time" validate:"required"`
	ClassEndTime   string `json:"class_end_time"   validate:"required"`
	TimeZone       string `json:"time_zone"        validate:"omitempty,max=64"` // IANA, default UTC

	// recurrence (already-expanded batches share one key)
	ClassRecurrenceID    *string `json:"class_recurrence_id"    validate:"omitempty,max=64"`
	ClassRecurrenceType  *string `json:"class_recurrence_type"  validate:"omitempty,oneof=daily weekly weekdays"`
	ClassRecurrenceUntil *string `json:"class_recurrence_until" validate:"omitempty,datetime=2006-01-02"`

	ClassJoinURL      *string `json:"class_join_url"      validate:"omitempty,url"`
	ClassRecordingURL *string `json:"class_recording_url" validate:"omitempty,url"`
}

func (r CreateClassRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r CreateClassRequest) ToModel(courseID uuid.UUID, tutorID *uuid.UUID, startUTC, endUTC time.Time) model.ClassModel {
	m := model.ClassModel{
		ClassTitle:       strings.TrimSpace(r.ClassTitle),
		ClassDescription: strings.TrimSpace(r.ClassDescription),
		ClassCourseID:    courseID,
		ClassTutorID:     tutorID,
		ClassStartTime:   startUTC,
		ClassEndTime:     endUTC,
		ClassJoinURL:     trimPtr(r.ClassJoinURL),
	}

	if rid := trimPtr(r.ClassRecurrenceID); rid != nil {
		m.ClassRecurrenceID = rid
		if rt := trimPtr(r.ClassRecurrenceType); rt != nil {
			t := model.RecurrenceType(strings.ToLower(*rt))
			m.ClassRecurrenceType = &t
		}
		if ru := trimPtr(r.ClassRecurrenceUntil); ru != nil {
			if d, ok := parseDateYYYYMMDD(*ru); ok {
				m.ClassRecurrenceUntil = &d
			}
		}
	}

	// Recording tri-state: NULL when no recording, 0 (queued) when one
	// was supplied. 1 is set later by the processing pipeline.
	if rec := trimPtr(r.ClassRecordingURL); rec != nil {
		m.ClassRecordingURL = rec
		queued := int16(0)
		m.ClassRecordingProcessed = &queued
	}

	return m
}

// Update: one occurrence (edit_type=single) or the whole series
// (edit_type=all). ClassJoinURL keeps pointer semantics: present in the
// body (even empty) overwrites, absent leaves the stored value alone.
type UpdateClassRequest struct {
	EditType EditType `json:"edit_type" validate:"omitempty,oneof=single all"`

	ClassTitle       string `json:"class_title"`
	ClassDescription string `json:"class_description"`

	ClassDate      *string `json:"class_date"`
	ClassStartTime string  `json:"class_start_time"`
	ClassEndTime   string  `json:"class_end_time"`
	TimeZone       string  `json:"time_zone"`

	ClassJoinURL *string `json:"class_join_url"`
}

// FieldError names the first violated field so the client can point at
// the offending input.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// ValidateOrdered applies the checks in a fixed order: title/description
// non-blank, both times present, end after start (lexical — both tokens
// share one date), then date required for a single-occurrence edit.
func (r UpdateClassRequest) ValidateOrdered() *FieldError {
	if strings.TrimSpace(r.ClassTitle) == "" {
		return &FieldError{Field: "class_title", Message: "class_title is required"}
	}
	if strings.TrimSpace(r.ClassDescription) == "" {
		return &FieldError{Field: "class_description", Message: "class_description is required"}
	}
	if strings.TrimSpace(r.ClassStartTime) == "" || strings.TrimSpace(r.ClassEndTime) == "" {
		return &FieldError{Field: "class_start_time", Message: "class_start_time and class_end_time are required"}
	}
	if !EndAfterStartLexical(r.ClassStartTime, r.ClassEndTime) {
		return &FieldError{Field: "class_end_time", Message: "class_end_time must be after class_start_time"}
	}
	if r.Mode() == EditSingle {
		if r.ClassDate == nil || strings.TrimSpace(*r.ClassDate) == "" {
			return &FieldError{Field: "class_date", Message: "class_date is required for a single edit"}
		}
	}
	return nil
}

func (r UpdateClassRequest) Mode() EditType {
	if r.EditType == EditAll {
		return EditAll
	}
	return EditSingle
}

// Zone returns the caller zone, defaulting to UTC.
func (r UpdateClassRequest) Zone() string {
	return strings.TrimSpace(r.TimeZone)
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ClassResponse struct {
	ClassID          uuid.UUID  `json:"class_id"`
	ClassTitle       string     `json:"class_title"`
	ClassDescription string     `json:"class_description"`
	ClassCourseID    uuid.UUID  `json:"class_course_id"`
	ClassTutorID     *uuid.UUID `json:"class_tutor_id,omitempty"`

	ClassStartTime time.Time `json:"class_start_time"`
	ClassEndTime   time.Time `json:"class_end_time"`

	ClassRecurrenceID    *string    `json:"class_recurrence_id,omitempty"`
	ClassRecurrenceType  *string    `json:"class_recurrence_type,omitempty"`
	ClassRecurrenceUntil *time.Time `json:"class_recurrence_until,omitempty"`

	ClassJoinURL            *string `json:"class_join_url,omitempty"`
	ClassRecordingURL       *string `json:"class_recording_url,omitempty"`
	ClassRecordingProcessed *int16  `json:"class_recording_processed,omitempty"`

	ClassCreatedAt time.Time `json:"class_created_at"`
	ClassUpdatedAt time.Time `json:"class_updated_at"`
}

func NewClassResponse(m *model.ClassModel) ClassResponse {
	resp := ClassResponse{
		ClassID:                 m.ClassID,
		ClassTitle:              m.ClassTitle,
		ClassDescription:        m.ClassDescription,
		ClassCourseID:           m.ClassCourseID,
		ClassTutorID:            m.ClassTutorID,
		ClassStartTime:          m.ClassStartTime,
		ClassEndTime:            m.ClassEndTime,
		ClassRecurrenceID:       m.ClassRecurrenceID,
		ClassRecurrenceUntil:    m.ClassRecurrenceUntil,
		ClassJoinURL:            m.ClassJoinURL,
		ClassRecordingURL:       m.ClassRecordingURL,
		ClassRecordingProcessed: m.ClassRecordingProcessed,
		ClassCreatedAt:          m.ClassCreatedAt,
		ClassUpdatedAt:          m.ClassUpdatedAt,
	}
	if m.ClassRecurrenceType != nil {
		t := string(*m.ClassRecurrenceType)
		resp.ClassRecurrenceType = &t
	}
	return resp
}

func NewClassResponses(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewClassResponse(&ms[i]))
	}
	return out
}
