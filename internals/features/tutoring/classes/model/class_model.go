// file: internals/features/tutoring/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type RecurrenceType string

const (
	RecurrenceDaily    RecurrenceType = "daily"
	RecurrenceWeekly   RecurrenceType = "weekly"
	RecurrenceWeekdays RecurrenceType = "weekdays"
)

/* =========================
   Model: ClassModel
========================= */

// ClassModel is one scheduled meeting occurrence. Start/end are stored
// as absolute UTC instants only; locality is resolved at the request
// boundary from the caller-supplied zone. Existence means scheduled,
// deletion means canceled.
type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_id" json:"class_id"`

	ClassTitle       string `gorm:"type:varchar(160);not null;column:class_title" json:"class_title"`
	ClassDescription string `gorm:"type:text;not null;column:class_description" json:"class_description"`

	// Owners
	ClassCourseID uuid.UUID  `gorm:"type:uuid;not null;column:class_course_id;index" json:"class_course_id"`
	ClassTutorID  *uuid.UUID `gorm:"type:uuid;column:class_tutor_id;index" json:"class_tutor_id,omitempty"`

	// UTC instants
	ClassStartTime time.Time `gorm:"column:class_start_time;not null;index" json:"class_start_time"`
	ClassEndTime   time.Time `gorm:"column:class_end_time;not null" json:"class_end_time"`

	// Recurrence correlation key. No parent record: every class sharing
	// the same non-empty class_recurrence_id is one logical series.
	ClassRecurrenceID    *string         `gorm:"type:varchar(64);column:class_recurrence_id;index" json:"class_recurrence_id,omitempty"`
	ClassRecurrenceType  *RecurrenceType `gorm:"type:varchar(16);column:class_recurrence_type" json:"class_recurrence_type,omitempty"`
	ClassRecurrenceUntil *time.Time      `gorm:"type:date;column:class_recurrence_until" json:"class_recurrence_until,omitempty"`

	// Meeting artifacts
	ClassJoinURL      *string `gorm:"type:text;column:class_join_url" json:"class_join_url,omitempty"`
	ClassRecordingURL *string `gorm:"type:text;column:class_recording_url" json:"class_recording_url,omitempty"`

	// Tri-state: NULL = no recording, 0 = queued, 1 = processed.
	ClassRecordingProcessed *int16 `gorm:"type:smallint;column:class_recording_processed" json:"class_recording_processed,omitempty"`

	// Timestamps
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}

// IsSeries reports whether this class carries a recurrence key.
func (m *ClassModel) IsSeries() bool {
	return m.ClassRecurrenceID != nil && *m.ClassRecurrenceID != ""
}
