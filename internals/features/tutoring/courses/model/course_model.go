// file: internals/features/tutoring/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================
   Model: CourseModel
========================= */

// Course CRUD itself lives in the catalog service; this backend only
// reads courses and maintains the course_class_ids roster list.
type CourseModel struct {
	// PK
	CourseID uuid.UUID `gorm:"type:uuid;primaryKey;column:course_id" json:"course_id"`

	CourseTitle       string     `gorm:"type:varchar(160);not null;column:course_title" json:"course_title"`
	CourseDescription string     `gorm:"type:text;column:course_description" json:"course_description"`
	CourseTutorID     *uuid.UUID `gorm:"type:uuid;column:course_tutor_id;index" json:"course_tutor_id,omitempty"`

	// Back-reference list of class IDs, mirror of ClassModel.ClassCourseID.
	CourseClassIDs pq.StringArray `gorm:"type:text[];column:course_class_ids" json:"course_class_ids"`

	// Timestamps
	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"-"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}
