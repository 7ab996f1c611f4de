// file: internals/features/tutoring/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTutor   UserRole = "tutor"
	RoleStudent UserRole = "student"
)

/* =========================
   Model: UserModel
========================= */

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`

	UserName     string   `gorm:"type:varchar(120);not null;column:user_name" json:"user_name"`
	UserEmail    string   `gorm:"type:varchar(160);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string   `gorm:"type:varchar(255);not null;column:user_password" json:"-"`
	UserRole     UserRole `gorm:"type:varchar(20);not null;default:'student';column:user_role" json:"user_role"`

	// Roster cross-references: a user is linked to a class through this
	// list, independent of course enrollment.
	UserClassIDs pq.StringArray `gorm:"type:text[];column:user_class_ids" json:"user_class_ids"`

	// Enrollment: courses the user is signed up for. The singular
	// user_course_id predates the array and is still honored on fan-out.
	UserCourseIDs pq.StringArray `gorm:"type:text[];column:user_course_ids" json:"user_course_ids"`
	UserCourseID  *uuid.UUID     `gorm:"type:uuid;column:user_course_id" json:"user_course_id,omitempty"`

	// Timestamps
	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
