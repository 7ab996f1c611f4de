// file: internals/features/tutoring/classes/model/recurrence_group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Model: RecurrenceGroupModel
========================= */

// Informational catalog row for a recurring slot. Written once when a
// recurring class is created; the edit/delete paths never read it —
// membership is defined solely by the class_recurrence_id key stamped
// on the ClassModel rows.
type RecurrenceGroupModel struct {
	// PK = the correlation key itself
	RecurrenceGroupID string `gorm:"type:varchar(64);primaryKey;column:recurrence_group_id" json:"recurrence_group_id"`

	RecurrenceGroupType    RecurrenceType `gorm:"type:varchar(16);not null;column:recurrence_group_type" json:"recurrence_group_type"`
	RecurrenceGroupTutorID *uuid.UUID     `gorm:"type:uuid;column:recurrence_group_tutor_id;index" json:"recurrence_group_tutor_id,omitempty"`
	RecurrenceGroupUntil   *time.Time     `gorm:"type:date;column:recurrence_group_until" json:"recurrence_group_until,omitempty"`

	// Free-form regeneration metadata (source request snapshot etc.)
	RecurrenceGroupMeta datatypes.JSON `gorm:"column:recurrence_group_meta" json:"recurrence_group_meta,omitempty"`

	RecurrenceGroupCreatedAt time.Time      `gorm:"column:recurrence_group_created_at;autoCreateTime" json:"recurrence_group_created_at"`
	RecurrenceGroupDeletedAt gorm.DeletedAt `gorm:"column:recurrence_group_deleted_at;index" json:"-"`
}

func (RecurrenceGroupModel) TableName() string { return "recurrence_groups" }
