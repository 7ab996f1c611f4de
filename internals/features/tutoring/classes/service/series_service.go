// file: internals/features/tutoring/classes/service/series_service.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	model "upkraft_backend/internals/features/tutoring/classes/model"
	helper "upkraft_backend/internals/helpers"
)

/* =========================
   SeriesService
   =========================

   A series is the set of class rows sharing one class_recurrence_id.
   There is no parent record and no uniqueness guarantee on the key:
   mutations always re-query the membership. */

type SeriesService struct{ DB *gorm.DB }

func NewSeriesService(db *gorm.DB) *SeriesService { return &SeriesService{DB: db} }

// ShiftToClock recomputes one member's UTC window for a series edit:
// the member keeps its own calendar date (its stored UTC start
// projected into the caller zone) while taking the new time-of-day.
func ShiftToClock(storedStartUTC time.Time, startClock, endClock, zone string) (start, end time.Time, err error) {
	date, err := helper.ProjectDate(storedStartUTC, zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, err = helper.ToUTC(date, startClock, zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = helper.ToUTC(date, endClock, zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Members loads every live class sharing recurrenceID.
func (s *SeriesService) Members(ctx context.Context, recurrenceID string) ([]model.ClassModel, error) {
	var members []model.ClassModel
	err := s.DB.WithContext(ctx).
		Where("class_recurrence_id = ?", recurrenceID).
		Order("class_start_time ASC").
		Find(&members).Error
	return members, err
}

// SeriesUpdate carries the uniform fields of an edit_type=all request.
type SeriesUpdate struct {
	Title       string
	Description string
	StartClock  string
	EndClock    string
	Zone        string
	JoinURL     *string // nil = leave stored value untouched
}

// RescheduleAll applies upd to every member of the series in one
// transaction: title/description/time-of-day change uniformly, each
// occurrence stays on its own day. Returns the number of rows written.
func (s *SeriesService) RescheduleAll(ctx context.Context, recurrenceID string, upd SeriesUpdate) (int64, error) {
	members, err := s.Members(ctx, recurrenceID)
	if err != nil {
		return 0, err
	}
	if len(members) == 0 {
		return 0, nil
	}

	var modified int64
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range members {
			m := &members[i]
			start, end, err := ShiftToClock(m.ClassStartTime, upd.StartClock, upd.EndClock, upd.Zone)
			if err != nil {
				return err
			}

			changes := map[string]any{
				"class_title":       upd.Title,
				"class_description": upd.Description,
				"class_start_time":  start,
				"class_end_time":    end,
			}
			if upd.JoinURL != nil {
				changes["class_join_url"] = *upd.JoinURL
			}

			res := tx.Model(&model.ClassModel{}).
				Where("class_id = ?", m.ClassID).
				Updates(changes)
			if res.Error != nil {
				return res.Error
			}
			modified += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return modified, nil
}

// DeleteAll removes every member of the series after pulling their IDs
// out of the course/user rosters. Returns the member IDs and the number
// of class rows actually deleted (0 on a repeat call).
func (s *SeriesService) DeleteAll(ctx context.Context, roster *RosterService, recurrenceID string) (memberIDs []string, deleted int64, err error) {
	members, err := s.Members(ctx, recurrenceID)
	if err != nil {
		return nil, 0, err
	}
	memberIDs = make([]string, 0, len(members))
	for i := range members {
		memberIDs = append(memberIDs, members[i].ClassID.String())
	}
	if len(memberIDs) == 0 {
		return memberIDs, 0, nil
	}

	if err := roster.UnlinkOnDelete(ctx, memberIDs); err != nil {
		return memberIDs, 0, err
	}

	res := s.DB.WithContext(ctx).
		Where("class_recurrence_id = ?", recurrenceID).
		Delete(&model.ClassModel{})
	if res.Error != nil {
		return memberIDs, 0, res.Error
	}
	return memberIDs, res.RowsAffected, nil
}
