// file: internals/features/tutoring/classes/service/roster_service.go
package service

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================
   RosterService
   =========================

   Keeps the bidirectional ID-array cross-references between a class,
   its course (course_class_ids) and its users (user_class_ids) in
   step. Fan-out is parallel best-effort: a failed leg is logged as an
   orphaned reference and never rolls back the others. */

type RosterService struct{ DB *gorm.DB }

func NewRosterService(db *gorm.DB) *RosterService { return &RosterService{DB: db} }

// LinkOnCreate adds classID to (a) its course's class list, (b) every
// user enrolled in the course (array or legacy singular column), and
// (c) the resolved tutor. All three run concurrently.
func (s *RosterService) LinkOnCreate(ctx context.Context, classID, courseID uuid.UUID, tutorID *uuid.UUID) {
	cid := classID.String()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		err := s.DB.WithContext(ctx).Exec(`
UPDATE courses
SET course_class_ids = array_append(COALESCE(course_class_ids, '{}'), ?)
WHERE course_id = ?
  AND NOT (? = ANY(COALESCE(course_class_ids, '{}')))
  AND course_deleted_at IS NULL`, cid, courseID, cid).Error
		if err != nil {
			log.Printf("[WARN] orphaned reference: class %s not linked into course %s: %v", cid, courseID, err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		err := s.DB.WithContext(ctx).Exec(`
UPDATE users
SET user_class_ids = array_append(COALESCE(user_class_ids, '{}'), ?)
WHERE (? = ANY(COALESCE(user_course_ids, '{}')) OR user_course_id = ?)
  AND NOT (? = ANY(COALESCE(user_class_ids, '{}')))
  AND user_deleted_at IS NULL`, cid, courseID.String(), courseID, cid).Error
		if err != nil {
			log.Printf("[WARN] orphaned reference: class %s not linked into enrolled users of course %s: %v", cid, courseID, err)
		}
	}()

	if tutorID != nil && *tutorID != uuid.Nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.DB.WithContext(ctx).Exec(`
UPDATE users
SET user_class_ids = array_append(COALESCE(user_class_ids, '{}'), ?)
WHERE user_id = ?
  AND NOT (? = ANY(COALESCE(user_class_ids, '{}')))
  AND user_deleted_at IS NULL`, cid, *tutorID, cid).Error
			if err != nil {
				log.Printf("[WARN] orphaned reference: class %s not linked into tutor %s: %v", cid, *tutorID, err)
			}
		}()
	}

	wg.Wait()
}

// UnlinkOnDelete pulls the given class IDs out of every course and user
// that references them. Legs run concurrently; errors are returned so
// the caller can surface them (no document may keep referencing a
// deleted class after the delete call succeeds).
func (s *RosterService) UnlinkOnDelete(ctx context.Context, classIDs []string) error {
	if len(classIDs) == 0 {
		return nil
	}
	ids := pq.Array(classIDs)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[0] = s.DB.WithContext(ctx).Exec(`
UPDATE courses
SET course_class_ids = (
  SELECT COALESCE(array_agg(e), '{}') FROM unnest(course_class_ids) AS e
  WHERE NOT (e = ANY(?::text[]))
)
WHERE course_class_ids && ?::text[]`, ids, ids).Error
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[1] = s.DB.WithContext(ctx).Exec(`
UPDATE users
SET user_class_ids = (
  SELECT COALESCE(array_agg(e), '{}') FROM unnest(user_class_ids) AS e
  WHERE NOT (e = ANY(?::text[]))
)
WHERE user_class_ids && ?::text[]`, ids, ids).Error
	}()

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
