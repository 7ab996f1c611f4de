// Development seeder: migrates the schema and creates one tutor, a
// course and a couple of enrolled students so the calendar endpoints
// have something to chew on.
//
//	go run ./scripts/seed
package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"upkraft_backend/internals/configs"
	database "upkraft_backend/internals/databases"
	classModel "upkraft_backend/internals/features/tutoring/classes/model"
	courseModel "upkraft_backend/internals/features/tutoring/courses/model"
	userModel "upkraft_backend/internals/features/tutoring/users/model"
)

func main() {
	configs.LoadEnv()
	database.ConnectDB()
	db := database.DB

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&courseModel.CourseModel{},
		&classModel.ClassModel{},
		&classModel.RecurrenceGroupModel{},
	); err != nil {
		log.Fatalf("❌ migrate failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(configs.GetEnv("SEED_PASSWORD", "changeme123")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ bcrypt: %v", err)
	}

	tutor := userModel.UserModel{
		UserID:       uuid.New(),
		UserName:     "Demo Tutor",
		UserEmail:    "tutor@upkraft.dev",
		UserPassword: string(hash),
		UserRole:     userModel.RoleTutor,
	}

	course := courseModel.CourseModel{
		CourseID:          uuid.New(),
		CourseTitle:       "Piano Fundamentals",
		CourseDescription: "Weekly one-on-one piano coaching.",
		CourseTutorID:     &tutor.UserID,
	}

	students := []userModel.UserModel{
		{
			UserID:        uuid.New(),
			UserName:      "Demo Student A",
			UserEmail:     "student.a@upkraft.dev",
			UserPassword:  string(hash),
			UserRole:      userModel.RoleStudent,
			UserCourseIDs: pq.StringArray{course.CourseID.String()},
		},
		{
			UserID:       uuid.New(),
			UserName:     "Demo Student B",
			UserEmail:    "student.b@upkraft.dev",
			UserPassword: string(hash),
			UserRole:     userModel.RoleStudent,
			// legacy singular enrollment column, still honored on fan-out
			UserCourseID: &course.CourseID,
		},
	}

	for _, rec := range []any{&tutor, &course, &students[0], &students[1]} {
		if err := db.Create(rec).Error; err != nil {
			log.Fatalf("❌ seed insert failed: %v", err)
		}
	}

	log.Printf("✅ seeded tutor=%s course=%s students=%d", tutor.UserID, course.CourseID, len(students))
}
