package database

import (
	"log"

	groupModel "schoolku_backend/internals/features/school/academics/groups/model"
	periodModel "schoolku_backend/internals/features/school/academics/periods/model"
	staffModel "schoolku_backend/internals/features/school/academics/staff/model"
	studentModel "schoolku_backend/internals/features/school/academics/students/model"
	subjectModel "schoolku_backend/internals/features/school/academics/subjects/model"
	gradeModel "schoolku_backend/internals/features/school/grading/grades/model"
	schoolModel "schoolku_backend/internals/features/school/tenants/schools/model"
)

// Every uniqueness guarantee on a soft-deleting table is a partial index over
// live rows. A full unique index (what a gorm uniqueIndex tag produces) would
// let a soft-deleted row keep occupying the key: an unenrolled student could
// never re-enroll, a removed student's code could never be reissued. gorm tags
// cannot express the WHERE clause, so these are raw DDL.
var uniqueIndexDDL = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_schools_code
	ON schools (school_code)
	WHERE school_deleted_at IS NULL`,

	`CREATE UNIQUE INDEX IF NOT EXISTS uq_staff_school_email
	ON staff (staff_school_id, staff_email)
	WHERE staff_deleted_at IS NULL`,

	`CREATE UNIQUE INDEX IF NOT EXISTS uq_students_school_code
	ON students (student_school_id, student_code)
	WHERE student_deleted_at IS NULL`,

	`CREATE UNIQUE INDEX IF NOT EXISTS uq_enrollments_tuple
	ON enrollments (enrollment_school_id, enrollment_group_id, enrollment_period_id, enrollment_student_id)
	WHERE enrollment_deleted_at IS NULL`,

	// Backstop for concurrent captures: exactly one live grade per tuple.
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + gradeModel.UniqueTupleConstraint + `
	ON grade_records (grade_record_school_id, grade_record_student_id, grade_record_subject_id, grade_record_group_id, grade_record_period_id)
	WHERE grade_record_deleted_at IS NULL`,
}

// MigrateDB keeps the schema in sync. AutoMigrate covers tables and plain
// indexes; the partial unique indexes follow as raw statements.
func MigrateDB() {
	err := DB.AutoMigrate(
		&schoolModel.SchoolModel{},
		&staffModel.StaffModel{},
		&studentModel.StudentModel{},
		&subjectModel.SubjectModel{},
		&periodModel.AcademicPeriodModel{},
		&groupModel.ClassGroupModel{},
		&groupModel.EnrollmentModel{},
		&gradeModel.GradeRecordModel{},
		&gradeModel.GradeAuditModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	for _, ddl := range uniqueIndexDDL {
		if err := DB.Exec(ddl).Error; err != nil {
			log.Fatalf("❌ Failed to create unique index: %v", err)
		}
	}

	log.Println("✅ Migrations applied.")
}
