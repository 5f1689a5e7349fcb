package database

import (
	"reflect"
	"strings"
	"testing"

	groupModel "schoolku_backend/internals/features/school/academics/groups/model"
	staffModel "schoolku_backend/internals/features/school/academics/staff/model"
	studentModel "schoolku_backend/internals/features/school/academics/students/model"
	gradeModel "schoolku_backend/internals/features/school/grading/grades/model"
	schoolModel "schoolku_backend/internals/features/school/tenants/schools/model"
)

// Every unique index on a soft-deleting table must be partial on its
// deleted_at column, or a dead row keeps the key occupied forever (an
// unenrolled student could never re-enroll).
func TestUniqueIndexesArePartialOnLiveRows(t *testing.T) {
	want := []struct {
		index     string
		table     string
		deletedAt string
		columns   []string
	}{
		{
			index:     "uq_schools_code",
			table:     "schools",
			deletedAt: "school_deleted_at",
			columns:   []string{"school_code"},
		},
		{
			index:     "uq_staff_school_email",
			table:     "staff",
			deletedAt: "staff_deleted_at",
			columns:   []string{"staff_school_id", "staff_email"},
		},
		{
			index:     "uq_students_school_code",
			table:     "students",
			deletedAt: "student_deleted_at",
			columns:   []string{"student_school_id", "student_code"},
		},
		{
			index:     "uq_enrollments_tuple",
			table:     "enrollments",
			deletedAt: "enrollment_deleted_at",
			columns:   []string{"enrollment_school_id", "enrollment_group_id", "enrollment_period_id", "enrollment_student_id"},
		},
		{
			index:     gradeModel.UniqueTupleConstraint,
			table:     "grade_records",
			deletedAt: "grade_record_deleted_at",
			columns:   []string{"grade_record_school_id", "grade_record_student_id", "grade_record_subject_id", "grade_record_group_id", "grade_record_period_id"},
		},
	}

	if len(uniqueIndexDDL) != len(want) {
		t.Fatalf("got %d unique index statements, want %d", len(uniqueIndexDDL), len(want))
	}

	for i, w := range want {
		ddl := uniqueIndexDDL[i]
		if !strings.Contains(ddl, "CREATE UNIQUE INDEX IF NOT EXISTS "+w.index) {
			t.Errorf("statement %d does not create %s:\n%s", i, w.index, ddl)
		}
		if !strings.Contains(ddl, "ON "+w.table+" (") {
			t.Errorf("%s does not target table %s", w.index, w.table)
		}
		for _, col := range w.columns {
			if !strings.Contains(ddl, col) {
				t.Errorf("%s is missing column %s", w.index, col)
			}
		}
		if !strings.Contains(ddl, "WHERE "+w.deletedAt+" IS NULL") {
			t.Errorf("%s is not partial on %s IS NULL", w.index, w.deletedAt)
		}
	}
}

// Guard against the uniqueness migrating back into gorm tags: AutoMigrate
// would then create a full index alongside the partial one and the dead-row
// blocking returns.
func TestSoftDeletingModelsCarryNoUniqueIndexTags(t *testing.T) {
	models := []interface{}{
		schoolModel.SchoolModel{},
		staffModel.StaffModel{},
		studentModel.StudentModel{},
		groupModel.EnrollmentModel{},
		gradeModel.GradeRecordModel{},
	}

	for _, m := range models {
		rt := reflect.TypeOf(m)
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if strings.Contains(f.Tag.Get("gorm"), "uniqueIndex") {
				t.Errorf("%s.%s carries a uniqueIndex tag; uniqueness belongs in the partial DDL", rt.Name(), f.Name)
			}
		}
	}
}
