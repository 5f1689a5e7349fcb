package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestPostgresConflictClassifier(t *testing.T) {
	tests := []struct {
		name       string
		constraint string // classifier config
		err        error
		want       bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "structured 23505",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uq_grade_records_tuple"},
			want: true,
		},
		{
			name: "wrapped structured 23505",
			err:  fmt.Errorf("insert grade: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_grade_records_tuple"}),
			want: true,
		},
		{
			name:       "23505 on an unrelated constraint is not a capture conflict",
			constraint: "uq_grade_records_tuple",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "uq_students_school_code"},
			want:       false,
		},
		{
			name: "foreign key violation is not a conflict",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "fk_grade_records_student"},
			want: false,
		},
		{
			name: "not null violation is not a conflict",
			err:  &pgconn.PgError{Code: "23502"},
			want: false,
		},
		{
			name: "gorm translated duplicate",
			err:  gorm.ErrDuplicatedKey,
			want: true,
		},
		{
			name: "message fallback, postgres phrasing",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "uq_grade_records_tuple" (SQLSTATE 23505)`),
			want: true,
		},
		{
			name:       "message fallback honors the constraint filter",
			constraint: "uq_grade_records_tuple",
			err:        errors.New(`ERROR: duplicate key value violates unique constraint "uq_enrollments_tuple" (SQLSTATE 23505)`),
			want:       false,
		},
		{
			name: "connectivity loss is not a conflict",
			err:  errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"),
			want: false,
		},
		{
			name: "generic constraint wording alone does not match",
			err:  errors.New("check constraint violated"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := PostgresConflictClassifier{ConstraintName: tt.constraint}
			if got := cc.IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}
