package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/dberrors"
	"github.com/jsj/linkup/internal/pkg/logger"
)

// ClassRepository handles class and enrollment database operations
type ClassRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const classJoinedSelect = `
	SELECT c.id, c.class_name, c.module_id, c.class_time, c.class_date,
	       c.duration_minutes, c.location, c.instructor, m.module_name
	FROM classes c
	LEFT JOIN modules m ON c.module_id = m.id`

func scanJoinedClass(row pgx.Row, class *models.Class) error {
	return row.Scan(
		&class.ID, &class.ClassName, &class.ModuleID, &class.ClassTime,
		&class.ClassDate, &class.DurationMinutes, &class.Location,
		&class.Instructor, &class.ModuleName,
	)
}

// GetAll retrieves every class with its module name.
func (r *ClassRepository) GetAll(ctx context.Context) ([]models.Class, error) {
	rows, err := r.db.Query(ctx, classJoinedSelect+" ORDER BY c.class_date, c.class_time")
	if err != nil {
		logger.Error().Err(err).Msg("Error querying classes")
		return nil, fmt.Errorf("error querying classes: %w", err)
	}
	defer rows.Close()

	classes := []models.Class{}
	for rows.Next() {
		var class models.Class
		if err := scanJoinedClass(rows, &class); err != nil {
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

// GetByID retrieves a single class or ErrClassNotFound.
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	class := &models.Class{}
	err := scanJoinedClass(r.db.QueryRow(ctx, classJoinedSelect+" WHERE c.id = $1", id), class)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Int64("classID", id).Msg("Error fetching class")
		return nil, fmt.Errorf("error fetching class: %w", err)
	}
	return class, nil
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (*models.Class, error) {
	sql, args, err := r.sb.Insert("classes").
		Columns("class_name", "module_id", "class_time", "class_date", "duration_minutes", "location", "instructor").
		Values(class.ClassName, class.ModuleID, class.ClassTime, class.ClassDate,
			class.DurationMinutes, class.Location, class.Instructor).
		Suffix("RETURNING id, class_name, module_id, class_time, class_date, duration_minutes, location, instructor").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create class query: %w", err)
	}

	created := &models.Class{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&created.ID, &created.ClassName, &created.ModuleID, &created.ClassTime,
		&created.ClassDate, &created.DurationMinutes, &created.Location, &created.Instructor,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating class")
		return nil, fmt.Errorf("error creating class: %w", err)
	}
	return created, nil
}

// Update changes a class's fields.
func (r *ClassRepository) Update(ctx context.Context, id int64, class *models.Class) (*models.Class, error) {
	sql, args, err := r.sb.Update("classes").
		Set("class_name", class.ClassName).
		Set("module_id", class.ModuleID).
		Set("class_time", class.ClassTime).
		Set("class_date", class.ClassDate).
		Set("duration_minutes", class.DurationMinutes).
		Set("location", class.Location).
		Set("instructor", class.Instructor).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, class_name, module_id, class_time, class_date, duration_minutes, location, instructor").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update class query: %w", err)
	}

	updated := &models.Class{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&updated.ID, &updated.ClassName, &updated.ModuleID, &updated.ClassTime,
		&updated.ClassDate, &updated.DurationMinutes, &updated.Location, &updated.Instructor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Int64("classID", id).Msg("Error updating class")
		return nil, fmt.Errorf("error updating class: %w", err)
	}
	return updated, nil
}

// Delete removes a class. Enrollments go with it via ON DELETE CASCADE.
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	var deleted int64
	err := r.db.QueryRow(ctx, "DELETE FROM classes WHERE id = $1 RETURNING id", id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Int64("classID", id).Msg("Error deleting class")
		return fmt.Errorf("error deleting class: %w", err)
	}
	return nil
}

// Enroll records a student in a class. The unique pair constraint turns a
// repeat enrollment into ErrAlreadyEnrolled.
func (r *ClassRepository) Enroll(ctx context.Context, studentNumber string, classID int64) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_number", "class_id").
		Values(studentNumber, classID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build enroll query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Str("studentNumber", studentNumber).Int64("classID", classID).Msg("Error enrolling student")
		return fmt.Errorf("error enrolling student: %w", err)
	}
	return nil
}

// Unenroll removes a student's enrollment, failing with
// ErrEnrollmentNotFound when no row matched.
func (r *ClassRepository) Unenroll(ctx context.Context, studentNumber string, classID int64) error {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM enrollments WHERE student_number = $1 AND class_id = $2",
		studentNumber, classID)
	if err != nil {
		logger.Error().Err(err).Str("studentNumber", studentNumber).Int64("classID", classID).Msg("Error removing enrollment")
		return fmt.Errorf("error removing enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

// GetEnrolled returns the classes a student is enrolled in.
func (r *ClassRepository) GetEnrolled(ctx context.Context, studentNumber string) ([]models.Class, error) {
	const query = classJoinedSelect + `
		JOIN enrollments e ON e.class_id = c.id
		WHERE e.student_number = $1
		ORDER BY c.class_date, c.class_time`

	rows, err := r.db.Query(ctx, query, studentNumber)
	if err != nil {
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error querying enrolled classes")
		return nil, fmt.Errorf("error querying enrolled classes: %w", err)
	}
	defer rows.Close()

	classes := []models.Class{}
	for rows.Next() {
		var class models.Class
		if err := scanJoinedClass(rows, &class); err != nil {
			return nil, fmt.Errorf("error scanning enrolled class row: %w", err)
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}
