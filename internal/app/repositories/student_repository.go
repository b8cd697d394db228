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

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentJoinedSelect = `
	SELECT s.student_number, s.name, s.surname, s.email, s.password,
	       s.course_id, s.year_of_study, s.faculty_id, s.campus_id, s.phone_number,
	       c.course_name, f.faculty_name, camp.campus_name
	FROM students s
	LEFT JOIN courses c ON s.course_id = c.id
	LEFT JOIN faculties f ON s.faculty_id = f.id
	LEFT JOIN campuses camp ON s.campus_id = camp.id`

func scanJoinedStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.StudentNumber, &student.Name, &student.Surname, &student.Email,
		&student.PasswordHash, &student.CourseID, &student.YearOfStudy,
		&student.FacultyID, &student.CampusID, &student.PhoneNumber,
		&student.CourseName, &student.FacultyName, &student.CampusName,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create inserts a new student. Duplicate student numbers or emails
// surface as ErrStudentExists.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("student_number", "name", "surname", "email", "password",
			"course_id", "year_of_study", "faculty_id", "campus_id", "phone_number").
		Values(student.StudentNumber, student.Name, student.Surname, student.Email,
			student.PasswordHash, student.CourseID, student.YearOfStudy,
			student.FacultyID, student.CampusID, student.PhoneNumber).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentExists
		}
		logger.Error().Err(err).Str("studentNumber", student.StudentNumber).Msg("Error creating student")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByEmail retrieves a student by email, including the password hash.
// Used only by the login flow.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select("student_number", "name", "surname", "email", "password").
		From("students").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by email query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.StudentNumber, &student.Name, &student.Surname,
		&student.Email, &student.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error getting student by email")
		return nil, fmt.Errorf("error getting student by email: %w", err)
	}
	return student, nil
}

// GetByNumber retrieves a student with joined course/faculty/campus names.
func (r *StudentRepository) GetByNumber(ctx context.Context, studentNumber string) (*models.Student, error) {
	query := studentJoinedSelect + " WHERE s.student_number = $1"

	student, err := scanJoinedStudent(r.db.QueryRow(ctx, query, studentNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error getting student")
		return nil, fmt.Errorf("error getting student by number: %w", err)
	}
	return student, nil
}

// GetAll retrieves all students with joined display names.
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := studentJoinedSelect + " ORDER BY s.student_number"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		student, err := scanJoinedStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, *student)
	}
	return students, rows.Err()
}

// Update changes a student's self-service profile fields.
func (r *StudentRepository) Update(ctx context.Context, studentNumber string, student *models.Student) (*models.Student, error) {
	sql, args, err := r.sb.Update("students").
		Set("name", student.Name).
		Set("surname", student.Surname).
		Set("email", student.Email).
		Set("phone_number", student.PhoneNumber).
		Set("year_of_study", student.YearOfStudy).
		Where(squirrel.Eq{"student_number": studentNumber}).
		Suffix("RETURNING student_number, name, surname, email, phone_number, year_of_study").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	updated := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&updated.StudentNumber, &updated.Name, &updated.Surname,
		&updated.Email, &updated.PhoneNumber, &updated.YearOfStudy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrStudentExists
		}
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error updating student")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return updated, nil
}

// Delete removes a student. Admin-only at the service boundary.
func (r *StudentRepository) Delete(ctx context.Context, studentNumber string) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"student_number": studentNumber}).
		Suffix("RETURNING student_number").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	var deleted string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error deleting student")
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// Search performs a substring match over name, surname, email and
// student number, capped at 50 rows.
func (r *StudentRepository) Search(ctx context.Context, query string) ([]models.Student, error) {
	const searchSQL = `
		SELECT s.student_number, s.name, s.surname, s.email, s.year_of_study,
		       c.course_name, f.faculty_name
		FROM students s
		LEFT JOIN courses c ON s.course_id = c.id
		LEFT JOIN faculties f ON s.faculty_id = f.id
		WHERE s.name ILIKE $1 OR s.surname ILIKE $1 OR s.email ILIKE $1 OR s.student_number ILIKE $1
		ORDER BY s.name, s.surname
		LIMIT 50`

	rows, err := r.db.Query(ctx, searchSQL, "%"+query+"%")
	if err != nil {
		logger.Error().Err(err).Msg("Error searching students")
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var student models.Student
		err := rows.Scan(
			&student.StudentNumber, &student.Name, &student.Surname, &student.Email,
			&student.YearOfStudy, &student.CourseName, &student.FacultyName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning student search row: %w", err)
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Exists reports whether a student number is registered.
func (r *StudentRepository) Exists(ctx context.Context, studentNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM students WHERE student_number = $1)", studentNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}
