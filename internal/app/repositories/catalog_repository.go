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
	"github.com/jsj/linkup/internal/pkg/logger"
)

// CatalogRepository handles campus, faculty, course and module
// database operations. These tables change rarely and only by admins,
// so they share one repository.
type CatalogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetCampuses retrieves all campuses ordered by name.
func (r *CatalogRepository) GetCampuses(ctx context.Context) ([]models.Campus, error) {
	sql, args, err := r.sb.Select("id", "campus_name", "location", "campus_size").
		From("campuses").
		OrderBy("campus_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build campuses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying campuses")
		return nil, fmt.Errorf("error querying campuses: %w", err)
	}
	defer rows.Close()

	campuses := []models.Campus{}
	for rows.Next() {
		var campus models.Campus
		if err := rows.Scan(&campus.ID, &campus.CampusName, &campus.Location, &campus.CampusSize); err != nil {
			return nil, fmt.Errorf("error scanning campus row: %w", err)
		}
		campuses = append(campuses, campus)
	}
	return campuses, rows.Err()
}

// CreateCampus inserts a new campus.
func (r *CatalogRepository) CreateCampus(ctx context.Context, campus *models.Campus) (*models.Campus, error) {
	sql, args, err := r.sb.Insert("campuses").
		Columns("campus_name", "location", "campus_size").
		Values(campus.CampusName, campus.Location, campus.CampusSize).
		Suffix("RETURNING id, campus_name, location, campus_size").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create campus query: %w", err)
	}

	created := &models.Campus{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.CampusName, &created.Location, &created.CampusSize)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating campus")
		return nil, fmt.Errorf("error creating campus: %w", err)
	}
	return created, nil
}

// UpdateCampus changes a campus's fields.
func (r *CatalogRepository) UpdateCampus(ctx context.Context, id int64, campus *models.Campus) (*models.Campus, error) {
	sql, args, err := r.sb.Update("campuses").
		Set("campus_name", campus.CampusName).
		Set("location", campus.Location).
		Set("campus_size", campus.CampusSize).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, campus_name, location, campus_size").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update campus query: %w", err)
	}

	updated := &models.Campus{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&updated.ID, &updated.CampusName, &updated.Location, &updated.CampusSize)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("campusID", id).Msg("Error updating campus")
		return nil, fmt.Errorf("error updating campus: %w", err)
	}
	return updated, nil
}

// DeleteCampus removes a campus.
func (r *CatalogRepository) DeleteCampus(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "campuses", id)
}

// GetFaculties retrieves all faculties ordered by name.
func (r *CatalogRepository) GetFaculties(ctx context.Context) ([]models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "faculty_name", "office_address", "description").
		From("faculties").
		OrderBy("faculty_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build faculties query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying faculties")
		return nil, fmt.Errorf("error querying faculties: %w", err)
	}
	defer rows.Close()

	faculties := []models.Faculty{}
	for rows.Next() {
		var faculty models.Faculty
		if err := rows.Scan(&faculty.ID, &faculty.FacultyName, &faculty.OfficeAddress, &faculty.Description); err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculties = append(faculties, faculty)
	}
	return faculties, rows.Err()
}

// CreateFaculty inserts a new faculty.
func (r *CatalogRepository) CreateFaculty(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error) {
	sql, args, err := r.sb.Insert("faculties").
		Columns("faculty_name", "office_address", "description").
		Values(faculty.FacultyName, faculty.OfficeAddress, faculty.Description).
		Suffix("RETURNING id, faculty_name, office_address, description").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	created := &models.Faculty{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.FacultyName, &created.OfficeAddress, &created.Description)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating faculty")
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}
	return created, nil
}

// DeleteFaculty removes a faculty.
func (r *CatalogRepository) DeleteFaculty(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "faculties", id)
}

// GetCourses retrieves all courses with their faculty names.
func (r *CatalogRepository) GetCourses(ctx context.Context) ([]models.Course, error) {
	const query = `
		SELECT c.id, c.faculty_id, c.course_name, c.credits, c.number_of_modules,
		       c.course_code, f.faculty_name
		FROM courses c
		LEFT JOIN faculties f ON c.faculty_id = f.id
		ORDER BY c.course_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying courses")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		err := rows.Scan(&course.ID, &course.FacultyID, &course.CourseName, &course.Credits,
			&course.NumberOfModules, &course.CourseCode, &course.FacultyName)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// GetCoursesByFaculty retrieves the courses offered by one faculty.
func (r *CatalogRepository) GetCoursesByFaculty(ctx context.Context, facultyID int64) ([]models.Course, error) {
	const query = `
		SELECT c.id, c.faculty_id, c.course_name, c.credits, c.number_of_modules,
		       c.course_code, f.faculty_name
		FROM courses c
		LEFT JOIN faculties f ON c.faculty_id = f.id
		WHERE c.faculty_id = $1
		ORDER BY c.course_name`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error querying faculty courses")
		return nil, fmt.Errorf("error querying faculty courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		err := rows.Scan(&course.ID, &course.FacultyID, &course.CourseName, &course.Credits,
			&course.NumberOfModules, &course.CourseCode, &course.FacultyName)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// CreateCourse inserts a new course.
func (r *CatalogRepository) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("faculty_id", "course_name", "credits", "number_of_modules", "course_code").
		Values(course.FacultyID, course.CourseName, course.Credits, course.NumberOfModules, course.CourseCode).
		Suffix("RETURNING id, faculty_id, course_name, credits, number_of_modules, course_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create course query: %w", err)
	}

	created := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.FacultyID, &created.CourseName,
		&created.Credits, &created.NumberOfModules, &created.CourseCode)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating course")
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	return created, nil
}

// DeleteCourse removes a course.
func (r *CatalogRepository) DeleteCourse(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "courses", id)
}

// GetModules retrieves all modules ordered by code.
func (r *CatalogRepository) GetModules(ctx context.Context) ([]models.Module, error) {
	sql, args, err := r.sb.Select("id", "module_name", "module_code", "credits", "module_cost").
		From("modules").
		OrderBy("module_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build modules query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying modules")
		return nil, fmt.Errorf("error querying modules: %w", err)
	}
	defer rows.Close()

	modules := []models.Module{}
	for rows.Next() {
		var module models.Module
		if err := rows.Scan(&module.ID, &module.ModuleName, &module.ModuleCode, &module.Credits, &module.ModuleCost); err != nil {
			return nil, fmt.Errorf("error scanning module row: %w", err)
		}
		modules = append(modules, module)
	}
	return modules, rows.Err()
}

// CreateModule inserts a new module.
func (r *CatalogRepository) CreateModule(ctx context.Context, module *models.Module) (*models.Module, error) {
	sql, args, err := r.sb.Insert("modules").
		Columns("module_name", "module_code", "credits", "module_cost").
		Values(module.ModuleName, module.ModuleCode, module.Credits, module.ModuleCost).
		Suffix("RETURNING id, module_name, module_code, credits, module_cost").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create module query: %w", err)
	}

	created := &models.Module{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.ModuleName, &created.ModuleCode,
		&created.Credits, &created.ModuleCost)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating module")
		return nil, fmt.Errorf("error creating module: %w", err)
	}
	return created, nil
}

// DeleteModule removes a module.
func (r *CatalogRepository) DeleteModule(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "modules", id)
}

func (r *CatalogRepository) deleteByID(ctx context.Context, table string, id int64) error {
	var deleted int64
	err := r.db.QueryRow(ctx, "DELETE FROM "+table+" WHERE id = $1 RETURNING id", id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("table", table).Int64("id", id).Msg("Error deleting catalog row")
		return fmt.Errorf("error deleting from %s: %w", table, err)
	}
	return nil
}
