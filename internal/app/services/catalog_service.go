package services

import (
	"context"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/app/repositories"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/validation"
)

// CatalogService handles the academic catalog: campuses, faculties,
// courses and modules. List reads are public; writes are admin-only at
// the route level.
type CatalogService interface {
	GetCampuses(ctx context.Context) ([]models.Campus, error)
	CreateCampus(ctx context.Context, req *dto.CreateCampusRequest) (*models.Campus, error)
	UpdateCampus(ctx context.Context, id int64, req *dto.UpdateCampusRequest) (*models.Campus, error)
	DeleteCampus(ctx context.Context, id int64) error

	GetFaculties(ctx context.Context) ([]models.Faculty, error)
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, id int64) error

	GetCourses(ctx context.Context) ([]models.Course, error)
	GetCoursesByFaculty(ctx context.Context, facultyID int64) ([]models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error

	GetModules(ctx context.Context) ([]models.Module, error)
	CreateModule(ctx context.Context, req *dto.CreateModuleRequest) (*models.Module, error)
	DeleteModule(ctx context.Context, id int64) error
}

type catalogServiceImpl struct {
	catalog *repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalog *repositories.CatalogRepository) CatalogService {
	return &catalogServiceImpl{catalog: catalog}
}

func (s *catalogServiceImpl) GetCampuses(ctx context.Context) ([]models.Campus, error) {
	return s.catalog.GetCampuses(ctx)
}

func (s *catalogServiceImpl) CreateCampus(ctx context.Context, req *dto.CreateCampusRequest) (*models.Campus, error) {
	if validation.IsBlank(req.CampusName) || validation.IsBlank(req.Location) {
		return nil, apperrors.NewInvalidRequestError("campus name and location are required")
	}
	return s.catalog.CreateCampus(ctx, &models.Campus{
		CampusName: req.CampusName,
		Location:   req.Location,
		CampusSize: req.CampusSize,
	})
}

func (s *catalogServiceImpl) UpdateCampus(ctx context.Context, id int64, req *dto.UpdateCampusRequest) (*models.Campus, error) {
	if validation.IsBlank(req.CampusName) || validation.IsBlank(req.Location) {
		return nil, apperrors.NewInvalidRequestError("campus name and location are required")
	}
	return s.catalog.UpdateCampus(ctx, id, &models.Campus{
		CampusName: req.CampusName,
		Location:   req.Location,
		CampusSize: req.CampusSize,
	})
}

func (s *catalogServiceImpl) DeleteCampus(ctx context.Context, id int64) error {
	return s.catalog.DeleteCampus(ctx, id)
}

func (s *catalogServiceImpl) GetFaculties(ctx context.Context) ([]models.Faculty, error) {
	return s.catalog.GetFaculties(ctx)
}

func (s *catalogServiceImpl) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	if validation.IsBlank(req.FacultyName) {
		return nil, apperrors.NewInvalidRequestError("faculty name is required")
	}
	return s.catalog.CreateFaculty(ctx, &models.Faculty{
		FacultyName:   req.FacultyName,
		OfficeAddress: req.OfficeAddress,
		Description:   req.Description,
	})
}

func (s *catalogServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	return s.catalog.DeleteFaculty(ctx, id)
}

func (s *catalogServiceImpl) GetCourses(ctx context.Context) ([]models.Course, error) {
	return s.catalog.GetCourses(ctx)
}

func (s *catalogServiceImpl) GetCoursesByFaculty(ctx context.Context, facultyID int64) ([]models.Course, error) {
	return s.catalog.GetCoursesByFaculty(ctx, facultyID)
}

func (s *catalogServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if validation.IsBlank(req.CourseName) || validation.IsBlank(req.CourseCode) {
		return nil, apperrors.NewInvalidRequestError("course name and code are required")
	}
	return s.catalog.CreateCourse(ctx, &models.Course{
		FacultyID:       req.FacultyID,
		CourseName:      req.CourseName,
		Credits:         req.Credits,
		NumberOfModules: req.NumberOfModules,
		CourseCode:      req.CourseCode,
	})
}

func (s *catalogServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	return s.catalog.DeleteCourse(ctx, id)
}

func (s *catalogServiceImpl) GetModules(ctx context.Context) ([]models.Module, error) {
	return s.catalog.GetModules(ctx)
}

func (s *catalogServiceImpl) CreateModule(ctx context.Context, req *dto.CreateModuleRequest) (*models.Module, error) {
	if validation.IsBlank(req.ModuleName) || validation.IsBlank(req.ModuleCode) {
		return nil, apperrors.NewInvalidRequestError("module name and code are required")
	}
	return s.catalog.CreateModule(ctx, &models.Module{
		ModuleName: req.ModuleName,
		ModuleCode: req.ModuleCode,
		Credits:    req.Credits,
		ModuleCost: req.ModuleCost,
	})
}

func (s *catalogServiceImpl) DeleteModule(ctx context.Context, id int64) error {
	return s.catalog.DeleteModule(ctx, id)
}
