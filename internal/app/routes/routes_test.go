package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jsj/linkup/internal/app/controllers"
	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/services"
	"github.com/jsj/linkup/internal/middleware"
	"github.com/jsj/linkup/internal/pkg/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeCatalogService overrides only the list reads; the embedded
// interface panics on anything the router should never reach here.
type fakeCatalogService struct {
	services.CatalogService
}

func (f *fakeCatalogService) GetCampuses(ctx context.Context) ([]models.Campus, error) {
	return []models.Campus{{ID: 1, CampusName: "Main", Location: "Centre"}}, nil
}

func (f *fakeCatalogService) GetFaculties(ctx context.Context) ([]models.Faculty, error) {
	return []models.Faculty{{ID: 1, FacultyName: "Engineering"}}, nil
}

func (f *fakeCatalogService) GetCourses(ctx context.Context) ([]models.Course, error) {
	return []models.Course{}, nil
}

func (f *fakeCatalogService) GetCoursesByFaculty(ctx context.Context, facultyID int64) ([]models.Course, error) {
	return []models.Course{}, nil
}

func (f *fakeCatalogService) GetModules(ctx context.Context) ([]models.Module, error) {
	return []models.Module{}, nil
}

func newCatalogRouter() *gin.Engine {
	router := gin.New()
	sessions := session.NewStore(24 * time.Hour)
	c := &Controllers{
		Catalog: controllers.NewCatalogController(&fakeCatalogService{}),
	}
	SetupRouter(router, c, middleware.NewAuthMiddleware(sessions))
	return router
}

func doUnauthenticatedGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestCatalogListsServedWithoutSession(t *testing.T) {
	router := newCatalogRouter()

	for _, path := range []string{
		"/api/campuses",
		"/api/faculties",
		"/api/faculties/1/courses",
		"/api/courses",
		"/api/modules",
	} {
		rec := doUnauthenticatedGet(router, path)
		assert.Equal(t, http.StatusOK, rec.Code, "expected %s to be readable before login", path)
	}
}

func TestCampusListBody(t *testing.T) {
	router := newCatalogRouter()

	rec := doUnauthenticatedGet(router, "/api/campuses")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "\"campuses\"")
	assert.Contains(t, rec.Body.String(), "Main")
}

func TestSessionRoutesStillGuarded(t *testing.T) {
	router := newCatalogRouter()

	rec := doUnauthenticatedGet(router, "/api/profile")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
