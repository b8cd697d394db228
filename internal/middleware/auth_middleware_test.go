package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jsj/linkup/internal/pkg/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedRouter(m *AuthMiddleware) *gin.Engine {
	router := gin.New()
	router.GET("/student", m.RequireStudent(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"student_number": StudentNumber(c)})
	})
	router.GET("/admin", m.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": AdminID(c)})
	})
	return router
}

func doGet(router *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireStudentWithoutToken(t *testing.T) {
	store := session.NewStore(time.Hour)
	router := guardedRouter(NewAuthMiddleware(store))

	rec := doGet(router, "/student", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"session ID required"}`, rec.Body.String())
}

func TestRequireStudentWithValidToken(t *testing.T) {
	store := session.NewStore(time.Hour)
	token := store.Issue(session.KindStudent, session.Principal{StudentNumber: "202412345"})
	router := guardedRouter(NewAuthMiddleware(store))

	rec := doGet(router, "/student", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"student_number":"202412345"}`, rec.Body.String())
}

func TestRequireStudentAcceptsBearerAndSessionIdHeader(t *testing.T) {
	store := session.NewStore(time.Hour)
	token := store.Issue(session.KindStudent, session.Principal{StudentNumber: "202412345"})
	router := guardedRouter(NewAuthMiddleware(store))

	rec := doGet(router, "/student", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doGet(router, "/student", map[string]string{"Session-Id": token})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireStudentRejectsExpiredToken(t *testing.T) {
	current := time.Now()
	store := session.NewStore(time.Hour).WithClock(func() time.Time { return current })
	token := store.Issue(session.KindStudent, session.Principal{StudentNumber: "202412345"})
	router := guardedRouter(NewAuthMiddleware(store))

	current = current.Add(time.Hour + time.Minute)
	rec := doGet(router, "/student", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"session expired"}`, rec.Body.String())
}

func TestNamespacesDoNotCrossOver(t *testing.T) {
	store := session.NewStore(time.Hour)
	studentToken := store.Issue(session.KindStudent, session.Principal{StudentNumber: "202412345"})
	adminToken := store.Issue(session.KindAdmin, session.Principal{AdminID: 1})
	router := guardedRouter(NewAuthMiddleware(store))

	rec := doGet(router, "/admin", map[string]string{"Authorization": studentToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doGet(router, "/student", map[string]string{"Authorization": adminToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doGet(router, "/admin", map[string]string{"Authorization": adminToken})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin_id":1}`, rec.Body.String())
}

func TestRevokedTokenIsRejected(t *testing.T) {
	store := session.NewStore(time.Hour)
	token := store.Issue(session.KindStudent, session.Principal{StudentNumber: "202412345"})
	router := guardedRouter(NewAuthMiddleware(store))

	store.Revoke(token)
	rec := doGet(router, "/student", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid session"}`, rec.Body.String())
}
