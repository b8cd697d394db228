package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/auth"
	"github.com/jsj/linkup/internal/pkg/session"
)

type fakeStudentAccounts struct {
	byEmail  map[string]*models.Student
	byNumber map[string]*models.Student
	created  *models.Student
}

func (f *fakeStudentAccounts) Create(ctx context.Context, student *models.Student) error {
	if _, ok := f.byNumber[student.StudentNumber]; ok {
		return apperrors.ErrStudentExists
	}
	f.created = student
	return nil
}

func (f *fakeStudentAccounts) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	student, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentAccounts) GetByNumber(ctx context.Context, studentNumber string) (*models.Student, error) {
	student, ok := f.byNumber[studentNumber]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

type fakeAdminAccounts struct {
	byEmail map[string]*models.Admin
}

func (f *fakeAdminAccounts) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *admin
	return &copied, nil
}

func validRegistration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		StudentNumber: "202412345",
		Name:          "Thandi",
		Surname:       "Nkosi",
		Email:         "Thandi.Nkosi@jsj.ac.za",
		Password:      "secret123",
		YearOfStudy:   "second year",
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	students := &fakeStudentAccounts{}
	svc := NewAuthService(students, &fakeAdminAccounts{}, session.NewStore(time.Hour))

	created, err := svc.Register(context.Background(), validRegistration())
	assert.NoError(t, err)

	// the returned student never carries the hash
	assert.Empty(t, created.PasswordHash)
	assert.Equal(t, "thandi.nkosi@jsj.ac.za", created.Email)

	// the stored row carries a verifiable hash, not the plaintext
	assert.NotEqual(t, "secret123", students.created.PasswordHash)
	assert.True(t, auth.CheckPassword(students.created.PasswordHash, "secret123"))
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(&fakeStudentAccounts{}, &fakeAdminAccounts{}, session.NewStore(time.Hour))

	mutations := []func(*dto.RegisterRequest){
		func(r *dto.RegisterRequest) { r.StudentNumber = "1234" },
		func(r *dto.RegisterRequest) { r.Email = "not-an-email" },
		func(r *dto.RegisterRequest) { r.Name = "  " },
		func(r *dto.RegisterRequest) { r.Password = "short" },
		func(r *dto.RegisterRequest) { r.YearOfStudy = "ninth year" },
	}

	for i, mutate := range mutations {
		req := validRegistration()
		mutate(req)
		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest, i)
	}
}

func TestRegisterDuplicateStudent(t *testing.T) {
	students := &fakeStudentAccounts{
		byNumber: map[string]*models.Student{"202412345": {StudentNumber: "202412345"}},
	}
	svc := NewAuthService(students, &fakeAdminAccounts{}, session.NewStore(time.Hour))

	_, err := svc.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, apperrors.ErrStudentExists)
}

func TestLoginStudentIssuesResolvableSession(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	assert.NoError(t, err)

	students := &fakeStudentAccounts{
		byEmail: map[string]*models.Student{
			"thandi.nkosi@jsj.ac.za": {
				StudentNumber: "202412345",
				Email:         "thandi.nkosi@jsj.ac.za",
				PasswordHash:  hash,
			},
		},
	}
	sessions := session.NewStore(time.Hour)
	svc := NewAuthService(students, &fakeAdminAccounts{}, sessions)

	token, student, err := svc.LoginStudent(context.Background(), &dto.LoginRequest{
		Email:    "Thandi.Nkosi@jsj.ac.za",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, student.PasswordHash)

	principal, err := sessions.Resolve(token, session.KindStudent)
	assert.NoError(t, err)
	assert.Equal(t, "202412345", principal.StudentNumber)

	// a student token is not valid in the admin namespace
	_, err = sessions.Resolve(token, session.KindAdmin)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
}

func TestLoginStudentInvalidCredentials(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	assert.NoError(t, err)

	students := &fakeStudentAccounts{
		byEmail: map[string]*models.Student{
			"thandi.nkosi@jsj.ac.za": {StudentNumber: "202412345", PasswordHash: hash},
		},
	}
	svc := NewAuthService(students, &fakeAdminAccounts{}, session.NewStore(time.Hour))

	// unknown email and wrong password read identically
	_, _, err = svc.LoginStudent(context.Background(), &dto.LoginRequest{
		Email:    "nobody@jsj.ac.za",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = svc.LoginStudent(context.Background(), &dto.LoginRequest{
		Email:    "thandi.nkosi@jsj.ac.za",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginAdmin(t *testing.T) {
	hash, err := auth.HashPassword("admin123")
	assert.NoError(t, err)

	admins := &fakeAdminAccounts{
		byEmail: map[string]*models.Admin{
			"admin@jsjlinkup.com": {AdminID: 1, Email: "admin@jsjlinkup.com", PasswordHash: hash},
		},
	}
	sessions := session.NewStore(time.Hour)
	svc := NewAuthService(&fakeStudentAccounts{}, admins, sessions)

	token, admin, err := svc.LoginAdmin(context.Background(), &dto.LoginRequest{
		Email:    "admin@jsjlinkup.com",
		Password: "admin123",
	})
	assert.NoError(t, err)
	assert.Empty(t, admin.PasswordHash)

	principal, err := sessions.Resolve(token, session.KindAdmin)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), principal.AdminID)
}

func TestLogoutRevokesSession(t *testing.T) {
	sessions := session.NewStore(time.Hour)
	svc := NewAuthService(&fakeStudentAccounts{}, &fakeAdminAccounts{}, sessions)

	token := sessions.Issue(session.KindStudent, session.Principal{StudentNumber: "202412345"})
	svc.Logout(token)

	_, err := sessions.Resolve(token, session.KindStudent)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)

	// logging out twice is harmless
	svc.Logout(token)
}
