package dto

// CreateCampusRequest is the admin payload for creating a campus.
type CreateCampusRequest struct {
	CampusName string   `json:"campus_name" binding:"required"`
	Location   string   `json:"location" binding:"required"`
	CampusSize *float64 `json:"campus_size"`
}

// UpdateCampusRequest mirrors CreateCampusRequest.
type UpdateCampusRequest struct {
	CampusName string   `json:"campus_name" binding:"required"`
	Location   string   `json:"location" binding:"required"`
	CampusSize *float64 `json:"campus_size"`
}

// CreateFacultyRequest is the admin payload for creating a faculty.
type CreateFacultyRequest struct {
	FacultyName   string  `json:"faculty_name" binding:"required"`
	OfficeAddress *string `json:"office_address"`
	Description   *string `json:"description"`
}

// CreateCourseRequest is the admin payload for creating a course.
type CreateCourseRequest struct {
	FacultyID       *int64 `json:"faculty_id"`
	CourseName      string `json:"course_name" binding:"required"`
	Credits         int    `json:"credits" binding:"required,gt=0"`
	NumberOfModules int    `json:"number_of_modules" binding:"required,gt=0"`
	CourseCode      string `json:"course_code" binding:"required"`
}

// CreateModuleRequest is the admin payload for creating a module.
type CreateModuleRequest struct {
	ModuleName string   `json:"module_name" binding:"required"`
	ModuleCode string   `json:"module_code" binding:"required"`
	Credits    int      `json:"credits" binding:"required,gt=0"`
	ModuleCost *float64 `json:"module_cost"`
}

// CreateClassRequest is the admin payload for scheduling a class.
type CreateClassRequest struct {
	ClassName       string `json:"class_name" binding:"required"`
	ModuleID        *int64 `json:"module_id"`
	ClassTime       string `json:"class_time" binding:"required"`
	ClassDate       string `json:"class_date" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	Location        string `json:"location" binding:"required"`
	Instructor      string `json:"instructor" binding:"required"`
}
