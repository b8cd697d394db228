package dto

// CreateGroupRequest carries the fields for creating a group.
type CreateGroupRequest struct {
	GroupName        string  `json:"group_name" binding:"required"`
	GroupDescription *string `json:"group_description"`
	MaxSize          int     `json:"max_size" binding:"required,gt=0"`
}

// UpdateGroupRequest mirrors CreateGroupRequest; only the creator may apply it.
type UpdateGroupRequest struct {
	GroupName        string  `json:"group_name" binding:"required"`
	GroupDescription *string `json:"group_description"`
	MaxSize          int     `json:"max_size" binding:"required,gt=0"`
}

// CreateLinkRequest names the student the caller wants to link with;
// the connector is taken from the session.
type CreateLinkRequest struct {
	Acceptor string `json:"acceptor" binding:"required"`
}

// CreateEventRequest carries the fields for creating an event.
type CreateEventRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	Location      string  `json:"location" binding:"required"`
	EventDatetime string  `json:"event_datetime" binding:"required"`
}

// UpdateEventRequest mirrors CreateEventRequest; only the creator may apply it.
type UpdateEventRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	Location      string  `json:"location" binding:"required"`
	EventDatetime string  `json:"event_datetime" binding:"required"`
}
