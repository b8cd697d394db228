package dto

// CreatePostRequest carries the fields for creating a post.
type CreatePostRequest struct {
	Title   string  `json:"title" binding:"required"`
	Caption *string `json:"caption"`
}

// CreateCommentRequest carries a new comment body.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateCommentRequest carries an edited comment body.
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AwardBadgeRequest is the admin payload for awarding a badge.
type AwardBadgeRequest struct {
	BadgeName     string  `json:"badge_name" binding:"required"`
	Description   *string `json:"description"`
	StudentNumber string  `json:"student_number" binding:"required"`
}

// CreateNotificationRequest is the admin payload for creating a notification.
// Exactly one of TargetStudent/TargetAdmin must be set, matching TargetType.
type CreateNotificationRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	TargetType    string  `json:"target_type" binding:"required"`
	TargetStudent *string `json:"target_student"`
	TargetAdmin   *int64  `json:"target_admin"`
}

// CreateRatingRequest is the student payload for submitting a rating.
type CreateRatingRequest struct {
	RatingValue       int     `json:"rating_value"`
	RatingDescription *string `json:"rating_description"`
}
