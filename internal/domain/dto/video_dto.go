package dto

type VideoResponse struct {
	ID                 string `json:"id" example:"111e8400-e29b-41d4-a716-446655440000"`
	PostingUserID      string `json:"posting_user_id" example:"222e8400-e29b-41d4-a716-446655440000"`
	Title              string `json:"title" example:"Morning run"`
	Description        string `json:"description" example:"Five kilometres along the river"`
	VideoLengthSeconds int32  `json:"video_length_seconds" example:"30"`
	VideoURL           string `json:"video_url" example:"/uploads/111e8400-e29b-41d4-a716-446655440000.mp4"`
}

// VideoMetadata is the JSON "video" part of the upload endpoints.
type VideoMetadata struct {
	Title              string `json:"title" example:"Morning run"`
	Description        string `json:"description" example:"Five kilometres along the river"`
	VideoLengthSeconds int32  `json:"video_length_seconds" example:"30"`
}

// UpdateVideoRequest is the JSON body of PUT /video/{id}. Absent fields keep
// their stored value.
type UpdateVideoRequest struct {
	Title              *string `json:"title,omitempty"`
	Description        *string `json:"description,omitempty"`
	VideoLengthSeconds *int32  `json:"video_length_seconds,omitempty"`
}

type DeleteResponse struct {
	VideoURL string `json:"video_url"`
}
