package dto

import "time"

type ReelResponse struct {
	ID                string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	VideoID           string    `json:"video_id" example:"111e8400-e29b-41d4-a716-446655440000"`
	PostingUserID     string    `json:"posting_user_id" example:"222e8400-e29b-41d4-a716-446655440000"`
	Title             string    `json:"title" example:"Funny Cat Compilation"`
	Description       string    `json:"description" example:"A compilation of the funniest cat videos."`
	CreationTimestamp time.Time `json:"creation_timestamp"`
}

// CreateReelRequest is the JSON body of POST /reel.
type CreateReelRequest struct {
	VideoID       string `json:"video_id" example:"111e8400-e29b-41d4-a716-446655440000"`
	PostingUserID string `json:"posting_user_id" example:"222e8400-e29b-41d4-a716-446655440000"`
	Title         string `json:"title" example:"Amazing New Video"`
	Description   string `json:"description" example:"This video shows the best moments."`
}

type CreateReelResponse struct {
	ID string `json:"id"`
}

// ReelMetadata is the JSON "reel" part of POST /reel-video.
type ReelMetadata struct {
	PostingUserID string `json:"posting_user_id" example:"222e8400-e29b-41d4-a716-446655440000"`
	Title         string `json:"title" example:"Amazing New Video"`
	Description   string `json:"description" example:"This video shows the best moments."`
}

// ReelWithVideosResponse pairs a page of reels with their videos. Pair the
// two lists by video id; a missing video is simply absent.
type ReelWithVideosResponse struct {
	Reels  []ReelResponse  `json:"reels"`
	Videos []VideoResponse `json:"videos"`
}

type ReelVideoResponse struct {
	ReelID   string `json:"reel_id"`
	VideoID  string `json:"video_id"`
	VideoURL string `json:"video_url"`
}
