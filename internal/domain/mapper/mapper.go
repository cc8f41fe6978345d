package mapper

import (
	"reels-service/internal/domain/dto"
	"reels-service/internal/domain/entities"
)

func ReelToDTO(r *entities.Reel) dto.ReelResponse {
	return dto.ReelResponse{
		ID:                r.ID.String(),
		VideoID:           r.VideoID.String(),
		PostingUserID:     r.PostingUserID.String(),
		Title:             r.Title,
		Description:       r.Description,
		CreationTimestamp: r.CreationTimestamp,
	}
}

func ReelsToDTO(reels []entities.Reel) []dto.ReelResponse {
	out := make([]dto.ReelResponse, 0, len(reels))
	for i := range reels {
		out = append(out, ReelToDTO(&reels[i]))
	}
	return out
}

func VideoToDTO(v *entities.Video) dto.VideoResponse {
	return dto.VideoResponse{
		ID:                 v.ID.String(),
		PostingUserID:      v.PostingUserID.String(),
		Title:              v.Title,
		Description:        v.Description,
		VideoLengthSeconds: v.VideoLengthSeconds,
		VideoURL:           v.VideoURL,
	}
}

func VideosToDTO(videos []entities.Video) []dto.VideoResponse {
	out := make([]dto.VideoResponse, 0, len(videos))
	for i := range videos {
		out = append(out, VideoToDTO(&videos[i]))
	}
	return out
}
