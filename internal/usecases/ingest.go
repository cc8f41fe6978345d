package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"slices"
	"strings"

	"reels-service/internal/domain/dto"
	"reels-service/internal/domain/entities"
	"reels-service/internal/domain/mapper"
	"reels-service/internal/domain/repositories"
	consts "reels-service/pkg/constants"
	appErrors "reels-service/pkg/errors"
	"reels-service/pkg/helper"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IngestService accepts multipart uploads. The file is written to the content
// store before any row is inserted; a failed insert removes the file again.
type IngestService interface {
	UploadVideo(ctx context.Context, userHeader string, form *multipart.Form) (*dto.VideoResponse, error)
	UploadReelWithVideo(ctx context.Context, userHeader string, form *multipart.Form) (*dto.ReelVideoResponse, error)
}

type partKind int

const (
	partFile partKind = iota + 1
	partVideo
	partReel
)

func (k partKind) String() string {
	switch k {
	case partFile:
		return consts.FieldFile
	case partVideo:
		return consts.FieldVideo
	case partReel:
		return consts.FieldReel
	default:
		return "unknown"
	}
}

func classifyPart(name string, withReel bool) (partKind, error) {
	switch name {
	case consts.FieldFile:
		return partFile, nil
	case consts.FieldVideo:
		return partVideo, nil
	case consts.FieldReel:
		if withReel {
			return partReel, nil
		}
	}
	return 0, appErrors.ErrBadRequest("unexpected multipart field %q", name)
}

// uploadParts is what survives collection and validation.
type uploadParts struct {
	fileName string
	data     []byte
	video    *dto.VideoMetadata
	reel     *dto.ReelMetadata
}

type ingestService struct {
	videos      repositories.VideoRepository
	reels       repositories.ReelRepository
	store       repositories.ContentStore
	remover     fileRemover
	maxFileSize int64
	log         *zap.Logger
}

func NewIngestService(
	videos repositories.VideoRepository,
	reels repositories.ReelRepository,
	store repositories.ContentStore,
	cleanup repositories.CleanupQueue,
	maxFileSize int64,
	log *zap.Logger,
) IngestService {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("ingest")
	return &ingestService{
		videos:      videos,
		reels:       reels,
		store:       store,
		remover:     fileRemover{store: store, queue: cleanup, log: log},
		maxFileSize: maxFileSize,
		log:         log,
	}
}

func (s *ingestService) UploadVideo(ctx context.Context, userHeader string, form *multipart.Form) (*dto.VideoResponse, error) {
	owner, err := helper.ParseUserID(userHeader)
	if err != nil {
		return nil, err
	}
	parts, err := s.collect(form, false)
	if err != nil {
		return nil, err
	}

	video, err := s.storeFile(ctx, owner, parts)
	if err != nil {
		return nil, err
	}

	if _, err := s.videos.Create(ctx, video); err != nil {
		s.compensate(ctx, video.VideoURL, err)
		return nil, appErrors.ErrInternal("could not save video", err)
	}

	s.log.Info("video uploaded",
		zap.Stringer("video_id", video.ID),
		zap.String("video_url", video.VideoURL),
		zap.Int("size", len(parts.data)))
	resp := mapper.VideoToDTO(video)
	return &resp, nil
}

func (s *ingestService) UploadReelWithVideo(ctx context.Context, userHeader string, form *multipart.Form) (*dto.ReelVideoResponse, error) {
	parts, err := s.collect(form, true)
	if err != nil {
		return nil, err
	}
	owner, err := reelOwner(userHeader, parts.reel)
	if err != nil {
		return nil, err
	}

	video, err := s.storeFile(ctx, owner, parts)
	if err != nil {
		return nil, err
	}

	reel := &entities.Reel{
		ID:            uuid.New(),
		PostingUserID: owner,
		Title:         parts.reel.Title,
		Description:   parts.reel.Description,
	}
	if err := s.reels.CreateWithVideo(ctx, video, reel); err != nil {
		s.compensate(ctx, video.VideoURL, err)
		return nil, appErrors.ErrInternal("could not save reel", err)
	}

	s.log.Info("reel uploaded",
		zap.Stringer("reel_id", reel.ID),
		zap.Stringer("video_id", video.ID),
		zap.String("video_url", video.VideoURL))
	return &dto.ReelVideoResponse{
		ReelID:   reel.ID.String(),
		VideoID:  video.ID.String(),
		VideoURL: video.VideoURL,
	}, nil
}

// storeFile writes the payload under a fresh video id and returns the row to
// insert.
func (s *ingestService) storeFile(ctx context.Context, owner uuid.UUID, parts *uploadParts) (*entities.Video, error) {
	videoID := uuid.New()
	locator, err := s.store.Write(ctx, videoID.String(), parts.fileName, parts.data)
	if err != nil {
		return nil, appErrors.ErrInternal("could not store video file", err)
	}
	return &entities.Video{
		ID:                 videoID,
		PostingUserID:      owner,
		Title:              parts.video.Title,
		Description:        parts.video.Description,
		VideoLengthSeconds: parts.video.VideoLengthSeconds,
		VideoURL:           locator,
	}, nil
}

func (s *ingestService) compensate(ctx context.Context, locator string, cause error) {
	s.log.Warn("insert failed after file write, removing file",
		zap.String("locator", locator), zap.Error(cause))
	_ = s.remover.remove(ctx, locator)
}

func (s *ingestService) collect(form *multipart.Form, withReel bool) (*uploadParts, error) {
	if form == nil {
		return nil, appErrors.ErrBadRequest("request is not multipart/form-data")
	}

	parts := &uploadParts{}
	seen := map[partKind]bool{}
	mark := func(kind partKind, count int) error {
		if seen[kind] || count > 1 {
			return appErrors.ErrBadRequest("duplicate %s part", kind)
		}
		seen[kind] = true
		return nil
	}

	for _, name := range slices.Sorted(maps.Keys(form.Value)) {
		values := form.Value[name]
		kind, err := classifyPart(name, withReel)
		if err != nil {
			return nil, err
		}
		if err := mark(kind, len(values)); err != nil {
			return nil, err
		}
		if kind == partFile {
			return nil, appErrors.ErrBadRequest("file part must be a file upload")
		}
		if err := parts.decodeMetadata(kind, []byte(values[0])); err != nil {
			return nil, err
		}
	}

	for _, name := range slices.Sorted(maps.Keys(form.File)) {
		headers := form.File[name]
		kind, err := classifyPart(name, withReel)
		if err != nil {
			return nil, err
		}
		if err := mark(kind, len(headers)); err != nil {
			return nil, err
		}
		data, err := s.readPart(headers[0])
		if err != nil {
			return nil, err
		}
		if kind == partFile {
			parts.fileName = headers[0].Filename
			parts.data = data
			continue
		}
		if err := parts.decodeMetadata(kind, data); err != nil {
			return nil, err
		}
	}

	if err := parts.validate(seen, withReel); err != nil {
		return nil, err
	}
	return parts, nil
}

func (s *ingestService) readPart(fh *multipart.FileHeader) ([]byte, error) {
	if s.maxFileSize > 0 && fh.Size > s.maxFileSize {
		return nil, appErrors.ErrBadRequest("file exceeds the maximum size of %d bytes", s.maxFileSize)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, appErrors.ErrInternal("could not open uploaded part", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, appErrors.ErrInternal("could not read uploaded part", err)
	}
	return data, nil
}

func (p *uploadParts) decodeMetadata(kind partKind, raw []byte) error {
	var target any
	switch kind {
	case partVideo:
		p.video = &dto.VideoMetadata{}
		target = p.video
	case partReel:
		p.reel = &dto.ReelMetadata{}
		target = p.reel
	default:
		return fmt.Errorf("no metadata for %s part", kind)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return appErrors.ErrBadRequest("malformed %s part: %v", kind, err)
	}
	return nil
}

func (p *uploadParts) validate(seen map[partKind]bool, withReel bool) error {
	if !seen[partFile] {
		return appErrors.ErrBadRequest("missing %s part", partFile)
	}
	if strings.TrimSpace(p.fileName) == "" {
		return appErrors.ErrBadRequest("file part has no file name")
	}
	if len(p.data) == 0 {
		return appErrors.ErrBadRequest("file part is empty")
	}
	if p.video == nil {
		return appErrors.ErrBadRequest("missing %s part", partVideo)
	}
	if p.video.VideoLengthSeconds < 0 {
		return appErrors.ErrBadRequest("video_length_seconds must not be negative")
	}
	if withReel && p.reel == nil {
		return appErrors.ErrBadRequest("missing %s part", partReel)
	}
	return nil
}

// reelOwner prefers the x-uuid header and falls back to the reel metadata.
func reelOwner(userHeader string, reel *dto.ReelMetadata) (uuid.UUID, error) {
	if strings.TrimSpace(userHeader) != "" {
		return helper.ParseUserID(userHeader)
	}
	if strings.TrimSpace(reel.PostingUserID) == "" {
		return uuid.Nil, appErrors.ErrBadRequest("missing %s header and reel.posting_user_id", consts.UserIDHeader)
	}
	return parsePostingUser(reel.PostingUserID)
}
