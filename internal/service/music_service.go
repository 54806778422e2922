package service

import (
	"context"
	"errors"
	"mindful/media-admin/internal/domain"
	"mindful/media-admin/internal/repository"
	"mindful/media-admin/internal/storage"
	"path"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrMusicNotFound = errors.New("music not found")
)

// MusicFilePrefix is the object-key prefix for music tracks.
const MusicFilePrefix = "music_files"

type MusicService interface {
	ListMusic(ctx context.Context) ([]domain.Music, error)
	UploadMusic(ctx context.Context, fields domain.MusicFields, media domain.MediaFile) (*domain.Music, error)
	UpdateMusic(ctx context.Context, id primitive.ObjectID, fields domain.MusicFields) (*domain.Music, error)
	DeleteMusic(ctx context.Context, id primitive.ObjectID) error
	TrackDownloadURL(ctx context.Context, fileName string) (string, error)
}

// musicService implements the MusicService interface.
type musicService struct {
	musicRepo   repository.MusicRepository
	fileStorage storage.FileStorage
	log         *zap.Logger
}

// NewMusicService creates a new instance of musicService.
func NewMusicService(musicRepo repository.MusicRepository, fileStorage storage.FileStorage, logger *zap.Logger) MusicService {
	return &musicService{
		musicRepo:   musicRepo,
		fileStorage: fileStorage,
		log:         logger,
	}
}

// ListMusic returns the full music library.
func (s *musicService) ListMusic(ctx context.Context) ([]domain.Music, error) {
	return s.musicRepo.GetAll(ctx)
}

// UploadMusic creates the track record and stores its audio file, with the
// same insert-then-upload-then-attach sequence as exercise uploads.
func (s *musicService) UploadMusic(ctx context.Context, fields domain.MusicFields, media domain.MediaFile) (*domain.Music, error) {
	if len(fields.MissingFields()) > 0 {
		return nil, ErrValidationFailed
	}
	if media.Content == nil || media.FileName == "" {
		return nil, ErrMediaRequired
	}

	music := &domain.Music{
		Name:     fields.Name,
		Author:   fields.Author,
		Category: fields.Category,
	}

	musicID, err := s.musicRepo.Create(ctx, music)
	if err != nil {
		return nil, err
	}

	fileName := uuid.NewString() + path.Ext(media.FileName)
	objectKey := MusicFilePrefix + "/" + fileName

	if err := s.fileStorage.Upload(ctx, objectKey, media.ContentType, media.Content, media.Size); err != nil {
		if delErr := s.musicRepo.Delete(ctx, musicID); delErr != nil {
			s.log.Error("failed to roll back music after upload error",
				zap.String("id", musicID.Hex()),
				zap.Error(delErr))
		}
		return nil, err
	}

	if err := s.musicRepo.SetFilePath(ctx, musicID, fileName); err != nil {
		return nil, err
	}

	return s.musicRepo.GetByID(ctx, musicID)
}

// UpdateMusic modifies a track's metadata.
func (s *musicService) UpdateMusic(ctx context.Context, id primitive.ObjectID, fields domain.MusicFields) (*domain.Music, error) {
	if len(fields.MissingFields()) > 0 {
		return nil, ErrValidationFailed
	}
	if id == primitive.NilObjectID {
		return nil, errors.New("music ID is required")
	}

	existing, err := s.musicRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMusicNotFound
		}
		return nil, err
	}

	existing.Name = fields.Name
	existing.Author = fields.Author
	existing.Category = fields.Category

	err = s.musicRepo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMusicNotFound
		}
		return nil, err
	}
	return existing, nil
}

// DeleteMusic removes a track and its stored audio.
func (s *musicService) DeleteMusic(ctx context.Context, id primitive.ObjectID) error {
	if id == primitive.NilObjectID {
		return errors.New("music ID is required")
	}

	music, err := s.musicRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMusicNotFound
		}
		return err
	}

	if music.FilePath != "" {
		objectKey := MusicFilePrefix + "/" + music.FilePath
		if err := s.fileStorage.DeleteObject(ctx, objectKey); err != nil {
			s.log.Warn("failed to delete music file",
				zap.String("key", objectKey),
				zap.Error(err))
		}
	}

	err = s.musicRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMusicNotFound
		}
		return err
	}

	return nil
}

// TrackDownloadURL resolves a stored file name to a presigned GET URL.
func (s *musicService) TrackDownloadURL(ctx context.Context, fileName string) (string, error) {
	if fileName == "" {
		return "", ErrMusicNotFound
	}
	objectKey := MusicFilePrefix + "/" + fileName
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
}
