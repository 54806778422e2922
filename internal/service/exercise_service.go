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

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("missing required fields")
	ErrMediaRequired    = errors.New("no media file provided")
)

// ExerciseVideoPrefix is the object-key prefix for exercise videos. The
// same segment appears in the playback URLs handed to clients.
const ExerciseVideoPrefix = "exercise_videos"

type ExerciseService interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	UploadExercise(ctx context.Context, fields domain.ExerciseFields, media domain.MediaFile) (*domain.Exercise, error)
	UpdateExercise(ctx context.Context, id primitive.ObjectID, fields domain.ExerciseFields) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, id primitive.ObjectID) error
	// VideoDownloadURL resolves a stored file name to a presigned URL.
	VideoDownloadURL(ctx context.Context, fileName string) (string, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage
	log          *zap.Logger
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage, logger *zap.Logger) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		fileStorage:  fileStorage,
		log:          logger,
	}
}

// ListExercises returns the full exercise library.
func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetAll(ctx)
}

// UploadExercise creates the exercise record and stores its video.
// The document is inserted first so the object key can carry a stable,
// unique name; if the object store rejects the upload the document is
// removed again so the library never lists a video-less exercise.
func (s *exerciseService) UploadExercise(ctx context.Context, fields domain.ExerciseFields, media domain.MediaFile) (*domain.Exercise, error) {
	if len(fields.MissingFields()) > 0 {
		return nil, ErrValidationFailed
	}
	if media.Content == nil || media.FileName == "" {
		return nil, ErrMediaRequired
	}

	difficulty := fields.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyBeginner
	}

	exercise := &domain.Exercise{
		Name:         fields.Name,
		Category:     fields.Category,
		Duration:     fields.Duration,
		Difficulty:   difficulty,
		Description:  fields.Description,
		Instructions: domain.SplitInstructions(fields.Instructions),
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}

	fileName := uuid.NewString() + path.Ext(media.FileName)
	objectKey := ExerciseVideoPrefix + "/" + fileName

	if err := s.fileStorage.Upload(ctx, objectKey, media.ContentType, media.Content, media.Size); err != nil {
		// Compensate: drop the half-created record.
		if delErr := s.exerciseRepo.Delete(ctx, exerciseID); delErr != nil {
			s.log.Error("failed to roll back exercise after upload error",
				zap.String("id", exerciseID.Hex()),
				zap.Error(delErr))
		}
		return nil, err
	}

	if err := s.exerciseRepo.SetFilePath(ctx, exerciseID, fileName); err != nil {
		return nil, err
	}

	return s.exerciseRepo.GetByID(ctx, exerciseID)
}

// UpdateExercise modifies an exercise's metadata. Media is never replaced
// through this path.
func (s *exerciseService) UpdateExercise(ctx context.Context, id primitive.ObjectID, fields domain.ExerciseFields) (*domain.Exercise, error) {
	if len(fields.MissingFields()) > 0 {
		return nil, ErrValidationFailed
	}
	if id == primitive.NilObjectID {
		return nil, errors.New("exercise ID is required")
	}

	existing, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	existing.Name = fields.Name
	existing.Category = fields.Category
	existing.Duration = fields.Duration
	existing.Difficulty = fields.Difficulty
	existing.Description = fields.Description
	existing.Instructions = domain.SplitInstructions(fields.Instructions)

	err = s.exerciseRepo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return existing, nil
}

// DeleteExercise removes an exercise and its stored video.
func (s *exerciseService) DeleteExercise(ctx context.Context, id primitive.ObjectID) error {
	if id == primitive.NilObjectID {
		return errors.New("exercise ID is required")
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}

	if exercise.FilePath != "" {
		objectKey := ExerciseVideoPrefix + "/" + exercise.FilePath
		if err := s.fileStorage.DeleteObject(ctx, objectKey); err != nil {
			// The record still goes away; an orphaned object is preferable
			// to a listed exercise whose delete appears to have failed.
			s.log.Warn("failed to delete exercise video",
				zap.String("key", objectKey),
				zap.Error(err))
		}
	}

	err = s.exerciseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}

	return nil
}

// VideoDownloadURL resolves a stored file name to a presigned GET URL.
func (s *exerciseService) VideoDownloadURL(ctx context.Context, fileName string) (string, error) {
	if fileName == "" {
		return "", ErrExerciseNotFound
	}
	objectKey := ExerciseVideoPrefix + "/" + fileName
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
}
