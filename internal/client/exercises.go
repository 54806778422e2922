package client

import (
	"bytes"
	"context"
	"encoding/json"
	"mindful/media-admin/internal/domain"
	"net/http"
)

// ExerciseRepository issues exercise CRUD requests against the backend.
type ExerciseRepository struct {
	c *Client
}

// List fetches the full exercise library.
func (r *ExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	if err := r.c.doJSON(ctx, http.MethodGet, "/exercises", nil, "", &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// Create uploads a new exercise with its video. Required fields and the
// media file are checked locally; a ValidationError means no request was
// made.
func (r *ExerciseRepository) Create(ctx context.Context, fields domain.ExerciseFields, media domain.MediaFile) (string, error) {
	missing := fields.MissingFields()
	if media.Content == nil || media.FileName == "" {
		missing = append(missing, "video")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Missing: missing}
	}

	form := map[string]string{
		"exerciseName": fields.Name,
		"category":     fields.Category,
		"duration":     fields.Duration,
		"difficulty":   fields.Difficulty,
		"description":  fields.Description,
		"instructions": fields.Instructions,
	}

	var envelope serverMessage
	if err := r.c.doMultipart(ctx, "/upload-exercise", "video", media, form, &envelope); err != nil {
		return "", err
	}
	return envelope.Message, nil
}

// Update replaces an exercise's metadata. The video is never replaced here.
func (r *ExerciseRepository) Update(ctx context.Context, id string, fields domain.ExerciseFields) (string, error) {
	if missing := fields.MissingFields(); len(missing) > 0 {
		return "", &ValidationError{Missing: missing}
	}

	payload, err := json.Marshal(map[string]string{
		"exerciseName": fields.Name,
		"category":     fields.Category,
		"duration":     fields.Duration,
		"difficulty":   fields.Difficulty,
		"description":  fields.Description,
		"instructions": fields.Instructions,
	})
	if err != nil {
		return "", &DecodeError{Err: err}
	}

	return r.c.message(ctx, http.MethodPut, "/exercises/"+id, bytes.NewReader(payload), "application/json")
}

// Remove deletes an exercise.
func (r *ExerciseRepository) Remove(ctx context.Context, id string) (string, error) {
	return r.c.message(ctx, http.MethodDelete, "/exercises/"+id, nil, "")
}

// VideoURL resolves an exercise's playable URL from its stored reference.
func (r *ExerciseRepository) VideoURL(e domain.Exercise) string {
	return r.c.MediaURL("exercise_videos", e.FilePath)
}
