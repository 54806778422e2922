package client

import (
	"bytes"
	"context"
	"encoding/json"
	"mindful/media-admin/internal/domain"
	"net/http"
)

// MusicRepository issues music CRUD requests against the backend.
type MusicRepository struct {
	c *Client
}

// List fetches the full music library.
func (r *MusicRepository) List(ctx context.Context) ([]domain.Music, error) {
	var tracks []domain.Music
	if err := r.c.doJSON(ctx, http.MethodGet, "/music", nil, "", &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// Create uploads a new track with its audio file.
func (r *MusicRepository) Create(ctx context.Context, fields domain.MusicFields, media domain.MediaFile) (string, error) {
	missing := fields.MissingFields()
	if media.Content == nil || media.FileName == "" {
		missing = append(missing, "file")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Missing: missing}
	}

	form := map[string]string{
		"musicName": fields.Name,
		"author":    fields.Author,
		"category":  fields.Category,
	}

	var envelope serverMessage
	if err := r.c.doMultipart(ctx, "/upload-music", "file", media, form, &envelope); err != nil {
		return "", err
	}
	return envelope.Message, nil
}

// Update replaces a track's metadata.
func (r *MusicRepository) Update(ctx context.Context, id string, fields domain.MusicFields) (string, error) {
	if missing := fields.MissingFields(); len(missing) > 0 {
		return "", &ValidationError{Missing: missing}
	}

	payload, err := json.Marshal(map[string]string{
		"musicName": fields.Name,
		"author":    fields.Author,
		"category":  fields.Category,
	})
	if err != nil {
		return "", &DecodeError{Err: err}
	}

	return r.c.message(ctx, http.MethodPut, "/music/"+id, bytes.NewReader(payload), "application/json")
}

// Remove deletes a track.
func (r *MusicRepository) Remove(ctx context.Context, id string) (string, error) {
	return r.c.message(ctx, http.MethodDelete, "/music/"+id, nil, "")
}

// AudioURL resolves a track's playable URL from its stored reference.
func (r *MusicRepository) AudioURL(m domain.Music) string {
	return r.c.MediaURL("music_files", m.FilePath)
}
