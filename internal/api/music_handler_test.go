package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"mindful/media-admin/internal/domain"
)

type fakeMusicService struct {
	lastUploadFields domain.MusicFields
}

func (f *fakeMusicService) ListMusic(ctx context.Context) ([]domain.Music, error) {
	return nil, nil
}

func (f *fakeMusicService) UploadMusic(ctx context.Context, fields domain.MusicFields, media domain.MediaFile) (*domain.Music, error) {
	f.lastUploadFields = fields
	return &domain.Music{ID: primitive.NewObjectID(), Name: fields.Name, FilePath: "stored.mp3"}, nil
}

func (f *fakeMusicService) UpdateMusic(ctx context.Context, id primitive.ObjectID, fields domain.MusicFields) (*domain.Music, error) {
	return &domain.Music{ID: id, Name: fields.Name}, nil
}

func (f *fakeMusicService) DeleteMusic(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func (f *fakeMusicService) TrackDownloadURL(ctx context.Context, fileName string) (string, error) {
	return "https://storage.example.com/" + fileName, nil
}

func TestUploadMusic(t *testing.T) {
	svc := &fakeMusicService{}
	router := gin.New()
	h := NewMusicHandler(svc, zap.NewNop())
	router.POST("/upload-music", h.UploadMusic)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "track.mp3")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("audio")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	for k, v := range map[string]string{
		"musicName": "Rainfall",
		"author":    "Ambient Artist",
		"category":  "Sleep",
	} {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload-music", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["music_id"] == "" {
		t.Errorf("response = %v", resp)
	}
	if svc.lastUploadFields.Author != "Ambient Artist" {
		t.Errorf("fields = %+v", svc.lastUploadFields)
	}
}

func TestUploadMusicMissingFields(t *testing.T) {
	router := gin.New()
	h := NewMusicHandler(&fakeMusicService{}, zap.NewNop())
	router.POST("/upload-music", h.UploadMusic)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("file", "track.mp3")
	_, _ = part.Write([]byte("audio"))
	_ = writer.WriteField("musicName", "Rainfall")
	_ = writer.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload-music", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
