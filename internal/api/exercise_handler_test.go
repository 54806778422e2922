package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"mindful/media-admin/internal/domain"
	"mindful/media-admin/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeExerciseService is a canned-response implementation for handler tests.
type fakeExerciseService struct {
	exercises []domain.Exercise

	uploadErr error
	updateErr error
	deleteErr error

	lastUploadFields domain.ExerciseFields
	lastUpdateID     primitive.ObjectID
	deletedID        primitive.ObjectID
}

func (f *fakeExerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return f.exercises, nil
}

func (f *fakeExerciseService) UploadExercise(ctx context.Context, fields domain.ExerciseFields, media domain.MediaFile) (*domain.Exercise, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.lastUploadFields = fields
	return &domain.Exercise{
		ID:       primitive.NewObjectID(),
		Name:     fields.Name,
		FilePath: "stored.mp4",
	}, nil
}

func (f *fakeExerciseService) UpdateExercise(ctx context.Context, id primitive.ObjectID, fields domain.ExerciseFields) (*domain.Exercise, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.lastUpdateID = id
	return &domain.Exercise{ID: id, Name: fields.Name}, nil
}

func (f *fakeExerciseService) DeleteExercise(ctx context.Context, id primitive.ObjectID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func (f *fakeExerciseService) VideoDownloadURL(ctx context.Context, fileName string) (string, error) {
	return "https://storage.example.com/" + fileName, nil
}

func newExerciseRouter(svc service.ExerciseService) *gin.Engine {
	router := gin.New()
	h := NewExerciseHandler(svc, zap.NewNop())
	router.GET("/exercises", h.ListExercises)
	router.POST("/upload-exercise", h.UploadExercise)
	router.PUT("/exercises/:id", h.UpdateExercise)
	router.DELETE("/exercises/:id", h.DeleteExercise)
	router.GET("/uploads/exercise_videos/:filename", h.ServeExerciseVideo)
	return router
}

func TestListExercisesEmptyIsArray(t *testing.T) {
	router := newExerciseRouter(&fakeExerciseService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("body = %q, want an empty JSON array", got)
	}
}

func TestListExercisesWireFormat(t *testing.T) {
	svc := &fakeExerciseService{exercises: []domain.Exercise{{
		ID:           primitive.NewObjectID(),
		Name:         "Breathing",
		Category:     "Focus",
		Duration:     "5 min",
		Difficulty:   domain.DifficultyBeginner,
		Instructions: []string{"Step 1"},
		FilePath:     "abc.mp4",
	}}}
	router := newExerciseRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exercises", nil))

	var decoded []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	row := decoded[0]
	for _, key := range []string{"_id", "exercise_name", "category", "duration", "difficulty", "instructions", "file_path", "video_url"} {
		if _, ok := row[key]; !ok {
			t.Errorf("response lacks %q: %v", key, row)
		}
	}
	if row["video_url"] != "/uploads/exercise_videos/abc.mp4" {
		t.Errorf("video_url = %v", row["video_url"])
	}
}

func multipartUpload(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if withFile {
		part, err := writer.CreateFormFile("video", "clip.mp4")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("data")); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestUploadExercise(t *testing.T) {
	complete := map[string]string{
		"exerciseName": "Breathing",
		"category":     "Focus",
		"duration":     "5 min",
		"instructions": "Step 1\nStep 2",
	}

	t.Run("success", func(t *testing.T) {
		svc := &fakeExerciseService{}
		router := newExerciseRouter(svc)
		body, contentType := multipartUpload(t, complete, true)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/upload-exercise", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["message"] == "" || resp["exercise_id"] == "" {
			t.Errorf("response = %v", resp)
		}
		if svc.lastUploadFields.Instructions != "Step 1\nStep 2" {
			t.Errorf("instructions passed as %q", svc.lastUploadFields.Instructions)
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		router := newExerciseRouter(&fakeExerciseService{})
		body, contentType := multipartUpload(t, map[string]string{"exerciseName": "x"}, true)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/upload-exercise", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "error") {
			t.Fatalf("body = %s, want an error envelope", rec.Body.String())
		}
	})

	t.Run("missing_file", func(t *testing.T) {
		router := newExerciseRouter(&fakeExerciseService{})
		body, contentType := multipartUpload(t, complete, false)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/upload-exercise", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestUpdateExercise(t *testing.T) {
	id := primitive.NewObjectID()
	payload := `{"exerciseName":"Breathing","category":"Focus","duration":"5 min"}`

	t.Run("success", func(t *testing.T) {
		svc := &fakeExerciseService{}
		router := newExerciseRouter(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/exercises/"+id.Hex(), strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if svc.lastUpdateID != id {
			t.Errorf("update id = %s", svc.lastUpdateID.Hex())
		}
	})

	t.Run("invalid_id", func(t *testing.T) {
		router := newExerciseRouter(&fakeExerciseService{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/exercises/not-hex", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("missing_required_json", func(t *testing.T) {
		router := newExerciseRouter(&fakeExerciseService{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/exercises/"+id.Hex(), strings.NewReader(`{"exerciseName":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		router := newExerciseRouter(&fakeExerciseService{updateErr: service.ErrExerciseNotFound})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/exercises/"+id.Hex(), strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestDeleteExercise(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("success", func(t *testing.T) {
		svc := &fakeExerciseService{}
		router := newExerciseRouter(svc)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/exercises/"+id.Hex(), nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if svc.deletedID != id {
			t.Errorf("deleted id = %s", svc.deletedID.Hex())
		}
	})

	t.Run("not_found", func(t *testing.T) {
		router := newExerciseRouter(&fakeExerciseService{deleteErr: service.ErrExerciseNotFound})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/exercises/"+id.Hex(), nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestServeExerciseVideoRedirects(t *testing.T) {
	router := newExerciseRouter(&fakeExerciseService{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/exercise_videos/abc.mp4", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "https://storage.example.com/abc.mp4" {
		t.Fatalf("Location = %q", got)
	}
}
