package api

import (
	"errors"
	"mindful/media-admin/internal/domain"
	"mindful/media-admin/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	log             *zap.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, logger *zap.Logger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, log: logger}
}

// --- DTOs for API (Data Transfer Objects) ---

// UpdateExerciseRequest defines the expected JSON for updating an exercise.
// Instructions arrives as the raw multi-line edit text; the service splits
// it into steps.
type UpdateExerciseRequest struct {
	Name         string `json:"exerciseName" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Duration     string `json:"duration" binding:"required"`
	Difficulty   string `json:"difficulty"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
}

// ExerciseResponse is the DTO for returning exercise details. Field names
// match the wire format the companion app and admin console consume.
type ExerciseResponse struct {
	ID           string    `json:"_id"`
	Name         string    `json:"exercise_name"`
	Category     string    `json:"category"`
	Duration     string    `json:"duration"`
	Difficulty   string    `json:"difficulty"`
	Description  string    `json:"description,omitempty"`
	Instructions []string  `json:"instructions"`
	FilePath     string    `json:"file_path"`
	VideoURL     string    `json:"video_url,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	resp := ExerciseResponse{
		ID:           ex.ID.Hex(),
		Name:         ex.Name,
		Category:     ex.Category,
		Duration:     ex.Duration,
		Difficulty:   ex.Difficulty,
		Description:  ex.Description,
		Instructions: ex.Instructions,
		FilePath:     ex.FilePath,
		CreatedAt:    ex.CreatedAt,
		UpdatedAt:    ex.UpdatedAt,
	}
	if ex.FilePath != "" {
		resp.VideoURL = "/uploads/" + service.ExerciseVideoPrefix + "/" + ex.FilePath
	}
	return resp
}

// MapExercisesToResponse converts a slice of domain.Exercise to response DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = MapExerciseToResponse(&ex)
	}
	return responses
}

// --- Handler Methods ---

// ListExercises returns the full exercise library.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list exercises", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}

	if exercises == nil {
		c.JSON(http.StatusOK, []ExerciseResponse{})
		return
	}

	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// UploadExercise accepts a multipart form with the video file and metadata.
func (h *ExerciseHandler) UploadExercise(c *gin.Context) {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "No video file provided")
		return
	}
	if fileHeader.Filename == "" {
		abortWithError(c, http.StatusBadRequest, "No selected video file")
		return
	}

	fields := domain.ExerciseFields{
		Name:         c.PostForm("exerciseName"),
		Category:     c.PostForm("category"),
		Duration:     c.PostForm("duration"),
		Difficulty:   c.DefaultPostForm("difficulty", domain.DifficultyBeginner),
		Description:  c.PostForm("description"),
		Instructions: c.PostForm("instructions"),
	}
	if len(fields.MissingFields()) > 0 {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.Error("failed to open uploaded video", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	media := domain.MediaFile{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	}

	exercise, err := h.exerciseService.UploadExercise(c.Request.Context(), fields, media)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) || errors.Is(err, service.ErrMediaRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("exercise upload failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to upload exercise.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Exercise uploaded successfully!",
		"exercise_id": exercise.ID.Hex(),
		"video_url":   "/uploads/" + service.ExerciseVideoPrefix + "/" + exercise.FilePath,
	})
}

// UpdateExercise modifies an exercise's metadata.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID")
		return
	}

	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	fields := domain.ExerciseFields{
		Name:         req.Name,
		Category:     req.Category,
		Duration:     req.Duration,
		Difficulty:   req.Difficulty,
		Description:  req.Description,
		Instructions: req.Instructions,
	}

	_, err = h.exerciseService.UpdateExercise(c.Request.Context(), id, fields)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		default:
			h.log.Error("exercise update failed", zap.String("id", id.Hex()), zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exercise updated successfully"})
}

// DeleteExercise removes an exercise and its video.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID")
		return
	}

	err = h.exerciseService.DeleteExercise(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
			return
		}
		h.log.Error("exercise delete failed", zap.String("id", id.Hex()), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exercise deleted successfully"})
}

// ServeExerciseVideo redirects to a presigned URL for the stored object.
// Clients compose this path from the last segment of file_path.
func (h *ExerciseHandler) ServeExerciseVideo(c *gin.Context) {
	fileName := c.Param("filename")

	url, err := h.exerciseService.VideoDownloadURL(c.Request.Context(), fileName)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Video not found")
		return
	}

	c.Redirect(http.StatusFound, url)
}
