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

// MusicHandler holds the music service dependency.
type MusicHandler struct {
	musicService service.MusicService
	log          *zap.Logger
}

// NewMusicHandler creates a new MusicHandler.
func NewMusicHandler(musicService service.MusicService, logger *zap.Logger) *MusicHandler {
	return &MusicHandler{musicService: musicService, log: logger}
}

// UpdateMusicRequest defines the expected JSON for updating a track.
type UpdateMusicRequest struct {
	Name     string `json:"musicName" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// MusicResponse is the DTO for returning track details.
type MusicResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"music_name"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	FilePath  string    `json:"file_path"`
	AudioURL  string    `json:"audio_url,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MapMusicToResponse converts a domain.Music to MusicResponse DTO.
func MapMusicToResponse(m *domain.Music) MusicResponse {
	if m == nil {
		return MusicResponse{}
	}
	resp := MusicResponse{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Author:    m.Author,
		Category:  m.Category,
		FilePath:  m.FilePath,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.FilePath != "" {
		resp.AudioURL = "/uploads/" + service.MusicFilePrefix + "/" + m.FilePath
	}
	return resp
}

// MapMusicListToResponse converts a slice of domain.Music to response DTOs.
func MapMusicListToResponse(tracks []domain.Music) []MusicResponse {
	responses := make([]MusicResponse, len(tracks))
	for i, m := range tracks {
		responses[i] = MapMusicToResponse(&m)
	}
	return responses
}

// --- Handler Methods ---

// ListMusic returns the full music library.
func (h *MusicHandler) ListMusic(c *gin.Context) {
	tracks, err := h.musicService.ListMusic(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list music", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve music.")
		return
	}

	if tracks == nil {
		c.JSON(http.StatusOK, []MusicResponse{})
		return
	}

	c.JSON(http.StatusOK, MapMusicListToResponse(tracks))
}

// UploadMusic accepts a multipart form with the audio file and metadata.
func (h *MusicHandler) UploadMusic(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "No audio file provided")
		return
	}
	if fileHeader.Filename == "" {
		abortWithError(c, http.StatusBadRequest, "No selected audio file")
		return
	}

	fields := domain.MusicFields{
		Name:     c.PostForm("musicName"),
		Author:   c.PostForm("author"),
		Category: c.PostForm("category"),
	}
	if len(fields.MissingFields()) > 0 {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.Error("failed to open uploaded audio", zap.Error(err))
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

	music, err := h.musicService.UploadMusic(c.Request.Context(), fields, media)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) || errors.Is(err, service.ErrMediaRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("music upload failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to upload music.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Music uploaded successfully!",
		"music_id":  music.ID.Hex(),
		"audio_url": "/uploads/" + service.MusicFilePrefix + "/" + music.FilePath,
	})
}

// UpdateMusic modifies a track's metadata.
func (h *MusicHandler) UpdateMusic(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid music ID")
		return
	}

	var req UpdateMusicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	fields := domain.MusicFields{
		Name:     req.Name,
		Author:   req.Author,
		Category: req.Category,
	}

	_, err = h.musicService.UpdateMusic(c.Request.Context(), id, fields)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrMusicNotFound):
			abortWithError(c, http.StatusNotFound, "Music not found")
		default:
			h.log.Error("music update failed", zap.String("id", id.Hex()), zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Failed to update music.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Music updated successfully"})
}

// DeleteMusic removes a track and its audio file.
func (h *MusicHandler) DeleteMusic(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid music ID")
		return
	}

	err = h.musicService.DeleteMusic(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMusicNotFound) {
			abortWithError(c, http.StatusNotFound, "Music not found")
			return
		}
		h.log.Error("music delete failed", zap.String("id", id.Hex()), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to delete music.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Music deleted successfully"})
}

// ServeMusicFile redirects to a presigned URL for the stored object.
func (h *MusicHandler) ServeMusicFile(c *gin.Context) {
	fileName := c.Param("filename")

	url, err := h.musicService.TrackDownloadURL(c.Request.Context(), fileName)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Track not found")
		return
	}

	c.Redirect(http.StatusFound, url)
}
