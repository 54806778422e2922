package api

import (
	"mindful/media-admin/internal/domain"
	"mindful/media-admin/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRoutes wires all handlers onto the router.
//
// Reads stay open so the companion app can list media without a session;
// every mutation requires an authenticated admin.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	exerciseService service.ExerciseService,
	musicService service.MusicService,
	logger *zap.Logger,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(exerciseService, logger)
	musicHandler := NewMusicHandler(musicService, logger)

	adminOnly := []gin.HandlerFunc{AuthMiddleware(jwtSecret), RoleMiddleware(domain.RoleAdmin)}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// --- Exercise library ---
	router.GET("/exercises", exerciseHandler.ListExercises)
	router.POST("/upload-exercise", append(adminOnly, exerciseHandler.UploadExercise)...)
	router.PUT("/exercises/:id", append(adminOnly, exerciseHandler.UpdateExercise)...)
	router.DELETE("/exercises/:id", append(adminOnly, exerciseHandler.DeleteExercise)...)

	// --- Music library ---
	router.GET("/music", musicHandler.ListMusic)
	router.POST("/upload-music", append(adminOnly, musicHandler.UploadMusic)...)
	router.PUT("/music/:id", append(adminOnly, musicHandler.UpdateMusic)...)
	router.DELETE("/music/:id", append(adminOnly, musicHandler.DeleteMusic)...)

	// --- Media resolution ---
	// The path segments match the stored-media prefixes; clients build these
	// URLs from the last segment of file_path.
	router.GET("/uploads/exercise_videos/:filename", exerciseHandler.ServeExerciseVideo)
	router.GET("/uploads/music_files/:filename", musicHandler.ServeMusicFile)
}
