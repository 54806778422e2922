package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mindful/media-admin/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	// SetFilePath attaches the stored-media reference after the object has
	// been written to file storage. The document is inserted first so its
	// ObjectID can be part of the object key.
	SetFilePath(ctx context.Context, id primitive.ObjectID, filePath string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MusicRepository defines the interface for interacting with music data.
type MusicRepository interface {
	Create(ctx context.Context, music *domain.Music) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Music, error)
	GetAll(ctx context.Context) ([]domain.Music, error)
	Update(ctx context.Context, music *domain.Music) error
	SetFilePath(ctx context.Context, id primitive.ObjectID, filePath string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}
