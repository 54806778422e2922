package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Music represents one relaxation track in the media library.
type Music struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"music_name" json:"music_name"`
	Author    string             `bson:"author" json:"author"`
	Category  string             `bson:"category" json:"category"`
	FilePath  string             `bson:"file_path" json:"file_path"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EntityID returns the backend-assigned identifier as a string.
func (m Music) EntityID() string { return m.ID.Hex() }

// EntityCategory returns the category used for filtering.
func (m Music) EntityCategory() string { return m.Category }
