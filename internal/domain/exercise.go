package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Difficulty levels offered by the admin console. The backend stores the
// value as a free string, so an unknown level coming from the database is
// passed through untouched rather than rejected.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// DifficultyLevels lists the selectable difficulty values in display order.
var DifficultyLevels = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// Exercise represents one exercise video in the media library.
// Field names mirror the wire format consumed by the companion app.
type Exercise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"exercise_name" json:"exercise_name"`
	Category     string             `bson:"category" json:"category"`
	Duration     string             `bson:"duration" json:"duration"` // free-form, e.g. "10 min"
	Difficulty   string             `bson:"difficulty" json:"difficulty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Instructions []string           `bson:"instructions" json:"instructions"`
	FilePath     string             `bson:"file_path" json:"file_path"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EntityID returns the backend-assigned identifier as a string.
func (e Exercise) EntityID() string { return e.ID.Hex() }

// EntityCategory returns the category used for filtering.
func (e Exercise) EntityCategory() string { return e.Category }

// SplitInstructions converts the multi-line text entered in the admin form
// into the stored step sequence. Interior blank lines are kept as distinct
// (empty) steps; only a fully empty text yields no steps.
func SplitInstructions(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// JoinInstructions is the inverse of SplitInstructions, used to seed the
// edit form with a single editable text block.
func JoinInstructions(steps []string) string {
	return strings.Join(steps, "\n")
}
