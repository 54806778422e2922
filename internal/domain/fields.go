package domain

// ExerciseFields holds the editable attributes of an exercise as they
// appear in the admin forms. Instructions is the raw multi-line text; it is
// split into steps with SplitInstructions when the record is persisted.
type ExerciseFields struct {
	Name         string
	Category     string
	Duration     string
	Difficulty   string
	Description  string
	Instructions string
}

// MissingFields reports which required attributes are blank.
func (f ExerciseFields) MissingFields() []string {
	var missing []string
	if f.Name == "" {
		missing = append(missing, "exerciseName")
	}
	if f.Category == "" {
		missing = append(missing, "category")
	}
	if f.Duration == "" {
		missing = append(missing, "duration")
	}
	return missing
}

// StageExercise copies an exercise's editable attributes into form state.
// The copy is independent of the source record, so discarding it never
// mutates the original.
func StageExercise(e Exercise) ExerciseFields {
	return ExerciseFields{
		Name:         e.Name,
		Category:     e.Category,
		Duration:     e.Duration,
		Difficulty:   e.Difficulty,
		Description:  e.Description,
		Instructions: JoinInstructions(e.Instructions),
	}
}

// MusicFields holds the editable attributes of a music track.
type MusicFields struct {
	Name     string
	Author   string
	Category string
}

// MissingFields reports which required attributes are blank.
func (f MusicFields) MissingFields() []string {
	var missing []string
	if f.Name == "" {
		missing = append(missing, "musicName")
	}
	if f.Author == "" {
		missing = append(missing, "author")
	}
	if f.Category == "" {
		missing = append(missing, "category")
	}
	return missing
}

// StageMusic copies a track's editable attributes into form state.
func StageMusic(m Music) MusicFields {
	return MusicFields{
		Name:     m.Name,
		Author:   m.Author,
		Category: m.Category,
	}
}
