package domain

// WorkoutType classifies a catalog workout.
type WorkoutType string

const (
	TypeCardio      WorkoutType = "cardio"
	TypeStrength    WorkoutType = "strength"
	TypeFlexibility WorkoutType = "flexibility"
	TypeBreak       WorkoutType = "break"
)

// Difficulty of a catalog workout.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Category describes where a workout can be done.
type Category string

const (
	CategoryDesk    Category = "desk"
	CategoryHome    Category = "home"
	CategoryGym     Category = "gym"
	CategoryOutdoor Category = "outdoor"
)

// Workout is a reusable workout template from the catalog.
type Workout struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Type         WorkoutType `json:"type"`
	Duration     int         `json:"duration"` // Nominal length, minutes
	Difficulty   Difficulty  `json:"difficulty"`
	Equipment    []string    `json:"equipment"`
	Description  string      `json:"description"`
	Instructions []string    `json:"instructions"` // Ordered steps
	Category     Category    `json:"category"`
}

// Clone returns a deep copy of the workout.
func (w Workout) Clone() Workout {
	w.Equipment = cloneStrings(w.Equipment)
	w.Instructions = cloneStrings(w.Instructions)
	return w
}

// BuiltinWorkouts returns a fresh copy of the built-in catalog.
// The catalog is never persisted; every store seeds it on creation.
func BuiltinWorkouts() []Workout {
	return []Workout{
		{
			ID:          "1",
			Name:        "Desk stretch",
			Type:        TypeFlexibility,
			Duration:    5,
			Difficulty:  DifficultyEasy,
			Equipment:   []string{},
			Description: "Quick stretch to release tension at your desk",
			Instructions: []string{
				"Neck rolls - 5 each side",
				"Shoulder shrugs - 10 reps",
				"Seated torso twist - hold 15 seconds each side",
				"Wrist circles - 10 each direction",
			},
			Category: CategoryDesk,
		},
		{
			ID:          "2",
			Name:        "15 minute intervals",
			Type:        TypeCardio,
			Duration:    15,
			Difficulty:  DifficultyMedium,
			Equipment:   []string{},
			Description: "High intensity interval training for busy people",
			Instructions: []string{
				"2 minute warm-up (light jog in place)",
				"30 seconds burpees, 30 seconds rest - repeat 3 times",
				"30 seconds mountain climbers, 30 seconds rest - repeat 3 times",
				"30 seconds jumping jacks, 30 seconds rest - repeat 2 times",
				"2 minute stretch",
			},
			Category: CategoryHome,
		},
		{
			ID:          "3",
			Name:        "Strength basics",
			Type:        TypeStrength,
			Duration:    20,
			Difficulty:  DifficultyMedium,
			Equipment:   []string{"dumbbells"},
			Description: "Basic strength training with minimal equipment",
			Instructions: []string{
				"Push-ups: 3 sets of 10-15",
				"Dumbbell rows: 3 sets of 12",
				"Squats: 3 sets of 15",
				"Plank: 3 sets of 30 seconds",
				"Overhead dumbbell press: 3 sets of 10",
			},
			Category: CategoryHome,
		},
	}
}
