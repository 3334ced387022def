package service

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/store"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("validation failed")
)

// Defaults applied to fields the onboarding form left empty.
const (
	DefaultUserName     = "User"
	DefaultAge          = 35
	DefaultJobTitle     = "IT specialist"
	DefaultWorkHours    = 8
	DefaultWorkoutTime  = "08:00"
	DefaultDuration     = 20
	DefaultReminderTime = "08:00"
)

// SuggestedGoals are offered as choices during onboarding.
var SuggestedGoals = []string{
	"Weight loss",
	"Muscle gain",
	"Stress relief",
	"Better posture",
	"More energy",
	"Better sleep",
	"General fitness",
	"Flexibility",
}

// SuggestedEquipment are offered as choices during onboarding.
var SuggestedEquipment = []string{
	"No equipment (bodyweight only)",
	"Resistance band",
	"Dumbbells",
	"Kettlebell",
	"Yoga mat",
	"Pull-up bar",
	"Foam roller",
	"Fitness ball",
}

// OnboardingForm is the partially filled onboarding questionnaire.
// Zero values mean "not answered"; nil lists mean "not asked".
type OnboardingForm struct {
	Name         string
	Email        string
	Age          int
	JobTitle     string
	WorkHours    int
	FitnessLevel domain.FitnessLevel
	Goals        []string
	Equipment    []string
}

// OnboardingService turns questionnaire answers into the user profile.
type OnboardingService interface {
	Complete(form OnboardingForm) (*domain.User, error)
	UpdateProfile(u domain.User) (*domain.User, error)
}

type onboardingService struct {
	store *store.Store
}

// NewOnboardingService creates a new instance of onboardingService.
func NewOnboardingService(s *store.Store) OnboardingService {
	return &onboardingService{store: s}
}

// Complete fills in defaults, stores the user and marks onboarding done.
func (s *onboardingService) Complete(form OnboardingForm) (*domain.User, error) {
	u := domain.User{
		ID:           uuid.NewString(),
		Name:         orDefault(strings.TrimSpace(form.Name), DefaultUserName),
		Email:        strings.TrimSpace(form.Email),
		Age:          form.Age,
		JobTitle:     orDefault(strings.TrimSpace(form.JobTitle), DefaultJobTitle),
		WorkHours:    form.WorkHours,
		FitnessLevel: form.FitnessLevel,
		Goals:        form.Goals,
		Equipment:    form.Equipment,
		Restrictions: []string{},
		Preferences: domain.Preferences{
			WorkoutTime:  DefaultWorkoutTime,
			Duration:     DefaultDuration,
			ReminderTime: DefaultReminderTime,
		},
	}
	if u.Age == 0 {
		u.Age = DefaultAge
	}
	if u.WorkHours == 0 {
		u.WorkHours = DefaultWorkHours
	}
	if u.FitnessLevel == "" {
		u.FitnessLevel = domain.FitnessBeginner
	}
	// An explicitly empty selection is kept as-is.
	if u.Goals == nil {
		u.Goals = []string{"Better posture"}
	}
	if u.Equipment == nil {
		u.Equipment = []string{"No equipment"}
	}

	if err := ValidateUser(u); err != nil {
		return nil, err
	}

	s.store.SetUser(u)
	s.store.CompleteOnboarding()
	return s.store.User(), nil
}

// UpdateProfile validates and replaces the stored user. The id of an
// existing user is kept when u carries none.
func (s *onboardingService) UpdateProfile(u domain.User) (*domain.User, error) {
	if u.ID == "" {
		if current := s.store.User(); current != nil {
			u.ID = current.ID
		} else {
			u.ID = uuid.NewString()
		}
	}
	if err := ValidateUser(u); err != nil {
		return nil, err
	}
	s.store.SetUser(u)
	return s.store.User(), nil
}

// ValidateUser checks enumerations and ranges of a profile.
func ValidateUser(u domain.User) error {
	if !u.FitnessLevel.Valid() {
		return fmt.Errorf("%w: unknown fitness level %q", ErrValidationFailed, u.FitnessLevel)
	}
	if u.Age < 0 || u.Age > 120 {
		return fmt.Errorf("%w: age %d out of range", ErrValidationFailed, u.Age)
	}
	if u.WorkHours < 0 || u.WorkHours > 24 {
		return fmt.Errorf("%w: work hours %d out of range", ErrValidationFailed, u.WorkHours)
	}
	if u.Preferences.Duration < 0 {
		return fmt.Errorf("%w: negative session duration", ErrValidationFailed)
	}
	for name, value := range map[string]string{
		"workout time":  u.Preferences.WorkoutTime,
		"reminder time": u.Preferences.ReminderTime,
	} {
		if _, _, err := domain.ParseClock(value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrValidationFailed, name, err)
		}
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
