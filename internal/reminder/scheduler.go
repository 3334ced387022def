// Package reminder runs the background jobs of the app: the daily workout
// reminder at the user's preferred time and optional periodic backups.
package reminder

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/store"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const reminderJobName = "daily-reminder"

// Reminder is what a Notifier is asked to deliver.
type Reminder struct {
	UserName   string
	At         time.Time
	StreakDays int
	MoodLogged bool
}

// Message renders the reminder as a single line of text.
func (r Reminder) Message() string {
	msg := fmt.Sprintf("Time to move, %s!", r.UserName)
	if r.StreakDays > 0 {
		msg += fmt.Sprintf(" Keep your %d day streak going.", r.StreakDays)
	}
	if !r.MoodLogged {
		msg += " Don't forget today's check-in."
	}
	return msg
}

// Notifier delivers reminders.
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// LogNotifier writes reminders to the log.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) Notify(_ context.Context, r Reminder) error {
	n.Logger.Info(r.Message(), zap.String("user", r.UserName), zap.Int("streakDays", r.StreakDays))
	return nil
}

// BackupFunc uploads a backup of the store.
type BackupFunc func(ctx context.Context) error

// Scheduler keeps the reminder job in line with the stored user.
type Scheduler struct {
	cron     gocron.Scheduler
	store    *store.Store
	notifier Notifier
	logger   *zap.Logger

	backupEvery time.Duration
	backup      BackupFunc

	mu          sync.Mutex
	reminderJob uuid.UUID
	reminderAt  string
	unsubscribe func()
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the scheduler's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBackup runs fn every interval. A zero interval disables it.
func WithBackup(interval time.Duration, fn BackupFunc) Option {
	return func(s *Scheduler) {
		s.backupEvery = interval
		s.backup = fn
	}
}

// New creates a scheduler in the store's time zone. Jobs are registered by Start.
func New(st *store.Store, notifier Notifier, opts ...Option) (*Scheduler, error) {
	s := &Scheduler{
		store:    st,
		notifier: notifier,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = LogNotifier{Logger: s.logger}
	}

	cron, err := gocron.NewScheduler(
		gocron.WithLocation(st.Location()),
		gocron.WithLogger(cronLogger{s.logger.Sugar()}),
	)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	s.cron = cron
	return s, nil
}

// Start schedules the jobs and begins running them. The reminder follows
// later profile edits until Shutdown.
func (s *Scheduler) Start() error {
	if s.backup != nil && s.backupEvery > 0 {
		_, err := s.cron.NewJob(
			gocron.DurationJob(s.backupEvery),
			gocron.NewTask(s.runBackup),
			gocron.WithName("backup"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return fmt.Errorf("schedule backup: %w", err)
		}
		s.logger.Info("Backup job scheduled", zap.Duration("every", s.backupEvery))
	}

	if err := s.sync(s.store.User()); err != nil {
		return err
	}
	unsubscribe := s.store.Subscribe(func(next, prev store.State) {
		if err := s.sync(next.User); err != nil {
			s.logger.Error("Failed to reschedule reminder", zap.Error(err))
		}
	})
	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()

	s.cron.Start()
	return nil
}

// Shutdown stops following the store and waits for running jobs.
func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.mu.Unlock()
	return s.cron.Shutdown()
}

// NextReminder returns when the reminder fires next. ok is false when no
// reminder is scheduled.
func (s *Scheduler) NextReminder() (next time.Time, ok bool) {
	s.mu.Lock()
	id := s.reminderJob
	s.mu.Unlock()
	if id == uuid.Nil {
		return time.Time{}, false
	}
	for _, job := range s.cron.Jobs() {
		if job.ID() != id {
			continue
		}
		next, err := job.NextRun()
		if err != nil || next.IsZero() {
			return time.Time{}, false
		}
		return next, true
	}
	return time.Time{}, false
}

// RemindNow builds the reminder from the current state and delivers it.
func (s *Scheduler) RemindNow(ctx context.Context) error {
	u := s.store.User()
	if u == nil {
		return errors.New("no user to remind")
	}
	now := s.store.Now()
	r := Reminder{
		UserName:   u.Name,
		At:         now,
		StreakDays: s.store.StreakDays(),
	}
	for _, entry := range s.store.MoodEntries() {
		if store.SameDay(entry.Date, now, s.store.Location()) {
			r.MoodLogged = true
			break
		}
	}
	return s.notifier.Notify(ctx, r)
}

// sync adds, moves or removes the reminder job to match u.
func (s *Scheduler) sync(u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil || u.Preferences.ReminderTime == "" {
		if s.reminderJob != uuid.Nil {
			if err := s.cron.RemoveJob(s.reminderJob); err != nil && !errors.Is(err, gocron.ErrJobNotFound) {
				return fmt.Errorf("remove reminder: %w", err)
			}
			s.logger.Info("Reminder removed")
		}
		s.reminderJob = uuid.Nil
		s.reminderAt = ""
		return nil
	}

	at := u.Preferences.ReminderTime
	if s.reminderJob != uuid.Nil && at == s.reminderAt {
		return nil
	}
	hour, minute, err := domain.ParseClock(at)
	if err != nil {
		return fmt.Errorf("reminder time: %w", err)
	}

	def := gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), uint(minute), 0)))
	task := gocron.NewTask(s.runReminder)
	var job gocron.Job
	if s.reminderJob == uuid.Nil {
		job, err = s.cron.NewJob(def, task, gocron.WithName(reminderJobName))
	} else {
		job, err = s.cron.Update(s.reminderJob, def, task, gocron.WithName(reminderJobName))
	}
	if err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}
	s.reminderJob = job.ID()
	s.reminderAt = at
	s.logger.Info("Reminder scheduled", zap.String("at", at))
	return nil
}

func (s *Scheduler) runReminder() {
	if err := s.RemindNow(context.Background()); err != nil {
		s.logger.Error("Failed to deliver reminder", zap.Error(err))
	}
}

func (s *Scheduler) runBackup() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := s.backup(ctx); err != nil {
		s.logger.Error("Scheduled backup failed", zap.Error(err))
		return
	}
	s.logger.Debug("Scheduled backup done")
}

// cronLogger adapts zap to gocron.Logger.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Debug(msg string, args ...any) { l.s.Debugw(msg, args...) }
func (l cronLogger) Info(msg string, args ...any)  { l.s.Infow(msg, args...) }
func (l cronLogger) Warn(msg string, args ...any)  { l.s.Warnw(msg, args...) }
func (l cronLogger) Error(msg string, args ...any) { l.s.Errorw(msg, args...) }
