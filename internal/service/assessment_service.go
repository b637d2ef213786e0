package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"assessment-service/internal/engine"
	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SettingsSource resolves the effective engine configuration for one
// request. Implemented by repository.SettingsRepository.
type SettingsSource interface {
	Load(ctx context.Context) (engine.Config, error)
}

// StudentDirectory looks up registered students. Implemented by
// repository.StudentRepository.
type StudentDirectory interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// AttemptStore is the engine history plus the full-history read the
// reporting endpoints need. Implemented by repository.AttemptRepository.
type AttemptStore interface {
	engine.AttemptHistory
	AllAttempts(ctx context.Context, studentID string) ([]models.AttemptRecord, error)
}

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrQuizNotFound    = errors.New("quiz not found or already graded")
)

// openQuizTTL bounds how long an ungraded quiz instance stays registered.
// Abandoned quizzes are simply dropped; there is nothing to roll back.
const openQuizTTL = 2 * time.Hour

// AssessmentService owns the generate/submit loop: it resolves the engine
// configuration per request, composes quizzes, keeps the open instances
// until they are graded, and appends graded attempts to the history.
type AssessmentService struct {
	Composer *engine.Composer
	Attempts AttemptStore
	Settings SettingsSource
	Students StudentDirectory

	mu   sync.Mutex
	open map[string]*models.QuizInstance

	lockMu       sync.Mutex
	studentLocks map[string]*sync.Mutex
}

func NewAssessmentService(composer *engine.Composer, attempts AttemptStore,
	settings SettingsSource, students StudentDirectory) *AssessmentService {
	return &AssessmentService{
		Composer:     composer,
		Attempts:     attempts,
		Settings:     settings,
		Students:     students,
		open:         map[string]*models.QuizInstance{},
		studentLocks: map[string]*sync.Mutex{},
	}
}

// GenerateQuiz builds a fresh adaptive quiz for the student. Settings are
// read once here and passed down by value, so a concurrent settings update
// cannot be half-observed inside one composition. sizeOverride > 0 replaces
// the configured quiz size for this call only.
func (s *AssessmentService) GenerateQuiz(ctx context.Context, studentID string, sizeOverride int) (*models.QuizInstance, error) {
	if _, err := s.Students.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	cfg, err := s.Settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if sizeOverride > 0 {
		cfg.QuizSize = sizeOverride
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	quiz, err := s.Composer.Compose(ctx, studentID, cfg, rnd)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sweepLocked(time.Now())
	s.open[quiz.ID] = quiz
	s.mu.Unlock()
	return quiz, nil
}

// SubmitQuiz grades an open quiz and appends the attempt. Appends for the
// same student are serialized so two concurrent submissions cannot
// interleave around a concurrent generate's history read. The instance is
// only dropped after the attempt is durably recorded; a rejected or failed
// submission leaves it open for resubmission.
func (s *AssessmentService) SubmitQuiz(ctx context.Context, quizID, studentID string, answers map[string]int) (*models.AttemptRecord, error) {
	s.mu.Lock()
	quiz, ok := s.open[quizID]
	s.mu.Unlock()
	if !ok || quiz.StudentID != studentID {
		return nil, ErrQuizNotFound
	}

	record, err := engine.Grade(quiz, answers, time.Now())
	if err != nil {
		return nil, err
	}

	lock := s.studentLock(studentID)
	lock.Lock()
	err = s.Attempts.Record(ctx, record)
	lock.Unlock()
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	s.mu.Lock()
	delete(s.open, quizID)
	s.mu.Unlock()
	return record, nil
}

func (s *AssessmentService) studentLock(studentID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	lock, ok := s.studentLocks[studentID]
	if !ok {
		lock = &sync.Mutex{}
		s.studentLocks[studentID] = lock
	}
	return lock
}

func (s *AssessmentService) sweepLocked(now time.Time) {
	for id, quiz := range s.open {
		if now.Sub(quiz.CreatedAt) > openQuizTTL {
			delete(s.open, id)
		}
	}
}
