package service

import (
	"context"
	"errors"
	"time"

	"assessment-service/internal/engine"
	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Dashboard summarizes a student's whole attempt history.
type Dashboard struct {
	StudentID    string                    `json:"student_id"`
	LastScore    *float64                  `json:"last_score"`
	AverageScore *float64                  `json:"average_score"`
	TimeSeries   []DashboardPoint          `json:"time_series"`
	TopicSummary map[models.Topic]*float64 `json:"topic_summary"`
	Attempts     []models.AttemptRecord    `json:"attempts"`
}

type DashboardPoint struct {
	TakenAt time.Time `json:"taken_at"`
	Percent float64   `json:"percent"`
}

// TopicProfile is the per-topic view of the difficulty tracker: accuracy per
// difficulty level over the lookback window plus the level the next quiz
// would serve.
type TopicProfile struct {
	StudentID string                                          `json:"student_id"`
	Profile   map[models.Topic]map[models.Difficulty]*float64 `json:"profile"`
	Suggested map[models.Topic]models.Difficulty              `json:"suggested_difficulty"`
}

// ProgressService serves the reporting endpoints. It reads the same attempt
// history the engine reads and derives everything on request.
type ProgressService struct {
	Attempts AttemptStore
	Settings SettingsSource
	Students StudentDirectory
}

func NewProgressService(attempts AttemptStore, settings SettingsSource,
	students StudentDirectory) *ProgressService {
	return &ProgressService{Attempts: attempts, Settings: settings, Students: students}
}

func (s *ProgressService) Dashboard(ctx context.Context, studentID string) (*Dashboard, error) {
	if err := s.ensureStudent(ctx, studentID); err != nil {
		return nil, err
	}
	attempts, err := s.Attempts.AllAttempts(ctx, studentID)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{
		StudentID:    studentID,
		TimeSeries:   []DashboardPoint{},
		TopicSummary: map[models.Topic]*float64{},
		Attempts:     attempts,
	}
	for _, topic := range models.Topics {
		dash.TopicSummary[topic] = nil
	}
	if len(attempts) == 0 {
		return dash, nil
	}

	sum := 0.0
	perTopic := map[models.Topic]*struct{ correct, total int }{}
	for _, attempt := range attempts {
		percent := attempt.Percent()
		sum += percent
		dash.TimeSeries = append(dash.TimeSeries, DashboardPoint{TakenAt: attempt.TakenAt, Percent: percent})
		for _, outcome := range attempt.Outcomes {
			t := perTopic[outcome.Topic]
			if t == nil {
				t = &struct{ correct, total int }{}
				perTopic[outcome.Topic] = t
			}
			t.total++
			if outcome.Correct {
				t.correct++
			}
		}
	}

	last := attempts[len(attempts)-1].Percent()
	avg := sum / float64(len(attempts))
	dash.LastScore = &last
	dash.AverageScore = &avg
	for topic, t := range perTopic {
		if t.total > 0 {
			pct := float64(t.correct) / float64(t.total) * 100
			dash.TopicSummary[topic] = &pct
		}
	}
	return dash, nil
}

func (s *ProgressService) TopicProfile(ctx context.Context, studentID string) (*TopicProfile, error) {
	if err := s.ensureStudent(ctx, studentID); err != nil {
		return nil, err
	}
	cfg, err := s.Settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	attempts, err := s.Attempts.RecentAttempts(ctx, studentID, "", cfg.LookbackQuizzes)
	if err != nil {
		return nil, err
	}

	profile := &TopicProfile{
		StudentID: studentID,
		Profile:   map[models.Topic]map[models.Difficulty]*float64{},
		Suggested: map[models.Topic]models.Difficulty{},
	}
	for _, topic := range models.Topics {
		profile.Profile[topic] = accuracyByDifficulty(attempts, topic)
		profile.Suggested[topic] = engine.NextDifficulty(attempts, topic, cfg)
	}
	return profile, nil
}

func accuracyByDifficulty(attempts []models.AttemptRecord, topic models.Topic) map[models.Difficulty]*float64 {
	type tally struct{ correct, total int }
	counts := map[models.Difficulty]*tally{}
	for _, attempt := range attempts {
		for _, outcome := range attempt.Outcomes {
			if outcome.Topic != topic {
				continue
			}
			t := counts[outcome.Difficulty]
			if t == nil {
				t = &tally{}
				counts[outcome.Difficulty] = t
			}
			t.total++
			if outcome.Correct {
				t.correct++
			}
		}
	}
	out := map[models.Difficulty]*float64{}
	for _, d := range models.Difficulties {
		if t := counts[d]; t != nil && t.total > 0 {
			acc := float64(t.correct) / float64(t.total)
			out[d] = &acc
		} else {
			out[d] = nil
		}
	}
	return out
}

func (s *ProgressService) ensureStudent(ctx context.Context, studentID string) error {
	if _, err := s.Students.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrStudentNotFound
		}
		return err
	}
	return nil
}
