package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Composer builds quiz instances from the question bank, steered by the
// student's attempt history.
type Composer struct {
	Bank    QuestionBank
	History AttemptHistory
}

func NewComposer(bank QuestionBank, history AttemptHistory) *Composer {
	return &Composer{Bank: bank, History: history}
}

// Compose builds one quiz for the student. The rnd source drives question
// sampling and the final shuffle: with a fixed seed the same history,
// configuration and bank produce an identical quiz, which is what the tests
// rely on. Production callers pass a fresh source per call, so no random
// state is shared across concurrent generations.
func (c *Composer) Compose(ctx context.Context, studentID string, cfg Config, rnd *rand.Rand) (*models.QuizInstance, error) {
	limit := cfg.LookbackQuizzes
	if cfg.WeakLookback > limit {
		limit = cfg.WeakLookback
	}
	attempts, err := c.History.RecentAttempts(ctx, studentID, "", limit)
	if err != nil {
		return nil, fmt.Errorf("read attempt history: %w", err)
	}

	targets := make(map[models.Topic]models.Difficulty, len(models.Topics))
	for _, topic := range models.Topics {
		targets[topic] = NextDifficulty(attempts, topic, cfg)
	}
	weak := WeakTopics(attempts, cfg)
	plan := BuildPlan(targets, weak, cfg)

	quiz := &models.QuizInstance{
		ID:               primitive.NewObjectID().Hex(),
		StudentID:        studentID,
		CreatedAt:        time.Now().UTC(),
		Requested:        cfg.QuizSize,
		TargetDifficulty: targets,
	}

	used := map[string]bool{}
	for _, cell := range plan {
		picked, err := c.fillCell(ctx, cell, used, rnd)
		if err != nil {
			return nil, err
		}
		if len(picked) < cell.Count {
			quiz.UnderFilled = true
		}
		for _, q := range picked {
			used[q.ID] = true
			quiz.Questions = append(quiz.Questions, q)
		}
	}

	rnd.Shuffle(len(quiz.Questions), func(i, j int) {
		quiz.Questions[i], quiz.Questions[j] = quiz.Questions[j], quiz.Questions[i]
	})
	return quiz, nil
}

// fillCell samples cell.Count questions uniformly without replacement. When
// the target level runs dry it borrows from the adjacent easier level first,
// then the adjacent harder one, and finally accepts a short cell.
func (c *Composer) fillCell(ctx context.Context, cell CellRequest, used map[string]bool, rnd *rand.Rand) ([]models.Question, error) {
	var picked []models.Question
	for _, difficulty := range fallbackOrder(cell.Difficulty) {
		if len(picked) == cell.Count {
			break
		}
		pool, err := c.Bank.QuestionsFor(ctx, cell.Topic, difficulty)
		if err != nil {
			return nil, fmt.Errorf("read question bank %s/%s: %w", cell.Topic, difficulty, err)
		}
		picked = append(picked, sample(pool, cell.Count-len(picked), used, rnd)...)
	}
	return picked, nil
}

// fallbackOrder lists the levels to draw from: the target itself, then its
// easier neighbour, then its harder neighbour.
func fallbackOrder(d models.Difficulty) []models.Difficulty {
	order := []models.Difficulty{d}
	if easier := d.Easier(); easier != d {
		order = append(order, easier)
	}
	if harder := d.Harder(); harder != d {
		order = append(order, harder)
	}
	return order
}

// sample picks up to count unused questions from pool, uniformly without
// replacement. Iterating a permutation of indices keeps selection order
// deterministic for a given rnd state.
func sample(pool []models.Question, count int, used map[string]bool, rnd *rand.Rand) []models.Question {
	var picked []models.Question
	for _, i := range rnd.Perm(len(pool)) {
		if len(picked) == count {
			break
		}
		if used[pool[i].ID] || containsID(picked, pool[i].ID) {
			continue
		}
		picked = append(picked, pool[i])
	}
	return picked
}

func containsID(questions []models.Question, id string) bool {
	for _, q := range questions {
		if q.ID == id {
			return true
		}
	}
	return false
}
