package service

import (
	"context"
	"fmt"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.Repo.FindAll(ctx)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	if err := validateQuestion(question); err != nil {
		return err
	}
	return s.Repo.Create(ctx, question)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, update bson.M) error {
	return s.Repo.Update(ctx, id, update)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validateQuestion(q *models.Question) error {
	if _, err := models.ParseTopic(string(q.Topic)); err != nil {
		return err
	}
	if _, err := models.ParseDifficulty(string(q.Difficulty)); err != nil {
		return err
	}
	if q.Prompt == "" {
		return fmt.Errorf("question prompt is required")
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		return fmt.Errorf("correct_option must be within [0, %d]", len(q.Options)-1)
	}
	return nil
}

// SeedSampleQuestions loads a small starter bank covering every topic, for
// fresh deployments and local development.
func (s *QuestionService) SeedSampleQuestions(ctx context.Context) (int, error) {
	sample := []models.Question{
		{Topic: models.TopicPython, Difficulty: models.DifficultyEasy, Prompt: "What is the output of len([1,2,3])?",
			Options: [4]string{"2", "3", "1", "4"}, CorrectOption: 1},
		{Topic: models.TopicPython, Difficulty: models.DifficultyMedium, Prompt: "What does list.append(x) do?",
			Options: [4]string{"Adds x to start", "Adds x to end", "Removes x", "Sorts list"}, CorrectOption: 1},
		{Topic: models.TopicPython, Difficulty: models.DifficultyHard, Prompt: "What is a generator in Python?",
			Options: [4]string{"A list", "A lazy iterable", "A dict subtype", "A function decorator"}, CorrectOption: 1},
		{Topic: models.TopicSQL, Difficulty: models.DifficultyEasy, Prompt: "Which clause filters rows?",
			Options: [4]string{"GROUP BY", "WHERE", "HAVING", "ORDER BY"}, CorrectOption: 1},
		{Topic: models.TopicSQL, Difficulty: models.DifficultyMedium, Prompt: "Which statement removes all rows but keeps table structure?",
			Options: [4]string{"DROP", "DELETE", "TRUNCATE", "ALTER"}, CorrectOption: 2},
		{Topic: models.TopicLogical, Difficulty: models.DifficultyEasy, Prompt: "Sequence: 2,4,6,8,?",
			Options: [4]string{"10", "9", "11", "12"}, CorrectOption: 0},
		{Topic: models.TopicQuant, Difficulty: models.DifficultyEasy, Prompt: "What is 10% of 50?",
			Options: [4]string{"5", "10", "15", "20"}, CorrectOption: 0},
		{Topic: models.TopicLanguage, Difficulty: models.DifficultyEasy, Prompt: "Choose the correct sentence:",
			Options: [4]string{"She go home.", "She goes home.", "She going home.", "She gone home."}, CorrectOption: 1},
		{Topic: models.TopicStatistics, Difficulty: models.DifficultyEasy, Prompt: "Mean of [1,2,3] is?",
			Options: [4]string{"1", "2", "3", "4"}, CorrectOption: 1},
	}
	for i := range sample {
		if err := s.Repo.Create(ctx, &sample[i]); err != nil {
			return i, err
		}
	}
	return len(sample), nil
}
