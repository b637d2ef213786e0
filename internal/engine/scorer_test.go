package engine

import (
	"errors"
	"testing"
	"time"

	"assessment-service/internal/models"
)

func servedQuiz() *models.QuizInstance {
	return &models.QuizInstance{
		ID:        "quiz-1",
		StudentID: "s1",
		Requested: 3,
		Questions: []models.Question{
			{ID: "q1", Topic: models.TopicPython, Difficulty: models.DifficultyEasy, CorrectOption: 1},
			{ID: "q2", Topic: models.TopicSQL, Difficulty: models.DifficultyMedium, CorrectOption: 2},
			{ID: "q3", Topic: models.TopicQuant, Difficulty: models.DifficultyEasy, CorrectOption: 0},
		},
	}
}

func TestGrade_AllCorrectRoundTrip(t *testing.T) {
	quiz := servedQuiz()
	answers := map[string]int{"q1": 1, "q2": 2, "q3": 0}

	record, err := Grade(quiz, answers, time.Now())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if record.Score != 3 || record.Total != 3 {
		t.Errorf("expected 3/3, got %d/%d", record.Score, record.Total)
	}
	for i, outcome := range record.Outcomes {
		if !outcome.Correct {
			t.Errorf("outcome %d: expected correct", i)
		}
	}
}

func TestGrade_MissingAnswerIsIncorrect(t *testing.T) {
	quiz := servedQuiz()
	answers := map[string]int{"q1": 1} // q2 and q3 unanswered

	record, err := Grade(quiz, answers, time.Now())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if record.Score != 1 {
		t.Errorf("expected score 1, got %d", record.Score)
	}
	if record.Total != 3 {
		t.Errorf("unanswered questions still count toward total, got %d", record.Total)
	}
}

func TestGrade_WrongAnswer(t *testing.T) {
	quiz := servedQuiz()
	answers := map[string]int{"q1": 0, "q2": 2, "q3": 0}

	record, err := Grade(quiz, answers, time.Now())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if record.Score != 2 {
		t.Errorf("expected score 2, got %d", record.Score)
	}
	if record.Outcomes[0].Correct {
		t.Error("expected first outcome incorrect")
	}
}

func TestGrade_UnknownQuestionRejected(t *testing.T) {
	quiz := servedQuiz()
	answers := map[string]int{"q1": 1, "q99": 0}

	record, err := Grade(quiz, answers, time.Now())
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}
	if record != nil {
		t.Error("expected no record for a rejected submission")
	}
}

func TestGrade_OutcomesPreserveServedOrder(t *testing.T) {
	quiz := servedQuiz()
	record, err := Grade(quiz, map[string]int{}, time.Now())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []struct {
		topic      models.Topic
		difficulty models.Difficulty
	}{
		{models.TopicPython, models.DifficultyEasy},
		{models.TopicSQL, models.DifficultyMedium},
		{models.TopicQuant, models.DifficultyEasy},
	}
	if len(record.Outcomes) != len(expected) {
		t.Fatalf("expected %d outcomes, got %d", len(expected), len(record.Outcomes))
	}
	for i, e := range expected {
		if record.Outcomes[i].Topic != e.topic || record.Outcomes[i].Difficulty != e.difficulty {
			t.Errorf("outcome %d: expected %s/%s, got %s/%s",
				i, e.topic, e.difficulty, record.Outcomes[i].Topic, record.Outcomes[i].Difficulty)
		}
	}
}

func TestGrade_UnderFilledQuizTotalsActualCount(t *testing.T) {
	quiz := servedQuiz()
	quiz.Requested = 12
	quiz.UnderFilled = true

	record, err := Grade(quiz, map[string]int{"q1": 1}, time.Now())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if record.Total != 3 {
		t.Errorf("total must reflect questions actually served, got %d", record.Total)
	}
}
