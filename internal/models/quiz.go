package models

import "time"

// QuizInstance is one generated quiz, owned by the requesting session. It
// lives in memory until the student submits answers and is discarded after
// grading; only the resulting AttemptRecord persists.
type QuizInstance struct {
	ID        string     `json:"id"`
	StudentID string     `json:"student_id"`
	CreatedAt time.Time  `json:"created_at"`
	Questions []Question `json:"questions"`
	// Requested is the configured quiz size; len(Questions) may be smaller
	// when the bank could not fill every cell, in which case UnderFilled
	// is set. A short quiz is informational, never an error.
	Requested   int  `json:"requested"`
	UnderFilled bool `json:"under_filled"`
	// TargetDifficulty records the level each topic was served at.
	TargetDifficulty map[Topic]Difficulty `json:"target_difficulty"`
}

// Contains reports whether the quiz served the given question id.
func (q *QuizInstance) Contains(questionID string) bool {
	for _, question := range q.Questions {
		if question.ID == questionID {
			return true
		}
	}
	return false
}
