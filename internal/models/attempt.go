package models

import "time"

// QuestionOutcome is the per-question trace kept for every graded quiz.
// The difficulty tracker and weak-topic detector read nothing but this list,
// so its shape is the contract between scoring and composition.
type QuestionOutcome struct {
	Topic      Topic      `bson:"topic" json:"topic"`
	Difficulty Difficulty `bson:"difficulty" json:"difficulty"`
	Correct    bool       `bson:"correct" json:"correct"`
}

// AttemptRecord is one completed quiz. Records are append-only: once written
// they are never updated, and derived state (difficulty, weak topics) is
// always recomputed from them rather than stored alongside.
type AttemptRecord struct {
	ID        string            `bson:"_id,omitempty" json:"id"`
	StudentID string            `bson:"student_id" json:"student_id"`
	TakenAt   time.Time         `bson:"taken_at" json:"taken_at"`
	Score     int               `bson:"score" json:"score"`
	Total     int               `bson:"total" json:"total"`
	Outcomes  []QuestionOutcome `bson:"outcomes" json:"outcomes"`
}

// Percent returns the attempt score as a percentage, 0 for an empty attempt.
func (a AttemptRecord) Percent() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Score) / float64(a.Total) * 100
}
