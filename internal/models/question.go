package models

// Question is one multiple-choice item in the bank. Questions are loaded by
// admins and never mutated by the assessment engine.
type Question struct {
	ID            string     `bson:"_id,omitempty" json:"id"`
	Topic         Topic      `bson:"topic" json:"topic"`
	Difficulty    Difficulty `bson:"difficulty" json:"difficulty"`
	Prompt        string     `bson:"prompt" json:"prompt"`
	Options       [4]string  `bson:"options" json:"options"`
	CorrectOption int        `bson:"correct_option" json:"-"`
}

// Public strips the answer key for responses served to students.
func (q Question) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":         q.ID,
		"topic":      q.Topic,
		"difficulty": q.Difficulty,
		"prompt":     q.Prompt,
		"options":    q.Options,
	}
}
