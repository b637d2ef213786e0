package models

import "fmt"

type Topic string

const (
	TopicPython     Topic = "python"
	TopicSQL        Topic = "sql"
	TopicLogical    Topic = "logical"
	TopicQuant      Topic = "quant"
	TopicLanguage   Topic = "language"
	TopicStatistics Topic = "statistics"
)

// Topics is the fixed enumeration, in the order used for round-robin
// distribution during quiz composition. Question bank, difficulty tracking
// and composition all share this list.
var Topics = []Topic{
	TopicPython,
	TopicSQL,
	TopicLogical,
	TopicQuant,
	TopicLanguage,
	TopicStatistics,
}

func ParseTopic(s string) (Topic, error) {
	for _, t := range Topics {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown topic %q", s)
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties is ordered easiest to hardest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) rank() int {
	switch d {
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	}
	return 0
}

// Harder returns the next level up, capped at hard.
func (d Difficulty) Harder() Difficulty {
	if r := d.rank(); r < len(Difficulties)-1 {
		return Difficulties[r+1]
	}
	return DifficultyHard
}

// Easier returns the next level down, floored at easy.
func (d Difficulty) Easier() Difficulty {
	if r := d.rank(); r > 0 {
		return Difficulties[r-1]
	}
	return DifficultyEasy
}

// HarderThan reports whether d is a strictly higher level than other.
func (d Difficulty) HarderThan(other Difficulty) bool {
	return d.rank() > other.rank()
}
