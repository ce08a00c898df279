package domain

// Difficulty rates a quiz.
type Difficulty string

// Quiz difficulties.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether the difficulty is one of the known values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"` // index into Options
	Explanation   string   `json:"explanation,omitempty"`
	Points        int      `json:"points"`
}

// Quiz is an ordered set of questions with a total point value.
// TotalPoints must equal the sum of question points; the catalog loader
// verifies this at startup but the data is otherwise trusted.
type Quiz struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Difficulty  Difficulty     `json:"difficulty"`
	Questions   []QuizQuestion `json:"questions"`
	TimeLimit   int            `json:"time_limit,omitempty"` // minutes, decorative
	Image       string         `json:"image,omitempty"`
	TotalPoints int            `json:"total_points"`
}

// SumPoints returns the sum of all question point values.
func (q *Quiz) SumPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}
