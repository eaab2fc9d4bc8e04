package quiz

import "time"

// Summary holds the data displayed at the end of a session.
type Summary struct {
	Duration      time.Duration
	Score         Score
	Accuracy      float64
	BestStreak    int
	LetterResults []LetterResult
}

// BuildSummary captures the quiz's results after elapsed time.
func BuildSummary(q *Quiz, elapsed time.Duration) *Summary {
	return &Summary{
		Duration:      elapsed,
		Score:         q.Score(),
		Accuracy:      q.Score().Accuracy(),
		BestStreak:    q.BestStreak(),
		LetterResults: q.LetterResults(),
	}
}
