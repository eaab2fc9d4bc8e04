package quiz

import (
	"errors"

	"github.com/abhisek/notequiz/internal/pitch"
)

var (
	// ErrInvalidLetter is returned by SubmitAnswer for a letter outside C..B.
	ErrInvalidLetter = errors.New("quiz: invalid answer letter")

	// ErrAlreadyAnswered is returned by SubmitAnswer when the active question
	// already has an answer. The call changes nothing.
	ErrAlreadyAnswered = errors.New("quiz: question already answered")
)

// Phase is the quiz's position in the answer cycle.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota // A question is shown, no answer yet
	PhaseAnswered                    // The answer result is being shown
)

func (p Phase) String() string {
	if p == PhaseAnswered {
		return "answered"
	}
	return "awaiting-answer"
}

// Score is the running tally for a session. Both counts only grow until
// the quiz is reset.
type Score struct {
	Correct   int
	Incorrect int
}

// Total returns the number of answered questions.
func (s Score) Total() int {
	return s.Correct + s.Incorrect
}

// Accuracy returns the fraction answered correctly, or 0 before any answer.
func (s Score) Accuracy() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total())
}

// AnswerResult describes one evaluated answer.
type AnswerResult struct {
	Submitted pitch.Letter
	Expected  pitch.Letter
	Correct   bool
}

// LetterResult tallies answers for questions whose note had one letter.
type LetterResult struct {
	Letter    pitch.Letter
	Attempted int
	Correct   int
}

// Accuracy returns the fraction of this letter's questions answered correctly.
func (r LetterResult) Accuracy() float64 {
	if r.Attempted == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempted)
}
