package quiz

import (
	"github.com/abhisek/notequiz/internal/pitch"
	"github.com/abhisek/notequiz/internal/question"
)

// QuestionSource produces the next question, avoiding previous's letter
// when it can. *question.Generator satisfies it.
type QuestionSource interface {
	Next(previous *question.Question) question.Question
}

// Quiz holds one active question and the session's score. It is not safe
// for concurrent use; each game session owns its own Quiz.
type Quiz struct {
	source  QuestionSource
	current question.Question
	phase   Phase
	score   Score
	last    AnswerResult

	streak        int
	bestStreak    int
	nextMilestone int
	milestone     bool

	perLetter map[pitch.Letter]*LetterResult
}

// New starts a quiz awaiting an answer to a fresh question.
func New(source QuestionSource) *Quiz {
	q := &Quiz{source: source}
	q.clear()
	q.current = source.Next(nil)
	return q
}

func (q *Quiz) clear() {
	q.phase = PhaseAwaitingAnswer
	q.score = Score{}
	q.last = AnswerResult{}
	q.streak = 0
	q.bestStreak = 0
	q.nextMilestone = BaseStreakMilestone
	q.milestone = false
	q.perLetter = make(map[pitch.Letter]*LetterResult)
}

// SubmitAnswer scores letter against the active question and moves to
// PhaseAnswered. A second answer to the same question is ignored and
// returns the first result with ErrAlreadyAnswered.
func (q *Quiz) SubmitAnswer(letter pitch.Letter) (AnswerResult, error) {
	if !letter.Valid() {
		return AnswerResult{}, ErrInvalidLetter
	}
	if q.phase == PhaseAnswered {
		return q.last, ErrAlreadyAnswered
	}

	expected := q.current.Answer()
	res := AnswerResult{
		Submitted: letter,
		Expected:  expected,
		Correct:   letter == expected,
	}

	lr := q.perLetter[expected]
	if lr == nil {
		lr = &LetterResult{Letter: expected}
		q.perLetter[expected] = lr
	}
	lr.Attempted++

	q.milestone = false
	if res.Correct {
		q.score.Correct++
		lr.Correct++
		q.streak++
		if q.streak > q.bestStreak {
			q.bestStreak = q.streak
		}
		if q.streak >= q.nextMilestone {
			q.milestone = true
			q.nextMilestone = NextStreakMilestone(q.streak)
		}
	} else {
		q.score.Incorrect++
		q.streak = 0
		q.nextMilestone = BaseStreakMilestone
	}

	q.last = res
	q.phase = PhaseAnswered
	return res, nil
}

// RequestNewQuestion replaces the active question and waits for an answer.
// It is allowed in either phase and leaves the score alone.
func (q *Quiz) RequestNewQuestion() question.Question {
	prev := q.current
	q.current = q.source.Next(&prev)
	q.phase = PhaseAwaitingAnswer
	q.milestone = false
	return q.current
}

// Reset zeroes the score, streaks and tallies and starts a new question.
func (q *Quiz) Reset() question.Question {
	q.clear()
	return q.RequestNewQuestion()
}

// CurrentQuestion returns the active question.
func (q *Quiz) CurrentQuestion() question.Question { return q.current }

// Score returns the running score.
func (q *Quiz) Score() Score { return q.score }

// Phase returns the current phase.
func (q *Quiz) Phase() Phase { return q.phase }

// LastResult returns the result for the active question, if it has one.
func (q *Quiz) LastResult() (AnswerResult, bool) {
	return q.last, q.phase == PhaseAnswered
}

// Streak returns the current run of correct answers.
func (q *Quiz) Streak() int { return q.streak }

// BestStreak returns the longest run of correct answers this session.
func (q *Quiz) BestStreak() int { return q.bestStreak }

// MilestoneReached reports whether the last answer completed a streak milestone.
func (q *Quiz) MilestoneReached() bool { return q.milestone }

// LetterResults returns per-letter tallies in alphabet order, skipping
// letters that were never asked.
func (q *Quiz) LetterResults() []LetterResult {
	var out []LetterResult
	for _, l := range pitch.Letters() {
		if lr := q.perLetter[l]; lr != nil {
			out = append(out, *lr)
		}
	}
	return out
}
