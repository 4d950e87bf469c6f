package session

import "time"

// State is the lifecycle state of a session.
type State int

const (
	StateInProgress State = iota // Questions remain and the session is open
	StateComplete                // Every selected question has been answered
	StateEndedEarly              // Terminated by the learner after at least one answer
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in-progress"
	case StateComplete:
		return "complete"
	case StateEndedEarly:
		return "ended-early"
	default:
		return "unknown"
	}
}

// FollowUpAnswer pairs a follow-up prompt with the learner's reply.
type FollowUpAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Answer is the learner's response to one main question.
type Answer struct {
	QuestionID      string           `json:"question_id"`
	Text            string           `json:"text"`
	Timestamp       time.Time        `json:"timestamp"`
	FollowUpAnswers []FollowUpAnswer `json:"follow_up_answers"`
}
