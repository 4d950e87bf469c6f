package session

import "time"

// Summary holds the session facts shown next to the feedback report.
type Summary struct {
	SessionID       string    `json:"session_id"`
	DomainID        string    `json:"domain_id"`
	DomainTitle     string    `json:"domain_title"`
	Skills          []string  `json:"skills"`
	State           string    `json:"state"`
	StartedAt       time.Time `json:"started_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Answered        int       `json:"answered"`
	Total           int       `json:"total"`
	FollowUpAnswers int       `json:"follow_up_answers"`
	EndedEarly      bool      `json:"ended_early"`
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(s *Session) Summary {
	answered, total := s.Progress()

	followUps := 0
	for _, a := range s.answers {
		followUps += len(a.FollowUpAnswers)
	}

	return Summary{
		SessionID:       s.id,
		DomainID:        s.domain.ID,
		DomainTitle:     s.domain.Title,
		Skills:          s.Skills(),
		State:           s.State().String(),
		StartedAt:       s.startTime,
		DurationMinutes: s.DurationMinutes(),
		Answered:        answered,
		Total:           total,
		FollowUpAnswers: followUps,
		EndedEarly:      s.endedEarly,
	}
}
