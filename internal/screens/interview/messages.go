package interview

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/mockview/internal/feedback"
	"github.com/abhisek/mockview/internal/session"
)

// Scorer turns a finished session into feedback.
type Scorer interface {
	ScoreSession(s *session.Session) feedback.Feedback
}

// Services are the shared dependencies every interview screen needs.
type Services struct {
	Picker session.Picker
	Scorer Scorer
	Logger *zap.Logger

	// Clock overrides time.Now for session timing. Optional.
	Clock func() time.Time
}

// SessionOptions returns the session options implied by svc.
func (svc Services) SessionOptions() []session.Option {
	var opts []session.Option
	if svc.Logger != nil {
		opts = append(opts, session.WithLogger(svc.Logger))
	}
	if svc.Clock != nil {
		opts = append(opts, session.WithClock(svc.Clock))
	}
	return opts
}

func (svc Services) logger() *zap.Logger {
	if svc.Logger == nil {
		return zap.NewNop()
	}
	return svc.Logger
}

// interviewDoneMsg is sent when the session is complete or ended early.
type interviewDoneMsg struct{}
