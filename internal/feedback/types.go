package feedback

// Limits on the generated lists.
const (
	MaxStrengths    = 4
	MaxImprovements = 3
	MaxNextSteps    = 5
)

// Score thresholds.
const (
	baseScore   = 50
	maxScore    = 100
	skillFloor  = 40
	skillJitter = 10
)

// Feedback is the report produced at the end of an interview.
type Feedback struct {
	Score          int             `json:"score"`
	Strengths      []string        `json:"strengths"`
	Improvements   []string        `json:"improvements"`
	Overall        string          `json:"overall_feedback"`
	NextSteps      []string        `json:"next_steps"`
	SkillBreakdown []SkillFeedback `json:"skill_breakdown"`
}

// SkillFeedback is the per-skill part of the report.
type SkillFeedback struct {
	Skill    string `json:"skill"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Metrics are the answer statistics the score is derived from.
type Metrics struct {
	Answers         int
	AverageLength   float64 // characters
	FollowUpAnswers int
	CompletionRatio float64
}
