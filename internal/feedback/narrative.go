package feedback

import (
	"fmt"

	"github.com/abhisek/mockview/internal/catalog"
)

// domainNextSteps holds the extra next step for domains that have one.
var domainNextSteps = map[string]string{
	"software-engineer": "Practice coding problems and system design scenarios",
	"data-scientist":    "Work on explaining statistical concepts and ML algorithms clearly",
	"product-manager":   "Develop case studies showing product thinking and user empathy",
}

func skillNarrative(skill string, score int) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("Excellent demonstration of %s knowledge with clear examples and deep understanding.", skill)
	case score >= 65:
		return fmt.Sprintf("Good grasp of %s concepts with room for more specific examples and technical depth.", skill)
	default:
		return fmt.Sprintf("Basic understanding of %s shown. Focus on building more hands-on experience and specific examples.", skill)
	}
}

// strengths lists every strength that applies, in priority order, and keeps
// the first MaxStrengths.
func strengths(score int, domain catalog.Domain, m Metrics) []string {
	var out []string
	if m.AverageLength > 200 {
		out = append(out, "Provided detailed and comprehensive answers")
	}
	if m.FollowUpAnswers > 0 {
		out = append(out, "Engaged well with follow-up questions, showing depth of knowledge")
	}
	if score >= 75 {
		out = append(out, fmt.Sprintf("Demonstrated strong understanding of %s concepts", domain.Title))
	}
	if m.Answers >= 3 {
		out = append(out, "Maintained professional communication throughout the interview")
	}
	if m.AverageLength > 300 {
		out = append(out, "Showed ability to elaborate on complex topics with specific examples")
	}
	if m.Answers < 5 {
		out = append(out, "Made efficient use of time by providing focused answers")
	}
	return truncate(out, MaxStrengths)
}

// improvements lists every improvement that applies, in priority order, and
// keeps the first MaxImprovements.
func improvements(score int, m Metrics) []string {
	var out []string
	if m.AverageLength < 150 {
		out = append(out, "Provide more detailed explanations with specific examples")
	}
	if score < 70 {
		out = append(out, "Deepen technical knowledge in core areas")
	}
	if m.Answers < 5 {
		out = append(out, "Consider completing more questions for comprehensive evaluation")
	}
	out = append(out, "Consider using the STAR method (Situation, Task, Action, Result) for behavioral questions")
	if m.AverageLength < 200 {
		out = append(out, "Include quantifiable results and metrics in your examples")
	}
	out = append(out, "Practice explaining complex concepts in simpler terms")
	return truncate(out, MaxImprovements)
}

func overall(score int, domain catalog.Domain, m Metrics) string {
	note := fmt.Sprintf(" You completed %d questions", m.Answers)
	if m.Answers < 5 {
		note += " - consider completing more questions next time for a more comprehensive evaluation."
	} else {
		note += " which provided a good assessment of your skills."
	}

	switch {
	case score >= 85:
		engagement := ""
		if m.FollowUpAnswers > 0 {
			engagement = "Your engagement with follow-up questions showed impressive depth of knowledge. "
		}
		return fmt.Sprintf("Excellent performance! You demonstrated strong expertise in %s with detailed, well-structured answers.%s %sYou're well-prepared for interviews in this domain.",
			domain.Title, note, engagement)
	case score >= 70:
		detail := ""
		if m.AverageLength > 200 {
			detail = "Your detailed responses demonstrate good preparation. "
		}
		return fmt.Sprintf("Good job! You showed solid understanding of %s concepts and provided thoughtful answers.%s %sWith some additional practice on specific examples and technical depth, you'll be very competitive.",
			domain.Title, note, detail)
	case score >= 55:
		encourage := ""
		if m.FollowUpAnswers == 0 {
			encourage = "Try to engage more with follow-up questions to show your thinking process. "
		}
		return fmt.Sprintf("You're on the right track! You have a foundation in %s, but there's room for improvement.%s Focus on providing more detailed examples and deepening your technical knowledge. %sKeep practicing!",
			domain.Title, note, encourage)
	default:
		return fmt.Sprintf("This interview highlighted areas for growth in %s.%s Focus on building stronger foundational knowledge and preparing specific examples from your experience. Consider additional study and practice before your next interview.",
			domain.Title, note)
	}
}

// nextSteps lists the recommended next steps and keeps the first MaxNextSteps.
func nextSteps(score int, domain catalog.Domain, skills []string) []string {
	var out []string
	if score < 70 {
		first, second := "core areas", "core areas"
		if len(skills) > 0 {
			first = skills[0]
		}
		if len(skills) > 1 {
			second = skills[1]
		}
		out = append(out, fmt.Sprintf("Review fundamental concepts in %s and %s", first, second))
	}
	out = append(out,
		"Practice more behavioral questions using structured frameworks",
		"Prepare 3-5 detailed examples from your experience for different question types",
	)
	if step, ok := domainNextSteps[domain.ID]; ok {
		out = append(out, step)
	}
	out = append(out,
		"Record yourself answering questions to improve delivery and confidence",
		"Try completing a full interview session for more comprehensive feedback",
	)
	return truncate(out, MaxNextSteps)
}

func truncate(list []string, n int) []string {
	if list == nil {
		return []string{}
	}
	if len(list) > n {
		return list[:n]
	}
	return list
}
