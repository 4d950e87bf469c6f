package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError collects every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validate performs all structural checks on the given domains and questions.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validate(domains []Domain, questions []Question) error {
	var errs []string

	// Domains
	domainIDs := make(map[string]bool, len(domains))
	for i, d := range domains {
		if d.ID == "" {
			errs = append(errs, fmt.Sprintf("domain #%d has an empty ID", i))
			continue
		}
		if domainIDs[d.ID] {
			errs = append(errs, fmt.Sprintf("duplicate domain ID: %q", d.ID))
		}
		domainIDs[d.ID] = true

		if d.Title == "" {
			errs = append(errs, fmt.Sprintf("domain %q has an empty title", d.ID))
		}
		if len(d.Skills) == 0 {
			errs = append(errs, fmt.Sprintf("domain %q lists no skills", d.ID))
		}
		seen := make(map[string]bool, len(d.Skills))
		for _, s := range d.Skills {
			if s == "" {
				errs = append(errs, fmt.Sprintf("domain %q lists an empty skill name", d.ID))
				continue
			}
			if seen[s] {
				errs = append(errs, fmt.Sprintf("domain %q lists skill %q twice", d.ID, s))
			}
			seen[s] = true
		}
	}

	// Questions
	questionIDs := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question #%d has an empty ID", i))
			continue
		}
		if questionIDs[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		questionIDs[q.ID] = true

		prefix := fmt.Sprintf("question %q", q.ID)
		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, prefix+": text is empty")
		}
		if q.Skill == "" {
			errs = append(errs, prefix+": skill is empty")
		}
		if !slices.Contains(AllQuestionTypes(), q.Type) {
			errs = append(errs, fmt.Sprintf("%s: unknown type %q", prefix, q.Type))
		}
		if !q.Difficulty.IsQuestionLevel() {
			errs = append(errs, fmt.Sprintf("%s: difficulty must be easy, medium or hard, got %q", prefix, q.Difficulty))
		}
		for j, f := range q.FollowUps {
			if strings.TrimSpace(f) == "" {
				errs = append(errs, fmt.Sprintf("%s: follow-up #%d is empty", prefix, j))
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
