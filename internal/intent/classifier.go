package intent

import (
	"strings"
)

// Classify triages a raw utterance into navigation, cooking command, or
// question. Pure and deterministic; unmatched input always falls through to
// question, so there is no error case.
func Classify(text string) Result {
	lower := strings.ToLower(strings.TrimSpace(text))
	wordCount := len(strings.Fields(lower))

	// 1. Cooking command patterns. A short utterance is a command outright;
	// a longer one is a question if it carries a question indicator (a
	// question mentioning a command word is not itself a command), and a
	// command again if it carries an explicit action verb.
	for _, group := range commandPatterns {
		for _, pattern := range group.Patterns {
			if !strings.Contains(lower, pattern) {
				continue
			}
			if wordCount <= 3 {
				return Result{Kind: KindCookingCommand, Command: group.Command}
			}
			if containsAny(lower, questionIndicators) {
				return Result{Kind: KindQuestion}
			}
			if containsAnyWord(lower, commandVerbs) {
				return Result{Kind: KindCookingCommand, Command: group.Command}
			}
		}
	}

	hasNavVerb := containsAny(lower, navigationVerbs)

	// 2. A question indicator without an explicit navigation verb always
	// wins over section-name matches.
	if containsAny(lower, questionIndicators) && !hasNavVerb {
		return Result{Kind: KindQuestion}
	}

	// 3. Section names: explicit verb, or a short utterance naming a section.
	for _, section := range navigationSections {
		if !strings.Contains(lower, section.Name) {
			continue
		}
		if hasNavVerb {
			return Result{Kind: KindNavigation, Route: section.Route}
		}
		if wordCount <= 4 {
			return Result{Kind: KindNavigation, Route: section.Route}
		}
	}

	// 4. Everything else goes to the model.
	return Result{Kind: KindQuestion}
}

func containsAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// containsAnyWord matches whole words only, so "go" does not fire inside
// words like "good".
func containsAnyWord(text string, words []string) bool {
	for _, field := range strings.Fields(text) {
		field = strings.Trim(field, ".,!?")
		for _, w := range words {
			if field == w {
				return true
			}
		}
	}
	return false
}
