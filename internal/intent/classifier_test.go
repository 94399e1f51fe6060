package intent_test

import (
	"testing"

	"kitchen-voice-assistant/internal/intent"
)

func TestClassify(t *testing.T) {
	t.Run("Short Command Utterances", func(t *testing.T) {
		cases := map[string]intent.Command{
			"next":          intent.CommandNext,
			"next step":     intent.CommandNext,
			"go back":       intent.CommandPrevious,
			"repeat":        intent.CommandRepeat,
			"pause":         intent.CommandPause,
			"resume":        intent.CommandResume,
			"set a timer":   intent.CommandTimer,
			"say that again": intent.CommandRepeat,
		}
		for text, want := range cases {
			got := intent.Classify(text)
			if got.Kind != intent.KindCookingCommand {
				t.Errorf("%q: expected cooking command, got %s", text, got.Kind)
			}
			if got.Command != want {
				t.Errorf("%q: expected command %s, got %s", text, want, got.Command)
			}
		}
	})

	t.Run("Question Mentioning Command Word Is Question", func(t *testing.T) {
		got := intent.Classify("what do I do in the next step of this recipe")
		if got.Kind != intent.KindQuestion {
			t.Errorf("expected question, got %s", got.Kind)
		}
	})

	t.Run("Long Command With Action Verb", func(t *testing.T) {
		got := intent.Classify("please go on to the next step now")
		if got.Kind != intent.KindCookingCommand || got.Command != intent.CommandNext {
			t.Errorf("expected next command, got %+v", got)
		}
	})

	t.Run("Question Indicator Beats Section Name", func(t *testing.T) {
		// "inventory" is a section name, but without a navigation verb the
		// question indicator wins.
		got := intent.Classify("what do I have in the inventory")
		if got.Kind != intent.KindQuestion {
			t.Errorf("expected question, got %s", got.Kind)
		}
	})

	t.Run("Navigation With Verb", func(t *testing.T) {
		cases := map[string]string{
			"go to the recipes":              "/recipes",
			"open settings":                  "/settings",
			"show me the inventory please":   "/inventory",
			"take me to the planner section": "/plan",
		}
		for text, route := range cases {
			got := intent.Classify(text)
			if got.Kind != intent.KindNavigation {
				t.Errorf("%q: expected navigation, got %s", text, got.Kind)
				continue
			}
			if got.Route != route {
				t.Errorf("%q: expected route %s, got %s", text, route, got.Route)
			}
		}
	})

	t.Run("Short Section Name Without Verb", func(t *testing.T) {
		got := intent.Classify("recipes")
		if got.Kind != intent.KindNavigation || got.Route != "/recipes" {
			t.Errorf("expected navigation to /recipes, got %+v", got)
		}
	})

	t.Run("Long Section Mention Without Verb Falls Through", func(t *testing.T) {
		got := intent.Classify("I was thinking about the recipes my grandmother used to make")
		if got.Kind != intent.KindQuestion {
			t.Errorf("expected question fallback, got %s", got.Kind)
		}
	})

	t.Run("Default Is Question", func(t *testing.T) {
		got := intent.Classify("add three tomatoes")
		if got.Kind != intent.KindQuestion {
			t.Errorf("expected question, got %s", got.Kind)
		}
	})
}
