package intent

// commandPatterns maps cooking command kinds to their trigger phrases.
// Order matters: matching walks the slice top to bottom, so the table is a
// slice rather than a map to keep classification deterministic.
var commandPatterns = []struct {
	Command  Command
	Patterns []string
}{
	{CommandNext, []string{"next step", "next", "go on", "advance", "keep going"}},
	{CommandPrevious, []string{"previous step", "previous", "go back", "step back", "last step"}},
	{CommandRepeat, []string{"repeat", "again", "say that again", "read that again", "one more time"}},
	{CommandPause, []string{"pause", "hold on", "wait a moment", "stop"}},
	{CommandResume, []string{"resume", "continue", "carry on"}},
	{CommandTimer, []string{"timer", "set a timer", "countdown", "remind me in", "alert me in"}},
}

// commandVerbs are action verbs that disambiguate a longer utterance
// containing a command pattern toward being a command.
var commandVerbs = []string{"go", "advance", "read", "tell"}

// navigationSections maps section names to client routes.
var navigationSections = []struct {
	Name  string
	Route string
}{
	{"home", "/"},
	{"main page", "/"},
	{"cooking", "/cook"},
	{"cook", "/cook"},
	{"inventory", "/inventory"},
	{"ingredients", "/inventory"},
	{"recipes", "/recipes"},
	{"planner", "/plan"},
	{"plan", "/plan"},
	{"learning", "/learn"},
	{"learn", "/learn"},
	{"settings", "/settings"},
	{"configuration", "/settings"},
}

// navigationVerbs signal an explicit navigation request.
var navigationVerbs = []string{
	"go to", "go back to", "open", "show me", "show the", "show",
	"take me to", "take me", "navigate", "bring up", "switch to",
	"return to", "i want to see", "i want to go",
}

// questionIndicators signal that the utterance is a question or an
// information request rather than a command.
var questionIndicators = []string{
	"what", "how", "where", "when", "which", "why", "who",
	"do i have", "is there", "are there", "can i", "could i",
	"find", "search", "tell me", "give me", "i need", "have any",
}
