package intent

// Kind is the triage outcome for a raw utterance.
type Kind string

const (
	KindNavigation     Kind = "navigation"
	KindCookingCommand Kind = "cooking_command"
	KindQuestion       Kind = "question"
)

// Command identifies a short imperative cooking command.
type Command string

const (
	CommandNext     Command = "next"
	CommandPrevious Command = "previous"
	CommandRepeat   Command = "repeat"
	CommandPause    Command = "pause"
	CommandResume   Command = "resume"
	CommandTimer    Command = "timer"
)

// Result is the classifier output: the intent kind plus its payload.
// Route is set for navigation, Command for cooking commands.
type Result struct {
	Kind    Kind
	Route   string
	Command Command
}
