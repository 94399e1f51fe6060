package continuity

// questionGlyphs end or open a question in the assistant's reply.
var questionGlyphs = []string{"?", "¿"}

// interrogativeTokens mark a reply that prompts the user for more
// information even without a question mark.
var interrogativeTokens = []string{
	"where",
	"how many",
	"how much",
	"which",
	"what kind",
	"what type",
	"what location",
}
