package directive

// Directive is a structured action descriptor decoded from a model reply.
// Params stays an open map at this boundary; validation and conversion to
// typed arguments happen before dispatch.
type Directive struct {
	Action      string         `json:"action"`
	Params      map[string]any `json:"params"`
	NeedsInfo   bool           `json:"needs_info,omitempty"`
	UserMessage string         `json:"user_message,omitempty"`
}
