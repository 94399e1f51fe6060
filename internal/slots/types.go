package slots

// CompositeAction is the completed argument set for a multi-slot action
// (add item to inventory). Built atomically by TryComplete once every
// required slot is filled.
type CompositeAction struct {
	IngredientID string
	Quantity     int
	Unit         string
	Location     string
}

// Args returns the action arguments in wire form.
func (a CompositeAction) Args() map[string]any {
	return map[string]any{
		"ingredientId": a.IngredientID,
		"quantity":     a.Quantity,
		"unit":         a.Unit,
		"location":     a.Location,
	}
}
