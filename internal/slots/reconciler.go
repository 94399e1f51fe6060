package slots

import (
	"strconv"
	"strings"
	"unicode"

	"kitchen-voice-assistant/internal/model"
)

// ExtractQuantity pulls a quantity out of the utterance: spelled-out small
// numbers first, then the first digit run. Defaults to 1.
func ExtractQuantity(text string) int {
	lower := strings.ToLower(text)

	for _, field := range strings.Fields(lower) {
		field = strings.TrimFunc(field, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
		for _, nw := range numberWords {
			if field == nw.Word {
				return nw.Value
			}
		}
	}

	digits := firstDigitRun(lower)
	if digits != "" {
		if n, err := strconv.Atoi(digits); err == nil {
			return n
		}
	}

	return 1
}

// ExtractLocation matches the utterance against the location synonym table.
// First match wins; returns false when no synonym is present.
func ExtractLocation(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, syn := range locationSynonyms {
		if strings.Contains(lower, syn.Word) {
			return syn.Location, true
		}
	}
	return "", false
}

// Observe applies the utterance's slot cues to the session. A detected
// location always overwrites; a quantity is only written when >1 so a later
// ambiguous utterance cannot clobber an earlier explicit value with the
// default.
func Observe(s *model.SessionState, text string) {
	location, hasLocation := ExtractLocation(text)
	quantity := ExtractQuantity(text)

	s.Lock()
	defer s.Unlock()
	if hasLocation {
		s.PendingLocation = location
	}
	if quantity > 1 {
		s.PendingQuantity = quantity
	}
}

// SeedItem records a looked-up item as the pending composite-action target.
func SeedItem(s *model.SessionState, id, name string) {
	s.Lock()
	defer s.Unlock()
	s.PendingItem = &model.PendingItem{ID: id, Name: name}
}

// TryComplete builds the composite-action argument set when both the item
// and the location are known, clearing all pending slots in the same
// critical section. Clearing before the action is dispatched guarantees the
// action executes at most once per completed slot set.
func TryComplete(s *model.SessionState) (CompositeAction, bool) {
	s.Lock()
	defer s.Unlock()

	if s.PendingItem == nil || s.PendingLocation == "" {
		return CompositeAction{}, false
	}

	action := CompositeAction{
		IngredientID: s.PendingItem.ID,
		Quantity:     s.PendingQuantity,
		Unit:         s.PendingUnit,
		Location:     s.PendingLocation,
	}

	s.PendingItem = nil
	s.PendingLocation = ""
	s.PendingQuantity = 1
	s.PendingUnit = model.DefaultUnit

	return action, true
}

// Restore re-seeds the pending slots from a completed action whose dispatch
// failed, so the user can retry without repeating earlier turns.
func Restore(s *model.SessionState, name string, action CompositeAction) {
	s.Lock()
	defer s.Unlock()
	s.PendingItem = &model.PendingItem{ID: action.IngredientID, Name: name}
	s.PendingLocation = action.Location
	s.PendingQuantity = action.Quantity
	s.PendingUnit = action.Unit
}

// Clear drops all pending slot state, returning quantity and unit to their
// defaults. Used when a composite action is abandoned.
func Clear(s *model.SessionState) {
	s.Lock()
	defer s.Unlock()
	s.PendingItem = nil
	s.PendingLocation = ""
	s.PendingQuantity = 1
	s.PendingUnit = model.DefaultUnit
}

func firstDigitRun(text string) string {
	start := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return text[start:i]
		}
	}
	if start >= 0 {
		return text[start:]
	}
	return ""
}
