package slots

// Canonical storage location names, matching the data store exactly.
const (
	LocationRefrigerator = "Refrigerator"
	LocationFreezer      = "Freezer"
	LocationPantry       = "Pantry"
)

// locationSynonyms maps user phrasing to canonical location names.
// First match wins, so canonical names appear first to keep
// canonicalization idempotent.
var locationSynonyms = []struct {
	Word     string
	Location string
}{
	{"refrigerator", LocationRefrigerator},
	{"fridge", LocationRefrigerator},
	{"icebox", LocationRefrigerator},
	{"freezer", LocationFreezer},
	{"pantry", LocationPantry},
	{"cupboard", LocationPantry},
	{"larder", LocationPantry},
}

// numberWords maps spelled-out small numbers to their values.
var numberWords = []struct {
	Word  string
	Value int
}{
	{"one", 1},
	{"two", 2},
	{"three", 3},
	{"four", 4},
	{"five", 5},
	{"six", 6},
	{"seven", 7},
	{"eight", 8},
	{"nine", 9},
	{"ten", 10},
}
