// Package catalog holds the fixed set of spending categories used for
// classification, budgeting and display. The catalog is built once at
// package init and never mutated; callers that need a different taxonomy
// pass their own Catalog value instead of changing the default.
package catalog

// FallbackKey is the catch-all category assigned when no keyword matches
// and when a stored record references a key that no longer exists.
const FallbackKey = "other"

// Definition describes one spending category.
type Definition struct {
	Key      string
	Label    string
	Glyph    string
	Keywords []string // lowercase substrings scored by the categorizer
}

// Catalog is an ordered, read-only set of category definitions.
type Catalog struct {
	defs  []Definition
	byKey map[string]int
}

// New builds a catalog from the given definitions. Order is preserved and
// matters: the categorizer breaks ties by first-encountered definition.
func New(defs []Definition) Catalog {
	byKey := make(map[string]int, len(defs))
	for i, d := range defs {
		byKey[d.Key] = i
	}
	return Catalog{defs: defs, byKey: byKey}
}

// Definitions returns the catalog in iteration order.
func (c Catalog) Definitions() []Definition {
	return c.defs
}

// Lookup returns the definition for key, or the fallback definition when
// the key is unknown. Stale keys in stored data resolve here rather than
// failing.
func (c Catalog) Lookup(key string) Definition {
	if i, ok := c.byKey[key]; ok {
		return c.defs[i]
	}
	return c.defs[c.byKey[FallbackKey]]
}

// Has reports whether key names a category in this catalog.
func (c Catalog) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

var defaultCatalog = New([]Definition{
	{
		Key: "food", Label: "Food & Dining", Glyph: "🍔",
		Keywords: []string{"grocery", "groceries", "restaurant", "coffee", "cafe", "pizza", "burger", "lunch", "dinner", "breakfast", "snack", "takeout", "delivery", "supermarket"},
	},
	{
		Key: "transport", Label: "Transport", Glyph: "🚗",
		Keywords: []string{"uber", "lyft", "taxi", "bus", "train", "metro", "fuel", "gas station", "parking", "toll"},
	},
	{
		Key: "shopping", Label: "Shopping", Glyph: "🛍️",
		Keywords: []string{"amazon", "clothes", "clothing", "shoes", "electronics", "furniture", "appliance", "mall"},
	},
	{
		Key: "health", Label: "Health", Glyph: "💊",
		Keywords: []string{"pharmacy", "doctor", "dentist", "hospital", "medicine", "clinic", "prescription", "therapy"},
	},
	{
		Key: "entertainment", Label: "Entertainment", Glyph: "🎬",
		Keywords: []string{"netflix", "spotify", "cinema", "movie", "concert", "streaming", "videogame", "theater"},
	},
	{
		Key: "bills", Label: "Bills & Utilities", Glyph: "🧾",
		Keywords: []string{"rent", "mortgage", "electricity", "water bill", "internet", "phone bill", "insurance", "utility", "subscription"},
	},
	{
		Key: "education", Label: "Education", Glyph: "📚",
		Keywords: []string{"course", "tuition", "textbook", "udemy", "workshop", "seminar", "bootcamp"},
	},
	{
		Key: "travel", Label: "Travel", Glyph: "✈️",
		Keywords: []string{"hotel", "flight", "airbnb", "vacation", "airline", "luggage", "hostel"},
	},
	{
		Key: "fitness", Label: "Fitness", Glyph: "🏋️",
		Keywords: []string{"gym", "yoga", "workout", "fitness", "protein", "crossfit"},
	},
	{
		Key: "personal_care", Label: "Personal Care", Glyph: "💇",
		Keywords: []string{"haircut", "salon", "barber", "spa", "cosmetics", "skincare"},
	},
	{
		Key: "investments", Label: "Investments", Glyph: "📈",
		Keywords: []string{"stocks", "crypto", "brokerage", "savings deposit", "etf", "bonds"},
	},
	{
		Key: "other", Label: "Other", Glyph: "📦",
		Keywords: nil, // fallback never participates in scoring
	},
})

// Default returns the built-in catalog.
func Default() Catalog {
	return defaultCatalog
}
