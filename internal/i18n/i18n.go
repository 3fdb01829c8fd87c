// Package i18n holds the server-furnished translation tables for the two
// portal languages. The front end keeps its own presentation strings; only
// labels that originate server-side (status labels, assistant fallback) plus
// a small shared set live here.
package i18n

// Supported language codes.
const (
	LangEnglish = "en"
	LangAmharic = "am"
)

var tables = map[string]map[string]string{
	LangEnglish: {
		"portal.title":               "Samara Logia City Cadaster Office",
		"registration.status.review": "Under review",
		"registration.tracking.hint": "Keep your tracking number for office visits.",
		"assistant.offline":          "The assistant is currently offline. Please try again later.",
		"search.placeholder":         "Search by Cadaster ID or Address...",
	},
	LangAmharic: {
		"portal.title":               "ሰመራ ሎጊያ ከተማ ካዳስተር ጽሕፈት ቤት",
		"registration.status.review": "በሂደት ላይ",
		"registration.tracking.hint": "የመከታተያ ቁጥርዎን ለቢሮ ጉብኝቶች ይያዙ።",
		"assistant.offline":          "ረዳቱ በአሁኑ ጊዜ ከመስመር ውጭ ነው። እባክዎ ቆየት ብለው ይሞክሩ።",
		"search.placeholder":         "በካዳስተር መለያ ወይም አድራሻ ይፈልጉ...",
	},
}

// Table returns the message table for lang, or ok=false for an unknown code.
func Table(lang string) (map[string]string, bool) {
	t, ok := tables[lang]
	return t, ok
}

// StatusLabel maps the stored initial-review status to its display label.
// Unknown languages fall back to English.
func StatusLabel(lang string) string {
	if t, ok := tables[lang]; ok {
		return t["registration.status.review"]
	}
	return tables[LangEnglish]["registration.status.review"]
}
