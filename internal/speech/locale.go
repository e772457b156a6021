package speech

// Locale maps an app language code to the BCP-47 locale used by the
// speech APIs.
func Locale(code string) string {
	switch code {
	case "ta":
		return "ta-IN"
	case "hi":
		return "hi-IN"
	default:
		return "en-US"
	}
}

// SynthesisLocales returns the locales to try for synthesis, in order.
// Tamil voices are not available everywhere, so Hindi is kept as a
// fallback rather than failing silently.
func SynthesisLocales(code string) []string {
	if code == "ta" {
		return []string{"ta-IN", "hi-IN"}
	}
	return []string{Locale(code)}
}
