package txkey

// Detector reports whether a string is written in the language being translated.
type Detector func(s string) bool

// Hebrew reports whether s contains at least one Hebrew letter (alef to tav).
func Hebrew(s string) bool {
	for _, r := range s {
		if r >= 'א' && r <= 'ת' {
			return true
		}
	}
	return false
}
