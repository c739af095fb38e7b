package language

// Supported language tags
const (
	Bangla  = "bn"
	English = "en"
)

// Detect classifies text as Bangla or English. The first codepoint inside
// the Bangla Unicode block (U+0980-U+09FF) wins; everything else falls
// through to English. Mixed-language input is not distinguished further.
func Detect(text string) string {
	for _, r := range text {
		if r >= 0x0980 && r <= 0x09FF {
			return Bangla
		}
	}
	return English
}
