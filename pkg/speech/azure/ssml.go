package azure

import (
	"fmt"
	"math/rand"
	"strings"

	"lira-support-be/pkg/language"
)

const (
	voiceBangla  = "bn-BD-NabanitaNeural"
	voiceEnglish = "en-US-JennyNeural"

	englishPitch = "+3%"
	englishRate  = "+5%"

	breakDefault = "300ms"
	breakLong    = "500ms"
)

// Per-sentence prosody pools. Sampling pitch and rate per sentence keeps
// longer Bangla passages from sounding monotone.
var (
	banglaPitches = []string{"-2%", "0%", "+2%", "+4%"}
	banglaRates   = []string{"-5%", "0%", "+5%"}
)

var ssmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

type sentence struct {
	text       string
	terminator rune
}

// splitSentences breaks Bangla text on the sentence-ending punctuation
// "।", "!" and "?", keeping the terminator so pause lengths can differ.
// Trailing text without a terminator forms a final sentence.
func splitSentences(text string) []sentence {
	var sentences []sentence
	var current strings.Builder

	for _, r := range text {
		switch r {
		case '।', '!', '?':
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, sentence{text: s, terminator: r})
			}
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, sentence{text: s})
	}

	return sentences
}

// BuildSSML constructs the markup document submitted to the speech vendor.
// Bangla input gets one prosody element per sentence with a pause marker
// after each, longer after exclamations and questions. English input is
// wrapped once in a cheerful-style prosody element.
func BuildSSML(text, lang string) string {
	var b strings.Builder
	b.WriteString(`<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xmlns:mstts="https://www.w3.org/2001/mstts" xml:lang="`)
	if lang == language.Bangla {
		b.WriteString(`bn-BD">`)
		b.WriteString(`<voice name="` + voiceBangla + `">`)
		for _, s := range splitSentences(text) {
			pitch := banglaPitches[rand.Intn(len(banglaPitches))]
			rate := banglaRates[rand.Intn(len(banglaRates))]
			fmt.Fprintf(&b, `<prosody pitch="%s" rate="%s">%s</prosody>`, pitch, rate, ssmlEscaper.Replace(s.text))

			pause := breakDefault
			if s.terminator == '!' || s.terminator == '?' {
				pause = breakLong
			}
			fmt.Fprintf(&b, `<break time="%s"/>`, pause)
		}
		b.WriteString(`</voice>`)
	} else {
		b.WriteString(`en-US">`)
		b.WriteString(`<voice name="` + voiceEnglish + `">`)
		b.WriteString(`<mstts:express-as style="cheerful">`)
		fmt.Fprintf(&b, `<prosody pitch="%s" rate="%s">%s</prosody>`, englishPitch, englishRate, ssmlEscaper.Replace(text))
		b.WriteString(`</mstts:express-as>`)
		b.WriteString(`</voice>`)
	}
	b.WriteString(`</speak>`)
	return b.String()
}
