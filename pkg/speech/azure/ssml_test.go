package azure

import (
	"strings"
	"testing"

	"lira-support-be/pkg/language"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		wantTexts       []string
		wantTerminators []rune
	}{
		{
			name:            "danda and question mark",
			text:            "আমি ভালো আছি। তুমি কেমন আছ?",
			wantTexts:       []string{"আমি ভালো আছি", "তুমি কেমন আছ"},
			wantTerminators: []rune{'।', '?'},
		},
		{
			name:            "exclamation",
			text:            "দারুণ! ধন্যবাদ।",
			wantTexts:       []string{"দারুণ", "ধন্যবাদ"},
			wantTerminators: []rune{'!', '।'},
		},
		{
			name:            "trailing text without terminator",
			text:            "প্রথম বাক্য। শেষ অংশ",
			wantTexts:       []string{"প্রথম বাক্য", "শেষ অংশ"},
			wantTerminators: []rune{'।', 0},
		},
		{
			name:            "only punctuation yields nothing",
			text:            "।!?",
			wantTexts:       nil,
			wantTerminators: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.text)
			require.Len(t, got, len(tt.wantTexts))
			for i, s := range got {
				assert.Equal(t, tt.wantTexts[i], s.text)
				assert.Equal(t, tt.wantTerminators[i], s.terminator)
			}
		})
	}
}

func TestBuildSSMLBangla(t *testing.T) {
	out := BuildSSML("আমি ভালো আছি। তুমি কেমন আছ?", language.Bangla)

	// Two sentences, each in its own prosody element
	assert.Equal(t, 2, strings.Count(out, "<prosody"))
	assert.Equal(t, 2, strings.Count(out, "<break"))

	// Default pause after the danda, longer pause after the question mark
	firstBreak := strings.Index(out, "<break")
	lastBreak := strings.LastIndex(out, "<break")
	assert.Contains(t, out[firstBreak:firstBreak+30], breakDefault)
	assert.Contains(t, out[lastBreak:], breakLong)

	assert.Contains(t, out, `xml:lang="bn-BD"`)
	assert.Contains(t, out, voiceBangla)
	assert.NotContains(t, out, "express-as")
}

func TestBuildSSMLEnglish(t *testing.T) {
	out := BuildSSML("Hello there. How are you?", language.English)

	// The whole text is wrapped once, cheerful style, no pause markers
	assert.Equal(t, 1, strings.Count(out, "<prosody"))
	assert.Contains(t, out, `<mstts:express-as style="cheerful">`)
	assert.NotContains(t, out, "<break")
	assert.Contains(t, out, `pitch="`+englishPitch+`"`)
	assert.Contains(t, out, voiceEnglish)
}

func TestBuildSSMLEscapesText(t *testing.T) {
	out := BuildSSML(`Tom & Jerry <3 "quotes"`, language.English)

	assert.Contains(t, out, "Tom &amp; Jerry &lt;3 &quot;quotes&quot;")
	assert.NotContains(t, out, "<3")
}
