package language

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain english",
			text: "What is the price of the face wash?",
			want: English,
		},
		{
			name: "empty string",
			text: "",
			want: English,
		},
		{
			name: "pure bangla",
			text: "আমি ভালো আছি",
			want: Bangla,
		},
		{
			name: "single bangla codepoint wins",
			text: "price of ক please",
			want: Bangla,
		},
		{
			name: "bangla codepoint at end",
			text: "how much টাকা",
			want: Bangla,
		},
		{
			name: "non-bangla unicode stays english",
			text: "¿cuánto cuesta? ありがとう",
			want: English,
		},
		{
			name: "digits and punctuation",
			text: "450 BDT?!",
			want: English,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
