package openai

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"lira-support-be/pkg/language"
	"lira-support-be/pkg/speech"

	openai "github.com/sashabaranov/go-openai"
)

const (
	speechModel  = "gpt-4o-mini-tts"
	voiceBangla  = "verse"
	voiceDefault = "alloy"
	speechSpeed  = 1.3
)

// Synthesizer streams audio directly from the model vendor's speech
// endpoint.
type Synthesizer struct {
	client    *openai.Client
	outputDir string
}

var _ speech.Synthesizer = &Synthesizer{}

func NewSynthesizer(apiKey, outputDir string) *Synthesizer {
	return NewSynthesizerWithClient(openai.NewClient(apiKey), outputDir)
}

// NewSynthesizerWithClient allows injecting a preconfigured client, mainly
// for pointing tests at a local server.
func NewSynthesizerWithClient(client *openai.Client, outputDir string) *Synthesizer {
	return &Synthesizer{
		client:    client,
		outputDir: outputDir,
	}
}

func (s *Synthesizer) Synthesize(ctx context.Context, text, lang string) (string, error) {
	voice := voiceDefault
	if lang == language.Bangla {
		voice = voiceBangla
	}

	res, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(speechModel),
		Input: text,
		Voice: openai.SpeechVoice(voice),
		Speed: speechSpeed,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", speech.ErrSynthesis, err)
	}
	defer res.Close()

	outputPath, err := speech.NewOutputFile(s.outputDir)
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	defer file.Close()

	// Write the stream incrementally instead of buffering the full clip
	if _, err := io.Copy(file, res); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("%w: stream audio: %v", speech.ErrSynthesis, err)
	}

	return filepath.Base(outputPath), nil
}
