package azure

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lira-support-be/pkg/speech"
)

const (
	outputFormat   = "audio-16khz-128kbitrate-mono-mp3"
	requestTimeout = 60 * time.Second
)

// Synthesizer submits SSML to the Azure Speech REST endpoint for the
// configured region.
type Synthesizer struct {
	key       string
	endpoint  string
	outputDir string
	client    *http.Client
}

var _ speech.Synthesizer = &Synthesizer{}

func NewSynthesizer(key, region, outputDir string) *Synthesizer {
	endpoint := ""
	if region != "" {
		endpoint = fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", region)
	}
	return NewSynthesizerWithEndpoint(key, endpoint, outputDir)
}

// NewSynthesizerWithEndpoint allows injecting the vendor endpoint,
// primarily for tests against a local HTTP server.
func NewSynthesizerWithEndpoint(key, endpoint, outputDir string) *Synthesizer {
	return &Synthesizer{
		key:       key,
		endpoint:  endpoint,
		outputDir: outputDir,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (s *Synthesizer) Synthesize(ctx context.Context, text, lang string) (string, error) {
	if s.key == "" || s.endpoint == "" {
		return "", fmt.Errorf("%w: speech key or region not set", speech.ErrConfigMissing)
	}

	ssml := BuildSSML(text, lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(ssml))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", s.key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", outputFormat)

	res, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", speech.ErrSynthesis, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("%w: status %d, body: %s", speech.ErrSynthesis, res.StatusCode, string(body))
	}

	outputPath, err := speech.NewOutputFile(s.outputDir)
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, res.Body); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("%w: write audio: %v", speech.ErrSynthesis, err)
	}

	return filepath.Base(outputPath), nil
}
