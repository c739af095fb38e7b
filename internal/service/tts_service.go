package service

import (
	"context"

	"lira-support-be/internal/dto"
	"lira-support-be/internal/pkg/logger"
	"lira-support-be/pkg/language"
	"lira-support-be/pkg/speech"
)

// ITTSService converts text to a publicly served audio artifact
type ITTSService interface {
	Synthesize(ctx context.Context, text, lang string) (*dto.SynthesizeResponse, error)
}

type ttsService struct {
	synthesizer speech.Synthesizer
	publicPath  string
	log         logger.ILogger
}

func NewTTSService(synthesizer speech.Synthesizer, publicPath string, log logger.ILogger) ITTSService {
	return &ttsService{
		synthesizer: synthesizer,
		publicPath:  publicPath,
		log:         log,
	}
}

func (s *ttsService) Synthesize(ctx context.Context, text, lang string) (*dto.SynthesizeResponse, error) {
	// The caller may pin a language; otherwise detect it from the text
	if lang == "" {
		lang = language.Detect(text)
	}

	filename, err := s.synthesizer.Synthesize(ctx, text, lang)
	if err != nil {
		s.log.Error("tts", "Speech synthesis failed", map[string]interface{}{
			"lang":  lang,
			"error": err.Error(),
		})
		return nil, err
	}

	return &dto.SynthesizeResponse{
		AudioURL: s.publicPath + "/" + filename,
		Lang:     lang,
	}, nil
}
