package dto

type SynthesizeRequest struct {
	Text string `json:"text" validate:"required"`
	Lang string `json:"lang,omitempty"`
}

type SynthesizeResponse struct {
	AudioURL string `json:"audio_url"`
	Lang     string `json:"lang"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
