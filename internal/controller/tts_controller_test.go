package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"lira-support-be/internal/dto"
	"lira-support-be/internal/pkg/serverutils"
	"lira-support-be/pkg/speech"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTTSService struct {
	lastText string
	lastLang string
	res      *dto.SynthesizeResponse
	err      error
}

func (f *fakeTTSService) Synthesize(_ context.Context, text, lang string) (*dto.SynthesizeResponse, error) {
	f.lastText = text
	f.lastLang = lang
	return f.res, f.err
}

func newTTSApp(svc *fakeTTSService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	app.Use(serverutils.SessionMiddleware("test-secret"))
	NewTTSController(svc).RegisterRoutes(app)
	return app
}

func postTTS(t *testing.T, app *fiber.App, body string) *dto.ErrorResponse {
	t.Helper()
	req := httptest.NewRequest("POST", "/tts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	return &errBody
}

func TestSynthesizeReturnsAudioURL(t *testing.T) {
	svc := &fakeTTSService{res: &dto.SynthesizeResponse{AudioURL: "/static/tts/abc123.mp3", Lang: "bn"}}
	app := newTTSApp(svc)

	req := httptest.NewRequest("POST", "/tts", strings.NewReader(`{"text":"আমি ভালো আছি।"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.SynthesizeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "/static/tts/abc123.mp3", body.AudioURL)
	assert.Equal(t, "bn", body.Lang)

	assert.Equal(t, "আমি ভালো আছি।", svc.lastText)
	assert.Equal(t, "", svc.lastLang)
}

func TestSynthesizePassesExplicitLang(t *testing.T) {
	svc := &fakeTTSService{res: &dto.SynthesizeResponse{AudioURL: "/static/tts/x.mp3", Lang: "en"}}
	app := newTTSApp(svc)

	req := httptest.NewRequest("POST", "/tts", strings.NewReader(`{"text":"hello","lang":"en"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "en", svc.lastLang)
}

func TestSynthesizeRejectsMissingText(t *testing.T) {
	svc := &fakeTTSService{}
	app := newTTSApp(svc)

	for _, body := range []string{`{}`, `{"text":""}`, `{"text":"   "}`, `{not json`} {
		errBody := postTTS(t, app, body)
		assert.Equal(t, "No text", errBody.Error)
	}
	assert.Equal(t, "", svc.lastText)
}

func TestSynthesizeUnconfiguredBackend(t *testing.T) {
	svc := &fakeTTSService{err: fmt.Errorf("%w: api key not set", speech.ErrConfigMissing)}
	app := newTTSApp(svc)

	req := httptest.NewRequest("POST", "/tts", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "TTS is not configured", errBody.Error)
}

func TestSynthesizeVendorFailure(t *testing.T) {
	svc := &fakeTTSService{err: errors.New("upstream timeout")}
	app := newTTSApp(svc)

	req := httptest.NewRequest("POST", "/tts", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "TTS failed", errBody.Error)
}
