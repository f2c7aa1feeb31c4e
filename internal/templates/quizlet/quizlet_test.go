package quizlet

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/leirbagxis/FrameTrain/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func request(buttonIndex int) *frame.Request {
	return &frame.Request{
		FrameID: "q1",
		BaseURL: "https://frames.test",
		Body:    frame.ActionPayload{UntrustedData: frame.UntrustedData{ButtonIndex: buttonIndex}},
	}
}

func fullConfig() *Config {
	return &Config{
		Cover: ScreenConfig{Image: "https://img/cover.png", AspectRatio: ptr("1.91/1")},
		Success: SuccessConfig{
			Image:       "https://img/success.png",
			URL:         "https://example.com",
			Label:       ptr("Read more"),
			AspectRatio: ptr("1.91/1"),
		},
	}
}

func TestSuccessTryAgainReturnsInitial(t *testing.T) {
	cfg := fullConfig()
	req := request(1)

	assert.Equal(t, initial(req, cfg), success(req, cfg))
}

func TestSuccessWithoutImageReturnsInitial(t *testing.T) {
	cfg := fullConfig()
	cfg.Success.Image = ""

	for _, index := range []int{0, 1, 2, 3} {
		req := request(index)
		assert.Equal(t, initial(req, cfg), success(req, cfg))
	}
}

func TestSuccessWithoutURLHasOneButton(t *testing.T) {
	cfg := fullConfig()
	cfg.Success.URL = ""

	res := success(request(2), cfg)
	assert.Equal(t, []frame.Button{
		{Label: "Create Your Own", Action: frame.ActionLink, Target: "https://frametra.in"},
	}, res.Buttons)
	assert.Equal(t, "https://img/success.png", res.Image)
}

func TestSuccessWithURL(t *testing.T) {
	cfg := fullConfig()

	res := success(request(2), cfg)
	require.Len(t, res.Buttons, 2)
	assert.Equal(t, frame.Button{Label: "Read more", Action: frame.ActionLink, Target: "https://example.com"}, res.Buttons[1])

	cfg.Success.Label = nil
	res = success(request(2), cfg)
	assert.Equal(t, "Open Link", res.Buttons[1].Label)
}

func TestSuccessAspectRatio(t *testing.T) {
	cases := []struct {
		name  string
		ratio *string
		want  string
	}{
		{"wide", ptr("1.91/1"), "1.91:1"},
		{"square", ptr("1/1"), "1:1"},
		{"anything else", ptr("16/9"), "1:1"},
		{"unset", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := fullConfig()
			cfg.Success.AspectRatio = tc.ratio
			assert.Equal(t, tc.want, success(request(2), cfg).AspectRatio)
		})
	}
}

func TestFrameAspectRatioNeedsImage(t *testing.T) {
	assert.Equal(t, "", frameAspectRatio("", ptr("1.91/1")))
	assert.Equal(t, "", frameAspectRatio("x.png", nil))
}

func TestInitial(t *testing.T) {
	res := initial(request(0), fullConfig())

	assert.Equal(t, "https://img/cover.png", res.Image)
	assert.Equal(t, "1.91:1", res.AspectRatio)
	assert.Equal(t, "https://frames.test/f/q1/success", res.PostURL)
	assert.Equal(t, []frame.Button{
		{Label: "Try again", Action: frame.ActionPost},
		{Label: "Submit", Action: frame.ActionPost},
	}, res.Buttons)
}

func TestTemplateHandlersDecodeConfig(t *testing.T) {
	raw, err := json.Marshal(fullConfig())
	require.NoError(t, err)

	reg := frame.NewRegistry()
	reg.Register(NewTemplate())

	req := request(2)
	req.Handler = "success"
	req.Config = raw
	res, err := reg.Dispatch(context.Background(), TemplateName, req)
	require.NoError(t, err)
	assert.Equal(t, "https://img/success.png", res.Image)

	req.Config = []byte("{not json")
	_, err = reg.Dispatch(context.Background(), TemplateName, req)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	raw, err := NewTemplate().DefaultConfig()
	require.NoError(t, err)

	cfg, err := DecodeConfig(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Try again", "Submit"}, cfg.InitialButtons)
}
