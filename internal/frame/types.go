package frame

import (
	"net/url"
)

type ButtonAction string

const (
	ActionPost         ButtonAction = "post"
	ActionPostRedirect ButtonAction = "post_redirect"
	ActionLink         ButtonAction = "link"
)

// AspectRatio values accepted by clients. Empty means unset.
const (
	AspectRatioWide   = "1.91:1"
	AspectRatioSquare = "1:1"
)

type CastID struct {
	FID  int64  `json:"fid"`
	Hash string `json:"hash"`
}

type UntrustedData struct {
	FID         int64  `json:"fid"`
	URL         string `json:"url"`
	MessageHash string `json:"messageHash"`
	Timestamp   int64  `json:"timestamp"`
	Network     int    `json:"network"`
	ButtonIndex int    `json:"buttonIndex"`
	InputText   string `json:"inputText,omitempty"`
	CastID      CastID `json:"castId"`
}

type TrustedData struct {
	MessageBytes string `json:"messageBytes"`
}

// ActionPayload is the body a client posts when a frame button is pressed.
type ActionPayload struct {
	UntrustedData UntrustedData `json:"untrustedData"`
	TrustedData   TrustedData   `json:"trustedData"`
}

type Button struct {
	Label  string       `json:"label"`
	Action ButtonAction `json:"action"`
	Target string       `json:"target,omitempty"`
}

// Response is everything needed to render one frame screen.
type Response struct {
	Buttons     []Button `json:"buttons"`
	Image       string   `json:"image"`
	AspectRatio string   `json:"aspectRatio,omitempty"`
	InputText   string   `json:"inputText,omitempty"`
	PostURL     string   `json:"postUrl,omitempty"`
}

// Request carries one handler invocation.
type Request struct {
	FrameID string
	Handler string
	// BaseURL is the public root the frame is served from, without trailing slash.
	BaseURL string
	Params  url.Values
	Body    ActionPayload
	Config  []byte
}

// HandlerURL builds the post url of another handler of the same frame.
func (r *Request) HandlerURL(handler string, params url.Values) string {
	u := r.BaseURL + "/f/" + r.FrameID + "/" + handler
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}
