package api

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/leirbagxis/FrameTrain/internal/api/types"
	"github.com/leirbagxis/FrameTrain/internal/cache"
	"github.com/leirbagxis/FrameTrain/internal/container"
	"github.com/leirbagxis/FrameTrain/internal/database"
	"github.com/leirbagxis/FrameTrain/internal/frame"
	"github.com/leirbagxis/FrameTrain/internal/preview"
	"github.com/leirbagxis/FrameTrain/internal/templates/figma"
	"github.com/leirbagxis/FrameTrain/pkg/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.SecretKey = "test-secret"
	config.PublicURL = "https://frames.test/"
}

type testServer struct {
	t      *testing.T
	app    *container.AppContainer
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	db, err := database.InitDB("file::memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	app := container.NewAppContainer(db, client, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go app.PreviewHub.Run(ctx)

	return &testServer{t: t, app: app, router: NewRouter(app)}
}

func (s *testServer) do(method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// createFrame creates a frame and returns its id and an editor token.
func (s *testServer) createFrame(template string) (string, string) {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/frames", "", types.CreateFrameRequest{Template: template, OwnerID: "42"})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var created types.CreateFrameResponse
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(s.t, created.Data)

	w = s.do(http.MethodPost, "/api/auth/token", "", types.TokenRequest{FrameID: created.Data.ID, Signature: created.Signature})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var tokenRes struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &tokenRes))
	return created.Data.ID, tokenRes.Token
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) *figma.View {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res types.InspectorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.True(t, res.Success)
	require.NotNil(t, res.Data)
	return res.Data
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"templates":["figma","quizlet"]`)
}

func TestCreateFrameRejectsUnknownTemplate(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/frames", "", types.CreateFrameRequest{Template: "nope", OwnerID: "42"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCreateFrameReturnsLinks(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/frames", "", types.CreateFrameRequest{Template: "figma", OwnerID: "42"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created types.CreateFrameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "https://frames.test/f/"+created.Data.ID, created.FrameURL)
	assert.Contains(t, created.EditURL, "signature="+created.Signature)
	assert.Contains(t, string(created.Data.Config), `"nextSlideId":2`)
}

func TestTokenRequiresValidSignature(t *testing.T) {
	s := newTestServer(t)
	frameID, _ := s.createFrame("figma")

	w := s.do(http.MethodPost, "/api/auth/token", "", types.TokenRequest{FrameID: frameID, Signature: "bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/auth/token", "", types.TokenRequest{FrameID: "missing", Signature: "bad"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTokenOnlyOpensItsOwnFrame(t *testing.T) {
	s := newTestServer(t)
	_, token := s.createFrame("figma")
	otherID, _ := s.createFrame("figma")

	w := s.do(http.MethodGet, "/api/frames/"+otherID, token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodGet, "/api/frames/"+otherID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyToken(t *testing.T) {
	s := newTestServer(t)
	frameID, token := s.createFrame("figma")

	w := s.do(http.MethodGet, "/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"frame_id":"`+frameID+`"`)
}

func TestListOwnerFrames(t *testing.T) {
	s := newTestServer(t)
	firstID, token := s.createFrame("figma")
	secondID, _ := s.createFrame("quizlet")

	w := s.do(http.MethodGet, "/api/me/frames", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data []types.FrameData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Data, 2)
	assert.ElementsMatch(t, []string{firstID, secondID}, []string{res.Data[0].ID, res.Data[1].ID})
}

func TestInspectorSlideLifecycle(t *testing.T) {
	s := newTestServer(t)
	frameID, token := s.createFrame("figma")
	base := "/api/frames/" + frameID + "/inspector"

	view := decodeView(t, s.do(http.MethodGet, base, token, nil))
	require.Len(t, view.Slides, 2)
	assert.Equal(t, 0, view.CurrentSlideIndex)
	assert.True(t, view.EditingFigmaPAT)
	assert.False(t, view.CanMoveLeft)
	assert.True(t, view.CanMoveRight)

	view = decodeView(t, s.do(http.MethodPost, base+"/slides", token, nil))
	require.Len(t, view.Slides, 3)
	assert.Equal(t, 2, view.CurrentSlideIndex)
	assert.Equal(t, "2", view.SelectedSlide.ID)
	assert.Equal(t, 3, view.NextSlideID)

	// the preview follows the selected slide
	w := s.do(http.MethodGet, "/api/frames/"+frameID+"/preview", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"params":"slideId=2"`)

	view = decodeView(t, s.do(http.MethodPost, base+"/slides/current/move", token, types.MoveSlideRequest{Direction: figma.DirectionLeft}))
	assert.Equal(t, 1, view.CurrentSlideIndex)
	assert.Equal(t, "2", view.Slides[1].ID)

	view = decodeView(t, s.do(http.MethodDelete, base+"/slides/current", token, nil))
	require.Len(t, view.Slides, 2)
	assert.Equal(t, 0, view.CurrentSlideIndex)

	w = s.do(http.MethodPost, base+"/slides/current/move", token, types.MoveSlideRequest{Direction: figma.DirectionLeft})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, base+"/slides/9/select", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, base+"/slides/x/select", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	view = decodeView(t, s.do(http.MethodPost, base+"/slides/1/select", token, nil))
	assert.Equal(t, 1, view.CurrentSlideIndex)
}

func TestInspectorKeepsLastSlide(t *testing.T) {
	s := newTestServer(t)
	frameID, token := s.createFrame("figma")
	base := "/api/frames/" + frameID + "/inspector"

	decodeView(t, s.do(http.MethodDelete, base+"/slides/current", token, nil))

	w := s.do(http.MethodDelete, base+"/slides/current", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	view := decodeView(t, s.do(http.MethodGet, base, token, nil))
	assert.Len(t, view.Slides, 1)
	assert.False(t, view.CanDelete)
}

func TestInspectorUpdateSlide(t *testing.T) {
	s := newTestServer(t)
	frameID, token := s.createFrame("figma")
	base := "/api/frames/" + frameID + "/inspector"

	slide := figma.SlideConfig{
		ID:          "0",
		Title:       "Hello",
		AspectRatio: "1:1",
		TextLayers: figma.TextLayerConfigs{
			"title": {Content: "Hi", FontFamily: "Open Sans", FontWeight: 700},
		},
	}
	view := decodeView(t, s.do(http.MethodPut, base+"/slides/current", token, slide))
	assert.Equal(t, "Hello", view.SelectedSlide.Title)

	slide.ID = "other"
	w := s.do(http.MethodPut, base+"/slides/current", token, slide)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInspectorFigmaPATGate(t *testing.T) {
	s := newTestServer(t)
	frameID, token := s.createFrame("figma")
	base := "/api/frames/" + frameID + "/inspector"

	view := decodeView(t, s.do(http.MethodPut, base+"/figma-pat", token, types.UpdateFigmaPATRequest{FigmaPAT: "figd_123"}))
	assert.Equal(t, "figd_123", view.FigmaPAT)
	assert.False(t, view.EditingFigmaPAT)

	view = decodeView(t, s.do(http.MethodPost, base+"/figma-pat/edit", token, nil))
	assert.True(t, view.EditingFigmaPAT)

	view = decodeView(t, s.do(http.MethodDelete, base+"/figma-pat/edit", token, nil))
	assert.False(t, view.EditingFigmaPAT)
	assert.Equal(t, "figd_123", view.FigmaPAT)

	w := s.do(http.MethodPut, base+"/figma-pat", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInspectorRejectsQuizFrames(t *testing.T) {
	s := newTestServer(t)
	frameID, token := s.createFrame("quizlet")

	w := s.do(http.MethodGet, "/api/frames/"+frameID+"/inspector", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateConfigValidatesJSON(t *testing.T) {
	s := newTestServer(t)
	frameID, token := s.createFrame("quizlet")
	path := "/api/frames/" + frameID + "/config"

	w := s.do(http.MethodPut, path, token, "[1,2]")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, path, token, `{"success":{"image":"https://img.test/ok.png","url":"https://example.com"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "https://img.test/ok.png")
}

func TestDeleteFrame(t *testing.T) {
	s := newTestServer(t)
	frameID, token := s.createFrame("figma")

	w := s.do(http.MethodDelete, "/api/frames/"+frameID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/frames/"+frameID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, err := s.app.SessionManager.GetPreview(context.Background(), frameID)
	assert.ErrorIs(t, err, cache.ErrSessionNotFound)
}

func TestPublicFrameHTML(t *testing.T) {
	s := newTestServer(t)
	frameID, _ := s.createFrame("figma")

	w := s.do(http.MethodGet, "/f/"+frameID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))

	body := w.Body.String()
	assert.Contains(t, body, `<meta property="fc:frame" content="vNext">`)
	assert.Contains(t, body, "https://frames.test/f/"+frameID+"/slides/0/image")
	assert.Contains(t, body, `content="1.91:1"`)
}

func TestPublicFrameNavigation(t *testing.T) {
	s := newTestServer(t)
	frameID, _ := s.createFrame("figma")

	press := frame.ActionPayload{UntrustedData: frame.UntrustedData{ButtonIndex: 1}}
	w := s.do(http.MethodPost, "/f/"+frameID+"/slide?slideId=0", "", press, "Accept", "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res frame.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "https://frames.test/f/"+frameID+"/slides/1/image", res.Image)
	require.Len(t, res.Buttons, 2)
	assert.Equal(t, frame.ActionLink, res.Buttons[1].Action)

	// an empty body re-renders the requested slide
	w = s.do(http.MethodPost, "/f/"+frameID+"/slide?slideId=1", "", nil, "Accept", "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/f/"+frameID+"/slide?slideId=9", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/f/"+frameID+"/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicQuizSuccess(t *testing.T) {
	s := newTestServer(t)
	frameID, token := s.createFrame("quizlet")

	w := s.do(http.MethodPut, "/api/frames/"+frameID+"/config", token,
		`{"cover":{"image":"https://img.test/cover.png"},"success":{"image":"https://img.test/ok.png","url":"https://example.com","aspectRatio":"1.91/1"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	press := frame.ActionPayload{UntrustedData: frame.UntrustedData{ButtonIndex: 2}}
	w = s.do(http.MethodPost, "/f/"+frameID+"/success", "", press, "Accept", "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res frame.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "https://img.test/ok.png", res.Image)
	assert.Equal(t, frame.AspectRatioWide, res.AspectRatio)
	require.Len(t, res.Buttons, 2)
	assert.Equal(t, "Create Your Own", res.Buttons[0].Label)
	assert.Equal(t, "Open Link", res.Buttons[1].Label)

	press.UntrustedData.ButtonIndex = 1
	w = s.do(http.MethodPost, "/f/"+frameID+"/success", "", press, "Accept", "application/json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://img.test/cover.png")
}

func TestFrameQR(t *testing.T) {
	s := newTestServer(t)
	frameID, _ := s.createFrame("figma")

	w := s.do(http.MethodGet, "/f/"+frameID+"/qr?size=200", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func TestSlideImage(t *testing.T) {
	s := newTestServer(t)
	frameID, _ := s.createFrame("figma")

	w := s.do(http.MethodGet, "/f/"+frameID+"/slides/0/image", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

	w = s.do(http.MethodGet, "/f/"+frameID+"/slides/9/image", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPreviewSocketFollowsSelection(t *testing.T) {
	s := newTestServer(t)
	frameID, token := s.createFrame("figma")
	base := "/api/frames/" + frameID + "/inspector"

	decodeView(t, s.do(http.MethodPost, base+"/slides/1/select", token, nil))

	srv := httptest.NewServer(s.router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/frames/" + frameID + "/preview/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg preview.Message
	require.NoError(t, conn.ReadJSON(&msg))
	require.NotNil(t, msg.Payload)
	assert.Equal(t, "slideId=1", msg.Payload.Params)

	decodeView(t, s.do(http.MethodPost, base+"/slides/0/select", token, nil))

	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "slideId=0", msg.Payload.Params)
	assert.Equal(t, "slide", msg.Payload.Handler)
}

func TestSlideImageUsesFrameAspectRatio(t *testing.T) {
	s := newTestServer(t)
	frameID, token := s.createFrame("figma")

	w := s.do(http.MethodPut, "/api/frames/"+frameID+"/config", token,
		`{"slides":[{"id":"0","aspectRatio":"1.91/1"},{"id":"1","aspectRatio":"1:1"}],"nextSlideId":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cases := map[string]int{"0": 1146, "1": 600}
	for slideID, width := range cases {
		w = s.do(http.MethodGet, "/f/"+frameID+"/slides/"+slideID+"/image", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, width, img.Bounds().Dx(), "slide %s", slideID)
		assert.Equal(t, 600, img.Bounds().Dy(), "slide %s", slideID)
	}

	// the meta tags advertise the same ratio the image is rendered at
	w = s.do(http.MethodGet, "/f/"+frameID, "", nil, "Accept", "application/json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"aspectRatio":"1.91:1"`)
}
