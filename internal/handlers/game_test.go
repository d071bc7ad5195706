package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/mines"
)

// cornerSource always aims at the bottom right cell of the board.
func cornerSource() mines.PositionSource {
	return mines.PositionSourceFunc(func(width, height int) mines.Position {
		return mines.Position{X: width - 1, Y: height - 1}
	})
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ws, err := config.NewWebSocket()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewGameHandler(logger, ws, game.Params{Width: 3, Height: 3, MineCount: 1}, cornerSource)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /game/defaults", h.Defaults)
	mux.HandleFunc("GET /game/connect", h.Connect)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/game/connect?" + query
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

type viewFrame struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MineCount int    `json:"mine_count"`
	Revealed  int    `json:"revealed"`
	Flagged   int    `json:"flagged"`
	Status    string `json:"status"`
	Grid      []int  `json:"grid"`
	Error     string `json:"error"`
}

func readFrame(t *testing.T, conn *websocket.Conn) viewFrame {
	t.Helper()
	var f viewFrame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestParseNewGameDTO(t *testing.T) {
	defaults := game.DefaultParams()

	params, err := ParseNewGameDTO(url.Values{"width": {"16"}, "mine_count": {"40"}}, defaults)
	require.NoError(t, err)
	assert.Equal(t, game.Params{Width: 16, Height: 10, MineCount: 40}, params)

	_, err = ParseNewGameDTO(url.Values{"width": {"wide"}}, defaults)
	assert.Error(t, err)

	_, err = ParseNewGameDTO(url.Values{"mine_count": {"100"}}, defaults)
	assert.ErrorIs(t, err, game.ErrBadParams)
}

func TestDefaults(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/game/defaults")
	require.NoError(t, err)
	defer resp.Body.Close()

	var dto map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dto))
	assert.Equal(t, map[string]int{"width": 3, "height": 3, "mine_count": 1}, dto)
}

func TestConnectPlaysToWin(t *testing.T) {
	conn := dial(t, newTestServer(t), "")

	f := readFrame(t, conn)
	assert.Equal(t, "in progress", f.Status)
	assert.Equal(t, []int{-2, -2, -2, -2, -2, -2, -2, -2, -2}, f.Grid)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("f 2 2\no 0 0")))

	f = readFrame(t, conn)
	assert.Equal(t, "won", f.Status)
	assert.Equal(t, 8, f.Revealed)
	assert.Equal(t, 1, f.Flagged)
	assert.Equal(t, int(game.CorrectFlag), f.Grid[8])
}

func TestConnectReportsBadCommands(t *testing.T) {
	conn := dial(t, newTestServer(t), "width=4&height=2&mine_count=1")
	f := readFrame(t, conn)
	assert.Equal(t, 4, f.Width)
	assert.Equal(t, 2, f.Height)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("o 9 9")))

	f = readFrame(t, conn)
	assert.Contains(t, f.Error, "coordinate not inside the play space")
	f = readFrame(t, conn)
	assert.Equal(t, "in progress", f.Status)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("dance")))
	f = readFrame(t, conn)
	assert.Contains(t, f.Error, "unknown command")
	f = readFrame(t, conn)
	assert.Equal(t, "in progress", f.Status)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("o 3 1")))
	f = readFrame(t, conn)
	assert.Equal(t, "lost", f.Status)
	assert.Equal(t, int(game.ExplodedMine), f.Grid[7])
}

func TestConnectQuit(t *testing.T) {
	conn := dial(t, newTestServer(t), "")
	readFrame(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("quit")))

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}

func TestConnectRejectsBinary(t *testing.T) {
	conn := dial(t, newTestServer(t), "")
	readFrame(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{0x6f, 0x20, 0x30}))

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseUnsupportedData))
}

func TestConnectRejectsHugeMessage(t *testing.T) {
	conn := dial(t, newTestServer(t), "")
	readFrame(t, conn)

	message := strings.Repeat("g\n", maxMessageSize)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(message)))

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseMessageTooBig))
}

func TestConnectBadParams(t *testing.T) {
	srv := newTestServer(t)
	queries := []string{
		"mine_count=9",
		"width=100000&height=100000&mine_count=1",
		"width=4294967297&height=4294967296&mine_count=0",
	}
	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/game/connect?" + query

			_, resp, err := websocket.DefaultDialer.Dial(u, nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body viewFrame
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Contains(t, body.Error, "invalid")
		})
	}
}

func TestStatus(t *testing.T) {
	w := httptest.NewRecorder()
	Status(w, httptest.NewRequest("GET", "/status", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
