package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/llm"
	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/refine"
	"github.com/madboat/madboat/internal/transport/ws"
	"github.com/madboat/madboat/internal/typing"
)

func newServer(t *testing.T, svc *refine.Service) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(&Container{
		Classifier: quiz.NewClassifier(quiz.DefaultBank()),
		Refine:     svc,
		Version:    "test",
	}))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv := newServer(t, nil)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"status": "ok", "version": "test"}, body)
}

func TestAnalyze(t *testing.T) {
	srv := newServer(t, nil)

	t.Run("text with fast typing", func(t *testing.T) {
		resp := post(t, srv.URL+"/v1/persona/analyze", AnalyzeRequest{
			Text:    "Vamos agir rápido e entregar o resultado na prática",
			Metrics: &typing.TypingMetrics{TotalTimeMs: 10000, CharacterCount: 60, AverageTypingSpeed: 360},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Type       string            `json:"type"`
			Confidence float64           `json:"confidence"`
			Patterns   []string          `json:"behavioral_patterns"`
			Auxiliary  persona.Auxiliary `json:"auxiliary"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "pragmatico", body.Type)
		assert.Greater(t, body.Confidence, 0.0)
		assert.Contains(t, body.Patterns, persona.TagFastTyping)
	})

	t.Run("empty text", func(t *testing.T) {
		resp := post(t, srv.URL+"/v1/persona/analyze", AnalyzeRequest{Text: "  "})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/v1/persona/analyze", "application/json", strings.NewReader("{"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("second opinion unavailable", func(t *testing.T) {
		resp := post(t, srv.URL+"/v1/persona/analyze", AnalyzeRequest{Text: "o mar", SecondOpinion: true})
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestAnalyzeSecondOpinion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{
		"category": "visionario", "confidence": 55, "reasoning": "fala de futuro",
	}))
	svc := refine.NewService(mock, refine.DefaultConfig())
	t.Cleanup(svc.Close)
	srv := newServer(t, svc)

	resp := post(t, srv.URL+"/v1/persona/analyze", AnalyzeRequest{Text: "o mar", SecondOpinion: true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.SecondOpinion)
	assert.Equal(t, persona.Visionario, body.SecondOpinion.Category)
	assert.Equal(t, "mock", body.SecondOpinion.Model)
}

func TestClassify(t *testing.T) {
	srv := newServer(t, nil)

	resp := post(t, srv.URL+"/v1/persona/classify", ClassifyRequest{Responses: []quiz.Response{
		{QuestionID: 0, Answer: "Prefiro analisar os dados com método antes de decidir"},
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 3, Answer: "A"},
	}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res quiz.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, persona.Analitico, res.Type)
	assert.Equal(t, 3, res.Answered)
	assert.False(t, res.Done)
	assert.Equal(t, quiz.ReasonContinue, res.Reason)

	bad := post(t, srv.URL+"/v1/persona/classify", ClassifyRequest{Responses: []quiz.Response{{QuestionID: 99}}})
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestQuestions(t *testing.T) {
	srv := newServer(t, nil)
	resp, err := http.Get(srv.URL + "/v1/quiz/questions")
	require.NoError(t, err)
	defer resp.Body.Close()

	var bank quiz.Bank
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bank))
	assert.Equal(t, quiz.DefaultBank().Version, bank.Version)
	assert.Len(t, bank.Questions, quiz.DefaultBank().Len())
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestTypingSocketThroughRouter(t *testing.T) {
	srv := httptest.NewServer(NewRouter(&Container{
		Classifier: quiz.NewClassifier(quiz.DefaultBank()),
		Typing:     ws.NewHandler(nil, nil),
	}))
	t.Cleanup(srv.Close)

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/v1/ws/typing", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	send := func(msg ws.ClientMessage) ws.ServerMessage {
		t.Helper()
		require.NoError(t, conn.WriteJSON(msg))
		var reply ws.ServerMessage
		require.NoError(t, conn.ReadJSON(&reply))
		return reply
	}

	assert.Equal(t, ws.MsgStarted, send(ws.ClientMessage{Type: ws.MsgStart}).Type)
	for _, k := range []string{"o", "i"} {
		require.NoError(t, conn.WriteJSON(ws.ClientMessage{Type: ws.MsgKey, Key: k}))
	}
	reply := send(ws.ClientMessage{Type: ws.MsgStop})
	require.Equal(t, ws.MsgMetrics, reply.Type)
	require.NotNil(t, reply.Metrics)
	assert.Equal(t, 2, reply.Metrics.CharacterCount)
}
