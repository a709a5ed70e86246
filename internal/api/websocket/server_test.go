package websocket

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	hub    *Hub
	http   *httptest.Server
	cancel context.CancelFunc
}

func (s *ServerTestSuite) SetupTest() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.hub = NewHub(nil)
	go s.hub.Run(ctx)

	s.http = httptest.NewServer(NewServer("0", s.hub, nil).Handler())
}

func (s *ServerTestSuite) TearDownTest() {
	s.http.Close()
	s.cancel()
}

func (s *ServerTestSuite) dial() *gorilla.Conn {
	url := "ws" + strings.TrimPrefix(s.http.URL, "http") + "/ws/odds"
	conn, resp, err := gorilla.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	resp.Body.Close()
	return conn
}

func (s *ServerTestSuite) TestBroadcastsOddsToSubscribers() {
	first := s.dial()
	defer first.Close()
	second := s.dial()
	defer second.Close()

	s.Eventually(func() bool { return s.hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	update := map[string]interface{}{"run_id": "run-1", "trials": 100}
	s.Require().NoError(s.hub.PublishOdds(context.Background(), update))

	for _, conn := range []*gorilla.Conn{first, second} {
		s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
		_, msg, err := conn.ReadMessage()
		s.Require().NoError(err)

		var got map[string]interface{}
		s.Require().NoError(json.Unmarshal(msg, &got))
		s.Equal("run-1", got["run_id"])
		s.EqualValues(100, got["trials"])
	}
}

func (s *ServerTestSuite) TestClientDisconnectUnregisters() {
	conn := s.dial()
	s.Eventually(func() bool { return s.hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	s.Eventually(func() bool { return s.hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func (s *ServerTestSuite) TestHealth() {
	resp, err := http.Get(s.http.URL + "/ws/health")
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.JSONEq(`{"status": "healthy", "clients": 0}`, string(body))
}

func (s *ServerTestSuite) TestPublishAfterStopFails() {
	s.cancel()
	s.Eventually(s.hub.stopped, time.Second, 10*time.Millisecond)

	s.ErrorIs(s.hub.PublishOdds(context.Background(), map[string]string{"run_id": "late"}), errHubStopped)
}

func TestShutdownStopsHubStartedConcurrently(t *testing.T) {
	hub := NewHub(nil)
	srv := NewServer("0", hub, nil)

	served := make(chan error, 1)
	go func() { served <- srv.Start() }()
	require.NoError(t, srv.Shutdown(context.Background()))

	assert.ErrorIs(t, <-served, http.ErrServerClosed)
	assert.Eventually(t, hub.stopped, time.Second, 10*time.Millisecond)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
