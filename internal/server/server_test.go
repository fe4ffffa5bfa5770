package server

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	. "gopkg.in/check.v1"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/output"
)

func Test(t *testing.T) { TestingT(t) }

type ServerSuite struct {
	srv    *httptest.Server
	client *http.Client
	logs   *memory.Handler
}

var _ = Suite(&ServerSuite{})

func (s *ServerSuite) SetUpSuite(c *C) {
	s.logs = memory.New()
	logger := &log.Logger{Handler: s.logs, Level: log.DebugLevel}
	s.srv = httptest.NewServer(Handler(config.NewConfig(), logger))
	s.client = s.srv.Client()
}

func (s *ServerSuite) TearDownSuite(c *C) {
	s.srv.Close()
}

func (s *ServerSuite) get(c *C, path string) (*http.Response, string) {
	res, err := s.client.Get(s.srv.URL + path)
	c.Assert(err, IsNil)
	defer res.Body.Close()
	body, err := ioutil.ReadAll(res.Body)
	c.Assert(err, IsNil)
	return res, string(body)
}

func (s *ServerSuite) TestBoardText(c *C) {
	res, body := s.get(c, BoardPath)
	c.Assert(res.StatusCode, Equals, http.StatusOK)
	c.Assert(res.Header.Get("Content-Type"), Equals, "text/plain; charset=UTF-8")
	c.Assert(body, Equals, chess.NewBoard().Render())
	c.Assert(res.Header.Get("X-Request-Id"), Not(Equals), "")
}

func (s *ServerSuite) TestBoardTrailingSlash(c *C) {
	res, body := s.get(c, BoardPath+"/")
	c.Assert(res.StatusCode, Equals, http.StatusOK)
	c.Assert(strings.Count(body, "\n"), Equals, 2*chess.BoardSize+1)
}

func (s *ServerSuite) TestBoardJSON(c *C) {
	res, body := s.get(c, BoardJSONPath)
	c.Assert(res.StatusCode, Equals, http.StatusOK)
	c.Assert(res.Header.Get("Content-Type"), Equals, "application/json; charset=UTF-8")

	var board output.JSONBoard
	c.Assert(json.Unmarshal([]byte(body), &board), IsNil)
	c.Assert(board.FEN, Equals, chess.NewBoard().Placement())
	c.Assert(board.Ranks, HasLen, chess.BoardSize)
	c.Assert(board.Ranks[0].Rank, Equals, 8)
	c.Assert(board.Ranks[0].Squares[4], Equals, chess.BlackKing)
	c.Assert(board.Ranks[7].Squares[4], Equals, chess.WhiteKing)
}

func (s *ServerSuite) TestBoardFEN(c *C) {
	res, body := s.get(c, BoardFENPath)
	c.Assert(res.StatusCode, Equals, http.StatusOK)
	c.Assert(body, Equals, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR\n")
}

func (s *ServerSuite) TestUnknownRoute(c *C) {
	res, _ := s.get(c, "/moves")
	c.Assert(res.StatusCode, Equals, http.StatusNotFound)
}

func (s *ServerSuite) TestMethodNotAllowed(c *C) {
	res, err := s.client.Post(s.srv.URL+BoardPath, "text/plain", strings.NewReader(""))
	c.Assert(err, IsNil)
	res.Body.Close()
	c.Assert(res.StatusCode, Equals, http.StatusMethodNotAllowed)
}

func (s *ServerSuite) TestSecureHeaders(c *C) {
	res, _ := s.get(c, BoardPath)
	c.Assert(res.Header.Get("X-Content-Type-Options"), Equals, "nosniff")
	c.Assert(res.Header.Get("X-Frame-Options"), Equals, "SAMEORIGIN")
}

func (s *ServerSuite) TestRequestLogged(c *C) {
	s.get(c, BoardFENPath)

	found := false
	for _, entry := range s.logs.Entries {
		if entry.Fields.Get("path") == BoardFENPath && entry.Fields.Get("status") == http.StatusOK {
			found = true
		}
	}
	c.Assert(found, Equals, true)
}

type ListenSuite struct{}

var _ = Suite(&ListenSuite{})

func (s *ListenSuite) TestListenAndServeShutdown(c *C) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	c.Assert(err, IsNil)
	addr := l.Addr().String()
	c.Assert(l.Close(), IsNil)

	cfg := config.NewConfigBuilder().WithListenAddr(addr).Build()
	logger := &log.Logger{Handler: memory.New(), Level: log.InfoLevel}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ListenAndServe(ctx, cfg, logger)
	}()

	var res *http.Response
	for i := 0; i < 50; i++ {
		res, err = http.Get("http://" + addr + BoardFENPath)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	c.Assert(err, IsNil)
	res.Body.Close()
	c.Assert(res.StatusCode, Equals, http.StatusOK)

	cancel()
	select {
	case err := <-done:
		c.Assert(err, IsNil)
	case <-time.After(5 * time.Second):
		c.Fatal("ListenAndServe did not return after cancel")
	}
}
