package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Jaymin100/BooHoo/internal/config"
	"github.com/Jaymin100/BooHoo/internal/model"
	"github.com/Jaymin100/BooHoo/internal/service/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type E2EGameFlowSuite struct {
	suite.Suite

	server  *httptest.Server
	client  *http.Client
	archive *memoryArchive
}

// memoryArchive stands in for the Postgres results table.
type memoryArchive struct {
	mu   sync.Mutex
	rows map[model.RoomCode][]model.ArchivedResult
}

func (a *memoryArchive) Archive(_ context.Context, code model.RoomCode, finishedAt time.Time, rows []model.LeaderboardRow) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, row := range rows {
		a.rows[code] = append(a.rows[code], model.ArchivedResult{
			RoomCode:   code,
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			VoteTotal:  row.VoteTotal,
			Rank:       i + 1,
			FinishedAt: finishedAt,
		})
	}
	return nil
}

func (a *memoryArchive) Results(_ context.Context, code model.RoomCode) ([]model.ArchivedResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rows[code], nil
}

func TestE2EGameFlowSuite(t *testing.T) {
	suite.RunSuite(t, new(E2EGameFlowSuite))
}

func (s *E2EGameFlowSuite) BeforeEach(t provider.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		HTTP: config.HTTPServer{
			AllowedOrigins: []string{"*"},
			PublicURL:      "http://localhost:3000",
			DebugRoutes:    true,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.archive = &memoryArchive{rows: make(map[model.RoomCode][]model.ArchivedResult)}

	pool := newControllerPool(cfg, logger, ratelimit.New(5, time.Minute), s.archive)
	s.server = httptest.NewServer(pool.Handler())
	s.client = s.server.Client()
}

func (s *E2EGameFlowSuite) AfterEach(t provider.T) {
	s.server.Close()
}

func (s *E2EGameFlowSuite) call(t provider.T, method, path string, body, out any) int {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		t.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	t.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	t.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil {
		t.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type joinResp struct {
	Success  bool   `json:"success"`
	PlayerID string `json:"player_id"`
	IsHost   bool   `json:"is_host"`
}

func (s *E2EGameFlowSuite) TestFullGame(t provider.T) {
	var created struct {
		Success  bool   `json:"success"`
		RoomCode string `json:"room_code"`
	}
	t.WithNewStep("create room", func(sCtx provider.StepCtx) {
		status := s.call(t, http.MethodPost, "/api/create_room", nil, &created)
		sCtx.Assert().Equal(http.StatusOK, status)
		sCtx.Assert().True(created.Success)
		sCtx.Assert().Len(created.RoomCode, 6)
	})
	code := created.RoomCode

	var alice, bob joinResp
	t.WithNewStep("players join", func(sCtx provider.StepCtx) {
		sCtx.Assert().Equal(http.StatusOK, s.call(t, http.MethodPost, "/api/join",
			map[string]string{"room_code": code, "player_name": "Al<ice>", "image_data": "img-a"}, &alice))
		sCtx.Assert().Equal(http.StatusOK, s.call(t, http.MethodPost, "/api/join",
			map[string]string{"room_code": code, "player_name": "Bob", "image_data": "img-b"}, &bob))
		sCtx.Assert().True(alice.IsHost)
		sCtx.Assert().False(bob.IsHost)
	})

	t.WithNewStep("host starts game", func(sCtx provider.StepCtx) {
		sCtx.Assert().Equal(http.StatusOK, s.call(t, http.MethodPost, "/api/start_game/"+code, nil, nil))

		var summary model.RoomSummary
		sCtx.Assert().Equal(http.StatusOK, s.call(t, http.MethodGet, "/api/room/"+code, nil, &summary))
		sCtx.Assert().Equal(model.StatusPlaying, summary.Status)
		sCtx.Assert().Equal(alice.PlayerID, summary.HostID)
		sCtx.Assert().Equal("Al&lt;ice&gt;", summary.Players[0].Name)
	})

	var costumes struct {
		Costumes []model.CostumeView `json:"costumes"`
	}
	s.call(t, http.MethodGet, "/api/costumes/"+code, nil, &costumes)
	t.Require().Len(costumes.Costumes, 2)
	aliceCostume, bobCostume := costumes.Costumes[0].ID, costumes.Costumes[1].ID

	t.WithNewStep("players vote", func(sCtx provider.StepCtx) {
		var out struct {
			AllFinished bool `json:"all_finished"`
		}
		s.call(t, http.MethodPost, "/api/submit_votes", map[string]any{
			"room_code": code, "player_id": alice.PlayerID, "votes": map[string]int{bobCostume: 1},
		}, &out)
		sCtx.Assert().False(out.AllFinished)

		s.call(t, http.MethodPost, "/api/submit_votes", map[string]any{
			"room_code": code, "player_id": bob.PlayerID, "votes": map[string]int{bobCostume: 1, aliceCostume: 1},
		}, &out)
		sCtx.Assert().True(out.AllFinished)
	})

	t.WithNewStep("leaderboard and archive", func(sCtx provider.StepCtx) {
		var board struct {
			Leaderboard []model.LeaderboardRow `json:"leaderboard"`
		}
		sCtx.Assert().Equal(http.StatusOK, s.call(t, http.MethodGet, "/api/leaderboard/"+code, nil, &board))
		sCtx.Require().Len(board.Leaderboard, 2)
		sCtx.Assert().Equal(model.LeaderboardRow{PlayerID: bob.PlayerID, PlayerName: "Bob", VoteTotal: 2, ImageData: "img-b"}, board.Leaderboard[0])
		sCtx.Assert().Equal(1, board.Leaderboard[1].VoteTotal)

		var history struct {
			Results []model.ArchivedResult `json:"results"`
		}
		sCtx.Assert().Equal(http.StatusOK, s.call(t, http.MethodGet, "/api/results/"+code, nil, &history))
		sCtx.Require().Len(history.Results, 2)
		sCtx.Assert().Equal(1, history.Results[0].Rank)
		sCtx.Assert().Equal(bob.PlayerID, history.Results[0].PlayerID)
	})

	t.WithNewStep("room is deleted", func(sCtx provider.StepCtx) {
		sCtx.Assert().Equal(http.StatusOK, s.call(t, http.MethodDelete, "/api/delete_room/"+code, nil, nil))
		sCtx.Assert().Equal(http.StatusNotFound, s.call(t, http.MethodGet, "/api/room/"+code, nil, nil))
		// archived standings outlive the room
		sCtx.Assert().Equal(http.StatusOK, s.call(t, http.MethodGet, "/api/results/"+code, nil, nil))
	})
}

func (s *E2EGameFlowSuite) TestCreateRoomIsRateLimited(t provider.T) {
	for i := range 5 {
		t.Require().Equal(http.StatusOK, s.call(t, http.MethodPost, "/api/create_room", nil, nil), fmt.Sprintf("request %d", i+1))
	}

	req, err := http.NewRequest(http.MethodPost, s.server.URL+"/api/create_room", nil)
	t.Require().NoError(err)
	resp, err := s.client.Do(req)
	t.Require().NoError(err)
	defer resp.Body.Close()

	t.Assert().Equal(http.StatusTooManyRequests, resp.StatusCode)
	t.Assert().NotEmpty(resp.Header.Get("Retry-After"))
}

func (s *E2EGameFlowSuite) TestCreateRoomLimitIgnoresForwardedFor(t provider.T) {
	create := func(forwardedFor string) *http.Response {
		req, err := http.NewRequest(http.MethodPost, s.server.URL+"/api/create_room", nil)
		t.Require().NoError(err)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		resp, err := s.client.Do(req)
		t.Require().NoError(err)
		resp.Body.Close()
		return resp
	}

	t.WithNewStep("budget is spent under changing forwarded addresses", func(sCtx provider.StepCtx) {
		for i := range 5 {
			resp := create(fmt.Sprintf("198.51.100.%d", i+1))
			sCtx.Require().Equal(http.StatusOK, resp.StatusCode, fmt.Sprintf("request %d", i+1))
		}
	})

	t.WithNewStep("sixth request from the same socket is limited", func(sCtx provider.StepCtx) {
		resp := create("198.51.100.250")
		sCtx.Assert().Equal(http.StatusTooManyRequests, resp.StatusCode)
		sCtx.Assert().NotEmpty(resp.Header.Get("Retry-After"))
	})
}

func (s *E2EGameFlowSuite) TestAmbientRoutes(t provider.T) {
	t.Assert().Equal(http.StatusOK, s.call(t, http.MethodGet, "/health", nil, nil))

	resp, err := s.client.Get(s.server.URL + "/api/docs/doc.json")
	t.Require().NoError(err)
	defer resp.Body.Close()
	t.Assert().Equal(http.StatusOK, resp.StatusCode)

	var dump map[string]model.RoomSnapshot
	t.Assert().Equal(http.StatusOK, s.call(t, http.MethodGet, "/api/debug/rooms", nil, &dump))
	t.Assert().Empty(dump)
}
