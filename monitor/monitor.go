package monitor

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusView is the JSON payload served to readers.
type StatusView struct {
	Episode       int     `json:"episode"`
	Episodes      int     `json:"episodes"`
	CurrentReward float64 `json:"current_reward"`
	RunningReward float64 `json:"running_reward"`
	Generation    int     `json:"generation"`
	Generations   int     `json:"generations"`
	BestFitness   float64 `json:"best_fitness"`
}

// Status is the advisory view of a running training exposed over HTTP.
// Trainers push into it, readers poll it. It is not part of the
// correctness contract.
type Status struct {
	lock sync.Mutex
	view StatusView
}

func NewStatus() *Status {
	return &Status{}
}

func (s *Status) UpdateEpisode(episode, episodes int, currentReward, runningReward float64) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.view.Episode = episode
	s.view.Episodes = episodes
	s.view.CurrentReward = currentReward
	s.view.RunningReward = runningReward
}

func (s *Status) UpdateGeneration(generation, generations int, bestFitness float64) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.view.Generation = generation
	s.view.Generations = generations
	s.view.BestFitness = bestFitness
}

func (s *Status) snapshot() StatusView {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.view
}

// Server serves the training status on /status.
type Server struct {
	status *Status
	server *http.Server
}

func NewServer(addr string, status *Status) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	s := &Server{status: status}
	r.GET("/status", s.handleStatus)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	return s
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.status.snapshot())
}

// Start serves in the background until Stop or context cancellation.
func (s *Server) Start(ctx context.Context) {
	go func() {
		s.server.ListenAndServe()
	}()
	go func() {
		<-ctx.Done()
		s.Stop()
	}()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.server.Shutdown(ctx)
}
