// Package api exposes the path finder over HTTP.
package api

import (
	"cmp"
	"log"
	"net/http"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdrpinto/navgrid"
)

// RouterConfig selects the optional middleware.
type RouterConfig struct {
	CORSOrigin string
	Compress   bool
}

// Server answers path queries against one grid. The grid is only read.
type Server struct {
	grid    *navgrid.Grid
	options []navgrid.Option

	mu      sync.Mutex
	stepper *navgrid.Stepper
	start   navgrid.Coord
	goal    navgrid.Coord
}

// NewServer creates a server over grid; options are passed to every search.
func NewServer(grid *navgrid.Grid, options ...navgrid.Option) *Server {
	return &Server{grid: grid, options: options}
}

// NewRouter wires the handlers of s into a gin engine.
func NewRouter(s *Server, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	if cfg.CORSOrigin != "" {
		router.Use(CORSMiddleware(cfg.CORSOrigin))
	}
	if cfg.Compress {
		router.Use(BrotliMiddleware())
	}

	router.GET("/grid", s.handleGrid)
	router.GET("/cell", s.handleCell)
	router.POST("/path", s.handlePath)
	router.POST("/search/init", s.handleSearchInit)
	router.GET("/search/next", s.handleSearchNext)
	return router
}

type gridResponse struct {
	Width    int             `json:"width"`
	Depth    int             `json:"depth"`
	Bounds   navgrid.Bounds  `json:"bounds"`
	Occupied []navgrid.Coord `json:"occupied"`
}

func (s *Server) handleGrid(c *gin.Context) {
	occupied := s.grid.Occupied()
	if occupied == nil {
		occupied = []navgrid.Coord{}
	}
	c.JSON(http.StatusOK, gridResponse{
		Width:    s.grid.Width(),
		Depth:    s.grid.Depth(),
		Bounds:   s.grid.Bounds(),
		Occupied: occupied,
	})
}

type cellResponse struct {
	navgrid.Coord
	Present  bool `json:"present"`
	Occupied bool `json:"occupied"`
}

func (s *Server) handleCell(c *gin.Context) {
	x, errX := strconv.Atoi(c.Query("x"))
	y, errY := strconv.Atoi(c.Query("y"))
	if errX != nil || errY != nil {
		log.Printf("[WARN] Bad cell request: x=%q y=%q", c.Query("x"), c.Query("y"))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "query parameters x and y must be integers"})
		return
	}
	coord := navgrid.Coord{X: x, Y: y}
	cell, present := s.grid.CellAt(coord)
	c.JSON(http.StatusOK, cellResponse{Coord: coord, Present: present, Occupied: cell.Occupied})
}

type pathRequest struct {
	Origin      *navgrid.Vec3 `json:"origin" binding:"required"`
	Destination *navgrid.Vec3 `json:"destination" binding:"required"`
}

type pathResponse struct {
	Found       bool               `json:"found"`
	Waypoints   []navgrid.Waypoint `json:"waypoints"`
	TimeTakenMs float64            `json:"timeTakenMs"`
}

func (s *Server) handlePath(c *gin.Context) {
	var req pathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[WARN] Bad path request: %v", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startTime := time.Now()
	waypoints := s.grid.FindPath(*req.Origin, *req.Destination, s.options...)
	elapsed := float64(time.Since(startTime).Microseconds()) / 1000.0
	if waypoints == nil {
		waypoints = []navgrid.Waypoint{}
	}

	log.Printf("[INFO] Path %v -> %v: %d waypoints in %.3fms", navgrid.CoordOf(*req.Origin), navgrid.CoordOf(*req.Destination), len(waypoints), elapsed)
	c.JSON(http.StatusOK, pathResponse{
		Found:       len(waypoints) > 0,
		Waypoints:   waypoints,
		TimeTakenMs: elapsed,
	})
}

type searchInitRequest struct {
	Start *navgrid.Coord `json:"start" binding:"required"`
	Goal  *navgrid.Coord `json:"goal" binding:"required"`
}

func (s *Server) handleSearchInit(c *gin.Context) {
	var req searchInitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[WARN] Bad search init request: %v", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.stepper = navgrid.NewStepper(s.grid, *req.Start, *req.Goal, s.grid.Bounds(), s.options...)
	s.start, s.goal = *req.Start, *req.Goal
	s.mu.Unlock()

	log.Printf("[INFO] Step search initialized: %v -> %v", *req.Start, *req.Goal)
	c.JSON(http.StatusOK, gin.H{"ok": true, "start": req.Start, "goal": req.Goal})
}

type snapshotResponse struct {
	Step    int                `json:"step"`
	Start   navgrid.Coord      `json:"start"`
	Goal    navgrid.Coord      `json:"goal"`
	Current navgrid.Coord      `json:"current"`
	Open    []navgrid.Coord    `json:"open"`
	Closed  []navgrid.Coord    `json:"closed"`
	Done    bool               `json:"done"`
	Found   bool               `json:"found"`
	Path    []navgrid.Waypoint `json:"path,omitempty"`
}

func (s *Server) handleSearchNext(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stepper == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "search not initialized"})
		return
	}

	snapshot := s.stepper.Step()
	c.JSON(http.StatusOK, snapshotResponse{
		Step:    snapshot.StepIndex,
		Start:   s.start,
		Goal:    s.goal,
		Current: snapshot.Current,
		Open:    sortedCoords(snapshot.Open),
		Closed:  sortedCoords(snapshot.Closed),
		Done:    snapshot.Done,
		Found:   snapshot.Found,
		Path:    snapshot.Path,
	})
}

func sortedCoords(m map[navgrid.Coord]bool) []navgrid.Coord {
	coords := make([]navgrid.Coord, 0, len(m))
	for c, ok := range m {
		if ok {
			coords = append(coords, c)
		}
	}
	slices.SortFunc(coords, func(a, b navgrid.Coord) int {
		if n := cmp.Compare(a.X, b.X); n != 0 {
			return n
		}
		return cmp.Compare(a.Y, b.Y)
	})
	return coords
}
