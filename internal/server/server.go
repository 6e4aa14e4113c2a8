// Package server exposes the distance pipeline over HTTP: upload a places
// file, poll the background job, download the result workbook.
package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"place-distance/internal/calculator"
	"place-distance/internal/config"
	"place-distance/internal/loader"
	"place-distance/internal/models"
)

type Server struct {
	cfg    config.Config
	logger zerolog.Logger

	mu   sync.RWMutex
	jobs map[string]*Job
}

func New(cfg config.Config, logger zerolog.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
		jobs:   make(map[string]*Job),
	}
}

// Run builds the router and serves until the listener fails.
func (s *Server) Run() error {
	return s.Router().Run(s.cfg.HTTP.Addr)
}

func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(s.cfg.HTTP.SessionSecret))
	r.Use(sessions.Sessions("placedist", store))

	r.POST("/login", s.handleLogin)
	r.GET("/logout", s.handleLogout)

	authorized := r.Group("/")
	authorized.Use(s.authRequired)
	{
		authorized.POST("/run", s.handleRun)
		authorized.GET("/logs", s.handleLogs)
		authorized.GET("/status", s.handleStatus)
		authorized.GET("/download-result/:filename", s.handleDownload)
	}

	return r
}

func (s *Server) authRequired(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user") == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "login required"})
		return
	}
	c.Next()
}

func (s *Server) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if s.cfg.HTTP.AuthPass == "" ||
		username != s.cfg.HTTP.AuthUser || password != s.cfg.HTTP.AuthPass {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid credentials"})
		return
	}

	session := sessions.Default(c)
	session.Set("user", username)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "session save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handleLogout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handleRun(c *gin.Context) {
	file, err := c.FormFile("places_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "places_file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".csv" && ext != ".xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "places_file must be .csv or .xlsx"})
		return
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "upload dir unavailable"})
		return
	}
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "output dir unavailable"})
		return
	}

	inputPath := filepath.Join(s.cfg.UploadDir, fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, inputPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "upload failed"})
		return
	}

	job := NewJob()
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	go s.process(job, inputPath)

	c.JSON(http.StatusAccepted, gin.H{"ok": true, "job_id": job.ID})
}

func (s *Server) handleLogs(c *gin.Context) {
	job := s.job(c.Query("job_id"))
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "job not found"})
		return
	}

	job.Mutex.RLock()
	logs := make([]string, len(job.Logs))
	copy(logs, job.Logs)
	status := job.Status
	progress := job.Progress
	job.Mutex.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"logs":     logs,
		"status":   status,
		"progress": progress,
	})
}

func (s *Server) handleStatus(c *gin.Context) {
	job := s.job(c.Query("job_id"))
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "job not found"})
		return
	}

	job.Mutex.RLock()
	defer job.Mutex.RUnlock()

	res := gin.H{
		"ok":     true,
		"status": job.Status,
		"error":  job.Error,
	}
	if job.Result != nil {
		res["result"] = job.Result
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleDownload(c *gin.Context) {
	// Base strips any path segments a crafted filename could smuggle in.
	filename := filepath.Base(c.Param("filename"))
	target := filepath.Join(s.cfg.OutputDir, filename)
	if _, err := os.Stat(target); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "result not found"})
		return
	}
	c.FileAttachment(target, filename)
}

func (s *Server) job(id string) *Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs[id]
}

func (s *Server) process(job *Job, inputPath string) {
	defer func() {
		if r := recover(); r != nil {
			job.fail(fmt.Sprintf("panic: %v", r))
		}
	}()

	job.Log(fmt.Sprintf("Processing %s", filepath.Base(inputPath)))
	s.logger.Info().Str("job_id", job.ID).Str("input", inputPath).Msg("job started")

	var (
		points []models.Point
		err    error
	)
	if strings.HasSuffix(strings.ToLower(inputPath), ".xlsx") {
		points, err = loader.ReadPlaces(inputPath)
	} else {
		points, err = loader.ReadCSV(inputPath)
	}
	if err != nil {
		job.fail(fmt.Sprintf("could not read places: %v", err))
		return
	}
	if len(points) < 2 {
		job.fail("need at least 2 places to compute distances")
		return
	}
	job.Log(fmt.Sprintf("Loaded %d places", len(points)))

	start := time.Now()
	records := calculator.Pairwise(points, job.SetProgress)
	summary, err := calculator.Summarize(records)
	if err != nil {
		job.fail(fmt.Sprintf("summary failed: %v", err))
		return
	}
	job.Log(fmt.Sprintf("Computed %d pair distances in %s", len(records), time.Since(start)))

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outputPath := filepath.Join(s.cfg.OutputDir, base+"_distances.xlsx")

	job.Log("Writing result workbook")
	if err := loader.WriteDistances(outputPath, records, summary); err != nil {
		job.fail(fmt.Sprintf("could not write result: %v", err))
		return
	}

	job.Mutex.Lock()
	job.Status = StatusDone
	job.Progress = 100
	job.Result = &JobResult{
		Points:    len(points),
		Pairs:     len(records),
		AverageKm: summary.AverageDistance,
		ClosestA:  summary.Closest.PlaceA,
		ClosestB:  summary.Closest.PlaceB,
		ClosestKm: summary.Closest.Distance,
		Filename:  filepath.Base(outputPath),
	}
	job.Mutex.Unlock()

	s.logger.Info().Str("job_id", job.ID).Int("pairs", len(records)).Msg("job finished")
}
