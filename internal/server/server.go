// Package server wires the HTTP surface: login, entry recording, the
// dashboard query and the roster listing, plus health and metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"entrytrack/internal/auth"
	"entrytrack/internal/entry"
	"entrytrack/internal/metrics"
)

// HealthChecker reports whether a backing resource is reachable.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// Server holds handler dependencies.
type Server struct {
	secret  []byte
	entries *entry.Service
	users   auth.UserStore
	pingDB  func(ctx context.Context) error
	redis   HealthChecker
}

// Options configures New.
type Options struct {
	JWTSecret []byte
	Entries   *entry.Service
	Users     auth.UserStore
	// PingDB probes the store for /healthz; nil means "not configured".
	PingDB func(ctx context.Context) error
	// Redis probes redis for /healthz; nil means "not configured".
	Redis HealthChecker
	// Middleware runs before route handlers (rate limiting, CORS, ...).
	Middleware []gin.HandlerFunc
}

// New builds the router.
func New(opts Options) *gin.Engine {
	s := &Server{
		secret:  opts.JWTSecret,
		entries: opts.Entries,
		users:   opts.Users,
		pingDB:  opts.PingDB,
		redis:   opts.Redis,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	for _, mw := range opts.Middleware {
		r.Use(mw)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", s.healthz)

	r.POST("/login", s.login)

	guarded := r.Group("/", auth.RequireAuth(s.secret), auth.RequireRole(auth.RoleTeacher))
	guarded.POST("/entry", s.recordEntry)
	guarded.GET("/entry", s.listEntries)
	guarded.GET("/students", s.listStudents)

	return r
}

func (s *Server) healthz(c *gin.Context) {
	dbHealthy := s.pingDB != nil && s.pingDB(c.Request.Context()) == nil
	redisHealthy := s.redis != nil && s.redis.Healthy(c.Request.Context())
	status := http.StatusOK
	if !dbHealthy || !redisHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": "ok", "db": dbHealthy, "redis": redisHealthy})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login exchanges credentials for a signed token. A store outage here keeps
// the legacy contract: status 200 with an error-shaped body, which the
// existing client expects verbatim.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := s.users.ByEmail(c.Request.Context(), req.Email)
	if err != nil {
		metrics.Logins.WithLabelValues("degraded").Inc()
		c.JSON(http.StatusOK, gin.H{"error": "Database connection failed. Using demo mode."})
		return
	}
	if user == nil || !auth.VerifyPassword(req.Password, user.Password) {
		metrics.Logins.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	principal := auth.Principal{ID: user.ID, Email: user.Email, Role: user.Role, Name: user.Name}
	token, err := auth.IssueToken(principal, s.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	metrics.Logins.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    principal,
	})
}

type entryRequest struct {
	StudentID string `json:"studentId"`
}

func (s *Server) recordEntry(c *gin.Context) {
	p, _ := auth.PrincipalFrom(c)

	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.StudentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Student ID is required"})
		return
	}

	conf, err := s.entries.Record(c.Request.Context(), p, req.StudentID)
	switch {
	case errors.Is(err, entry.ErrMissingStudentID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Student ID is required"})
		return
	case errors.Is(err, entry.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	body := gin.H{
		"success": true,
		"message": "Entry recorded successfully",
		"student": gin.H{
			"id":    conf.Student.StudentID,
			"name":  conf.Student.Name,
			"class": conf.Student.Class,
			"grade": conf.Student.Grade,
		},
		"entryTime": conf.EntryTime.Format(time.RFC3339),
		"scannedBy": conf.ScannedBy,
	}
	if conf.Demo {
		body["message"] = "Entry recorded successfully (Demo Mode)"
		body["mode"] = "demo"
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) listEntries(c *gin.Context) {
	recs, date, demo := s.entries.ListByDate(c.Request.Context(), c.Query("date"))

	body := gin.H{
		"success": true,
		"entries": recs,
		"date":    date,
	}
	if demo {
		body["mode"] = "demo"
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) listStudents(c *gin.Context) {
	students, demo := s.entries.ListStudents(c.Request.Context())

	body := gin.H{
		"success":  true,
		"students": students,
	}
	if demo {
		body["mode"] = "demo"
	}
	c.JSON(http.StatusOK, body)
}
