package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/nibblekit/internal/config"
	"github.com/danmuck/nibblekit/internal/observability"
	"github.com/danmuck/nibblekit/internal/packfile"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var ErrPayloadTooLarge = errors.New("server: payload too large")

// Server exposes the nibble codec over JSON.
type Server struct {
	Name     string    `json:"name"`
	Addr     string    `json:"addr"`
	Appeared time.Time `json:"appeared"`

	maxNibbles int
	router     *gin.Engine
}

// New builds a server with logging, metrics and CORS middleware installed.
// Routes are registered by RegisterRoutes.
func New(cfg config.ServerConfig) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger, cfg.Name))
	r.Use(observability.RequestMetrics(cfg.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	maxNibbles := cfg.MaxNibbles
	if maxNibbles <= 0 {
		maxNibbles = config.DefaultMaxNibbles
	}
	return &Server{
		Name:       cfg.Name,
		Addr:       cfg.Addr,
		Appeared:   time.Now(),
		maxNibbles: maxNibbles,
		router:     r,
	}
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

func (s *Server) Serve() error {
	s.RegisterRoutes()
	log.Info().Str("name", s.Name).Str("addr", s.Addr).Msg("nibbled listening")
	return s.router.Run(s.Addr)
}

func (s *Server) checkSize(nibbles int) error {
	if nibbles > s.maxNibbles {
		return ErrPayloadTooLarge
	}
	return nil
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			out = append(out, origin)
		}
	}
	if len(out) == 0 {
		return []string{"http://localhost:3000"}
	}
	return out
}

func fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	if errors.Is(err, ErrPayloadTooLarge) || errors.Is(err, packfile.ErrTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
