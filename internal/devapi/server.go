// Package devapi is an in-memory stand-in for the trainerhub REST API. It
// issues HS256 bearer tokens, rejects requests without a valid one with 401,
// and serves the student and exercise resources. It backs end-to-end tests
// and local runs of the CLI; nothing is persisted.
package devapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
	"github.com/dmitrijs2005/trainerhub/internal/logging"
)

const (
	DefaultTokenTTL = 7 * 24 * time.Hour
	claimsKey       = "claims"
)

type Options struct {
	Secret   []byte
	TokenTTL time.Duration
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

// Server is the fake API. It implements http.Handler.
type Server struct {
	e      *echo.Echo
	db     *memoryDB
	secret []byte
	ttl    time.Duration
	logger logging.Logger
}

func New(opts Options, logger logging.Logger) (*Server, error) {
	if len(opts.Secret) == 0 {
		return nil, errors.New("devapi: secret is required")
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = DefaultTokenTTL
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}

	s := &Server{
		e:      echo.New(),
		db:     newMemoryDB(opts.BcryptCost),
		secret: opts.Secret,
		ttl:    opts.TokenTTL,
		logger: logger.With("component", "devapi"),
	}
	s.e.HideBanner = true
	s.e.HidePort = true
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.e.Use(middleware.Recover())
	s.e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Debug(c.Request().Context(), "request",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency,
				"request_id", c.Request().Header.Get("X-Request-ID"))
			return nil
		},
	}))

	s.e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := s.e.Group("/api")
	api.POST("/auth/login", s.login)
	api.POST("/auth/register", s.register)

	secured := api.Group("", s.requireAuth)
	secured.GET("/auth/me", s.me)

	students := secured.Group("/students", requireRole(models.RolePersonal))
	students.GET("", s.listStudents)
	students.POST("", s.createStudent)
	students.GET("/:id", s.getStudent)
	students.PATCH("/:id", s.updateStudent)
	students.DELETE("/:id", s.deleteStudent)

	secured.GET("/exercises", s.listExercises)
	secured.GET("/exercises/:id", s.getExercise)
	secured.POST("/exercises", s.createExercise, requireRole(models.RolePersonal))
	secured.PATCH("/exercises/:id", s.updateExercise, requireRole(models.RolePersonal))
	secured.DELETE("/exercises/:id", s.deleteExercise, requireRole(models.RolePersonal))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info(context.Background(), "dev api listening", "addr", addr)
	if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := ParseToken(raw, s.secret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		if _, ok := s.db.user(claims.UserID); !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
		}

		c.Set(claimsKey, claims)
		return next(c)
	}
}

func requireRole(role models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if callerClaims(c).Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

func callerClaims(c echo.Context) *Claims {
	claims, _ := c.Get(claimsKey).(*Claims)
	if claims == nil {
		return &Claims{}
	}
	return claims
}

func (s *Server) issue(c echo.Context, status int, u models.User) error {
	token, err := GenerateToken(u.ID, u.Role, s.secret, s.ttl)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token")
	}
	return c.JSON(status, models.AuthResponse{User: &u, AccessToken: token})
}

// Seed creates a trainer account and one of their students. It is meant for
// local runs.
func (s *Server) Seed(personalEmail, studentEmail, password string) error {
	p, err := s.db.createUser("Demo Trainer", personalEmail, password, "", models.RolePersonal, "")
	if err != nil {
		return err
	}
	if _, err := s.db.createUser("Demo Student", studentEmail, password, "", models.RoleStudent, p.ID); err != nil {
		return err
	}
	for _, e := range []models.CreateExerciseData{
		{Name: "Back Squat", MuscleGroup: "Legs", Equipment: "Barbell"},
		{Name: "Bench Press", MuscleGroup: "Chest", Equipment: "Barbell"},
		{Name: "Pull-up", MuscleGroup: "Back", Equipment: "Bodyweight"},
	} {
		s.db.createExercise(e)
	}
	return nil
}
