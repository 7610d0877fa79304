// Package httpapi exposes the authentication service over JSON/HTTP:
// the public signup/login endpoints and the token-gated user directory.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

// userService is the slice of the users service the transport needs.
// Narrowed to an interface so handler tests can use struct fakes.
type userService interface {
	SignUp(ctx context.Context, name, lastName, email, password, phoneNumber string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authorize(ctx context.Context, token string) (string, error)
	List(ctx context.Context) ([]*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
}

type HTTPServer struct {
	address string
	users   userService
	logger  logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, us userService) *HTTPServer {
	return &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
	}
}

// Router builds the gin engine with all routes attached.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/ping", s.Ping)
	r.POST("/signup", s.SignUp)
	r.POST("/login", s.Login)

	protected := r.Group("/", s.AccessGuard())
	protected.GET("/users", s.ListUsers)
	protected.GET("/users/:id", s.GetUser)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
