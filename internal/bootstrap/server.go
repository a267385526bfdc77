package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avevent/backend/api"
	"github.com/avevent/backend/config"
	"github.com/avevent/backend/internal/auth"
	"github.com/avevent/backend/internal/service/bookings"
	"github.com/avevent/backend/internal/service/inquiries"
	"github.com/avevent/backend/internal/service/portfolio"
	"github.com/avevent/backend/internal/service/staff"
	"github.com/avevent/backend/internal/service/testimonials"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Services bundles the use cases exposed over HTTP.
type Services struct {
	Inquiries    inquiries.InquiryUseCase
	Bookings     bookings.BookingUseCase
	Testimonials testimonials.TestimonialUseCase
	Portfolio    portfolio.PortfolioUseCase
	StaffAuth    staff.AuthUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, tokens *auth.Manager, svcs Services) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, tokens, svcs),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, tokens *auth.Manager, svcs Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	inquiryHandler := api.NewInquiryHandler(svcs.Inquiries)
	bookingHandler := api.NewBookingHandler(svcs.Bookings)
	testimonialHandler := api.NewTestimonialHandler(svcs.Testimonials)
	portfolioHandler := api.NewPortfolioHandler(svcs.Portfolio)
	authHandler := api.NewAuthHandler(svcs.StaffAuth)

	root := router.Group("/api")

	authHandler.Register(root.Group("/auth"))
	inquiryHandler.RegisterPublic(root.Group("/inquiries"))
	bookingHandler.RegisterPublic(root.Group("/bookings"))
	testimonialHandler.RegisterPublic(root.Group("/testimonials"))
	portfolioHandler.RegisterPublic(root.Group("/portfolio"))

	staffGroup := root.Group("/staff", api.RequireStaff(tokens))
	inquiryHandler.RegisterStaff(staffGroup.Group("/inquiries"))
	bookingHandler.RegisterStaff(staffGroup.Group("/bookings"))
	portfolioHandler.RegisterStaff(staffGroup.Group("/portfolio"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}
