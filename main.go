// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"safaribackend/internal/admin"
	"safaribackend/internal/booking"
	"safaribackend/internal/catalog"
	"safaribackend/internal/config"
	"safaribackend/internal/enquiry"
	"safaribackend/internal/logger"
	"safaribackend/internal/middleware"
)

type App struct {
	addr          string
	router        *mux.Router
	connections   sync.WaitGroup
	totalRequests int64
}

func main() {
	// Step 1: Setup configuration first
	config.LoadEnv()

	// Step 2: Setup logging
	loggerConfig := config.LoggerConfig()
	if err := logger.SetupLogger(loggerConfig); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Only NOW is logging safe to use!
	logger.LogInfo("Environment loaded. Logger ready.")

	config.LoadCORSConfig()
	config.LoadCatalogConfig()
	if err := config.LoadAdminConfig(); err != nil {
		logger.LogFatal("Failed to load admin config: %v", err)
	}

	// Step 3: Seed the catalog store
	catalogService := catalog.NewService()
	if config.CatalogFile != "" {
		if err := catalogService.LoadFromFile(config.CatalogFile); err != nil {
			logger.LogFatal("Failed to load catalog file: %v", err)
		}
	}

	bookingStore := booking.NewStore()
	enquiryStore := enquiry.NewStore()

	// Step 4: Wire the handlers to their stores
	catalog.SetService(catalogService)
	booking.SetServices(catalogService, bookingStore)
	enquiry.SetStore(enquiryStore)
	admin.SetServices(catalogService, bookingStore, enquiryStore)

	config.LogCurrentEnvironment()

	// Step 5: Setup app
	app := &App{
		addr:   config.ServerAddress(),
		router: routes(),
	}

	// Step 6: Start background tasks
	go admin.CleanExpiredTokens()

	// Step 7: Run server
	app.Run()
}

// routes sets up all API routes
func routes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequestID, middleware.Logging, middleware.ErrorHandling)

	// Public catalog
	api.HandleFunc("/tours", catalog.ListToursHandler).Methods(http.MethodGet)
	api.HandleFunc("/tours/{id}", catalog.GetTourHandler).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", catalog.ListVehiclesHandler).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}", catalog.GetVehicleHandler).Methods(http.MethodGet)
	api.HandleFunc("/reviews", catalog.ListReviewsHandler).Methods(http.MethodGet)

	// Booking flow
	api.HandleFunc("/quote", booking.QuoteHandler).Methods(http.MethodPost)
	api.HandleFunc("/bookings/new", booking.PrefillHandler).Methods(http.MethodGet)
	api.HandleFunc("/bookings", booking.SubmitHandler).Methods(http.MethodPost)

	// Enquiries
	api.HandleFunc("/enquiries", enquiry.SubmitHandler).Methods(http.MethodPost)

	// Admin
	api.HandleFunc("/admin/login", admin.LoginHandler).Methods(http.MethodPost)

	adminAPI := api.PathPrefix("/admin").Subrouter()
	adminAPI.Use(admin.RequireToken)
	adminAPI.HandleFunc("/logout", admin.LogoutHandler).Methods(http.MethodPost)
	adminAPI.HandleFunc("/dashboard", admin.DashboardHandler).Methods(http.MethodGet)
	adminAPI.HandleFunc("/bookings", admin.ListBookingsHandler).Methods(http.MethodGet)
	adminAPI.HandleFunc("/bookings/{id}/confirm", admin.ConfirmBookingHandler).Methods(http.MethodPost)
	adminAPI.HandleFunc("/tours/{id}/price", admin.UpdateTourPriceHandler).Methods(http.MethodPut)
	adminAPI.HandleFunc("/vehicles/{id}/price", admin.UpdateVehiclePriceHandler).Methods(http.MethodPut)
	adminAPI.HandleFunc("/enquiries", admin.ListEnquiriesHandler).Methods(http.MethodGet)

	return router
}

// Run starts the HTTP server
func (a *App) Run() {
	server := &http.Server{
		Addr:         a.addr,
		Handler:      a.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for shutdown signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a separate goroutine
	go func() {
		logger.LogInfo("Starting server on %s", a.addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.LogFatal("Server failed: %v", err)
		}
	}()

	// Wait for a shutdown signal
	<-stop
	logger.LogInfo("Shutdown signal received")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the server gracefully
	if err := server.Shutdown(ctx); err != nil {
		logger.LogError("Server shutdown error: %v", err)
	} else {
		logger.LogInfo("Server shut down gracefully")
	}

	// Wait for active connections to finish
	logger.LogInfo("Waiting for active connections to finish...")
	a.connections.Wait()
	logger.LogInfo("All connections closed. Total requests handled: %d", atomic.LoadInt64(&a.totalRequests))
}

// Handler assembles all middleware around the router
func (a *App) Handler() http.Handler {
	var handler http.Handler = a.router

	handler = a.trackConnections(handler)
	handler = withTimeout(handler, 15*time.Second)
	handler = handlers.CORS(
		handlers.AllowedOrigins([]string{config.AllowedOrigin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Admin-Token"}),
	)(handler)

	return handler
}

// Middleware: timeout handler
func withTimeout(h http.Handler, timeout time.Duration) http.Handler {
	return http.TimeoutHandler(h, timeout, "Request timed out")
}

// Middleware: track active connections and total requests
func (a *App) trackConnections(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.connections.Add(1)
		atomic.AddInt64(&a.totalRequests, 1)
		defer a.connections.Done()

		h.ServeHTTP(w, r)
	})
}
