package router

import (
	"net/http"
	"strings"

	"eurder/internal/handler"
	"eurder/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	customerHandler *handler.CustomerHandler,
	itemHandler *handler.ItemHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Customer routes
	customerRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && isCollectionPath(r.URL.Path, "/api/customers") {
			customerHandler.Create(w, r)
			return
		}
		if isCollectionPath(r.URL.Path, "/api/customers") {
			customerHandler.GetAll(w, r)
			return
		}
		customerHandler.GetByID(w, r)
	}
	mux.HandleFunc("/api/customers", customerRouteHandler)
	mux.HandleFunc("/api/customers/", customerRouteHandler)

	// Item routes
	itemRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if isCollectionPath(r.URL.Path, "/api/items") {
			switch r.Method {
			case http.MethodPost:
				itemHandler.Create(w, r)
			case http.MethodGet:
				itemHandler.GetAll(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		switch r.Method {
		case http.MethodPut:
			itemHandler.Update(w, r)
		case http.MethodGet:
			itemHandler.GetByID(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/items", itemRouteHandler)
	mux.HandleFunc("/api/items/", itemRouteHandler)

	// Order routes. The reports path is routed before the by-id lookup so
	// "reports" is never parsed as an order id.
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && isCollectionPath(r.URL.Path, "/api/orders") {
			orderHandler.Create(w, r)
			return
		}
		if r.URL.Path == "/api/orders/reports" {
			orderHandler.Report(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/orders/") && r.URL.Path != "/api/orders/" {
			orderHandler.GetByID(w, r)
			return
		}
		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

// isCollectionPath reports whether path addresses the collection itself,
// with or without a trailing slash.
func isCollectionPath(path, base string) bool {
	return path == base || path == base+"/"
}
