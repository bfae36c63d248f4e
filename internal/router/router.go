package router

import (
	"net/http"
	"strings"

	"moshood-fashion/internal/auth"
	"moshood-fashion/internal/handler"
	"moshood-fashion/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Checkout     *handler.CheckoutHandler
	Order        *handler.OrderHandler
	Contact      *handler.ContactHandler
	Subscription *handler.SubscriptionHandler
	Request      *handler.RequestHandler
	User         *handler.UserHandler
	Admin        *handler.AdminHandler
}

// New creates the HTTP router with all routes and middleware configured.
// The admin surface sits behind the service key; customer surfaces use
// bearer tokens; the cart accepts both sessions and guest tokens.
func New(h Handlers, issuer *auth.TokenIssuer, serviceKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Catalogue reads are public.
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			h.Product.GetByID(w, r)
			return
		}
		h.Product.GetAll(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes serve guests and signed-in customers alike.
	optionalJWT := middleware.OptionalJWT(issuer, logger)
	mux.Handle("/api/cart", optionalJWT(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.Cart.Get(w, r)
		case http.MethodPost:
			h.Cart.Add(w, r)
		case http.MethodPut:
			h.Cart.Update(w, r)
		case http.MethodDelete:
			h.Cart.Remove(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	mux.HandleFunc("/api/checkout", h.Checkout.Complete)
	mux.HandleFunc("/api/contact-info", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.Contact.Get(w, r)
			return
		}
		h.Contact.Save(w, r)
	})
	mux.HandleFunc("/api/subscribe", h.Subscription.Subscribe)
	mux.HandleFunc("/api/auth/register", h.User.Register)
	mux.HandleFunc("/api/auth/login", h.User.Login)

	// Order and request routes require a session.
	requireJWT := middleware.JWTAuth(issuer, logger)
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/" {
			h.Order.GetMine(w, r)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/cancel") {
			h.Order.Cancel(w, r)
			return
		}
		h.Order.GetByID(w, r)
	}
	mux.Handle("/api/orders", requireJWT(http.HandlerFunc(orderRouteHandler)))
	mux.Handle("/api/orders/", requireJWT(http.HandlerFunc(orderRouteHandler)))

	requestRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/requests" || r.URL.Path == "/api/requests/" {
			switch r.Method {
			case http.MethodGet:
				h.Request.GetMine(w, r)
			case http.MethodPost:
				h.Request.Create(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		switch r.Method {
		case http.MethodPatch:
			h.Request.UpdateInfo(w, r)
		case http.MethodDelete:
			h.Request.Delete(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.Handle("/api/requests", requireJWT(http.HandlerFunc(requestRouteHandler)))
	mux.Handle("/api/requests/", requireJWT(http.HandlerFunc(requestRouteHandler)))

	// Admin surface behind the service key.
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("/api/admin/products", h.Product.Create)
	adminMux.HandleFunc("/api/admin/products/images", h.Product.UploadImage)
	adminMux.HandleFunc("/api/admin/products/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			h.Product.Delete(w, r)
			return
		}
		h.Product.Update(w, r)
	})
	adminMux.HandleFunc("/api/admin/orders", h.Order.GetAll)
	adminMux.HandleFunc("/api/admin/orders/", h.Order.UpdateStatus)
	adminMux.HandleFunc("/api/admin/payments", h.Admin.Payments)
	adminMux.HandleFunc("/api/admin/overview", h.Admin.Overview)
	adminMux.HandleFunc("/api/admin/users", h.User.List)
	adminMux.HandleFunc("/api/admin/subscriptions", h.Subscription.List)
	adminMux.HandleFunc("/api/admin/requests", h.Request.GetAll)
	adminMux.HandleFunc("/api/admin/notifications", h.Subscription.Notify)
	mux.Handle("/api/admin/", middleware.ServiceKeyAuth(serviceKey, logger)(adminMux))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var root http.Handler = mux
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
