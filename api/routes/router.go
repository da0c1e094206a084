package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkoval-dev/bookmarket-backend/api/controllers"
	"github.com/mkoval-dev/bookmarket-backend/api/middleware"
	"github.com/mkoval-dev/bookmarket-backend/internal/assistant"
	"github.com/mkoval-dev/bookmarket-backend/internal/cart"
	"github.com/mkoval-dev/bookmarket-backend/internal/catalog"
	"github.com/mkoval-dev/bookmarket-backend/internal/favorites"
	"github.com/mkoval-dev/bookmarket-backend/internal/session"
	"github.com/mkoval-dev/bookmarket-backend/internal/theme"
	"github.com/mkoval-dev/bookmarket-backend/pkg/config"
	"github.com/mkoval-dev/bookmarket-backend/pkg/enums"
	"github.com/mkoval-dev/bookmarket-backend/pkg/kvstore"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
	"github.com/mkoval-dev/bookmarket-backend/pkg/metrics"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Config    *config.Config
	Logger    *logger.Logger
	Storage   kvstore.Store
	Metrics   *metrics.StoreMetrics
	Catalog   *catalog.Store
	Cart      *cart.Ledger
	Favorites *favorites.Set
	Session   *session.Slot
	Theme     *theme.Preference
	Assistant *assistant.Service
}

func NewRouter(deps Deps) http.Handler {
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg, deps.Metrics))
	r.Use(middleware.CORS(deps.Config.CORS))

	r.Get("/health/live", controllers.HealthLive())
	r.Get("/health/ready", controllers.HealthReady(deps.Storage, logg))
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SessionContext(deps.Session, logg))

		r.Get("/catalog", controllers.CatalogList(deps.Catalog, logg))
		r.Get("/catalog/{productId}", controllers.CatalogDetail(deps.Catalog, logg))

		r.Get("/cart", controllers.CartFetch(deps.Cart))
		r.Post("/cart/items", controllers.CartAddItem(deps.Cart, deps.Catalog, logg))
		r.Patch("/cart/items/{productId}", controllers.CartUpdateQuantity(deps.Cart, logg))
		r.Delete("/cart/items/{productId}", controllers.CartRemoveItem(deps.Cart))

		r.Get("/favorites", controllers.FavoritesList(deps.Favorites))
		r.Post("/favorites/{productId}/toggle", controllers.FavoritesToggle(deps.Favorites))

		r.Get("/session", controllers.SessionCurrent(deps.Session))
		r.Post("/session/login", controllers.SessionLogin(deps.Session, logg))
		r.Post("/session/logout", controllers.SessionLogout(deps.Session))

		r.Get("/theme", controllers.ThemeCurrent(deps.Theme))
		r.Post("/theme/toggle", controllers.ThemeToggle(deps.Theme))

		r.Post("/intro/complete", controllers.IntroComplete(deps.Storage, logg))

		r.Post("/assistant/describe", controllers.AssistantDescribe(deps.Assistant, logg))
		r.Post("/assistant/chat", controllers.AssistantChat(deps.Assistant, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.SessionContext(deps.Session, logg))
		r.Use(middleware.RequireRole(enums.SessionRoleAdmin.String(), logg))

		r.Post("/products", controllers.AdminCreateProduct(deps.Catalog, logg))
	})

	return r
}
