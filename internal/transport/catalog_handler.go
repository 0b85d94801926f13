package transport

import (
	"net/http"
	"strconv"

	"techmart/internal/catalog"
	"techmart/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler serves the product gallery, product detail view and
// free-text search.
type CatalogHandler struct {
	catalog *catalog.Store
	logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(store *catalog.Store, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: store,
		logger:  logger,
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/products", h.ListProducts)
	r.Get("/api/products/{id}", h.GetProduct)
	r.Delete("/api/products/view", h.CloseProductView)
	r.Get("/api/search", h.Search)
}

// ListProducts returns the whole gallery in catalog order.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, newProductViews(h.catalog.All()))
}

// GetProduct returns one product's detail view and records it as the
// session's currently-viewed product.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalog.FindByID(id)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Session not found in context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	sess.Lock()
	sess.ViewingProductID = product.ID
	sess.Unlock()

	middleware.RespondWithJSON(w, http.StatusOK, newProductView(product))
}

// CloseProductView clears the detail view and any pending result action
// cards, returning the UI to the full gallery.
func (h *CatalogHandler) CloseProductView(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Session not found in context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	sess.Lock()
	sess.ViewingProductID = 0
	sess.ShowResultActions = false
	sess.Unlock()

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "view closed"})
}

// Search runs the catalog substring search. A blank query matches nothing.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results := h.catalog.Search(query)

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"results": newProductViews(results),
	})
}
