package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cleankart/marketplace-api/internal/cache"
	"github.com/cleankart/marketplace-api/internal/httperr"
	"github.com/cleankart/marketplace-api/internal/httpresp"
	"github.com/cleankart/marketplace-api/internal/models"
)

// CatalogHandler serves the read-only service catalog through the redis
// read-through cache.
type CatalogHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
}

func NewCatalogHandler(db *gorm.DB, catalog *cache.Catalog) *CatalogHandler {
	return &CatalogHandler{db: db, catalog: catalog}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	h.list(c, "")
}

func (h *CatalogHandler) ListServicesByCategory(c *gin.Context) {
	category := strings.ToUpper(strings.TrimSpace(c.Param("category")))
	h.list(c, category)
}

func (h *CatalogHandler) list(c *gin.Context, category string) {
	key := cache.Key(category)
	if services, ok := h.catalog.Get(c.Request.Context(), key); ok {
		httpresp.OK(c, services)
		return
	}

	q := h.db.Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	h.catalog.Set(c.Request.Context(), key, services)
	httpresp.OK(c, services)
}
