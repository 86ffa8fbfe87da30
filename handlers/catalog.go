package handlers

import (
	"errors"
	"net/http"

	productRepo "priisme/database/repository/product"
	salonRepo "priisme/database/repository/salon"
	"priisme/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the browsable storefront: products, categories,
// salons and their service menus.
type CatalogHandler struct {
	products productRepo.ProductRepository
	salons   salonRepo.SalonRepository
}

func NewCatalogHandler(products productRepo.ProductRepository, salons salonRepo.SalonRepository) *CatalogHandler {
	return &CatalogHandler{products: products, salons: salons}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.products.ListActive(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list products", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.products.GetByID(c.Request.Context(), c.Param("productID"))
	if errors.Is(err, productRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Product not found", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch product", err.Error())
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.products.ListCategories(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list categories", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CatalogHandler) ListSalons(c *gin.Context) {
	salons, err := h.salons.ListActive(c.Request.Context(), c.Query("city"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list salons", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

func (h *CatalogHandler) GetSalon(c *gin.Context) {
	salon, err := h.salons.GetByID(c.Request.Context(), c.Param("salonID"))
	if errors.Is(err, salonRepo.ErrSalonNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Salon not found", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch salon", err.Error())
		return
	}
	c.JSON(http.StatusOK, salon)
}

func (h *CatalogHandler) ListSalonServices(c *gin.Context) {
	services, err := h.salons.ListServices(c.Request.Context(), c.Param("salonID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list salon services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}
