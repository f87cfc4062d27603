package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Storage uploads product images and returns a public URL.
type Storage interface {
	Upload(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

type Handler struct {
	service *Service
	storage Storage
}

func NewHandler(service *Service, storage Storage) *Handler {
	return &Handler{service: service, storage: storage}
}

// --------------------------------------------------
// Public: storefront catalog
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	products, err := h.service.ListProducts(
		c.Request.Context(),
		c.Query("category"),
		c.Query("q"),
		c.DefaultQuery("locale", "en"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"categories": Categories,
	})
}

// productRequest keeps is_active defaulting to true when omitted.
type productRequest struct {
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	PriceEUR    float64       `json:"price"`
	Category    string        `json:"category"`
	Image       *string       `json:"image"`
	Images      []string      `json:"images"`
	Stock       int           `json:"stock"`
	IsActive    *bool         `json:"is_active"`
	IsLeader    bool          `json:"is_leader"`
}

func (req productRequest) toProduct(id string) *Product {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		PriceEUR:    req.PriceEUR,
		Category:    req.Category,
		Image:       req.Image,
		Images:      req.Images,
		Stock:       req.Stock,
		IsActive:    active,
		IsLeader:    req.IsLeader,
	}
}

// --------------------------------------------------
// Admin: product CRUD
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p := req.toProduct("")
	if err := h.service.CreateProduct(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p := req.toProduct(c.Param("id"))
	if err := h.service.UpdateProduct(c.Request.Context(), p); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// --------------------------------------------------
// Admin: product image upload
// --------------------------------------------------
func (h *Handler) UploadImage(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
		return
	}

	id := c.Param("id")
	key := fmt.Sprintf("products/%s/%s%s", id, uuid.New().String(), ext)

	url, err := h.storage.Upload(c.Request.Context(), key, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.AttachImage(c.Request.Context(), id, url); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
