package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"outreach-tracker/internal/models"
	"outreach-tracker/internal/store"
)

// CompanyHandler serves the /companies collection. The four operations map
// one to one onto the store; no validation, filtering, or pagination happens
// here — clients fetch the full collection and filter in memory.
type CompanyHandler struct {
	store store.Store
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(s store.Store) *CompanyHandler {
	return &CompanyHandler{store: s}
}

// Register wires the collection routes onto the router.
func (h *CompanyHandler) Register(r *gin.Engine) {
	r.GET("/companies", h.List)
	r.POST("/companies", h.Create)
	r.PUT("/companies", h.Update)
	r.DELETE("/companies", h.Delete)
}

// List returns the full collection sorted by serialNo ascending.
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("Handlers: GET /companies failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch companies",
			"details": err.Error(),
		})
		return
	}

	if companies == nil {
		companies = []models.Company{}
	}
	c.JSON(http.StatusOK, companies)
}

// Create inserts the posted record and returns the assigned store identity.
func (h *CompanyHandler) Create(c *gin.Context) {
	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create company",
			"details": err.Error(),
		})
		return
	}

	insertedID, err := h.store.Insert(c.Request.Context(), company)
	if err != nil {
		log.Printf("Handlers: POST /companies failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create company",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"insertedId": insertedID,
	})
}

// Update consumes the _id field from the body, strips it, and applies a
// set-fields merge of the rest to the addressed document.
func (h *CompanyHandler) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update company",
			"details": err.Error(),
		})
		return
	}

	storeID, _ := body["_id"].(string)
	delete(body, "_id")

	modified, err := h.store.Update(c.Request.Context(), storeID, store.NormalizeFields(body))
	if err != nil {
		log.Printf("Handlers: PUT /companies failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update company",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"modifiedCount": modified,
	})
}

// Delete removes the document addressed by the _id query parameter. An id
// query parameter (the client identity) is accepted and ignored.
func (h *CompanyHandler) Delete(c *gin.Context) {
	storeID := c.Query("_id")

	deleted, err := h.store.Delete(c.Request.Context(), storeID)
	if err != nil {
		log.Printf("Handlers: DELETE /companies failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete company",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"deletedCount": deleted,
	})
}

// Health reports server liveness and store reachability.
func Health(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		if err := s.Ping(c.Request.Context()); err != nil {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": status,
			"time":   time.Now(),
		})
	}
}
