package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mjaros/beertracker/internal/apperrors"
	portssvc "github.com/mjaros/beertracker/internal/core/ports/services"
	"github.com/mjaros/beertracker/internal/dto"
	"github.com/mjaros/beertracker/internal/middleware"
)

// beerEntryHandler handles HTTP requests related to beer entries.
type beerEntryHandler struct {
	entryService portssvc.BeerEntrySvcFacade
}

// newBeerEntryHandler creates a new beerEntryHandler.
func newBeerEntryHandler(es portssvc.BeerEntrySvcFacade) *beerEntryHandler {
	return &beerEntryHandler{
		entryService: es,
	}
}

// registerBeerEntryRoutes registers routes related to beer entries.
func registerBeerEntryRoutes(rg *gin.RouterGroup, entryService portssvc.BeerEntrySvcFacade) {
	h := newBeerEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createBeerEntry)
		entries.GET("", h.listBeerEntries)
		entries.DELETE("/:entryID", h.deleteBeerEntry)
	}
}

// createBeerEntry records a beer purchase. The purchase-date rate lookup is
// awaited synchronously, so a slow provider shows up as request latency, not
// as a background job.
func (h *beerEntryHandler) createBeerEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBeerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBeerEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create beer entry", slog.String("beer_name", req.BeerName))

	createdEntry, err := h.entryService.CreateBeerEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating beer entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create beer entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create beer entry"})
		}
		return
	}

	logger.Info("Beer entry created successfully",
		slog.Int64("entry_id", createdEntry.EntryID),
		slog.Bool("rate_unavailable", createdEntry.RateUnavailable),
	)
	c.JSON(http.StatusCreated, dto.ToBeerEntryResponse(createdEntry))
}

// listBeerEntries returns every entry in insertion order.
func (h *beerEntryHandler) listBeerEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list beer entries")

	entries, err := h.entryService.ListBeerEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list beer entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list beer entries"})
		return
	}

	logger.Info("Beer entries listed successfully", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListBeerEntryResponse(entries))
}

// deleteBeerEntry removes an entry by ID. A nonexistent ID answers 404; it
// is a normal negative result, not a server error.
func (h *beerEntryHandler) deleteBeerEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entryID, err := strconv.ParseInt(c.Param("entryID"), 10, 64)
	if err != nil {
		logger.Warn("Invalid entry ID in path", slog.String("entry_id", c.Param("entryID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID must be an integer"})
		return
	}

	logger = logger.With(slog.Int64("entry_id", entryID))
	logger.Info("Received request to delete beer entry")

	deleted, err := h.entryService.DeleteBeerEntry(c.Request.Context(), entryID)
	if err != nil {
		logger.Error("Failed to delete beer entry in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete beer entry"})
		return
	}
	if !deleted {
		logger.Warn("Beer entry not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Beer entry not found"})
		return
	}

	logger.Info("Beer entry deleted successfully")
	c.Status(http.StatusNoContent)
}
