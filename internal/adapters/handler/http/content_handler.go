package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

// ContentHandler serves the read-only companion content, Quran text
// with verse audio and daily prayer schedules.
type ContentHandler struct {
	quran  *services.QuranService
	prayer *services.PrayerService
}

func NewContentHandler(quran *services.QuranService, prayer *services.PrayerService) *ContentHandler {
	return &ContentHandler{
		quran:  quran,
		prayer: prayer,
	}
}

func (h *ContentHandler) RegisterRoutes(router *gin.RouterGroup) {
	quran := router.Group("/quran")
	{
		quran.GET("/surah", h.ListSurah)
		quran.GET("/surah/:number", h.GetSurah)
	}

	router.GET("/prayer-times", h.PrayerTimes)
}

func (h *ContentHandler) ListSurah(c *gin.Context) {
	list, err := h.quran.ListSurah(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "quran provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ContentHandler) GetSurah(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "surah number must be an integer"})
		return
	}

	surah, err := h.quran.GetSurah(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, domain.ErrSurahNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "surah not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "quran provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, surah)
}

func (h *ContentHandler) PrayerTimes(c *gin.Context) {
	schedule, err := h.prayer.TodayByCity(c.Request.Context(), c.Query("city"))
	if err != nil {
		if errors.Is(err, domain.ErrCityRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "city query parameter is required"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "prayer times provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}
