// File: /controllers/event_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"eventease-api/repositories"
	"eventease-api/services"
	"eventease-api/utils"
)

type EventController struct {
	repo    *repositories.EventRepository
	weather *services.WeatherService
}

func NewEventController(repo *repositories.EventRepository, weather *services.WeatherService) *EventController {
	return &EventController{
		repo:    repo,
		weather: weather,
	}
}

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
}

// deviceCoordinates reads the optional lat/lng query parameters the mobile
// client sends for distance annotation.
func deviceCoordinates(c *gin.Context) *services.Coordinates {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		return nil
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil || !utils.IsValidLatitude(lat) || !utils.IsValidLongitude(lng) {
		return nil
	}

	return &services.Coordinates{Latitude: lat, Longitude: lng}
}

func (ec *EventController) GetEvents(c *gin.Context) {
	filter, ok := services.ParseEventFilter(c.DefaultQuery("filter", "all"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown filter"})
		return
	}

	events := services.DeriveEventList(ec.repo.Events(), filter, time.Now(), deviceCoordinates(c))

	c.JSON(http.StatusOK, gin.H{
		"events":  events,
		"filter":  filter,
		"count":   len(events),
		"loading": ec.repo.Loading(),
	})
}

func (ec *EventController) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidEventTitle(req.Title) {
		utils.SendValidationError(c, "Title must be at least 3 characters")
		return
	}
	if !utils.IsValidEventDescription(req.Description) {
		utils.SendValidationError(c, "Description must be at least 10 characters")
		return
	}
	if !utils.IsValidEventDate(req.Date) {
		utils.SendValidationError(c, "Invalid event date")
		return
	}
	if req.Latitude != nil && !utils.IsValidLatitude(*req.Latitude) {
		utils.SendValidationError(c, "Invalid latitude")
		return
	}
	if req.Longitude != nil && !utils.IsValidLongitude(*req.Longitude) {
		utils.SendValidationError(c, "Invalid longitude")
		return
	}

	event, err := ec.repo.Add(c.Request.Context(), repositories.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create event")
		return
	}

	utils.SendCreated(c, "Event created successfully", event)
}

func (ec *EventController) GetEvent(c *gin.Context) {
	event, found := ec.repo.GetByID(c.Param("id"))
	if !found {
		utils.SendError(c, http.StatusNotFound, "Event not found")
		return
	}

	if device := deviceCoordinates(c); device != nil && event.HasCoordinates() {
		d := services.Distance(device.Latitude, device.Longitude, *event.Latitude, *event.Longitude)
		event.Distance = services.FormatDistance(d)
	}

	c.JSON(http.StatusOK, event)
}

func (ec *EventController) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil && !utils.IsValidEventTitle(*req.Title) {
		utils.SendValidationError(c, "Title must be at least 3 characters")
		return
	}
	if req.Description != nil && !utils.IsValidEventDescription(*req.Description) {
		utils.SendValidationError(c, "Description must be at least 10 characters")
		return
	}
	if req.Latitude != nil && !utils.IsValidLatitude(*req.Latitude) {
		utils.SendValidationError(c, "Invalid latitude")
		return
	}
	if req.Longitude != nil && !utils.IsValidLongitude(*req.Longitude) {
		utils.SendValidationError(c, "Invalid longitude")
		return
	}

	err := ec.repo.Update(c.Request.Context(), c.Param("id"), repositories.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update event")
		return
	}

	utils.SendSuccess(c, "Event updated successfully", nil)
}

func (ec *EventController) DeleteEvent(c *gin.Context) {
	if err := ec.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	utils.SendSuccess(c, "Event deleted successfully", nil)
}

func (ec *EventController) ToggleParticipation(c *gin.Context) {
	id := c.Param("id")
	if err := ec.repo.ToggleParticipation(c.Request.Context(), id); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update participation")
		return
	}

	event, found := ec.repo.GetByID(id)
	if !found {
		utils.SendSuccess(c, "Participation updated", nil)
		return
	}

	utils.SendSuccess(c, "Participation updated", event)
}

func (ec *EventController) RefreshEvents(c *gin.Context) {
	ec.repo.Refresh(c.Request.Context())

	events := services.SortEventsByDate(ec.repo.Events())
	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// GetCalendar returns the per-day markers for the calendar screen plus the
// events on the selected day, distance-annotated when the client sent its
// position.
func (ec *EventController) GetCalendar(c *gin.Context) {
	events := ec.repo.Events()
	selected := c.Query("selected")

	response := gin.H{
		"marked_dates": services.MarkedDates(events, selected),
	}

	if selected != "" {
		onDay := services.EventsOnDay(events, selected)
		if device := deviceCoordinates(c); device != nil {
			onDay = services.AnnotateDistances(onDay, *device)
		}
		response["events"] = onDay
	}

	c.JSON(http.StatusOK, response)
}

func (ec *EventController) GetEventWeather(c *gin.Context) {
	event, found := ec.repo.GetByID(c.Param("id"))
	if !found {
		utils.SendError(c, http.StatusNotFound, "Event not found")
		return
	}
	if !event.HasCoordinates() {
		utils.SendError(c, http.StatusBadRequest, "Event has no coordinates")
		return
	}

	summary, err := ec.weather.ForecastFor(c.Request.Context(), *event.Latitude, *event.Longitude, event.Date)
	if err != nil {
		if errors.Is(err, services.ErrForecastUnavailable) {
			utils.SendError(c, http.StatusNotFound, "No forecast available for this date")
			return
		}
		utils.SendError(c, http.StatusBadGateway, "Failed to fetch weather")
		return
	}

	c.JSON(http.StatusOK, gin.H{"weather": summary})
}
