package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Tibebua/NationalPark/internal/dto"
	"github.com/Tibebua/NationalPark/internal/service"

	"github.com/gin-gonic/gin"
)

// ListTrails обработчик для GET /api/:version/Trails - все тропы, по имени.
func (h *Handler) ListTrails(c *gin.Context) {
	trails, err := h.TrailService.List(c.Request.Context())
	if err != nil {
		h.log.Error("не удалось получить тропы", "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong fetching trails"))
		return
	}
	c.JSON(http.StatusOK, dto.FromTrails(trails))
}

// ListTrailsInNationalPark обработчик для GET /api/:version/Trails/GetTrailsInaNationalPark/:id.
// Пустой список - это 200; 404 только если сервис не вернул коллекцию вовсе.
func (h *Handler) ListTrailsInNationalPark(c *gin.Context) {
	parkID, ok := pathID(c, "id")
	if !ok {
		return
	}
	trails, err := h.TrailService.ListByPark(c.Request.Context(), parkID)
	if err != nil {
		h.log.Error("не удалось получить тропы парка", "park_id", parkID, "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong fetching trails of %d", parkID))
		return
	}
	if trails == nil {
		c.JSON(http.StatusNotFound, NewModelErrors("National Park Does Not Exist!"))
		return
	}
	c.JSON(http.StatusOK, dto.FromTrails(trails))
}

// GetTrail обработчик для GET /api/:version/Trails/:id.
func (h *Handler) GetTrail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	trail, err := h.TrailService.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, NewModelErrors("Trail Does Not Exist!"))
		return
	}
	if err != nil {
		h.log.Error("не удалось получить тропу", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong fetching the record %d", id))
		return
	}
	c.JSON(http.StatusOK, dto.FromTrail(*trail))
}

// CreateTrail обработчик для POST /api/:version/Trails.
// Ссылка на несуществующий парк отклоняется базой и возвращается как 500.
func (h *Handler) CreateTrail(c *gin.Context) {
	var body dto.TrailCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}
	trail := body.ToModel()

	err := h.TrailService.Create(c.Request.Context(), &trail)
	switch {
	case errors.Is(err, service.ErrNameExists):
		c.JSON(http.StatusNotFound, NewModelErrors("Trail Exists!"))
		return
	case err != nil:
		h.log.Error("не удалось создать тропу", "name", trail.Name, "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong creating the record %s", trail.Name))
		return
	}

	h.log.Info("тропа создана", "id", trail.ID, "park_id", trail.NationalParkID)
	c.Header("Location", fmt.Sprintf("/api/%s/Trails/%d", c.Param("version"), trail.ID))
	c.JSON(http.StatusCreated, dto.FromTrail(trail))
}

// UpdateTrail обработчик для PATCH /api/:version/Trails/:id - полная перезапись тропы.
func (h *Handler) UpdateTrail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body dto.TrailUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}
	if body.ID != id {
		c.JSON(http.StatusBadRequest, NewModelErrors("The id in the path does not match the id in the body."))
		return
	}
	trail := body.ToModel()

	err := h.TrailService.Update(c.Request.Context(), &trail)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, NewModelErrors("Trail Does Not Exist!"))
		return
	case err != nil:
		h.log.Error("не удалось обновить тропу", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong updating the record %s", trail.Name))
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteTrail обработчик для DELETE /api/:version/Trails/:id.
func (h *Handler) DeleteTrail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	trail, err := h.TrailService.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, NewModelErrors("Trail Does Not Exist!"))
		return
	case errors.Is(err, service.ErrSaveFailed):
		h.log.Error("не удалось удалить тропу", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong Deleting the record %s", trail.Name))
		return
	case err != nil:
		h.log.Error("не удалось удалить тропу", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong Deleting the record %d", id))
		return
	}
	c.Status(http.StatusNoContent)
}
