package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Tibebua/NationalPark/internal/dto"
	"github.com/Tibebua/NationalPark/internal/service"

	"github.com/gin-gonic/gin"
)

// ListNationalParks обработчик для GET /api/nationalparks - возвращает список всех парков.
func (h *Handler) ListNationalParks(c *gin.Context) {
	parks, err := h.NationalParkService.List(c.Request.Context())
	if err != nil {
		h.log.Error("не удалось получить парки", "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong fetching national parks"))
		return
	}
	c.JSON(http.StatusOK, dto.FromNationalParks(parks))
}

// GetNationalPark обработчик для GET /api/nationalparks/:id.
func (h *Handler) GetNationalPark(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	park, err := h.NationalParkService.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, NewModelErrors("National Park Does Not Exist!"))
		return
	}
	if err != nil {
		h.log.Error("не удалось получить парк", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong fetching the record %d", id))
		return
	}
	c.JSON(http.StatusOK, dto.FromNationalPark(*park))
}

// CreateNationalPark обработчик для POST /api/nationalparks.
// Совпадение имени с существующим парком возвращает 404, как и прежний API.
func (h *Handler) CreateNationalPark(c *gin.Context) {
	var body dto.NationalPark
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}
	park := body.ToModel()
	park.ID = 0

	err := h.NationalParkService.Create(c.Request.Context(), &park)
	switch {
	case errors.Is(err, service.ErrNameExists):
		c.JSON(http.StatusNotFound, NewModelErrors("National Park Exists!"))
		return
	case err != nil:
		h.log.Error("не удалось создать парк", "name", park.Name, "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong creating the record %s", park.Name))
		return
	}

	h.log.Info("парк создан", "id", park.ID)
	c.Header("Location", fmt.Sprintf("/api/nationalparks/%d", park.ID))
	c.JSON(http.StatusCreated, dto.FromNationalPark(park))
}

// UpdateNationalPark обработчик для PATCH /api/nationalparks/:id - полная перезапись парка.
func (h *Handler) UpdateNationalPark(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body dto.NationalPark
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}
	if body.ID != id {
		c.JSON(http.StatusBadRequest, NewModelErrors("The id in the path does not match the id in the body."))
		return
	}
	park := body.ToModel()

	err := h.NationalParkService.Update(c.Request.Context(), &park)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, NewModelErrors("National Park Does Not Exist!"))
		return
	case err != nil:
		h.log.Error("не удалось обновить парк", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong updating the record %s", park.Name))
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteNationalPark обработчик для DELETE /api/nationalparks/:id.
func (h *Handler) DeleteNationalPark(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	park, err := h.NationalParkService.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, NewModelErrors("National Park Does Not Exist!"))
		return
	case errors.Is(err, service.ErrSaveFailed):
		h.log.Error("не удалось удалить парк", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong Deleting the record %s", park.Name))
		return
	case err != nil:
		h.log.Error("не удалось удалить парк", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong Deleting the record %d", id))
		return
	}
	c.Status(http.StatusNoContent)
}
