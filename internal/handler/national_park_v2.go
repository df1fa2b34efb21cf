package handler

import (
	"errors"
	"net/http"

	"github.com/Tibebua/NationalPark/internal/dto"
	"github.com/Tibebua/NationalPark/internal/service"

	"github.com/gin-gonic/gin"
)

// v2ParkID — парк, который отдает заглушка списка второй версии API.
const v2ParkID = 2

// ListNationalParksV2 обработчик для GET /api/v2/NationalParks.
// Вместо списка возвращает один парк с фиксированным идентификатором (заглушка v2).
func (h *Handler) ListNationalParksV2(c *gin.Context) {
	if major, _, _ := parseAPIVersion(c.Param("version")); major != 2 {
		c.JSON(http.StatusNotFound, NewModelErrors("Unsupported API version '%s'.", c.Param("version")))
		return
	}
	park, err := h.NationalParkService.Get(c.Request.Context(), v2ParkID)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, NewModelErrors("National Park Does Not Exist!"))
		return
	}
	if err != nil {
		h.log.Error("не удалось получить парк", "id", v2ParkID, "err", err)
		c.JSON(http.StatusInternalServerError, NewModelErrors("something went wrong fetching the record %d", v2ParkID))
		return
	}
	c.JSON(http.StatusOK, dto.FromNationalPark(*park))
}
