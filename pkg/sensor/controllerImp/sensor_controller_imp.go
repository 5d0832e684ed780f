package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eggfarm/pkg/payload"
	"eggfarm/pkg/query"
	"eggfarm/pkg/sensor/service"
)

type SensorCtrl struct{ s service.SensorService }

func New(s service.SensorService) *SensorCtrl { return &SensorCtrl{s} }

// Create handles POST /sensor-data.
func (h *SensorCtrl) Create(c echo.Context) error {
	var in service.SensorInput
	if err := payload.Decode(c.Request().Body, &in); err != nil {
		return err
	}
	if _, err := h.s.Record(c.Request().Context(), in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Range handles GET /sensor-data-range.
func (h *SensorCtrl) Range(c echo.Context) error {
	q, err := query.ParseRange(c.QueryParam("coop_id"), c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return err
	}
	out, err := h.s.Range(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
