package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eggfarm/pkg/feed/service"
	"eggfarm/pkg/payload"
	"eggfarm/pkg/query"
)

type FeedCtrl struct{ s service.FeedService }

func New(s service.FeedService) *FeedCtrl { return &FeedCtrl{s} }

func (h *FeedCtrl) Create(c echo.Context) error {
	var in service.FeedInput
	if err := payload.Decode(c.Request().Body, &in); err != nil {
		return err
	}
	if _, err := h.s.Record(c.Request().Context(), in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *FeedCtrl) Range(c echo.Context) error {
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
