package controllerImp

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"eggfarm/pkg/apperror"
	"eggfarm/pkg/dailylog/service"
	"eggfarm/pkg/payload"
	"eggfarm/pkg/query"
)

type DailyLogCtrl struct{ s service.DailyLogService }

func New(s service.DailyLogService) *DailyLogCtrl { return &DailyLogCtrl{s} }

func (h *DailyLogCtrl) Create(c echo.Context) error {
	var in service.DailyLogInput
	if err := payload.Decode(c.Request().Body, &in); err != nil {
		return err
	}
	if _, err := h.s.Record(c.Request().Context(), in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "Log saved"})
}

func (h *DailyLogCtrl) Range(c echo.Context) error {
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

// EggsToday handles GET /eggs-today/:coop_id.
func (h *DailyLogCtrl) EggsToday(c echo.Context) error {
	coopID, err := pathCoopID(c)
	if err != nil {
		return err
	}
	n, err := h.s.EggsToday(c.Request().Context(), coopID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"eggs_collected": n})
}

// pathCoopID returns the decoded :coop_id segment. echo routes on the escaped
// path when the URL has one (an encoded "/" for instance) and leaves the
// param value escaped.
func pathCoopID(c echo.Context) (string, error) {
	raw := c.Param("coop_id")
	if c.Request().URL.RawPath == "" {
		return raw, nil
	}
	coopID, err := url.PathUnescape(raw)
	if err != nil {
		return "", apperror.InvalidField("coop_id")
	}
	return coopID, nil
}
