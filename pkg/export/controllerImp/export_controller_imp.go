package controllerImp

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"eggfarm/pkg/export/service"
	"eggfarm/pkg/query"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

type ExportCtrl struct{ s service.ExportService }

func New(s service.ExportService) *ExportCtrl { return &ExportCtrl{s} }

// Export handles GET /export?coop_id&start&end.
func (h *ExportCtrl) Export(c echo.Context) error {
	q, err := query.ParseRange(c.QueryParam("coop_id"), c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return err
	}
	f, err := h.s.Workbook(c.Request().Context(), q)
	if err != nil {
		return err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	name := fmt.Sprintf("%s_%s_%s.xlsx", unsafeName.ReplaceAllString(q.CoopID, "_"), q.FirstDay(), q.LastDay())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
