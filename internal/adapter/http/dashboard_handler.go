package http

import (
	"net/http"

	"lendbridge/internal/usecase/dashboard"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) NBFC(c echo.Context) error {
	dto, err := h.uc.NBFC(c.Request().Context(), c.Param("lender_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DashboardHandler) Borrower(c echo.Context) error {
	summaries, err := h.uc.Borrower(c.Request().Context(), c.Param("borrower_ref"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applications": summaries})
}
