package http

import (
	"net/http"

	"lendbridge/internal/usecase/lender"

	"github.com/labstack/echo/v4"
)

type LenderHandler struct{ uc *lender.Usecase }

func NewLenderHandler(uc *lender.Usecase) *LenderHandler { return &LenderHandler{uc: uc} }

type registerLenderReq struct {
	CompanyName          string `json:"company_name"           validate:"required"`
	CINNumber            string `json:"cin_number"             validate:"required"`
	RegistrationYear     int    `json:"registration_year"      validate:"required,gte=1900,lte=2100"`
	HeadquartersLocation string `json:"headquarters_location"  validate:"required"`
	ContactFullName      string `json:"contact_full_name"      validate:"required"`
	Designation          string `json:"designation"            validate:"required"`
	OfficialEmail        string `json:"official_email"         validate:"required,email"`
	PhoneNumber          string `json:"phone_number"           validate:"required"`
}

func (h *LenderHandler) Register(c echo.Context) error {
	var req registerLenderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Register(c.Request().Context(), lender.RegisterInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LenderHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("lender_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
