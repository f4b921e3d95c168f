package http

import (
	"net/http"

	"lendbridge/internal/usecase/matching"
	"lendbridge/internal/usecase/scheme"

	"github.com/labstack/echo/v4"
)

type SchemeHandler struct {
	uc       *scheme.Usecase
	matching *matching.Usecase
}

func NewSchemeHandler(uc *scheme.Usecase, m *matching.Usecase) *SchemeHandler {
	return &SchemeHandler{uc: uc, matching: m}
}

type createSchemeReq struct {
	SchemeName             string   `json:"scheme_name"              validate:"required"`
	MinAmount              float64  `json:"min_amount"               validate:"required,gt=0,dec2"`
	MaxAmount              float64  `json:"max_amount"               validate:"required,gt=0,dec2"`
	MinPeriodMonths        int      `json:"min_period_months"        validate:"required,gte=1"`
	MaxPeriodMonths        int      `json:"max_period_months"        validate:"required,gte=1"`
	InterestRate           float64  `json:"interest_rate"            validate:"required,gt=0,dec2"`
	ProcessingFeePercent   float64  `json:"processing_fee_percent"   validate:"omitempty,gte=0,dec2"`
	RequiredDocuments      []string `json:"required_documents"`
	PreferredBusinessTypes []string `json:"preferred_business_types"`
}

func (h *SchemeHandler) Create(c echo.Context) error {
	var req createSchemeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), c.Param("lender_id"), scheme.CreateSchemeInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *SchemeHandler) List(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"
	dtos, err := h.uc.List(c.Request().Context(), c.Param("lender_id"), activeOnly)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"schemes": dtos})
}

func (h *SchemeHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("lender_id"), c.Param("scheme_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SchemeHandler) Deactivate(c echo.Context) error {
	dto, err := h.uc.Deactivate(c.Request().Context(), c.Param("lender_id"), c.Param("scheme_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type matchQuery struct {
	AmountMin    float64 `query:"amount_min"     validate:"required,gt=0"`
	AmountMax    float64 `query:"amount_max"     validate:"required,gt=0"`
	PeriodMonths int     `query:"period_months"  validate:"required,gte=1"`
	BusinessType string  `query:"business_type"`
}

// Match is the public scheme search borrowers hit before applying.
func (h *SchemeHandler) Match(c echo.Context) error {
	var q matchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&q); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	listings, err := h.matching.FindEligibleSchemes(c.Request().Context(), matching.Criteria{
		AmountMin:    q.AmountMin,
		AmountMax:    q.AmountMax,
		PeriodMonths: q.PeriodMonths,
		BusinessType: q.BusinessType,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"schemes": listings})
}
