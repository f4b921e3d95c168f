package http

import (
	"net/http"

	appDomain "lendbridge/internal/domain/application"
	"lendbridge/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	BorrowerRef     string  `json:"borrower_ref"      validate:"required"`
	ApplicantName   string  `json:"applicant_name"    validate:"required"`
	BusinessName    string  `json:"business_name"     validate:"required"`
	BusinessType    string  `json:"business_type"`
	RequestedAmount float64 `json:"requested_amount"  validate:"required,gt=0,dec2"`
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(),
		c.Param("lender_id"), c.Param("scheme_id"), application.CreateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type documentDecisionReq struct {
	Decision string `json:"decision"  validate:"required,oneof=approved rejected"`
}

func (h *ApplicationHandler) RecordDocumentDecision(c echo.Context) error {
	var req documentDecisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordDocumentDecision(c.Request().Context(),
		c.Param("application_id"), c.Param("name"), appDomain.DocumentDecision(req.Decision))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type fieldVisitReq struct {
	Report string `json:"report"  validate:"required"`
}

func (h *ApplicationHandler) RecordFieldVisit(c echo.Context) error {
	var req fieldVisitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordFieldVisit(c.Request().Context(), c.Param("application_id"), req.Report)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type decisionReq struct {
	Outcome     string `json:"outcome"       validate:"required,oneof=approved rejected"`
	FinalRemark string `json:"final_remark"  validate:"required"`
}

func (h *ApplicationHandler) Decide(c echo.Context) error {
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Decide(c.Request().Context(),
		c.Param("application_id"), appDomain.Status(req.Outcome), req.FinalRemark)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
