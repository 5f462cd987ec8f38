package bulkscan

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/bulkscan/ocr"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/domain/appeal"
	"github.com/hmcts/sscs-tribunals-case-api-sub015/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole("bulkscan", "caseworker")

	intake := api.Group("/intake", role, auth.RequireService("sscs_bulkscan"))
	intake.POST("/transform", h.TransformRecord)
	intake.POST("/validate", h.ValidateRecord)

	cases := api.Group("/cases", role)
	cases.GET("/:ref", h.GetCase)
	cases.POST("/:ref/validate", h.ValidateCase)
}

// TransformRecord turns a scanned payload into a case, creating it when
// it passes validation. The outcome and any findings are always returned
// with 200; the caller inspects the status.
func (h *Handler) TransformRecord(c echo.Context) error {
	var payload ocr.ScanPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp := h.svc.TransformRecord(c.Request().Context(), &payload)
	return c.JSON(http.StatusOK, resp)
}

// ValidateRecord reports what TransformRecord would find, without
// creating anything.
func (h *Handler) ValidateRecord(c echo.Context) error {
	var payload ocr.ScanPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp := h.svc.ValidateRecord(c.Request().Context(), &payload)
	return c.JSON(http.StatusOK, resp)
}

type validateCaseRequest struct {
	CaseDetails         *appeal.Case     `json:"caseDetails"`
	EventID             appeal.EventType `json:"eventId,omitempty"`
	IgnoreMrnValidation bool             `json:"ignoreMrnValidation,omitempty"`
}

// ValidateCase validates a case being updated. Findings that would only
// warn at intake block the update here.
func (h *Handler) ValidateCase(c echo.Context) error {
	var req validateCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.CaseDetails == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "caseDetails is required")
	}
	resp := h.svc.ValidateCase(c.Request().Context(), req.CaseDetails, req.EventID, req.IgnoreMrnValidation)
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCase(c echo.Context) error {
	rec, err := h.svc.GetCase(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if rec == nil {
		return echo.NewHTTPError(http.StatusNotFound, "case not found")
	}
	return c.JSON(http.StatusOK, rec)
}
