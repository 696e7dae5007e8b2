package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/JanProvaznik/cd-mcp/internal/adapter/http/response"
	"github.com/JanProvaznik/cd-mcp/internal/domain"
	"github.com/JanProvaznik/cd-mcp/internal/usecase"
)

// ToolHandler handles HTTP requests for the connection search tools.
type ToolHandler struct {
	useCase usecase.ConnectionSearchUseCase
}

// NewToolHandler creates a new ToolHandler with the given use case.
func NewToolHandler(uc usecase.ConnectionSearchUseCase) *ToolHandler {
	return &ToolHandler{
		useCase: uc,
	}
}

// SearchConnections handles POST /api/v1/tools/search-connections
//
// @Summary Search for train connections
// @Description Resolve both station queries, search the timetable and attach prices where known
// @Tags tools
// @Accept json
// @Produce json
// @Param request body SearchConnectionsRequest true "Search criteria"
// @Success 200 {object} SearchConnectionsResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Station not found"
// @Failure 503 {object} response.ErrorDetail "Timetable service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/tools/search-connections [post]
func (h *ToolHandler) SearchConnections(c echo.Context) error {
	var req SearchConnectionsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)

	result, err := h.useCase.SearchConnections(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// SearchLocations handles POST /api/v1/tools/search-locations
//
// @Summary Search for stations and cities
// @Description Prefix-search the timetable's location catalogue
// @Tags tools
// @Accept json
// @Produce json
// @Param request body SearchLocationsRequest true "Location query"
// @Success 200 {object} SearchLocationsResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Timetable service unavailable"
// @Router /api/v1/tools/search-locations [post]
func (h *ToolHandler) SearchLocations(c echo.Context) error {
	var req SearchLocationsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	locations, err := h.useCase.SearchLocations(c.Request().Context(),
		req.Query, domain.LocationType(req.Type))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToLocationsResponseDTO(locations))
}

// PassengerTypes handles GET /api/v1/tools/passenger-types
//
// @Summary List fare categories
// @Description Return the static catalogue of passenger fare categories
// @Tags tools
// @Produce json
// @Success 200 {object} PassengerTypesResponseDTO
// @Router /api/v1/tools/passenger-types [get]
func (h *ToolHandler) PassengerTypes(c echo.Context) error {
	return response.OK(c, ToPassengerTypesResponseDTO(h.useCase.PassengerTypes()))
}

// ConnectionDetails handles POST /api/v1/tools/connection-details
//
// @Summary Fetch details for one connection
// @Description Always answers 501; the wired upstream cannot re-open a past search
// @Tags tools
// @Accept json
// @Produce json
// @Param request body ConnectionDetailsRequest true "Connection reference"
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 501 {object} response.ErrorDetail "Not supported"
// @Router /api/v1/tools/connection-details [post]
func (h *ToolHandler) ConnectionDetails(c echo.Context) error {
	var req ConnectionDetailsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	_, err := h.useCase.ConnectionDetails(c.Request().Context(),
		req.SearchHandle, req.ConnectionID)
	return h.handleError(c, err)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ToolHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses. Raw upstream response
// bodies never reach the client; the error's own message is safe because
// UpstreamError keeps diagnostics out of Error().
func (h *ToolHandler) handleError(c echo.Context, err error) error {
	if domain.IsStationNotFound(err) {
		return response.StationNotFound(c, err.Error())
	}

	if domain.IsNotSupported(err) {
		return response.NotSupported(c, err.Error())
	}

	if domain.IsUpstreamUnavailable(err) {
		return response.ServiceUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ToolHandler) Health(c echo.Context) error {
	return response.Health(c)
}
