package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"achaperto/internal/delivery/api/response"
	deliverycontext "achaperto/internal/delivery/context"
	"achaperto/internal/domain/entity"
	"achaperto/internal/domain/search"
	"achaperto/internal/errors"
	"achaperto/internal/usecase"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler serves the nearest-open-place search.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchRequest is the request body of POST /api/v1/search.
// Coordinates use the browser's "lat,lng" form; a manual address replaces them.
type SearchRequest struct {
	Query         string   `json:"query" validate:"required,max=200"`
	Coordinates   string   `json:"coordinates" validate:"coordinates"`
	ManualAddress string   `json:"manualAddress" validate:"max=300"`
	ExcludedNames []string `json:"excludedNames" validate:"max=50,dive,max=200"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// CategoryResponse is the category mapping of a free-text query.
type CategoryResponse struct {
	Query        string `json:"query"`
	Category     string `json:"category"`
	ProviderType string `json:"providerType,omitempty"`
	Keyword      string `json:"keyword"`
}

func (r *SearchRequest) normalize() {
	r.Query = strings.TrimSpace(r.Query)
	r.ManualAddress = strings.TrimSpace(r.ManualAddress)
	r.Coordinates = strings.TrimSpace(r.Coordinates)
	if r.ManualAddress != "" {
		r.Coordinates = ""
	}
}

func (r *SearchRequest) toEntity() (*entity.SearchRequest, error) {
	req := &entity.SearchRequest{
		Query:         r.Query,
		ManualAddress: r.ManualAddress,
		ExcludedNames: r.ExcludedNames,
	}

	if r.Coordinates != "" {
		coord, err := entity.ParseCoordinate(r.Coordinates)
		if err != nil {
			return nil, err
		}
		req.Coordinates = &coord
	}

	return req, nil
}

// Search resolves one request into a single recommendation.
func (h *SearchHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Corpo da requisição inválido")
	}

	req.normalize()
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Dados da busca inválidos", fieldErrors(err))
	}

	searchReq, err := req.toEntity()
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Coordenadas inválidas")
	}

	ctx := c.Request().Context()
	result, err := h.searchUC.Resolve(ctx, searchReq)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Search failed",
			slog.String("query", searchReq.Query),
			slog.Any("error", err),
		)

		return response.HandleResolutionError(c, err)
	}

	return response.Resolution(c, result)
}

// Categories reports how a query maps onto categories and provider types.
func (h *SearchHandler) Categories(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "Parâmetro query é obrigatório")
	}

	category := search.MapCategory(query)

	return response.Success(c, http.StatusOK, CategoryResponse{
		Query:        query,
		Category:     category.String(),
		ProviderType: search.MapToProviderType(query),
		Keyword:      search.SearchKeyword(category, query),
	})
}

func fieldErrors(err error) []FieldError {
	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	out := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, FieldError{Field: jsonFieldName(fe.Field()), Rule: fe.Tag()})
	}

	return out
}

func jsonFieldName(field string) string {
	if field == "" {
		return field
	}

	return strings.ToLower(field[:1]) + field[1:]
}
