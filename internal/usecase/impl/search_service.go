package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"achaperto/config"
	deliverycontext "achaperto/internal/delivery/context"
	"achaperto/internal/domain/entity"
	domainerrors "achaperto/internal/domain/errors"
	"achaperto/internal/domain/search"
	"achaperto/internal/domain/service"
	"achaperto/internal/errors"
	"achaperto/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// resolutionState is a stage of one search. States only move forward.
type resolutionState int

const (
	stateResolvingPosition resolutionState = iota
	statePriorityCheck
	stateSearching
	stateEnriching
	stateDone
)

func (s resolutionState) String() string {
	switch s {
	case stateResolvingPosition:
		return "resolving_position"
	case statePriorityCheck:
		return "priority_check"
	case stateSearching:
		return "searching"
	case stateEnriching:
		return "enriching"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// resolution is the working state of one request. It never outlives Resolve.
type resolution struct {
	request          *entity.SearchRequest
	excluded         search.ExclusionSet
	category         search.Category
	origin           entity.Coordinate
	formattedAddress string
	position         entity.ResolvedPosition
	candidate        entity.Candidate
	outcome          string
}

func newResolution(req *entity.SearchRequest) *resolution {
	return &resolution{
		request:  req,
		excluded: search.NewExclusionSet(req.ExcludedNames),
		category: search.MapCategory(req.Query),
	}
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Geocoder  service.Geocoder
	Places    service.PlacesProvider
	Justifier service.Justifier
	Catalog   *search.Catalog
	Publisher service.EventPublisher
	Observer  service.SearchObserver
	Config    *config.Config
	Logger    *slog.Logger
	Lc        fx.Lifecycle `optional:"true"`
}

type searchService struct {
	geocoder  service.Geocoder
	places    service.PlacesProvider
	justifier service.Justifier
	catalog   *search.Catalog
	publisher service.EventPublisher
	observer  service.SearchObserver
	zone      *time.Location
	logger    *slog.Logger
	now       func() time.Time

	// events tracks search events still being dispatched.
	events sync.WaitGroup
}

// publishTimeout bounds one search event dispatch, which runs after the response is returned.
const publishTimeout = 5 * time.Second

// NewSearchService creates the resolution orchestrator.
func NewSearchService(params SearchServiceParams) (usecase.SearchUsecase, error) {
	offset := -3 * time.Hour
	if params.Config != nil && params.Config.Search != nil {
		parsed, err := params.Config.Search.Offset()
		if err != nil {
			return nil, err
		}
		offset = parsed
	}

	catalog := params.Catalog
	if catalog == nil {
		catalog = search.NewCatalog(nil, nil)
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	svc := &searchService{
		geocoder:  params.Geocoder,
		places:    params.Places,
		justifier: params.Justifier,
		catalog:   catalog,
		publisher: params.Publisher,
		observer:  params.Observer,
		zone:      search.Zone(offset),
		logger:    logger,
		now:       time.Now,
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: svc.WaitForEvents,
		})
	}

	return svc, nil
}

// WaitForEvents blocks until every dispatched search event has been published or ctx ends.
func (s *searchService) WaitForEvents(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.events.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Resolve runs one search from position resolution to a single recommendation.
func (s *searchService) Resolve(ctx context.Context, req *entity.SearchRequest) (*entity.ResolutionResult, error) {
	if req == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidPosition)
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("query is required"))
	}

	started := s.now()
	r := newResolution(req)
	state := stateResolvingPosition

	for {
		next, result, err := s.step(ctx, state, r)
		if err != nil {
			s.observe(service.OutcomeError, started)
			s.log(ctx).Warn("Search resolution failed",
				slog.String("state", state.String()),
				slog.Any("error", err),
			)

			return nil, err
		}

		if result != nil {
			s.observe(r.outcome, started)
			s.log(ctx).Info("Search resolved",
				slog.String("category", string(r.category)),
				slog.String("outcome", r.outcome),
				slog.String("place", result.Name),
				slog.Int("excluded", len(r.excluded)),
			)
			s.publish(ctx, r, result)

			return result, nil
		}

		if next <= state {
			return nil, domainerrors.ErrInternalError.WrapMessage(fmt.Sprintf("resolution cannot move from %s to %s", state, next))
		}
		state = next
	}
}

// step runs one state and returns the next one, or the final result.
func (s *searchService) step(ctx context.Context, state resolutionState, r *resolution) (resolutionState, *entity.ResolutionResult, error) {
	switch state {
	case stateResolvingPosition:
		return s.resolvePosition(ctx, r)
	case statePriorityCheck:
		return s.checkPriority(ctx, r)
	case stateSearching:
		return s.searchStage(ctx, r)
	case stateEnriching:
		return s.enrichStage(ctx, r)
	default:
		return state, nil, domainerrors.ErrInternalError.WrapMessage(fmt.Sprintf("no transition out of %s", state))
	}
}

func (s *searchService) resolvePosition(ctx context.Context, r *resolution) (resolutionState, *entity.ResolutionResult, error) {
	req := r.request

	if req.HasManualAddress() {
		geocoded, err := s.geocoder.ResolvePosition(ctx, req.ManualAddress)
		if errors.Is(err, service.ErrGeocodeNotFound) {
			s.log(ctx).Info("Manual address not found", slog.String("address", req.ManualAddress))
			r.outcome = service.OutcomeGeocodeFailed

			return stateDone, entity.NewGeocodeFailedResult(req.ManualAddress), nil
		}
		if err != nil {
			return stateResolvingPosition, nil, s.providerFailure(ctx, "geocode", err)
		}

		r.origin = geocoded.Location
		r.formattedAddress = geocoded.FormattedAddress

		return statePriorityCheck, nil, nil
	}

	if req.Coordinates == nil || !req.Coordinates.IsValid() {
		return stateResolvingPosition, nil, errors.WithStack(domainerrors.ErrInvalidPosition)
	}
	r.origin = *req.Coordinates

	return statePriorityCheck, nil, nil
}

func (s *searchService) checkPriority(ctx context.Context, r *resolution) (resolutionState, *entity.ResolutionResult, error) {
	components, err := s.geocoder.ReverseLookup(ctx, r.origin)
	if err != nil {
		if ctx.Err() != nil {
			return statePriorityCheck, nil, s.providerFailure(ctx, "reverse_geocode", err)
		}
		s.log(ctx).Warn("Reverse lookup failed, neighborhood unknown",
			slog.String("position", r.origin.String()),
			slog.Any("error", err),
		)
		components = entity.AddressComponents{}
	}

	r.position = entity.NewResolvedPosition(r.origin, components, r.formattedAddress)

	entry, ok := s.catalog.Registry.FindPartner(r.category, r.request.Query, r.position.Neighborhood, r.excluded)
	if !ok {
		return stateSearching, nil, nil
	}

	r.outcome = service.OutcomePartner

	return stateDone, entity.NewPartnerResult(entry, r.position.Neighborhood), nil
}

func (s *searchService) searchStage(ctx context.Context, r *resolution) (resolutionState, *entity.ResolutionResult, error) {
	candidates, err := s.searchCandidates(ctx, r)
	if err != nil {
		return stateSearching, nil, err
	}

	selected, ok := search.SelectCandidate(candidates, r.excluded)
	if !ok {
		r.outcome = service.OutcomeNoCandidates

		return stateDone, entity.NewNoCandidatesResult(r.position.Neighborhood), nil
	}
	r.candidate = selected

	return stateEnriching, nil, nil
}

func (s *searchService) enrichStage(ctx context.Context, r *resolution) (resolutionState, *entity.ResolutionResult, error) {
	result, err := s.enrich(ctx, r)
	if err != nil {
		return stateEnriching, nil, err
	}
	r.outcome = service.OutcomeProvider

	return stateDone, result, nil
}

// providerFailure maps a collaborator error to the fatal request error.
func (s *searchService) providerFailure(ctx context.Context, stage string, err error) error {
	if ctx.Err() != nil {
		return errors.WithStack(errors.Join(domainerrors.ErrRequestCanceled.WithDetails(stage), err))
	}

	return errors.WithStack(errors.Join(domainerrors.ErrProviderUnavailable.WithDetails(stage), err))
}

func (s *searchService) observe(outcome string, started time.Time) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveResolution(outcome, s.now().Sub(started))
}

// publish dispatches the search event in the background. The response never waits for it;
// failures are only logged.
func (s *searchService) publish(ctx context.Context, r *resolution, result *entity.ResolutionResult) {
	if s.publisher == nil {
		return
	}

	event := &service.SearchEvent{
		EventID:      uuid.NewString(),
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Query:        r.request.Query,
		Category:     string(r.category),
		Outcome:      r.outcome,
		PlaceName:    result.Name,
		Neighborhood: result.ResolvedNeighborhood,
		Redo:         len(r.request.ExcludedNames) > 0,
		ResolvedAt:   s.now().UTC(),
	}

	logger := s.log(ctx)
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)

	s.events.Go(func() {
		defer cancel()

		if err := s.publisher.PublishSearchEvent(publishCtx, event); err != nil {
			logger.Warn("Failed to publish search event",
				slog.String("event_id", event.EventID),
				slog.Any("error", err),
			)
		}
	})
}
