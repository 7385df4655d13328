package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"achaperto/config"
	"achaperto/internal/domain/entity"
	domainerrors "achaperto/internal/domain/errors"
	"achaperto/internal/domain/search"
	"achaperto/internal/domain/service"
	mockSvc "achaperto/internal/mocks/service"
	"achaperto/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	// Wednesday 09:00 in Brasília.
	fixedNow = time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)
	userPos  = entity.Coordinate{Lat: -23.5505, Lng: -46.6333}
)

type searchFixture struct {
	geocoder  *mockSvc.MockGeocoder
	places    *mockSvc.MockPlacesProvider
	justifier *mockSvc.MockJustifier
	publisher *mockSvc.MockEventPublisher
	observer  *mockSvc.MockSearchObserver
	service   *searchService

	mu     sync.Mutex
	events []*service.SearchEvent
}

// published waits for background dispatch and returns the events seen by the publisher.
func (f *searchFixture) published(t *testing.T) []*service.SearchEvent {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.service.WaitForEvents(ctx))

	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*service.SearchEvent(nil), f.events...)
}

func testCatalog() *search.Catalog {
	return search.NewCatalog(
		[]entity.PartnerEntry{
			{
				Category:      "Farmácia",
				MatchTerm:     "farmacia",
				Name:          "Farmácia Popular Burits",
				Street:        "Rua das Flores",
				Number:        "120",
				Neighborhood:  "Burits",
				City:          "Curitiba",
				State:         "PR",
				Status:        entity.StatusOpenNow,
				ClosingTime:   "22:00",
				Phone:         "(41) 3333-1200",
				DistanceLabel: "No seu bairro",
				Reason:        "Parceiro no seu bairro.",
			},
		},
		[]search.NoiseRule{
			{
				Category:    search.CategoryPharmacy,
				NameMarkers: []string{"veterinária", "pet shop"},
				TypeMarkers: []string{"veterinary_care", "pet_store"},
			},
			{
				Category:    search.CategoryMarket,
				NameMarkers: []string{"contabilidade"},
				TypeMarkers: []string{"accounting"},
			},
		},
	)
}

func newSearchFixture(t *testing.T) *searchFixture {
	t.Helper()

	f := &searchFixture{
		geocoder:  mockSvc.NewMockGeocoder(t),
		places:    mockSvc.NewMockPlacesProvider(t),
		justifier: mockSvc.NewMockJustifier(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		observer:  mockSvc.NewMockSearchObserver(t),
	}

	svc, err := NewSearchService(SearchServiceParams{
		Geocoder:  f.geocoder,
		Places:    f.places,
		Justifier: f.justifier,
		Catalog:   testCatalog(),
		Publisher: f.publisher,
		Observer:  f.observer,
		Config:    &config.Config{Search: &config.SearchConfig{UTCOffset: "-3h"}},
	})
	require.NoError(t, err)

	f.service = svc.(*searchService)
	f.service.now = func() time.Time { return fixedNow }

	f.publisher.EXPECT().
		PublishSearchEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.SearchEvent) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.events = append(f.events, event)
		}).
		Return(nil).
		Maybe()
	f.observer.EXPECT().ObserveResolution(mock.Anything, mock.Anything).Return().Maybe()

	return f
}

func coords(c entity.Coordinate) *entity.Coordinate {
	return &c
}

func boolPtr(b bool) *bool {
	return &b
}

func candidate(name, id string, lat, lng float64, types ...string) entity.Candidate {
	return entity.Candidate{
		Name:       name,
		ProviderID: id,
		Types:      types,
		Location:   &entity.Coordinate{Lat: lat, Lng: lng},
	}
}

func wednesdayHours(closeAt string) *entity.OpeningHours {
	return &entity.OpeningHours{
		OpenNow: boolPtr(true),
		Periods: []entity.OpeningPeriod{
			{
				Open:  entity.DayTime{Day: time.Wednesday, Time: "0800"},
				Close: &entity.DayTime{Day: time.Wednesday, Time: closeAt},
			},
		},
	}
}

func TestSearchService_PartnerMatchSkipsPlacesProvider(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	f.geocoder.EXPECT().
		ReverseLookup(ctx, userPos).
		Return(entity.AddressComponents{Neighborhood: "Burits", City: "Curitiba"}, nil)

	result, err := f.service.Resolve(ctx, &entity.SearchRequest{
		Query:       "farmácia",
		Coordinates: coords(userPos),
	})
	require.NoError(t, err)

	assert.Equal(t, "Farmácia Popular Burits", result.Name)
	assert.Equal(t, "Rua das Flores, 120 - Burits, Curitiba - PR", result.Address)
	assert.Equal(t, entity.StatusOpenNow, result.Status)
	assert.Equal(t, "22:00", result.ClosingTime)
	assert.Equal(t, "No seu bairro", result.Distance)
	assert.Equal(t, "Burits", result.ResolvedNeighborhood)

	events := f.published(t)
	require.Len(t, events, 1)
	assert.Equal(t, service.OutcomePartner, events[0].Outcome)
	assert.Equal(t, "Farmácia", events[0].Category)
	assert.False(t, events[0].Redo)
}

func TestSearchService_MarketFiltersAccountingOffice(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	f.geocoder.EXPECT().
		ReverseLookup(ctx, userPos).
		Return(entity.AddressComponents{Neighborhood: "Centro"}, nil)

	f.places.EXPECT().
		NearbySearch(ctx, service.NearbyQuery{
			Location:       userPos,
			Type:           "supermarket",
			OpenNow:        true,
			RankByDistance: true,
		}).
		Return([]entity.Candidate{
			candidate("Contabilidade Mercado Silva", "acc-1", -23.5506, -46.6334, "accounting"),
			candidate("Mercado Bom Preço", "mkt-1", -23.5550, -46.6380, "supermarket"),
		}, nil)

	marketLocation := &entity.Coordinate{Lat: -23.5550, Lng: -46.6380}
	f.places.EXPECT().
		PlaceDetails(ctx, "mkt-1").
		Return(&entity.PlaceDetails{
			Name:             "Mercado Bom Preço",
			FormattedAddress: "Rua Augusta, 10 - Centro, São Paulo - SP",
			Phone:            "(11) 3000-0000",
			Location:         marketLocation,
			OpeningHours:     wednesdayHours("2200"),
		}, nil)

	expectedDistance := search.FormatKm(search.HaversineKm(userPos, marketLocation))
	f.justifier.EXPECT().
		Justify(ctx, service.JustificationInput{
			PlaceName: "Mercado Bom Preço",
			Distance:  expectedDistance,
			Query:     "mercado",
		}).
		Return("  O mercado aberto mais perto de você.  ", nil)

	result, err := f.service.Resolve(ctx, &entity.SearchRequest{
		Query:       "mercado",
		Coordinates: coords(userPos),
	})
	require.NoError(t, err)

	assert.Equal(t, "Mercado Bom Preço", result.Name)
	assert.Equal(t, "Rua Augusta, 10 - Centro, São Paulo - SP", result.Address)
	assert.Equal(t, entity.StatusOpenNow, result.Status)
	assert.Equal(t, "22:00", result.ClosingTime)
	assert.Equal(t, expectedDistance, result.Distance)
	assert.Equal(t, "(11) 3000-0000", result.Phone)
	assert.Equal(t, "O mercado aberto mais perto de você.", result.Reason)
	assert.Equal(t, "Centro", result.ResolvedNeighborhood)

	events := f.published(t)
	require.Len(t, events, 1)
	assert.Equal(t, service.OutcomeProvider, events[0].Outcome)
}

func TestSearchService_PharmacyFiltersVeterinaryClinic(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	f.geocoder.EXPECT().ReverseLookup(ctx, userPos).Return(entity.AddressComponents{Neighborhood: "Centro"}, nil)
	f.places.EXPECT().
		NearbySearch(ctx, mock.AnythingOfType("service.NearbyQuery")).
		Return([]entity.Candidate{
			candidate("Clínica Veterinária Amigo", "vet-1", -23.5505, -46.6334, "veterinary_care"),
			candidate("Drogaria Central", "drg-1", -23.5520, -46.6340, "pharmacy"),
		}, nil)
	f.places.EXPECT().
		PlaceDetails(ctx, "drg-1").
		Return(&entity.PlaceDetails{Name: "Drogaria Central"}, nil)
	f.justifier.EXPECT().Justify(ctx, mock.Anything).Return("Perto e aberta.", nil)

	result, err := f.service.Resolve(ctx, &entity.SearchRequest{Query: "farmácia", Coordinates: coords(userPos)})
	require.NoError(t, err)

	assert.Equal(t, "Drogaria Central", result.Name)
	assert.Equal(t, entity.NotInformed, result.Address)
	assert.Equal(t, entity.NotInformed, result.Phone)
	// Details without geometry fall back to the candidate location.
	assert.Equal(t, search.FormatKm(search.HaversineKm(userPos, &entity.Coordinate{Lat: -23.5520, Lng: -46.6340})), result.Distance)
	assert.Equal(t, entity.ClosingTimeAskPlace, result.ClosingTime)
}

func TestSearchService_RedoNeverReturnsExcludedName(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	f.geocoder.EXPECT().ReverseLookup(ctx, userPos).Return(entity.AddressComponents{Neighborhood: "Burits"}, nil)
	f.places.EXPECT().
		NearbySearch(ctx, mock.AnythingOfType("service.NearbyQuery")).
		Return([]entity.Candidate{
			candidate("Drogaria Um", "d-1", -23.5506, -46.6334),
			candidate("Drogaria Dois", "d-2", -23.5510, -46.6340),
		}, nil)
	f.places.EXPECT().PlaceDetails(ctx, "d-2").Return(&entity.PlaceDetails{Name: "Drogaria Dois"}, nil)
	f.justifier.EXPECT().Justify(ctx, mock.Anything).Return("", errors.New("quota exceeded"))

	excluded := []string{"  farmácia popular burits ", "DROGARIA UM"}
	result, err := f.service.Resolve(ctx, &entity.SearchRequest{
		Query:         "farmácia",
		Coordinates:   coords(userPos),
		ExcludedNames: excluded,
	})
	require.NoError(t, err)

	assert.Equal(t, "Drogaria Dois", result.Name)
	assert.Equal(t, entity.FallbackJustification, result.Reason)
	assert.Equal(t, []string{"  farmácia popular burits ", "DROGARIA UM"}, excluded)

	events := f.published(t)
	require.Len(t, events, 1)
	assert.True(t, events[0].Redo)
}

func TestSearchService_NoCandidatesLeft(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	f.geocoder.EXPECT().ReverseLookup(ctx, userPos).Return(entity.AddressComponents{}, nil)
	f.places.EXPECT().
		NearbySearch(ctx, mock.AnythingOfType("service.NearbyQuery")).
		Return([]entity.Candidate{candidate("Padaria Sol", "p-1", -23.55, -46.63)}, nil)

	result, err := f.service.Resolve(ctx, &entity.SearchRequest{
		Query:         "padaria",
		Coordinates:   coords(userPos),
		ExcludedNames: []string{"Padaria Sol"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.NewNoCandidatesResult(entity.UnknownNeighborhood), result)
	events := f.published(t)
	require.Len(t, events, 1)
	assert.Equal(t, service.OutcomeNoCandidates, events[0].Outcome)
}

func TestSearchService_ManualAddressNotFound(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	f.geocoder.EXPECT().
		ResolvePosition(ctx, "Rua que não existe, 999").
		Return(nil, errors.Wrap(service.ErrGeocodeNotFound, "zero results"))

	result, err := f.service.Resolve(ctx, &entity.SearchRequest{
		Query:         "farmácia",
		Coordinates:   coords(userPos),
		ManualAddress: "Rua que não existe, 999",
	})
	require.NoError(t, err)

	assert.Equal(t, "Localização não encontrada", result.Name)
	assert.Equal(t, entity.StatusError, result.Status)
	assert.Equal(t, entity.UnknownNeighborhood, result.ResolvedNeighborhood)
	f.places.AssertNotCalled(t, "NearbySearch", mock.Anything, mock.Anything)
	f.geocoder.AssertNotCalled(t, "ReverseLookup", mock.Anything, mock.Anything)
}

func TestSearchService_ManualAddressWinsOverCoordinates(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()
	geocoded := entity.Coordinate{Lat: -25.4284, Lng: -49.2733}

	f.geocoder.EXPECT().
		ResolvePosition(ctx, "Praça Tiradentes, Curitiba").
		Return(&service.GeocodedAddress{Location: geocoded, FormattedAddress: "Praça Tiradentes - Centro, Curitiba - PR"}, nil)
	f.geocoder.EXPECT().ReverseLookup(ctx, geocoded).Return(entity.AddressComponents{Neighborhood: "Centro"}, nil)
	f.places.EXPECT().
		NearbySearch(ctx, service.NearbyQuery{
			Location:       geocoded,
			Keyword:        "borracharia pneu",
			OpenNow:        true,
			RankByDistance: true,
		}).
		Return(nil, nil)

	result, err := f.service.Resolve(ctx, &entity.SearchRequest{
		Query:         "preciso de borracharia",
		Coordinates:   coords(userPos),
		ManualAddress: "Praça Tiradentes, Curitiba",
	})
	require.NoError(t, err)
	assert.Equal(t, "Centro", result.ResolvedNeighborhood)
	assert.Equal(t, entity.StatusClosedOrOut, result.Status)
}

func TestSearchService_PicksNearestAfterFiltering(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	f.geocoder.EXPECT().ReverseLookup(ctx, userPos).Return(entity.AddressComponents{Neighborhood: "Sé"}, nil)
	f.places.EXPECT().
		NearbySearch(ctx, mock.AnythingOfType("service.NearbyQuery")).
		Return([]entity.Candidate{
			candidate("Posto Longe", "far", -23.60, -46.70),
			{Name: "Posto Sem Mapa", ProviderID: "none"},
			candidate("Posto Perto", "near", -23.5507, -46.6335),
		}, nil)
	f.places.EXPECT().
		PlaceDetails(ctx, "near").
		Return(&entity.PlaceDetails{
			Name:         "Posto Perto",
			OpeningHours: &entity.OpeningHours{OpenNow: boolPtr(false)},
		}, nil)
	f.justifier.EXPECT().Justify(ctx, mock.Anything).Return("Mais próximo.", nil)

	result, err := f.service.Resolve(ctx, &entity.SearchRequest{Query: "posto de gasolina", Coordinates: coords(userPos)})
	require.NoError(t, err)

	assert.Equal(t, "Posto Perto", result.Name)
	assert.Equal(t, entity.StatusClosedOrOut, result.Status)
	assert.Equal(t, entity.ClosingTimeAskPlace, result.ClosingTime)
}

func TestSearchService_ReverseLookupFailureIsNotFatal(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	f.geocoder.EXPECT().ReverseLookup(ctx, userPos).Return(entity.AddressComponents{}, errors.New("reverse lookup timeout"))
	f.places.EXPECT().NearbySearch(ctx, mock.AnythingOfType("service.NearbyQuery")).Return(nil, nil)

	result, err := f.service.Resolve(ctx, &entity.SearchRequest{Query: "farmácia", Coordinates: coords(userPos)})
	require.NoError(t, err)
	assert.Equal(t, entity.UnknownNeighborhood, result.ResolvedNeighborhood)
}

func TestSearchService_ProviderFailures(t *testing.T) {
	providerDown := errors.New("upstream 500")

	tests := []struct {
		name  string
		setup func(f *searchFixture, ctx context.Context)
		req   *entity.SearchRequest
	}{
		{
			name: "forward geocode",
			setup: func(f *searchFixture, ctx context.Context) {
				f.geocoder.EXPECT().ResolvePosition(ctx, "Av. Paulista").Return(nil, providerDown)
			},
			req: &entity.SearchRequest{Query: "farmácia", ManualAddress: "Av. Paulista"},
		},
		{
			name: "nearby search",
			setup: func(f *searchFixture, ctx context.Context) {
				f.geocoder.EXPECT().ReverseLookup(ctx, userPos).Return(entity.AddressComponents{}, nil)
				f.places.EXPECT().NearbySearch(ctx, mock.Anything).Return(nil, providerDown)
			},
			req: &entity.SearchRequest{Query: "hospital", Coordinates: coords(userPos)},
		},
		{
			name: "place details",
			setup: func(f *searchFixture, ctx context.Context) {
				f.geocoder.EXPECT().ReverseLookup(ctx, userPos).Return(entity.AddressComponents{}, nil)
				f.places.EXPECT().NearbySearch(ctx, mock.Anything).Return([]entity.Candidate{candidate("Hospital X", "h-1", -23.55, -46.63)}, nil)
				f.places.EXPECT().PlaceDetails(ctx, "h-1").Return(nil, providerDown)
			},
			req: &entity.SearchRequest{Query: "hospital", Coordinates: coords(userPos)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSearchFixture(t)
			ctx := context.Background()
			tt.setup(f, ctx)

			result, err := f.service.Resolve(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
			assert.ErrorIs(t, err, providerDown)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 502, appErr.HTTPCode())
			assert.Empty(t, f.published(t))
		})
	}
}

func TestSearchService_CanceledRequest(t *testing.T) {
	f := newSearchFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.geocoder.EXPECT().ReverseLookup(ctx, userPos).Return(entity.AddressComponents{}, context.Canceled)

	_, err := f.service.Resolve(ctx, &entity.SearchRequest{Query: "farmácia", Coordinates: coords(userPos)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestCanceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchService_InvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		req  *entity.SearchRequest
		want error
	}{
		{name: "nil request", req: nil, want: domainerrors.ErrInvalidPosition},
		{name: "no position", req: &entity.SearchRequest{Query: "farmácia"}, want: domainerrors.ErrInvalidPosition},
		{
			name: "out of range",
			req:  &entity.SearchRequest{Query: "farmácia", Coordinates: &entity.Coordinate{Lat: 91, Lng: 0}},
			want: domainerrors.ErrInvalidPosition,
		},
		{name: "blank query", req: &entity.SearchRequest{Query: "  ", Coordinates: coords(userPos)}, want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSearchFixture(t)

			_, err := f.service.Resolve(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSearchService_PublishFailureKeepsResult(t *testing.T) {
	geocoder := mockSvc.NewMockGeocoder(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	ctx := context.Background()

	svc, err := NewSearchService(SearchServiceParams{
		Geocoder:  geocoder,
		Catalog:   testCatalog(),
		Publisher: publisher,
	})
	require.NoError(t, err)

	geocoder.EXPECT().ReverseLookup(ctx, userPos).Return(entity.AddressComponents{Neighborhood: "Burits"}, nil)
	publisher.EXPECT().PublishSearchEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	result, err := svc.Resolve(ctx, &entity.SearchRequest{Query: "farmacia", Coordinates: coords(userPos)})
	require.NoError(t, err)
	assert.Equal(t, "Farmácia Popular Burits", result.Name)

	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, svc.(usecase.EventWaiter).WaitForEvents(waitCtx))
}

func TestSearchService_SlowPublisherDoesNotDelayResponse(t *testing.T) {
	geocoder := mockSvc.NewMockGeocoder(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc, err := NewSearchService(SearchServiceParams{
		Geocoder:  geocoder,
		Catalog:   testCatalog(),
		Publisher: publisher,
	})
	require.NoError(t, err)

	release := make(chan struct{})
	var (
		publishErr  error
		hasDeadline bool
	)

	geocoder.EXPECT().ReverseLookup(mock.Anything, userPos).Return(entity.AddressComponents{Neighborhood: "Burits"}, nil)
	publisher.EXPECT().
		PublishSearchEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.SearchEvent) error {
			<-release
			publishErr = ctx.Err()
			_, hasDeadline = ctx.Deadline()

			return nil
		})

	reqCtx, cancelReq := context.WithCancel(context.Background())

	done := make(chan *entity.ResolutionResult, 1)
	go func() {
		result, err := svc.Resolve(reqCtx, &entity.SearchRequest{Query: "farmácia", Coordinates: coords(userPos)})
		assert.NoError(t, err)
		done <- result
	}()

	select {
	case result := <-done:
		require.NotNil(t, result)
		assert.Equal(t, "Farmácia Popular Burits", result.Name)
	case <-time.After(time.Second):
		t.Fatal("Resolve waited for the event publisher")
	}

	// The request ending must not cancel the dispatch still in flight.
	cancelReq()

	waiter := svc.(usecase.EventWaiter)
	shortCtx, cancelShort := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancelShort()
	assert.Error(t, waiter.WaitForEvents(shortCtx))

	close(release)

	waitCtx, cancelWait := context.WithTimeout(context.Background(), time.Second)
	defer cancelWait()
	require.NoError(t, waiter.WaitForEvents(waitCtx))

	assert.NoError(t, publishErr)
	assert.True(t, hasDeadline)
}

func TestSearchService_ObservesOutcome(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	observer := mockSvc.NewMockSearchObserver(t)
	observer.EXPECT().ObserveResolution(service.OutcomeGeocodeFailed, time.Duration(0)).Return().Once()
	f.service.observer = observer

	f.geocoder.EXPECT().ResolvePosition(ctx, "nowhere").Return(nil, service.ErrGeocodeNotFound)

	_, err := f.service.Resolve(ctx, &entity.SearchRequest{Query: "mercado", ManualAddress: "nowhere"})
	require.NoError(t, err)
}

func TestSearchService_StepRejectsTerminalState(t *testing.T) {
	f := newSearchFixture(t)

	_, _, err := f.service.step(context.Background(), stateDone, newResolution(&entity.SearchRequest{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	assert.Contains(t, err.Error(), "no transition out of done")
}

func TestResolutionState_String(t *testing.T) {
	assert.Equal(t, "resolving_position", stateResolvingPosition.String())
	assert.Equal(t, "priority_check", statePriorityCheck.String())
	assert.Equal(t, "searching", stateSearching.String())
	assert.Equal(t, "enriching", stateEnriching.String())
	assert.Equal(t, "done", stateDone.String())
	assert.Equal(t, "unknown", resolutionState(42).String())
}

func TestNearbyQuery(t *testing.T) {
	tests := []struct {
		query string
		want  service.NearbyQuery
	}{
		{
			query: "Farmácia 24h",
			want:  service.NearbyQuery{Location: userPos, Type: "pharmacy", OpenNow: true, RankByDistance: true},
		},
		{
			query: "pneu furado",
			want:  service.NearbyQuery{Location: userPos, Keyword: "borracharia pneu", OpenNow: true, RankByDistance: true},
		},
		{
			query: " sorveteria ",
			want:  service.NearbyQuery{Location: userPos, Keyword: "sorveteria", OpenNow: true, RankByDistance: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, nearbyQuery(userPos, search.MapCategory(tt.query), tt.query))
		})
	}
}
