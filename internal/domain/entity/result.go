package entity

// Result statuses shown to the user.
const (
	StatusOpenNow         = "Aberto agora"
	StatusClosedOrOut     = "Fechado ou Esgotado"
	StatusError           = "Erro"
	ClosingTimeAllDay     = "24h"
	ClosingTimeAskPlace   = "Consulte"
	ClosingTimeNone       = "-"
	DistanceUnavailable   = "—"
	NotInformed           = "Não informado"
	FallbackJustification = "Este é o local aberto mais próximo identificado."
)

const (
	noCandidatesName     = "Nenhum local adequado encontrado"
	noCandidatesReason   = "Não encontramos nenhum local aberto que atenda ao seu pedido perto de você."
	geocodeFailedName    = "Localização não encontrada"
	geocodeFailedAddress = "Verifique o endereço digitado e tente novamente."
	internalErrorName    = "Erro interno"
	internalErrorReason  = "Não foi possível concluir a busca agora. Tente novamente em instantes."
)

// ResolutionResult is the single recommendation returned for a search.
// Build it through the constructors below; it is not modified afterwards.
type ResolutionResult struct {
	Name                 string `json:"nome"`
	Address              string `json:"endereco"`
	Status               string `json:"status"`
	ClosingTime          string `json:"horario"`
	Distance             string `json:"distancia"`
	Phone                string `json:"telefone"`
	Reason               string `json:"motivo"`
	ResolvedNeighborhood string `json:"bairro_usuario"`
}

// PlaceResult describes an enriched provider match.
type PlaceResult struct {
	Name         string
	Address      string
	Status       string
	ClosingTime  string
	Distance     string
	Phone        string
	Reason       string
	Neighborhood string
}

// NewPlaceResult builds the result for a provider match.
func NewPlaceResult(p PlaceResult) *ResolutionResult {
	return &ResolutionResult{
		Name:                 p.Name,
		Address:              orNotInformed(p.Address),
		Status:               p.Status,
		ClosingTime:          p.ClosingTime,
		Distance:             p.Distance,
		Phone:                orNotInformed(p.Phone),
		Reason:               p.Reason,
		ResolvedNeighborhood: p.Neighborhood,
	}
}

// NewPartnerResult maps a registry entry to the response shape.
func NewPartnerResult(entry PartnerEntry, neighborhood string) *ResolutionResult {
	return &ResolutionResult{
		Name:                 entry.Name,
		Address:              entry.Address(),
		Status:               entry.Status,
		ClosingTime:          entry.ClosingTime,
		Distance:             entry.DistanceLabel,
		Phone:                orNotInformed(entry.Phone),
		Reason:               entry.Reason,
		ResolvedNeighborhood: neighborhood,
	}
}

// NewNoCandidatesResult is returned when every candidate was filtered or excluded.
func NewNoCandidatesResult(neighborhood string) *ResolutionResult {
	return &ResolutionResult{
		Name:                 noCandidatesName,
		Address:              NotInformed,
		Status:               StatusClosedOrOut,
		ClosingTime:          ClosingTimeNone,
		Distance:             DistanceUnavailable,
		Phone:                NotInformed,
		Reason:               noCandidatesReason,
		ResolvedNeighborhood: neighborhood,
	}
}

// NewGeocodeFailedResult is returned when a manual address could not be located.
func NewGeocodeFailedResult(address string) *ResolutionResult {
	return &ResolutionResult{
		Name:                 geocodeFailedName,
		Address:              geocodeFailedAddress,
		Status:               StatusError,
		Reason:               "Não conseguimos localizar o endereço \"" + address + "\".",
		ResolvedNeighborhood: UnknownNeighborhood,
	}
}

// NewInternalErrorResult keeps the response shape intact when a provider fails.
func NewInternalErrorResult() *ResolutionResult {
	return &ResolutionResult{
		Name:                 internalErrorName,
		Address:              NotInformed,
		Status:               StatusError,
		Reason:               internalErrorReason,
		ResolvedNeighborhood: UnknownNeighborhood,
	}
}

func orNotInformed(value string) string {
	if value == "" {
		return NotInformed
	}

	return value
}
