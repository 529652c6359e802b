package directory

import (
	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	"github.com/jhoicas/directorio-negocios/internal/domain"
	domdir "github.com/jhoicas/directorio-negocios/internal/domain/directory"
	"github.com/jhoicas/directorio-negocios/internal/domain/entity"
)

// Mensajes visibles del contenedor listings.
const (
	MessageLoading = "Loading businesses..."
	MessageEmpty   = "No businesses match your search criteria."
	MessageFailed  = "Failed to load businesses. Please try again later."
)

const pageTitle = "Business Directory"

// ListingsUseCase recalcula el subconjunto visible en cada petición usando
// los tres criterios actuales. No guarda nada entre llamadas.
type ListingsUseCase struct {
	state   *DirectoryState
	matcher *domdir.Matcher
}

// NewListingsUseCase construye el caso de uso.
func NewListingsUseCase(state *DirectoryState, matcher *domdir.Matcher) *ListingsUseCase {
	return &ListingsUseCase{state: state, matcher: matcher}
}

// Criteria convierte los parámetros de la petición en criterios de dominio.
func Criteria(in dto.CriteriaDTO) domdir.FilterCriteria {
	return domdir.FilterCriteria{Text: in.Search, Sector: in.Sector, StatusCategory: in.Status}
}

// Build construye la vista del contenedor listings. Si la carga falló el
// resultado es el mensaje terminal de error, sin importar los criterios.
func (uc *ListingsUseCase) Build(c domdir.FilterCriteria) *dto.ListingsView {
	ds, err := uc.state.Snapshot()
	if err != nil {
		return &dto.ListingsView{State: string(domdir.StateFailed), Message: MessageFailed}
	}
	return toListingsView(domdir.BuildListings(ds, uc.matcher, c))
}

// Page arma la página completa: controles con los criterios actuales y listados.
func (uc *ListingsUseCase) Page(in dto.CriteriaDTO) *dto.PageView {
	return &dto.PageView{
		Title:         pageTitle,
		Criteria:      in,
		Sectors:       uc.Sectors(),
		StatusOptions: uc.statusLabels(),
		Listings:      uc.Build(Criteria(in)),
		FailedMessage: MessageFailed,
	}
}

// Filter devuelve los negocios que cumplen los criterios para la API JSON.
// Errores: *domain.LoadError si la carga falló, domain.ErrDatasetNotReady si
// todavía no hay datos.
func (uc *ListingsUseCase) Filter(in dto.CriteriaDTO) (*dto.BusinessListResponse, error) {
	ds, err := uc.state.Snapshot()
	if err != nil {
		return nil, err
	}
	listings := domdir.BuildListings(ds, uc.matcher, Criteria(in))
	if listings.State == domdir.StateLoading {
		return nil, domain.ErrDatasetNotReady
	}
	items := make([]dto.BusinessResponse, 0, len(listings.Businesses))
	for _, b := range listings.Businesses {
		items = append(items, toBusinessResponse(b))
	}
	return &dto.BusinessListResponse{
		State:    string(listings.State),
		Items:    items,
		Count:    len(items),
		Total:    listings.Total,
		Criteria: in,
	}, nil
}

// Sectors sectores distintos del dataset (vacío mientras carga).
func (uc *ListingsUseCase) Sectors() []string {
	ds, _ := uc.state.Snapshot()
	sectors := ds.Sectors()
	if sectors == nil {
		return []string{}
	}
	return sectors
}

// StatusCategories opciones del selector statusFilter.
func (uc *ListingsUseCase) StatusCategories() []dto.StatusCategoryDTO {
	items := uc.matcher.Categories().Items()
	out := make([]dto.StatusCategoryDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.StatusCategoryDTO{Label: it.Label, Status: string(it.Status)})
	}
	return out
}

func (uc *ListingsUseCase) statusLabels() []string {
	items := uc.matcher.Categories().Items()
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func toListingsView(l domdir.Listings) *dto.ListingsView {
	view := &dto.ListingsView{State: string(l.State), Total: l.Total}
	switch l.State {
	case domdir.StateLoading:
		view.Message = MessageLoading
	case domdir.StateEmpty:
		view.Message = MessageEmpty
	default:
		view.Cards = make([]dto.CardView, 0, len(l.Businesses))
		for _, b := range l.Businesses {
			view.Cards = append(view.Cards, toCardView(b))
		}
		view.Count = len(view.Cards)
	}
	return view
}

func toBusinessResponse(b entity.Business) dto.BusinessResponse {
	return dto.BusinessResponse{
		Name:   b.Name,
		Sector: b.Sector,
		Status: string(b.Status),
		Desc:   b.Desc,
		Image:  b.Image,
		Social: b.Social,
		Email:  b.Email,
		Mobile: b.Mobile,
	}
}
