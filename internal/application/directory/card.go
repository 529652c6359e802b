package directory

import (
	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	domdir "github.com/jhoicas/directorio-negocios/internal/domain/directory"
	"github.com/jhoicas/directorio-negocios/internal/domain/entity"
)

// Insignias de estado.
var (
	badgeCompany    = dto.BadgeView{Label: "Company", Variant: "company"}
	badgeIndividual = dto.BadgeView{Label: "Individual", Variant: "individual"}
)

// toCardView deriva el contenido de la tarjeta. Cada opcional ausente deja su
// campo vacío y la vista omite el bloque; nunca es un error.
func toCardView(b entity.Business) dto.CardView {
	card := dto.CardView{
		Name:   b.Name,
		Sector: b.Sector,
		Desc:   deref(b.Desc),
		Image:  deref(b.Image),
		Badge:  badgeCompany,
		Social: deref(b.Social),
		Email:  deref(b.Email),
	}
	if b.Status == entity.StatusIndividual {
		card.Badge = badgeIndividual
	}
	if b.Mobile != nil {
		card.Mobile = *b.Mobile
		card.PhoneDigits = domdir.DialDigits(*b.Mobile)
	}
	return card
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
