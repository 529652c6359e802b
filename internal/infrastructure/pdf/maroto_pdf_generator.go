// Package pdf implementa la exportación del listado filtrado del directorio.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha      │  N° de negocios (x de y)     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FICHA: Nombre + insignia    │  QR del perfil social        │
//	│         Sector / Descripción │                              │
//	│         Email | Teléfono     │                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ... una ficha por negocio, en el orden del directorio      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	"github.com/jhoicas/directorio-negocios/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary    = &props.Color{Red: 0, Green: 102, Blue: 204}
	colorGray       = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCompany    = &props.Color{Red: 33, Green: 150, Blue: 243}
	colorIndividual = &props.Color{Red: 76, Green: 175, Blue: 80}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.DirectoryPDFGenerator = (*MarotoDirectoryPDF)(nil)

// MarotoDirectoryPDF implementa ports.DirectoryPDFGenerator usando Maroto v2.
type MarotoDirectoryPDF struct {
	now func() time.Time
}

// NewMarotoDirectoryPDF construye el generador.
func NewMarotoDirectoryPDF() *MarotoDirectoryPDF {
	return &MarotoDirectoryPDF{now: time.Now}
}

// GenerateDirectoryPDF genera el PDF con las tarjetas de la vista y devuelve sus bytes.
// Una vista sin tarjetas produce un documento con el mensaje de la vista.
func (g *MarotoDirectoryPDF) GenerateDirectoryPDF(ctx context.Context, title string, view *dto.ListingsView) ([]byte, error) {
	if view == nil {
		return nil, fmt.Errorf("pdf: vista nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, g.now(), view))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(view.Cards) == 0 {
		m.AddRows(messageRow(view.Message))
	}
	for _, c := range view.Cards {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.AddRows(cardRows(c)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + fecha (izq) y conteo de resultados (der).
func headerRow(title string, at time.Time, view *dto.ListingsView) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Generated: "+at.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d of %d businesses", view.Count, view.Total), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 4,
			}),
		),
	)
}

func messageRow(msg string) core.Row {
	return row.New(20).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 11, Align: align.Center, Color: colorGray, Top: 8}),
	))
}

// cardRows: una ficha por negocio. Los bloques opcionales se omiten igual que en la vista HTML.
func cardRows(c dto.CardView) []core.Row {
	badgeColor := colorCompany
	if c.Badge.Variant == "individual" {
		badgeColor = colorIndividual
	}

	info := []core.Component{
		text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 1}),
		text.New(strings.ToUpper(c.Badge.Label), props.Text{
			Style: fontstyle.Bold, Size: 7, Color: badgeColor, Top: 7,
		}),
		text.New("Sector: "+c.Sector, props.Text{Size: 8, Color: colorGray, Top: 11}),
	}

	// Cabecera, descripción y contactos van en filas separadas: el alto de la
	// descripción depende de su largo y no puede pisar la línea de contacto.
	var rows []core.Row
	if c.Social == "" {
		rows = append(rows, row.New(headerHeight).Add(col.New(12).Add(info...)))
	} else {
		rows = append(rows, row.New(headerQRHeight).Add(
			col.New(9).Add(info...),
			col.New(3).Add(code.NewQr(c.Social, props.Rect{Percent: 90, Center: true})),
		))
	}
	if c.Desc != "" {
		rows = append(rows, row.New(descHeight(c.Desc)).Add(
			col.New(12).Add(text.New(c.Desc, props.Text{Size: 8, Top: 1})),
		))
	}
	if contacts := contactLine(c); contacts != "" {
		rows = append(rows, row.New(contactHeight).Add(
			col.New(12).Add(text.New(contacts, props.Text{Size: 8, Color: colorPrimary, Top: 1})),
		))
	}
	return rows
}

const (
	headerHeight   = 16.0
	headerQRHeight = 30.0
	contactHeight  = 7.0

	descCharsPerLine = 90  // tamaño 8 a lo ancho de la página A4
	descLineHeight   = 3.8 // mm por línea a tamaño 8
	descPadding      = 3.0
)

// descHeight estima el alto de la fila de descripción según las líneas que
// ocupará el texto, contando los saltos de línea explícitos.
func descHeight(desc string) float64 {
	lines := 0
	for _, para := range strings.Split(desc, "\n") {
		n := utf8.RuneCountInString(para)
		lines += max(1, (n+descCharsPerLine-1)/descCharsPerLine)
	}
	return float64(lines)*descLineHeight + descPadding
}

func contactLine(c dto.CardView) string {
	var parts []string
	if c.Email != "" {
		parts = append(parts, "Email: "+c.Email)
	}
	if c.Mobile != "" {
		parts = append(parts, "Tel: "+c.Mobile)
	}
	return strings.Join(parts, "   |   ")
}
