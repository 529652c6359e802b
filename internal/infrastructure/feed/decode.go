// Package feed implementa las fuentes JSON del directorio (archivo local y HTTP).
package feed

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	"github.com/jhoicas/directorio-negocios/internal/domain"
)

var (
	errNotArray     = errors.New("se esperaba un arreglo JSON de negocios")
	errTrailingData = errors.New("contenido extra después del arreglo JSON")
)

// DecodeRecords lee un arreglo JSON de negocios. Un cuerpo que no sea arreglo,
// o que traiga algo más que espacios después del arreglo, es un LoadError; un
// elemento que no sea objeto queda marcado con DecodeErr para que el loader lo
// descarte sin abortar.
func DecodeRecords(r io.Reader) ([]dto.BusinessRecord, error) {
	dec := json.NewDecoder(r)
	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, domain.NewLoadError("decode", err)
	}
	if raw == nil {
		return nil, domain.NewLoadError("decode", errNotArray)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, domain.NewLoadError("decode", errTrailingData)
	}
	records := make([]dto.BusinessRecord, 0, len(raw))
	for _, item := range raw {
		var rec dto.BusinessRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			rec = dto.BusinessRecord{DecodeErr: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

// charsetReader envuelve r según el charset del Content-Type. Algunos hostings
// estáticos sirven el JSON en Latin-1; todo lo demás se asume UTF-8.
func charsetReader(r io.Reader, contentType string) io.Reader {
	if contentType == "" {
		return r
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return r
	}
	return CharsetReader(r, params["charset"])
}

// CharsetReader convierte a UTF-8 desde ISO-8859-1 o Windows-1252.
// Cualquier otro charset (o vacío) devuelve r sin cambios.
func CharsetReader(r io.Reader, charset string) io.Reader {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return r
	}
}
