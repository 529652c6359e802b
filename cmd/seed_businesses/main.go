// seed_businesses genera el script SQL que crea y puebla la tabla businesses
// (fuente FEED_KIND=postgres) a partir del businesses.json del directorio.
//
// Uso: go run ./cmd/seed_businesses [ruta/businesses.json] [charset]
// Por defecto lee data/businesses.json en UTF-8; charset admite iso-8859-1 y windows-1252.
// Escribe: migrations/001_seed_businesses.sql
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	"github.com/jhoicas/directorio-negocios/internal/infrastructure/feed"
	"github.com/jhoicas/directorio-negocios/internal/infrastructure/postgres"
)

func main() {
	jsonPath := filepath.Join("data", "businesses.json")
	if len(os.Args) > 1 {
		jsonPath = os.Args[1]
	}
	charset := ""
	if len(os.Args) > 2 {
		charset = os.Args[2]
	}

	f, err := os.Open(jsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir JSON: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := feed.DecodeRecords(feed.CharsetReader(f, charset))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar JSON: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outDir := filepath.Join(moduleRoot, "migrations")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	outPath := filepath.Join(outDir, "001_seed_businesses.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	written, skipped := writeSeed(out, filepath.Base(jsonPath), records)
	fmt.Printf("Generado %s: %d negocios, %d registros omitidos\n", outPath, written, skipped)
}

// writeSeed escribe el DDL y un INSERT por registro. Se omiten los registros
// sin nombre, sector o estado; el resto de la validación la hace el loader al leer.
func writeSeed(w io.Writer, source string, records []dto.BusinessRecord) (written, skipped int) {
	fmt.Fprintf(w, "-- Directorio de negocios\n-- Generado desde %s\n\n", source)
	io.WriteString(w, postgres.SchemaSQL+"\n\n")
	io.WriteString(w, "TRUNCATE businesses;\n\n")

	for _, rec := range records {
		if rec.DecodeErr != nil || blank(rec.Name) || blank(rec.Sector) || blank(rec.Status) {
			skipped++
			continue
		}
		fmt.Fprintf(w, "INSERT INTO businesses (position, name, sector, status, \"desc\", image, social, email, mobile)\n")
		fmt.Fprintf(w, "VALUES (%d, %s, %s, %s, %s, %s, %s, %s, %s);\n",
			written,
			literal(rec.Name), literal(rec.Sector), literal(rec.Status),
			literal(rec.Desc), literal(rec.Image), literal(rec.Social),
			literal(rec.Email), literal(rec.Mobile),
		)
		written++
	}
	return written, skipped
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// literal devuelve el valor como literal SQL; nil o vacío → NULL.
func literal(s *string) string {
	if blank(s) {
		return "NULL"
	}
	return "'" + escapeSQL(strings.TrimSpace(*s)) + "'"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
