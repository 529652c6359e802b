package directory

import (
	"path"
	"strings"
)

// DefaultImageBase directorio de assets donde viven las imágenes del directorio.
const DefaultImageBase = "assets/images"

// NormalizeImagePath toma el último segmento de la ruta original y lo compone
// con base. La estructura de directorios original se descarta.
// ok=false cuando no hay nombre de archivo utilizable; el negocio queda sin imagen.
func NormalizeImagePath(base, original string) (string, bool) {
	original = strings.TrimSpace(original)
	if original == "" {
		return "", false
	}
	name := original[strings.LastIndex(original, "/")+1:]
	if name == "" || name == "." || name == ".." {
		return "", false
	}
	if base == "" {
		return name, true
	}
	return path.Join(base, name), true
}
