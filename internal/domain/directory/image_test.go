package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/directorio-negocios/internal/domain/directory"
)

func TestNormalizeImagePath(t *testing.T) {
	cases := []struct {
		name     string
		original string
		want     string
		ok       bool
	}{
		{"ruta anidada", "x/y/acme.jpg", "assets/images/acme.jpg", true},
		{"solo archivo", "acme.jpg", "assets/images/acme.jpg", true},
		{"url absoluta", "https://cdn.example.com/img/logo.png", "assets/images/logo.png", true},
		{"con espacios", "  img/cafe.png ", "assets/images/cafe.png", true},
		{"vacía", "", "", false},
		{"termina en barra", "x/y/", "", false},
		{"punto punto", "x/..", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := directory.NormalizeImagePath(directory.DefaultImageBase, tc.original)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeImagePath_BaseAbsoluta(t *testing.T) {
	got, ok := directory.NormalizeImagePath("/static/img", "a/b/c.webp")
	assert.True(t, ok)
	assert.Equal(t, "/static/img/c.webp", got)
}

func TestDialDigits(t *testing.T) {
	assert.Equal(t, "573001234567", directory.DialDigits("+57 (300) 123-4567"))
	assert.Equal(t, "", directory.DialDigits("sin número"))
	assert.Equal(t, "5551234", directory.DialDigits("555.12.34"))
}
