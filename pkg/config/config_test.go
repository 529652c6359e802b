package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, FeedKindFile, cfg.Feed.Kind)
	assert.Equal(t, "data/businesses.json", cfg.Feed.FilePath)
	assert.Equal(t, time.Duration(0), cfg.Feed.Timeout, "sin timeout por defecto")
	assert.Equal(t, "assets/images", cfg.Assets.ImageBase)
	assert.Equal(t, "Home Furniture", cfg.Status.CompanyLabel)
	assert.Equal(t, "Office Furniture", cfg.Status.IndividualLabel)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 3*time.Second, cfg.HTTP.LoadWait)
}

func TestFromViper_FeedHTTPConTimeout(t *testing.T) {
	v := viper.New()
	v.Set("FEED_KIND", "HTTP")
	v.Set("FEED_URL", "https://example.com/businesses.json")
	v.Set("FEED_TIMEOUT", "15s")
	v.Set("HTTP_PORT", "9090")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, FeedKindHTTP, cfg.Feed.Kind)
	assert.Equal(t, 15*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestFromViper_TimeoutEnSegundos(t *testing.T) {
	v := viper.New()
	v.Set("FEED_TIMEOUT", "30")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Feed.Timeout)
}

func TestFromViper_Errores(t *testing.T) {
	cases := map[string]map[string]string{
		"http sin url":       {"FEED_KIND": "http"},
		"fuente desconocida": {"FEED_KIND": "ftp"},
		"timeout inválido":   {"FEED_TIMEOUT": "pronto"},
		"timeout negativo":   {"FEED_TIMEOUT": "-5s"},
		"etiquetas iguales":  {"STATUS_LABEL_COMPANY": "X", "STATUS_LABEL_INDIVIDUAL": "X"},
		"puerto no numérico": {"HTTP_PORT": "ochenta"},
		"puerto fuera rango": {"HTTP_PORT": "70000"},
		"puerto db inválido": {"DB_PORT": "abc"},
		"espera negativa":    {"HTTP_LOAD_WAIT": "-1s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			for k, val := range env {
				v.Set(k, val)
			}
			_, err := fromViper(v)
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "directorio", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/directorio?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x/y"
	assert.Equal(t, "postgres://x/y", c.ConnectionString())
}
