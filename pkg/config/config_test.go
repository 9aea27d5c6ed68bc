package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cafestock", cfg.App.Name)
	assert.Equal(t, "cafestock", cfg.DB.DBName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "cafestock", cfg.JWT.Issuer)
}

func TestLoad_EnvVarsPriman(t *testing.T) {
	t.Setenv("DB_HOST", "db.interno")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.interno", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestDSN_EscapaCredenciales(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:word/",
		DBName:   "cafestock",
		SSLMode:  "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aword%2F", "la contraseña va URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_DatabaseURLTienePrioridad(t *testing.T) {
	db := DBConfig{
		DatabaseURL: "postgresql://u:p@remoto:5432/otra?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, db.DatabaseURL, db.ConnectionString())
}
