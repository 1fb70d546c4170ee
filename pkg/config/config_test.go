package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN_CodificaCaracteresEspeciales(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:word/1",
		DBName:   "almacen",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "/almacen")
	assert.Contains(t, dsn, "sslmode=disable")
	// la contraseña va URL-encoded, nunca cruda
	assert.NotContains(t, dsn, "p@ss:word/1")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgresql://u:p@db.example.com:5432/prod?sslmode=require",
		Host:        "localhost",
	}
	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())
}

func TestAddr(t *testing.T) {
	cfg := HTTPConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}
