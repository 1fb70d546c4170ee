// seed aplica las migraciones SQL y carga datos de demostración
// (categorías y productos con distintos niveles de stock).
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables de entorno que la API (DATABASE_URL
// o DB_HOST, DB_PORT, etc.).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
)

const migrationsDir = "internal/infrastructure/postgres/migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Migraciones en orden lexicográfico (001_, 002_, ...)
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "listar migraciones: %v\n", err)
		os.Exit(1)
	}
	sort.Strings(files)
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "leer %s: %v\n", f, err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			fmt.Fprintf(os.Stderr, "aplicar %s: %v\n", f, err)
			os.Exit(1)
		}
		fmt.Printf("aplicada %s\n", filepath.Base(f))
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	categories := map[string]*entity.Category{
		"Electrónica":  {Name: "Electrónica", Description: "Equipos y repuestos electrónicos"},
		"Herramientas": {Name: "Herramientas", Description: "Herramienta manual y eléctrica"},
		"Papelería":    {Name: "Papelería", Description: ""},
	}
	now := time.Now()
	for _, c := range categories {
		c.ID = uuid.New().String()
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := categoryRepo.Create(c); err != nil {
			// Reejecutar el seed sobre una base poblada no es un error
			fmt.Printf("categoría %q omitida: %v\n", c.Name, err)
			continue
		}
		fmt.Printf("categoría %q creada\n", c.Name)
	}

	products := []*entity.Product{
		{Name: "Multímetro digital", Brand: "Fluke", Model: "115", Stock: 25, Location: "Estante A-1", CategoryID: categories["Electrónica"].ID},
		{Name: "Soldador de estaño", Brand: "Weller", Model: "WLC100", Stock: 10, Location: "Estante A-2", CategoryID: categories["Electrónica"].ID},
		{Name: "Taladro percutor", Brand: "Bosch", Model: "GSB 13 RE", Stock: 5, Location: "Bodega B", Remarks: "Revisar mandril", CategoryID: categories["Herramientas"].ID},
		{Name: "Resma carta", Brand: "Reprograf", Model: "75g", Stock: 0, Location: "Estante C-3", CategoryID: categories["Papelería"].ID},
	}
	for _, p := range products {
		p.ID = uuid.New().String()
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := productRepo.Create(p); err != nil {
			fmt.Printf("producto %q omitido: %v\n", p.Name, err)
			continue
		}
		fmt.Printf("producto %q creado (stock %d)\n", p.Name, p.Stock)
	}
}
