package main

import (
	"database/sql"
	"flag"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/kardex-api/pkg/config"
)

// Aplica las migraciones SQL de ./migrations con goose.
//
//	go run ./cmd/migrate            # up
//	go run ./cmd/migrate down       # revierte la última
//	go run ./cmd/migrate status
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("sin archivo .env, usando variables de entorno: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./migrations", "directorio con las migraciones")
	flag.Parse()

	db, err := sql.Open("postgres", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("abrir conexión: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("cerrar conexión: %v", err)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose dialect: %v", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}
	log.Printf("goose %s ok", command)
}
