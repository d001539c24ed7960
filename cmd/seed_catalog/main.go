// seed_catalog genera el esquema PostgreSQL del backend y los INSERT del catálogo a partir de
// un archivo YAML con el formato de internal/infrastructure/memory/seed/catalog.yaml.
//
// Uso: go run ./cmd/seed_catalog [-in catalog.yaml] [-encoding utf-8|cp1251] [-out seed.sql] [-apply]
// Sin -in usa el catálogo de demostración embebido. Con -apply carga el resultado en la base
// configurada (DATABASE_URL / DB_*) dentro de una transacción.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/skladpro/internal/infrastructure/memory"
	"github.com/jhoicas/skladpro/internal/infrastructure/postgres"
	"github.com/jhoicas/skladpro/pkg/config"
)

func main() {
	in := flag.String("in", "", "catálogo YAML (vacío = catálogo embebido)")
	encoding := flag.String("encoding", "utf-8", "codificación del YAML: utf-8 | cp1251")
	out := flag.String("out", "", "archivo SQL de salida (vacío = stdout)")
	apply := flag.Bool("apply", false, "cargar el esquema y el catálogo en PostgreSQL")
	flag.Parse()

	seed, err := readSeed(*in, *encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	var sql bytes.Buffer
	if err := postgres.WriteSeed(&sql, seed); err != nil {
		fmt.Fprintf(os.Stderr, "Generar SQL: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutput(*out, sql.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	if !*apply {
		return
	}
	if err := applySeed(sql.String()); err != nil {
		if errors.Is(err, postgres.ErrAlreadySeeded) {
			fmt.Fprintln(os.Stderr, "La base ya tiene el catálogo cargado")
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Aplicar en PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Catálogo cargado: %d productos, %d pedidos, %d recepciones, %d envíos\n",
		len(seed.Products), len(seed.Orders), len(seed.Receipts), len(seed.Shipments))
}

func readSeed(path, encoding string) (*memory.Seed, error) {
	var r io.Reader
	if path == "" {
		r = bytes.NewReader(memory.DefaultSeedYAML())
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
	case "cp1251", "windows-1251":
		r = transform.NewReader(r, charmap.Windows1251.NewDecoder())
	default:
		return nil, fmt.Errorf("codificación no soportada: %q", encoding)
	}
	return memory.DecodeSeed(r)
}

func writeOutput(path string, sql []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(sql)
		return err
	}
	header := "-- Esquema\n" + postgres.Schema + "\n"
	return os.WriteFile(path, append([]byte(header), sql...), 0o644)
}

func applySeed(sql string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	return postgres.NewTxRunner(pool).ApplySeed(ctx, sql)
}
