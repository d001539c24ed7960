package postgres

import _ "embed"

// Schema DDL del catálogo (tablas del backend de datos). Lo aplica cmd/seed_catalog.
//
//go:embed schema.sql
var Schema string
