// Package sqlstore implementa el repositorio de facturas con GORM sobre SQLite.
// Se usa en desarrollo local (DB_DRIVER=sqlite) y en tests.
package sqlstore

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/invoice-pdf-api/internal/domain"
	"github.com/jhoicas/invoice-pdf-api/internal/domain/entity"
	"github.com/jhoicas/invoice-pdf-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

//go:embed schema.sql
var schemaSQL string

// Open abre (o crea) la base SQLite en path, activa claves foráneas y crea las tablas.
// Las consultas lentas y los errores de GORM se escriben en log.
func Open(path string, log zerolog.Logger) (*gorm.DB, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}
	gl := gormlogger.New(gormWriter{log: log}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gl})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	if err := db.Exec(schemaSQL).Error; err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	return db, nil
}

// InvoiceRepo implementación de InvoiceRepository sobre GORM.
type InvoiceRepo struct {
	db *gorm.DB
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// Create inserta la factura y sus líneas (asociación) en una transacción.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	m := toModel(invoice)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	if err != nil {
		return fmt.Errorf("%w: insert invoice: %v", domain.ErrStorage, err)
	}
	saved := toEntity(m)
	invoice.ID = saved.ID
	invoice.Items = saved.Items
	return nil
}

// GetByID obtiene la factura con sus líneas ordenadas por id. (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	var m invoiceModel
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get invoice: %v", domain.ErrStorage, err)
	}
	return toEntity(&m), nil
}

// gormWriter redirige el logger de GORM a zerolog (solo avisos y errores).
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warn().Str("component", "gorm").Msgf(format, args...)
}
