package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const saleRecordsTable = "sale_records sr"

// SaleRecordRepository carrega o dataset de vendas do banco. Implementa
// datasource.RecordSource: o banco é apenas uma origem de ingestão, o
// pipeline trabalha sempre sobre o snapshot em memória.
type SaleRecordRepository interface {
	FetchRecords(ctx context.Context) ([]domain.SaleRecord, error)
}

type saleRecordRepository struct {
	conn postgres.Queryer
}

// NewSaleRecordRepository cria um repositório de registros de venda
func NewSaleRecordRepository(conn *postgres.Connection) SaleRecordRepository {
	return &saleRecordRepository{
		conn: conn,
	}
}

// FetchRecords retorna todos os registros ordenados por data e id, para que
// a ordem original do dataset seja estável entre cargas
func (r *saleRecordRepository) FetchRecords(ctx context.Context) ([]domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select("sr.date, sr.product, sr.quantity, sr.unit_price, sr.segment").
		From(saleRecordsTable).
		OrderBy("sr.date ASC", "sr.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building sale records query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error querying sale records")
	}
	defer rows.Close()

	records := make([]domain.SaleRecord, 0)
	for rows.Next() {
		var (
			date      time.Time
			product   string
			quantity  int
			unitPrice float64
			segment   sql.NullString
		)

		if err := rows.Scan(&date, &product, &quantity, &unitPrice, &segment); err != nil {
			return nil, errors.Wrap(err, "error scanning sale record")
		}
		if quantity < 0 || unitPrice < 0 {
			return nil, errors.Errorf("invalid sale record for product %q: negative quantity or unit price", product)
		}

		records = append(records, domain.NewSaleRecord(date, product, quantity, unitPrice, segment.String))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating sale records")
	}

	return records, nil
}
