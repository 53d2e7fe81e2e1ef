package datasource

import (
	"context"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// RecordSource abstrai a origem dos registros de venda (arquivo CSV, planilha
// ou banco de dados). A origem entrega os registros já validados e com o
// campo derivado de receita calculado; o Record Store é dono do ciclo de vida
// do snapshot em memória.
type RecordSource interface {
	FetchRecords(ctx context.Context) ([]domain.SaleRecord, error)
}
