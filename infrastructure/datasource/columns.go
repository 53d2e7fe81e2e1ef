package datasource

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// Colunas esperadas no cabeçalho de arquivos CSV e planilhas
const (
	columnDate      = "date"
	columnProduct   = "product"
	columnQuantity  = "quantity"
	columnUnitPrice = "unit_price"
	columnSegment   = "segment"
)

// columnIndexes mapeia o cabeçalho do arquivo para a posição de cada coluna.
// A coluna de segmento é opcional; as demais são obrigatórias.
type columnIndexes struct {
	date      int
	product   int
	quantity  int
	unitPrice int
	segment   int
}

func mapColumns(header []string) (*columnIndexes, error) {
	cols := &columnIndexes{date: -1, product: -1, quantity: -1, unitPrice: -1, segment: -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case columnDate:
			cols.date = i
		case columnProduct:
			cols.product = i
		case columnQuantity:
			cols.quantity = i
		case columnUnitPrice:
			cols.unitPrice = i
		case columnSegment:
			cols.segment = i
		}
	}

	for name, index := range map[string]int{
		columnDate:      cols.date,
		columnProduct:   cols.product,
		columnQuantity:  cols.quantity,
		columnUnitPrice: cols.unitPrice,
	} {
		if index < 0 {
			return nil, errors.Errorf("missing required column %q in header", name)
		}
	}

	return cols, nil
}

// parseRow converte uma linha do arquivo em SaleRecord, validando que
// quantidade e preço unitário são não-negativos
func (c *columnIndexes) parseRow(row []string) (domain.SaleRecord, error) {
	var zero domain.SaleRecord

	if len(row) <= c.date || len(row) <= c.product || len(row) <= c.quantity || len(row) <= c.unitPrice {
		return zero, errors.New("row has fewer columns than the header")
	}

	date, err := time.Parse(time.DateOnly, strings.TrimSpace(row[c.date]))
	if err != nil {
		return zero, errors.Wrapf(err, "invalid date %q", row[c.date])
	}

	product := strings.TrimSpace(row[c.product])
	if product == "" {
		return zero, errors.New("product is empty")
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(row[c.quantity]))
	if err != nil {
		return zero, errors.Wrapf(err, "invalid quantity %q", row[c.quantity])
	}
	if quantity < 0 {
		return zero, errors.Errorf("negative quantity %d", quantity)
	}

	unitPrice, err := strconv.ParseFloat(strings.TrimSpace(row[c.unitPrice]), 64)
	if err != nil {
		return zero, errors.Wrapf(err, "invalid unit_price %q", row[c.unitPrice])
	}
	if unitPrice < 0 {
		return zero, errors.Errorf("negative unit_price %f", unitPrice)
	}

	segment := ""
	if c.segment >= 0 && len(row) > c.segment {
		segment = strings.TrimSpace(row[c.segment])
	}

	return domain.NewSaleRecord(date, product, quantity, unitPrice, segment), nil
}
