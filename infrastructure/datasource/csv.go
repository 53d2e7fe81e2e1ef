package datasource

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// CSVSource lê registros de venda de um arquivo CSV com cabeçalho
// date,product,quantity,unit_price,segment e datas no formato YYYY-MM-DD
type CSVSource struct {
	path string
}

// NewCSVSource cria uma origem de registros baseada em arquivo CSV
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// FetchRecords lê e valida o arquivo inteiro, preservando a ordem das linhas
func (s *CSVSource) FetchRecords(ctx context.Context) ([]domain.SaleRecord, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening dataset file %s", s.path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "error reading header of %s", s.path)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid header in %s", s.path)
	}

	records := make([]domain.SaleRecord, 0)
	line := 1

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "error reading %s", s.path)
		}
		line++

		record, err := cols.parseRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid record at %s line %d", s.path, line)
		}

		records = append(records, record)
	}

	logrus.WithFields(logrus.Fields{
		"path":    s.path,
		"records": len(records),
	}).Info("Registros de venda carregados do arquivo CSV")

	return records, nil
}
