package datasource

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ExcelSource lê registros de venda de uma planilha XLSX. A primeira linha da
// aba é o cabeçalho, com as mesmas colunas do CSV.
type ExcelSource struct {
	path  string
	sheet string
}

// NewExcelSource cria uma origem de registros baseada em planilha. Quando
// sheet é vazio, a primeira aba da planilha é usada.
func NewExcelSource(path, sheet string) *ExcelSource {
	return &ExcelSource{
		path:  path,
		sheet: sheet,
	}
}

// FetchRecords lê e valida a aba inteira, preservando a ordem das linhas
func (s *ExcelSource) FetchRecords(ctx context.Context) ([]domain.SaleRecord, error) {
	file, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening spreadsheet %s", s.path)
	}
	defer file.Close()

	sheet := s.sheet
	if sheet == "" {
		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Errorf("spreadsheet %s has no sheets", s.path)
		}
		sheet = sheets[0]
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading sheet %q of %s", sheet, s.path)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("sheet %q of %s is empty", sheet, s.path)
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid header in sheet %q of %s", sheet, s.path)
	}

	records := make([]domain.SaleRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// GetRows devolve linhas vazias ao final da área usada da aba
		if len(row) == 0 {
			continue
		}

		record, err := cols.parseRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid record at sheet %q row %d", sheet, i+2)
		}

		records = append(records, record)
	}

	logrus.WithFields(logrus.Fields{
		"path":    s.path,
		"sheet":   sheet,
		"records": len(records),
	}).Info("Registros de venda carregados da planilha")

	return records, nil
}
