package reporting

import (
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// ApplyFilters aplica os três predicados (intervalo de datas, produtos e
// segmentos) sobre os registros. A filtragem é uma interseção pura de
// conjuntos: aplicar os predicados em qualquer ordem produz o mesmo
// resultado, e a ordem original dos registros é preservada.
func ApplyFilters(records []domain.SaleRecord, spec domain.FilterSpec) []domain.SaleRecord {
	products := toSet(spec.Products)
	segments := toSet(spec.Segments)

	filtered := make([]domain.SaleRecord, 0, len(records))
	for _, r := range records {
		if spec.StartDate != nil && r.Date.Before(*spec.StartDate) {
			continue
		}
		if spec.EndDate != nil && r.Date.After(*spec.EndDate) {
			continue
		}
		if spec.Products != nil && !products[r.Product] {
			continue
		}
		if spec.Segments != nil && !segments[r.Segment] {
			continue
		}
		filtered = append(filtered, r)
	}

	return filtered
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
