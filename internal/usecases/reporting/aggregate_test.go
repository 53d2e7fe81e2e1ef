package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

func TestAggregateKPIs_GroupsByProduct(t *testing.T) {
	kpis := AggregateKPIs(sampleRecords())

	require.Len(t, kpis, 2)
	assert.Equal(t, domain.ProductKPI{Product: "A", TotalQuantity: 3, TotalRevenue: 30.0}, kpis[0])
	assert.Equal(t, domain.ProductKPI{Product: "B", TotalQuantity: 5, TotalRevenue: 20.0}, kpis[1])
}

func TestAggregateKPIs_RevenueConservation(t *testing.T) {
	records := []domain.SaleRecord{
		saleOn("2024-01-01", "A", 3, 7.5, ""),
		saleOn("2024-01-02", "B", 1, 12.0, "M"),
		saleOn("2024-02-10", "A", 2, 7.5, "F"),
		saleOn("2024-03-04", "C", 10, 0.99, "F"),
	}

	recordsTotal := 0.0
	for _, r := range records {
		recordsTotal += r.Revenue
	}

	kpisTotal := 0.0
	for _, kpi := range AggregateKPIs(records) {
		kpisTotal += kpi.TotalRevenue
	}

	assert.InDelta(t, recordsTotal, kpisTotal, 1e-9)
}

func TestAggregateKPIs_DeterministicOrder(t *testing.T) {
	records := []domain.SaleRecord{
		saleOn("2024-01-01", "C", 1, 1.0, ""),
		saleOn("2024-01-02", "A", 1, 1.0, ""),
		saleOn("2024-01-03", "B", 1, 1.0, ""),
	}

	first := AggregateKPIs(records)
	second := AggregateKPIs(records)

	assert.Equal(t, first, second)
	assert.Equal(t, "A", first[0].Product)
	assert.Equal(t, "B", first[1].Product)
	assert.Equal(t, "C", first[2].Product)
}

func TestAggregateKPIs_AbsentProductsAreOmitted(t *testing.T) {
	// Produtos sem registros após o filtro ficam ausentes, não zerados
	filtered := ApplyFilters(sampleRecords(), domain.FilterSpec{Products: []string{"B"}})
	kpis := AggregateKPIs(filtered)

	require.Len(t, kpis, 1)
	assert.Equal(t, "B", kpis[0].Product)
}

func TestSummarize(t *testing.T) {
	summary := Summarize(AggregateKPIs(sampleRecords()))

	assert.Equal(t, domain.ReportSummary{
		TotalRevenue:  50.0,
		TotalQuantity: 8,
		ProductCount:  2,
	}, summary)
}
