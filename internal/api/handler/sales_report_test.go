package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
)

// reporterStub implementa reporting.Reporter registrando os argumentos
// recebidos, para inspeção do parsing da query string
type reporterStub struct {
	report *domain.SalesReport
	kpis   []domain.ProductKPI
	series []domain.PeriodPoint
	top    []domain.ProductKPI
	leader *domain.ConcentrationResult
	err    error

	lastSpec    domain.FilterSpec
	lastConfig  domain.RankingConfig
	lastOptions domain.ReportOptions
}

func (s *reporterStub) BuildReport(opts domain.ReportOptions) (*domain.SalesReport, error) {
	s.lastOptions = opts
	return s.report, s.err
}

func (s *reporterStub) ProductKPIs(spec domain.FilterSpec) ([]domain.ProductKPI, error) {
	s.lastSpec = spec
	return s.kpis, s.err
}

func (s *reporterStub) RevenueSeries(spec domain.FilterSpec, granularity domain.Granularity) ([]domain.PeriodPoint, error) {
	s.lastSpec = spec
	return s.series, s.err
}

func (s *reporterStub) TopProducts(spec domain.FilterSpec, config domain.RankingConfig) ([]domain.ProductKPI, error) {
	s.lastSpec = spec
	s.lastConfig = config
	return s.top, s.err
}

func (s *reporterStub) ProductLeaderShare(spec domain.FilterSpec) (*domain.ConcentrationResult, error) {
	s.lastSpec = spec
	return s.leader, s.err
}

func doRequest(handler http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func decodeAPIError(t *testing.T, recorder *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	return apiErr
}

func TestGetSalesReport(t *testing.T) {
	stub := &reporterStub{
		report: &domain.SalesReport{
			Granularity: domain.GranularityMonthly,
			Summary: domain.ReportSummary{
				TotalRevenue:  50.0,
				TotalQuantity: 8,
				ProductCount:  2,
			},
			GeneratedAt: time.Now(),
		},
	}

	recorder := doRequest(GetSalesReport(stub), "/v1/reports/sales?granularity=monthly&metric=revenue&top_n=1")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var report domain.SalesReport
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&report))
	assert.Equal(t, 50.0, report.Summary.TotalRevenue)

	assert.Equal(t, domain.GranularityMonthly, stub.lastOptions.Granularity)
	assert.Equal(t, domain.MetricRevenue, stub.lastOptions.Ranking.Metric)
	assert.Equal(t, 1, stub.lastOptions.Ranking.TopN)
}

func TestGetSalesReport_EmptyResult(t *testing.T) {
	stub := &reporterStub{err: reporting.ErrEmptyResult}

	recorder := doRequest(GetSalesReport(stub), "/v1/reports/sales")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, apiErrors.ErrNoReportData, decodeAPIError(t, recorder).Code)
}

func TestGetSalesReport_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{
			name:   "Data inicial em formato inválido",
			target: "/v1/reports/sales?start_date=05-01-2024",
		},
		{
			name:   "Data final anterior à inicial",
			target: "/v1/reports/sales?start_date=2024-02-01&end_date=2024-01-01",
		},
		{
			name:   "Granularidade desconhecida",
			target: "/v1/reports/sales?granularity=weekly",
		},
		{
			name:   "Métrica desconhecida",
			target: "/v1/reports/sales?metric=profit",
		},
		{
			name:   "top_n não numérico",
			target: "/v1/reports/sales?top_n=muitos",
		},
		{
			name:   "top_n explícito igual a zero",
			target: "/v1/reports/sales?top_n=0",
		},
		{
			name:   "top_n negativo",
			target: "/v1/reports/sales?top_n=-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &reporterStub{}

			recorder := doRequest(GetSalesReport(stub), tt.target)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestGetProductKPIs_FilterParsing(t *testing.T) {
	t.Run("Parâmetros de lista ausentes viram filtro não configurado", func(t *testing.T) {
		stub := &reporterStub{kpis: []domain.ProductKPI{}}

		recorder := doRequest(GetProductKPIs(stub), "/v1/reports/sales/kpis")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Nil(t, stub.lastSpec.Products)
		assert.Nil(t, stub.lastSpec.Segments)
	})

	t.Run("Parâmetro presente mas vazio vira seleção explícita vazia", func(t *testing.T) {
		stub := &reporterStub{err: reporting.ErrEmptyResult}

		recorder := doRequest(GetProductKPIs(stub), "/v1/reports/sales/kpis?products=")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		require.NotNil(t, stub.lastSpec.Products)
		assert.Empty(t, stub.lastSpec.Products)
	})

	t.Run("Lista separada por vírgula", func(t *testing.T) {
		stub := &reporterStub{kpis: []domain.ProductKPI{}}

		doRequest(GetProductKPIs(stub), "/v1/reports/sales/kpis?products=Camiseta,Tênis&segments=F")

		assert.Equal(t, []string{"Camiseta", "Tênis"}, stub.lastSpec.Products)
		assert.Equal(t, []string{"F"}, stub.lastSpec.Segments)
	})

	t.Run("Intervalo de datas", func(t *testing.T) {
		stub := &reporterStub{kpis: []domain.ProductKPI{}}

		doRequest(GetProductKPIs(stub), "/v1/reports/sales/kpis?start_date=2024-01-01&end_date=2024-01-31")

		require.NotNil(t, stub.lastSpec.StartDate)
		require.NotNil(t, stub.lastSpec.EndDate)
		assert.Equal(t, "2024-01-01", stub.lastSpec.StartDate.Format(time.DateOnly))
		assert.Equal(t, "2024-01-31", stub.lastSpec.EndDate.Format(time.DateOnly))
	})
}

func TestGetRevenueSeries(t *testing.T) {
	stub := &reporterStub{
		series: []domain.PeriodPoint{
			{Period: "2024-01", Revenue: 30.0},
			{Period: "2024-02", Revenue: 20.0},
		},
	}

	recorder := doRequest(GetRevenueSeries(stub), "/v1/reports/sales/revenue-series?granularity=monthly")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var series []domain.PeriodPoint
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&series))
	assert.Equal(t, stub.series, series)
}

func TestGetProductRanking(t *testing.T) {
	stub := &reporterStub{
		top: []domain.ProductKPI{
			{Product: "A", TotalQuantity: 3, TotalRevenue: 30.0},
		},
	}

	recorder := doRequest(GetProductRanking(stub), "/v1/reports/sales/ranking?metric=quantity&top_n=3")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, domain.MetricQuantity, stub.lastConfig.Metric)
	assert.Equal(t, 3, stub.lastConfig.TopN)
}

func TestGetProductRanking_InvalidTopN(t *testing.T) {
	// top_n enviado com valor menor que 1 é rejeitado no parsing, antes de
	// alcançar o serviço; apenas top_n ausente cai no padrão configurado
	for _, target := range []string{
		"/v1/reports/sales/ranking?top_n=0",
		"/v1/reports/sales/ranking?top_n=-1",
	} {
		stub := &reporterStub{}

		recorder := doRequest(GetProductRanking(stub), target)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, recorder).Code)
		assert.Zero(t, stub.lastConfig.TopN)
	}
}

func TestGetProductRanking_AbsentTopNUsesConfiguredDefault(t *testing.T) {
	stub := &reporterStub{top: []domain.ProductKPI{}}

	recorder := doRequest(GetProductRanking(stub), "/v1/reports/sales/ranking")

	assert.Equal(t, http.StatusOK, recorder.Code)
	// TopN zero sinaliza "não enviado" e o serviço aplica o padrão
	assert.Zero(t, stub.lastConfig.TopN)
}

func TestGetProductRanking_ServiceRejectsInvalidConfig(t *testing.T) {
	stub := &reporterStub{err: reporting.ErrInvalidRankingConfig}

	recorder := doRequest(GetProductRanking(stub), "/v1/reports/sales/ranking?top_n=3")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, apiErrors.ErrInvalidRankingConfig, decodeAPIError(t, recorder).Code)
}

func TestGetLeaderShare_RoundsToOneDecimalPlace(t *testing.T) {
	stub := &reporterStub{
		leader: &domain.ConcentrationResult{
			Product: "A",
			Revenue: 30.0,
			Share:   61.53846153846154,
		},
	}

	recorder := doRequest(GetLeaderShare(stub), "/v1/reports/sales/leader-share")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response leaderShareResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "A", response.Product)
	assert.Equal(t, 61.5, response.Share)
}

func TestGetLeaderShare_ZeroRevenue(t *testing.T) {
	stub := &reporterStub{err: reporting.ErrZeroRevenue}

	recorder := doRequest(GetLeaderShare(stub), "/v1/reports/sales/leader-share")

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Equal(t, apiErrors.ErrZeroRevenue, decodeAPIError(t, recorder).Code)
}
