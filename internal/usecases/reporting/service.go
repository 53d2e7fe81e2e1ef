package reporting

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// Service implementa Reporter sobre o snapshot corrente do Record Store.
// Cada chamada reexecuta o pipeline completo (filtrar → agregar → ordenar):
// nenhum resultado intermediário é reaproveitado entre chamadas e nenhum
// componente retém estado. O dataset cabe em memória e a recomputação é
// linear no número de registros.
type Service struct {
	cfg     *config.Config
	records RecordProvider
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(cfg *config.Config, records RecordProvider) Reporter {
	return &Service{
		cfg:     cfg,
		records: records,
	}
}

// BuildReport executa o pipeline completo e monta o relatório de vendas.
// O contrato é tudo-ou-nada por etapa: nenhum agregado parcial é retornado
// quando uma etapa falha. A única exceção é a participação do líder, que é
// omitida (Leader nil) quando a receita total filtrada é zero; as demais
// seções do relatório continuam válidas nesse caso.
func (s *Service) BuildReport(opts domain.ReportOptions) (*domain.SalesReport, error) {
	opts = s.withDefaults(opts)

	filtered, err := s.filtered(opts.Filters)
	if err != nil {
		return nil, err
	}

	kpis := AggregateKPIs(filtered)
	series := BucketRevenue(filtered, opts.Granularity)

	ranking := opts.Ranking
	if ranking.TopN > len(kpis) {
		ranking.TopN = len(kpis)
	}

	top, err := RankProducts(kpis, ranking)
	if err != nil {
		return nil, err
	}

	leader, err := LeaderShare(kpis)
	if err != nil {
		if !errors.Is(err, ErrZeroRevenue) {
			return nil, err
		}

		logrus.WithField("product_count", len(kpis)).
			Warn("report: receita total zero, participação do líder omitida")
	}

	logrus.WithFields(logrus.Fields{
		"records_filtered": len(filtered),
		"product_count":    len(kpis),
		"series_points":    len(series),
		"granularity":      opts.Granularity,
		"ranking_metric":   ranking.Metric,
		"ranking_top_n":    ranking.TopN,
	}).Debug("report: pipeline executado com sucesso")

	return &domain.SalesReport{
		Filters:       opts.Filters,
		Granularity:   opts.Granularity,
		Summary:       Summarize(kpis),
		KPIs:          kpis,
		RevenueSeries: series,
		TopProducts:   top,
		Leader:        leader,
		GeneratedAt:   time.Now(),
	}, nil
}

// ProductKPIs retorna a tabela de KPIs por produto do subconjunto filtrado
func (s *Service) ProductKPIs(spec domain.FilterSpec) ([]domain.ProductKPI, error) {
	filtered, err := s.filtered(spec)
	if err != nil {
		return nil, err
	}

	return AggregateKPIs(filtered), nil
}

// RevenueSeries retorna a série de receita por período do subconjunto filtrado
func (s *Service) RevenueSeries(spec domain.FilterSpec, granularity domain.Granularity) ([]domain.PeriodPoint, error) {
	if granularity == "" {
		granularity = s.defaultGranularity()
	}

	filtered, err := s.filtered(spec)
	if err != nil {
		return nil, err
	}

	return BucketRevenue(filtered, granularity), nil
}

// TopProducts retorna o ranking dos N melhores produtos pela métrica
// escolhida. TopN zero é o sentinela de "não informado" e cai no padrão
// configurado; a camada de apresentação rejeita top_n explícito menor que 1
// antes de chegar aqui, e valores negativos são recusados pelo ranking.
func (s *Service) TopProducts(spec domain.FilterSpec, config domain.RankingConfig) ([]domain.ProductKPI, error) {
	kpis, err := s.ProductKPIs(spec)
	if err != nil {
		return nil, err
	}

	if config.Metric == "" {
		config.Metric = s.defaultMetric()
	}
	if config.TopN == 0 {
		config.TopN = s.cfg.Report.DefaultTopN
	}
	if config.TopN > len(kpis) {
		config.TopN = len(kpis)
	}

	return RankProducts(kpis, config)
}

// ProductLeaderShare retorna a participação do produto líder na receita total
func (s *Service) ProductLeaderShare(spec domain.FilterSpec) (*domain.ConcentrationResult, error) {
	kpis, err := s.ProductKPIs(spec)
	if err != nil {
		return nil, err
	}

	return LeaderShare(kpis)
}

// filtered aplica os filtros sobre o snapshot corrente e curto-circuita o
// pipeline quando o resultado é vazio, antes de qualquer agregação
func (s *Service) filtered(spec domain.FilterSpec) ([]domain.SaleRecord, error) {
	filtered := ApplyFilters(s.records.Records(), spec)
	if len(filtered) == 0 {
		return nil, ErrEmptyResult
	}

	return filtered, nil
}

func (s *Service) withDefaults(opts domain.ReportOptions) domain.ReportOptions {
	if opts.Granularity == "" {
		opts.Granularity = s.defaultGranularity()
	}
	if opts.Ranking.Metric == "" {
		opts.Ranking.Metric = s.defaultMetric()
	}
	if opts.Ranking.TopN == 0 {
		opts.Ranking.TopN = s.cfg.Report.DefaultTopN
	}
	return opts
}

func (s *Service) defaultGranularity() domain.Granularity {
	if granularity, err := domain.ParseGranularity(s.cfg.Report.DefaultGranularity); err == nil {
		return granularity
	}
	return domain.GranularityMonthly
}

func (s *Service) defaultMetric() domain.RankingMetric {
	if metric, err := domain.ParseRankingMetric(s.cfg.Report.DefaultRankingMetric); err == nil {
		return metric
	}
	return domain.MetricRevenue
}
