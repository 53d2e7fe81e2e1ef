package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// BucketRevenue agrupa a receita dos registros por período calendário (dia ou
// mês). Períodos sem vendas não são emitidos: a série é esparsa, não densa.
// As chaves YYYY-MM-DD e YYYY-MM ordenam lexicograficamente na mesma ordem
// cronológica, então a ordenação por string basta.
func BucketRevenue(records []domain.SaleRecord, granularity domain.Granularity) []domain.PeriodPoint {
	byPeriod := make(map[string]float64)
	for _, r := range records {
		byPeriod[periodKey(r.Date, granularity)] += r.Revenue
	}

	periods := make([]string, 0, len(byPeriod))
	for period := range byPeriod {
		periods = append(periods, period)
	}
	sort.Strings(periods)

	points := make([]domain.PeriodPoint, 0, len(periods))
	for _, period := range periods {
		points = append(points, domain.PeriodPoint{
			Period:  period,
			Revenue: byPeriod[period],
		})
	}

	return points
}

func periodKey(date time.Time, granularity domain.Granularity) string {
	if granularity == domain.GranularityDaily {
		return date.Format(time.DateOnly)
	}
	return date.Format("2006-01")
}
