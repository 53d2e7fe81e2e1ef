package domain

import "fmt"

// Granularity define o tamanho do balde calendário usado na série temporal
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity valida a granularidade vinda da camada de seleção
func ParseGranularity(value string) (Granularity, error) {
	switch Granularity(value) {
	case GranularityDaily, GranularityMonthly:
		return Granularity(value), nil
	}
	return "", fmt.Errorf("invalid granularity %q, expected daily or monthly", value)
}

// PeriodPoint é um ponto da série de receita: o período no formato
// YYYY-MM-DD (diário) ou YYYY-MM (mensal) e a receita somada do período.
// Períodos sem vendas não são emitidos.
type PeriodPoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}
