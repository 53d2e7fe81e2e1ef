package reporting

import "errors"

// Erros específicos do pipeline de relatórios
var (
	// ErrEmptyResult indica que a combinação de filtros não retornou nenhum
	// registro. Nenhuma etapa de agregação executa sobre um resultado vazio:
	// a camada de apresentação exibe o estado "sem dados".
	ErrEmptyResult = errors.New("no records match the given filters")

	// ErrInvalidRankingConfig indica uma configuração de ranking com top_n menor que 1
	ErrInvalidRankingConfig = errors.New("ranking top_n must be at least 1")

	// ErrZeroRevenue indica que a participação do líder foi solicitada sobre
	// uma receita total igual a zero: o valor é indefinido, nunca 0 ou NaN
	ErrZeroRevenue = errors.New("total revenue is zero, leader share is undefined")
)
