package domain

import "time"

// FilterSpec define os filtros em cascata aplicados sobre o dataset antes de
// qualquer agregação. As datas são limites inclusivos; ponteiro nil significa
// limite não configurado.
//
// Para Products e Segments a convenção é a mesma dos widgets de seleção
// múltipla: slice nil significa "filtro não configurado" (todos os registros
// passam); slice vazio não-nil significa seleção explicitamente vazia
// (nenhum registro passa).
type FilterSpec struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Products  []string   `json:"products,omitempty"`
	Segments  []string   `json:"segments,omitempty"`
}
