package domain

import "time"

// DatasetMeta descreve o snapshot corrente do dataset em memória: limites de
// data e domínios de produto/segmento usados pela camada de seleção para
// montar os widgets de filtro.
type DatasetMeta struct {
	SnapshotID  string     `json:"snapshot_id"`
	RecordCount int        `json:"record_count"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Products    []string   `json:"products"` // Domínio de produtos, ordenado
	Segments    []string   `json:"segments"` // Domínio de segmentos, ordenado, sem vazios
	LoadedAt    time.Time  `json:"loaded_at"`
}
