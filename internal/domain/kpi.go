package domain

// ProductKPI agrega quantidade e receita totais de um produto dentro do
// subconjunto filtrado. Produtos sem nenhum registro após o filtro não
// aparecem na tabela: ausentes, não zerados.
type ProductKPI struct {
	Product       string  `json:"product"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// ReportSummary traz os totais exibidos no topo do relatório
type ReportSummary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalQuantity int     `json:"total_quantity"`
	ProductCount  int     `json:"product_count"`
}
