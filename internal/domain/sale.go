package domain

import "time"

// SaleRecord representa uma linha do dataset de vendas já ingerida.
// Revenue é um campo derivado (Quantity * UnitPrice), calculado uma única
// vez na ingestão e imutável a partir daí, nunca armazenado de forma
// independente da quantidade e do preço unitário.
type SaleRecord struct {
	Date      time.Time `json:"date"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Segment   string    `json:"segment,omitempty"`
	Revenue   float64   `json:"revenue"`
}

// NewSaleRecord cria um registro de venda calculando o campo derivado Revenue
func NewSaleRecord(date time.Time, product string, quantity int, unitPrice float64, segment string) SaleRecord {
	return SaleRecord{
		Date:      date,
		Product:   product,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Segment:   segment,
		Revenue:   float64(quantity) * unitPrice,
	}
}
