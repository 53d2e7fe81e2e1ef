package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API
const (
	// Erros de validação (VAL_)
	ErrInvalidRequest       = "VAL_001" // Requisição inválida
	ErrMissingRequiredData  = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat        = "VAL_003" // Formato de dados inválido
	ErrInvalidRankingConfig = "VAL_004" // Configuração de ranking inválida (top_n < 1)

	// Erros do pipeline de relatórios (RPT_)
	ErrNoReportData    = "RPT_001" // Nenhum registro corresponde aos filtros
	ErrZeroRevenue     = "RPT_002" // Receita total zero, participação indefinida
	ErrDatasetNotReady = "RPT_003" // Dataset ainda não carregado

	// Erros do servidor (SRV_)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrDatasetSource     = "SRV_003" // Erro na origem do dataset
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrInvalidRankingConfig: http.StatusBadRequest,
	ErrNoReportData:         http.StatusNotFound,
	ErrZeroRevenue:          http.StatusUnprocessableEntity,
	ErrDatasetNotReady:      http.StatusServiceUnavailable,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrDatabaseOperation:    http.StatusInternalServerError,
	ErrDatasetSource:        http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
