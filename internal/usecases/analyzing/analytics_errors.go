package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de analytics
var (
	// Erros de validação
	ErrCreatorNotFound = errors.New("criador não encontrado")
	ErrForbidden       = errors.New("acesso negado ao criador")
	ErrInvalidDays     = errors.New("a quantidade de dias não pode ser negativa")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrAlreadyExists     = errors.New("registro de analytics já existe para o criador")
)

// AnalyticsError é um erro com contexto adicional para analytics
type AnalyticsError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	CreatorID string // ID do criador envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError cria um novo AnalyticsError
func NewAnalyticsError(err error, code string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAnalyticsErrorWithCreator cria um novo AnalyticsError com ID do criador
func NewAnalyticsErrorWithCreator(err error, code string, creatorID string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:       err,
		Code:      code,
		CreatorID: creatorID,
		Details:   details,
	}
}
