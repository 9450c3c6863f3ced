package creator

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de criadores
var (
	// Erros de validação
	ErrMissingRequiredData  = errors.New("nome, plataforma e username são obrigatórios")
	ErrInvalidPlatform      = errors.New("plataforma não suportada")
	ErrCreatorNotFound      = errors.New("criador não encontrado")
	ErrCreatorAlreadyExists = errors.New("já existe um criador com este username para o usuário")
	ErrForbidden            = errors.New("acesso negado ao criador")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("erro ao gerar ID do criador")
)

// CreatorError é um erro com contexto adicional para criadores
type CreatorError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	CreatorID string // ID do criador envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CreatorError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CreatorError) Unwrap() error {
	return e.Err
}

// NewCreatorError cria um novo CreatorError
func NewCreatorError(err error, code string, details string) *CreatorError {
	return &CreatorError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewCreatorErrorWithID cria um novo CreatorError com ID do criador
func NewCreatorErrorWithID(err error, code string, creatorID string, details string) *CreatorError {
	return &CreatorError{
		Err:       err,
		Code:      code,
		CreatorID: creatorID,
		Details:   details,
	}
}
