package uploading

import "errors"

var (
	// ErrFileTooLarge indica que o arquivo excede o tamanho máximo permitido
	ErrFileTooLarge = errors.New("arquivo excede o tamanho máximo permitido")
	// ErrInvalidFileType indica que o arquivo não é uma imagem
	ErrInvalidFileType = errors.New("tipo de arquivo inválido, apenas imagens são aceitas")
	// ErrMissingFile indica que nenhum arquivo foi enviado na requisição
	ErrMissingFile = errors.New("nenhum arquivo foi enviado")
	// ErrStorageOperation indica falha na comunicação com o armazenamento de objetos
	ErrStorageOperation = errors.New("erro ao enviar arquivo para o armazenamento")
)
