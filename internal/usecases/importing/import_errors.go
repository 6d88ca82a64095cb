package importing

import "errors"

var (
	ErrMissingTenant      = errors.New("tenant é obrigatório")
	ErrNoRecords          = errors.New("nenhuma linha de venda encontrada no arquivo")
	ErrUnreadableDocument = errors.New("não foi possível ler o documento")
	ErrDatabaseOperation  = errors.New("erro ao gravar vendas no banco de dados")
)
