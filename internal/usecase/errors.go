package usecase

// Erro de regra de negócio: vira 4xx no handler, nunca é retentado.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// Erro de infraestrutura (banco, fila): vira 500 genérico no handler.
// O chamador pode repetir a request inteira se quiser.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
