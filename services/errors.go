package services

import (
	"fmt"
	"strings"
)

// NotFoundError indica que nenhum ativo existe com o id informado.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("ativo com id '%s' não encontrado", e.ID)
}

// DuplicateSerialNoError indica violação da unicidade do número de série.
type DuplicateSerialNoError struct {
	SerialNo string
}

func (e DuplicateSerialNoError) Error() string {
	return fmt.Sprintf("ativo com serialNo '%s' já existe", e.SerialNo)
}

// FieldError descreve a violação de um único campo da requisição.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError agrega todas as violações de campo encontradas.
type ValidationError struct {
	Fields []FieldError
}

func (e ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validação falhou: " + strings.Join(parts, "; ")
}

// InfrastructureError encapsula falhas do armazenamento ou outras falhas
// inesperadas que o chamador pode querer retentar.
type InfrastructureError struct {
	Err error
}

func (e InfrastructureError) Error() string {
	return fmt.Sprintf("falha de infraestrutura: %v", e.Err)
}

func (e InfrastructureError) Unwrap() error { return e.Err }
