package models

// Page representa uma fatia paginada de ativos com os metadados de total.
// Content nunca é nulo na serialização, mesmo para páginas fora do intervalo.
type Page struct {
	Content       []Asset `json:"content"`
	TotalElements int64   `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
}
