package models

// Asset representa um equipamento do inventário, identificado por um número
// de série único em todo o sistema.
type Asset struct {
	ID         string `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	SerialNo   string `json:"serialNo" db:"serial_no"`
	AssignDate Date   `json:"assignDate" db:"assign_date"`
	Category   string `json:"category,omitempty" db:"category"`
}
