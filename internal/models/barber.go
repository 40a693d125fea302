package models

type Barber struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`

	// Exatamente um barbeiro tem IsDefault=true enquanto a lista não
	// estiver vazia. Mantido pelos helpers do docstore, nunca no braço.
	IsDefault bool `json:"isDefault"`
}
