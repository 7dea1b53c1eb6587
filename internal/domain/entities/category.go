package entities

import "time"

// DefaultCategoryName é usada quando o prestador não informa categorias
const DefaultCategoryName = "Geral"

// Category agrupa serviços por tipo de atividade (nome único)
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
