package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Step    string          `json:"step,omitempty"` // paso del recálculo de nómina que falló
	Details []FieldErrorDTO `json:"details,omitempty"`
}

// FieldErrorDTO error de validación de un campo.
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
