package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente de la empresa de limpieza.
// Balance es un valor cacheado heredado; el motor de cobranzas no lo usa y recalcula desde cero.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Addresses Addresses
	Type      string // etiqueta libre: ev, ofis, site...
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address dirección de servicio de un cliente.
type Address struct {
	Label    string `json:"label,omitempty"`
	Line     string `json:"address"`
	District string `json:"district,omitempty"`
	City     string `json:"city,omitempty"`
}

// String dirección en una sola línea.
func (a Address) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.Line, a.District, a.City} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Addresses lista de direcciones. En JSON acepta las dos formas históricas:
// un string plano ("Kadıköy, İstanbul") o una lista de objetos/strings.
// Siempre serializa como lista de objetos.
type Addresses []Address

// UnmarshalJSON acepta string, null, lista de strings o lista de objetos.
func (a *Addresses) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = nil
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*a = nil
			return nil
		}
		*a = Addresses{{Line: s}}
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		out := make(Addresses, 0, len(raw))
		for _, item := range raw {
			item = bytes.TrimSpace(item)
			if len(item) > 0 && item[0] == '"' {
				var s string
				if err := json.Unmarshal(item, &s); err != nil {
					return err
				}
				out = append(out, Address{Line: s})
				continue
			}
			var addr Address
			if err := json.Unmarshal(item, &addr); err != nil {
				return fmt.Errorf("dirección inválida: %w", err)
			}
			out = append(out, addr)
		}
		*a = out
		return nil
	}
	return fmt.Errorf("formato de dirección no soportado")
}

// Primary primera dirección o vacío.
func (a Addresses) Primary() string {
	if len(a) == 0 {
		return ""
	}
	return a[0].String()
}
