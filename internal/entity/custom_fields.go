package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CustomFields é o mapa livre de atributos do lead (tipo de tinta,
// valor_estimado, etc). Persistido como JSONB na coluna custom_fields.
type CustomFields map[string]any

// Merge devolve um novo mapa com os campos atuais sobrescritos pelos novos.
// Merge raso: chaves ausentes em updates são preservadas, chaves presentes
// vencem.
func (c CustomFields) Merge(updates CustomFields) CustomFields {
	merged := make(CustomFields, len(c)+len(updates))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range updates {
		merged[k] = v
	}
	return merged
}

func (c CustomFields) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

func (c *CustomFields) Scan(src any) error {
	if src == nil {
		*c = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("custom_fields: tipo não suportado %T", src)
	}

	if len(data) == 0 {
		*c = nil
		return nil
	}
	return json.Unmarshal(data, c)
}
