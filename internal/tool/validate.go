package tool

import (
	"encoding/json"

	"github.com/xavierca1/ligue-crm-mcp/internal/usecase"
)

// validateArgs confere presença e tipo de cada campo declarado e devolve uma
// cópia dos argumentos com defaults aplicados. Campos não declarados passam
// intactos; o handler os ignora.
func validateArgs(fields []Field, args map[string]any) (map[string]any, error) {
	validated := make(map[string]any, len(args)+len(fields))
	for k, v := range args {
		validated[k] = v
	}

	for _, f := range fields {
		value, present := validated[f.Name]
		if !present || value == nil {
			if f.Required {
				return nil, usecase.ValidationError{Field: f.Name, Message: "is required"}
			}
			if f.Default != nil {
				validated[f.Name] = f.Default
			}
			continue
		}

		if !matchesType(f.Type, value) {
			return nil, usecase.ValidationError{
				Field:   f.Name,
				Message: "must be of type " + string(f.Type),
			}
		}
	}
	return validated, nil
}

func matchesType(t FieldType, value any) bool {
	switch t {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeNumber:
		switch value.(type) {
		case float64, int, int64, json.Number:
			return true
		}
		return false
	case TypeObject:
		_, ok := value.(map[string]any)
		return ok
	default:
		return false
	}
}
