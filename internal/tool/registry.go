// Package tool define o registro de ferramentas exposto aos agentes. O
// registro é o único ponto de despacho: cada transporte (stdio, HTTP, SSE)
// apenas traduz envelopes e delega para List/Invoke, então validação e
// comportamento ficam idênticos nos três.
package tool

import (
	"context"
	"fmt"
)

type FieldType string

const (
	TypeString FieldType = "string"
	TypeNumber FieldType = "number"
	TypeObject FieldType = "object"
)

// Field declara um argumento da ferramenta: nome, tipo, obrigatoriedade e
// default opcional. A validação roda antes do handler, independente de
// biblioteca de serialização.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Default     any
	Description string
}

type Handler func(ctx context.Context, args map[string]any) (any, error)

type Definition struct {
	Name        string
	Description string
	Fields      []Field
	Handler     Handler
}

// InputSchema renderiza a declaração de campos como JSON Schema, usado na
// listagem de ferramentas.
func (d Definition) InputSchema() map[string]any {
	properties := make(map[string]any, len(d.Fields))
	var required []string
	for _, f := range d.Fields {
		prop := map[string]any{"type": string(f.Type)}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		if f.Default != nil {
			prop["default"] = f.Default
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %q", e.Name)
}

type Registry struct {
	order []string
	tools map[string]Definition
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Definition)}
}

func (r *Registry) Register(def Definition) {
	if _, exists := r.tools[def.Name]; !exists {
		r.order = append(r.order, def.Name)
	}
	r.tools[def.Name] = def
}

// List devolve as definições na ordem de registro.
func (r *Registry) List() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name])
	}
	return defs
}

// Invoke resolve o nome, valida os argumentos contra a declaração (aplicando
// defaults) e só então chama o handler. Nome desconhecido falha antes de
// qualquer consulta ao banco.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (any, error) {
	def, ok := r.tools[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	validated, err := validateArgs(def.Fields, args)
	if err != nil {
		return nil, err
	}
	return def.Handler(ctx, validated)
}
