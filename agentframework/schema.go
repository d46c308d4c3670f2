// Copyright (c) Microsoft. All rights reserved.

package agentframework

import (
	"encoding/json"
	"reflect"
	"sync"

	"github.com/invopop/jsonschema"
)

var schemaCache sync.Map // reflect.Type -> json.RawMessage

// GenerateSchema builds a JSON Schema for T suitable as function parameters.
//
// Struct definitions are inlined, so the result carries no $ref or $defs.
// Only fields tagged `jsonschema:"required"` are listed as required.
func GenerateSchema[T any]() json.RawMessage {
	return schemaForType(reflect.TypeOf((*T)(nil)).Elem())
}

func schemaForType(t reflect.Type) json.RawMessage {
	if cached, ok := schemaCache.Load(t); ok {
		return cached.(json.RawMessage)
	}

	r := &jsonschema.Reflector{
		DoNotReference:             true,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
		Anonymous:                  true,
	}
	s := r.ReflectFromType(t)
	// Function parameters are embedded in a request, not a standalone document.
	s.Version = ""
	s.ID = ""

	b, err := json.Marshal(s)
	if err != nil {
		b = []byte(`{"type":"object"}`)
	}
	raw := json.RawMessage(b)
	schemaCache.Store(t, raw)
	return raw
}
