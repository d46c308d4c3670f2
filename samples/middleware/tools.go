// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"context"
	"fmt"
	"math"

	af "github.com/microsoft/ghmodels-agents/agentframework"
)

type calculatorArgs struct {
	A         float64 `json:"a" jsonschema:"required,description=Primeiro número"`
	B         float64 `json:"b" jsonschema:"required,description=Segundo número"`
	Operation string  `json:"operation" jsonschema:"required,enum=add,enum=subtract,enum=multiply,enum=divide,description=Operação"`
}

func calculatorTool() *af.FunctionTool {
	return af.NewTypedTool("calculator",
		"Realiza operações matemáticas: add, subtract, multiply, divide",
		func(ctx context.Context, args calculatorArgs) (any, error) {
			var result float64
			switch args.Operation {
			case "add":
				result = args.A + args.B
			case "subtract":
				result = args.A - args.B
			case "multiply":
				result = args.A * args.B
			case "divide":
				result = math.NaN()
				if args.B != 0 {
					result = args.A / args.B
				}
			default:
				return nil, &af.ToolError{
					ToolName: "calculator",
					Message:  "operação desconhecida: " + args.Operation,
					Err:      af.ErrToolExecution,
				}
			}
			return fmt.Sprintf("Resultado: %v %s %v = %v", args.A, args.Operation, args.B, result), nil
		},
	)
}
