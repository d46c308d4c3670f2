// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"math"

	af "github.com/microsoft/ghmodels-agents/agentframework"
)

type calculatorArgs struct {
	A         float64 `json:"a" jsonschema:"required" jsonschema_description:"O primeiro número."`
	B         float64 `json:"b" jsonschema:"required" jsonschema_description:"O segundo número."`
	Operation string  `json:"operation" jsonschema:"required,enum=add,enum=subtract,enum=multiply,enum=divide" jsonschema_description:"A operação a ser realizada: add, subtract, multiply, divide."`
}

const invalidOperation = "Operação inválida ou divisão por zero."

// calculate applies op to a and b. ok is false for an unknown operation or
// a division by zero.
func calculate(a, b float64, op string) (result float64, ok bool) {
	switch op {
	case "add":
		result = a + b
	case "subtract":
		result = a - b
	case "multiply":
		result = a * b
	case "divide":
		if b == 0 {
			return math.NaN(), false
		}
		result = a / b
	default:
		return 0, false
	}
	return result, true
}

// newCalculator returns the calculator tool. Parameters and results are
// echoed to out.
func newCalculator(out io.Writer) *af.FunctionTool {
	return af.NewTypedTool("calculator",
		"Realiza operações matemáticas básicas: adição, subtração, multiplicação e divisão.",
		func(ctx context.Context, args calculatorArgs) (any, error) {
			fmt.Fprintf(out, "Parâmetros: a=%v, b=%v, operation=%s\n", args.A, args.B, args.Operation)

			result, ok := calculate(args.A, args.B, args.Operation)
			if !ok {
				return invalidOperation, nil
			}
			fmt.Fprintf(out, "Resultado...: %v\n", result)
			return fmt.Sprintf("O resultado de %s entre %v e %v é %v.", args.Operation, args.A, args.B, result), nil
		},
	)
}
