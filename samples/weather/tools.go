// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	af "github.com/microsoft/ghmodels-agents/agentframework"
)

type weather struct {
	Temp      float64
	Condition string
}

// weatherData is keyed by lower-case city name.
var weatherData = map[string]weather{
	"são paulo":      {27, "Ensolarado"},
	"curitiba":       {19, "Chuvoso"},
	"rio de janeiro": {32, "Parcialmente nublado"},
	"porto alegre":   {22, "Ventoso"},
}

type weatherArgs struct {
	City string `json:"city" jsonschema:"required" jsonschema_description:"O nome da cidade para a qual deseja obter o clima."`
}

type clothingArgs struct {
	Temperature float64 `json:"temperature" jsonschema:"required" jsonschema_description:"A temperatura em graus Celsius."`
}

type activityArgs struct {
	Condition string `json:"condition" jsonschema:"required" jsonschema_description:"A condição climática, como ensolarado, chuvoso, nublado, etc."`
}

func lookupWeather(city string) string {
	info, ok := weatherData[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return fmt.Sprintf("Desculpe, não tenho dados de clima para a cidade de %s.", city)
	}
	return fmt.Sprintf("%s: %v°C, %s", city, info.Temp, info.Condition)
}

func clothingFor(temperature float64) string {
	switch {
	case temperature < 15:
		return "Use casaco pesado e agasalhos 🧥"
	case temperature < 20:
		return "Use casaco leve ou blusa 🧥"
	case temperature < 25:
		return "Vista algo confortável, clima agradável 👕"
	default:
		return "Vista roupas leves e frescas 👕☀️"
	}
}

func activityFor(condition string) string {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "sol"), strings.Contains(c, "ensolarado"):
		return "Ótimo dia para um passeio ao ar livre! ☀️🚶"
	case strings.Contains(c, "chuv"):
		return "Melhor ficar em casa, que tal um filme? 🎬🍿"
	case strings.Contains(c, "nublado"):
		return "Bom dia para atividades indoor ou caminhada leve 🚶"
	case strings.Contains(c, "vento"):
		return "Cuidado com o vento! Prenda o cabelo e evite guarda-chuva 💨"
	default:
		return "Aproveite o dia da melhor forma! 😊"
	}
}

// newTools returns the weather tools. Each tool echoes its input and output
// to out.
func newTools(out io.Writer) []af.Tool {
	getWeather := af.NewTypedTool("getWeather",
		"Obtém informações do clima para uma cidade específica.",
		func(ctx context.Context, args weatherArgs) (any, error) {
			fmt.Fprintf(out, "\n Tool: getWeather | Cidade: %s\n", args.City)
			result := lookupWeather(args.City)
			fmt.Fprintf(out, "Resultado...: %s\n", result)
			return result, nil
		},
	)

	suggestClothing := af.NewTypedTool("suggestClothing",
		"Sugere roupas apropriadas com base na temperatura fornecida.",
		func(ctx context.Context, args clothingArgs) (any, error) {
			fmt.Fprintf(out, "\n Tool: suggestClothing | Temperatura: %v°C\n", args.Temperature)
			s := clothingFor(args.Temperature)
			fmt.Fprintf(out, "Sugestão...: %s\n", s)
			return s, nil
		},
	)

	suggestActivity := af.NewTypedTool("suggestActivity",
		"Sugere atividades com base na condição climática fornecida.",
		func(ctx context.Context, args activityArgs) (any, error) {
			fmt.Fprintf(out, "\n Tool: suggestActivity | Condição: %s\n", args.Condition)
			s := activityFor(args.Condition)
			fmt.Fprintf(out, "Sugestão...: %s\n", s)
			return s, nil
		},
	)

	return []af.Tool{getWeather, suggestClothing, suggestActivity}
}
