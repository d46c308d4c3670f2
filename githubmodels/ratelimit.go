// Copyright (c) Microsoft. All rights reserved.

package githubmodels

import (
	"fmt"
	"io"
	"strings"
)

var rule = strings.Repeat("━", 60)

// PrintRateLimitNotice writes the free-tier rate-limit notice to w.
func PrintRateLimitNotice(w io.Writer) {
	fmt.Fprintln(w, "\n RATE LIMITS - GITHUB MODELS (FREE TIER)")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Requests por minuto: Varia por modelo")
	fmt.Fprintln(w, "Requests por dia: Limitado")
	fmt.Fprintln(w, "Tokens por request: Varia por modelo")
	fmt.Fprintln(w, "Uso: Gratuito para experimentação/protótipo")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "\n Para produção, migre para Azure OpenAI ou OpenAI direta")
	fmt.Fprintln(w, "   (mesma API, só muda baseURL e apiKey)")
	fmt.Fprintln(w)
}
