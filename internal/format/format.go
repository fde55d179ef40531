package format

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var naoDigitos = regexp.MustCompile(`\D`)

// Moeda formata um valor em reais: 1234.5 -> "R$ 1.234,50"
func Moeda(valor float64) string {
	d := decimal.NewFromFloat(valor)
	negativo := d.IsNegative()
	s := d.Abs().StringFixed(2) // "1234.50"

	partes := strings.SplitN(s, ".", 2)
	inteiro, centavos := partes[0], partes[1]

	var b strings.Builder
	for i, r := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sinal := ""
	if negativo {
		sinal = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sinal, b.String(), centavos)
}

// Data formata no padrão brasileiro dd/mm/aaaa.
func Data(t time.Time) string {
	return t.Format("02/01/2006")
}

// DataHora formata dd/mm/aaaa hh:mm.
func DataHora(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// Telefone formata um número nacional: "11988887777" -> "(11) 98888-7777".
// Números fora do padrão de 10/11 dígitos voltam como entraram.
func Telefone(telefone string) string {
	limpo := naoDigitos.ReplaceAllString(telefone, "")
	switch len(limpo) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", limpo[0:2], limpo[2:7], limpo[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", limpo[0:2], limpo[2:6], limpo[6:])
	default:
		return telefone
	}
}

var (
	placaAntiga   = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	placaMercosul = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

// NormalizarPlaca remove separadores e coloca em caixa alta: "abc-1234" -> "ABC1234".
func NormalizarPlaca(placa string) string {
	limpa := strings.ToUpper(strings.TrimSpace(placa))
	limpa = strings.ReplaceAll(limpa, "-", "")
	return strings.ReplaceAll(limpa, " ", "")
}

// PlacaValida aceita o padrão antigo (ABC1234) e o Mercosul (ABC1D23).
func PlacaValida(placa string) bool {
	limpa := NormalizarPlaca(placa)
	return placaAntiga.MatchString(limpa) || placaMercosul.MatchString(limpa)
}

// Placa exibe com hífen no padrão antigo; Mercosul fica sem separador.
func Placa(placa string) string {
	limpa := NormalizarPlaca(placa)
	if placaAntiga.MatchString(limpa) {
		return limpa[:3] + "-" + limpa[3:]
	}
	return limpa
}

// LinkWhatsApp monta o deep link wa.me com DDI 55 e mensagem pré-preenchida.
func LinkWhatsApp(telefone, mensagem string) string {
	limpo := naoDigitos.ReplaceAllString(telefone, "")
	if limpo != "" && !strings.HasPrefix(limpo, "55") {
		limpo = "55" + limpo
	}
	link := "https://wa.me/" + limpo
	if mensagem != "" {
		link += "?text=" + url.QueryEscape(mensagem)
	}
	return link
}
