package layout

import "fmt"

// Section titles and fixed copy printed by both renderers.
const (
	TitleQuote        = "ORÇAMENTO"
	TitleCompany      = "DADOS DA EMPRESA"
	TitleClient       = "DADOS DO CLIENTE"
	TitleItems        = "ITENS DO ORÇAMENTO"
	TitleConditions   = "CONDIÇÕES ESPECIAIS"
	TitleObservations = "OBSERVAÇÕES"

	ColumnDescription = "Descrição"
	ColumnQuantity    = "Qtd"
	ColumnUnitPrice   = "Valor Unit."
	ColumnTotal       = "Total"

	LabelSubtotal = "Subtotal:"
	LabelTotal    = "TOTAL:"

	CallToAction = "Gostou da proposta? Entre em contato e aprove este orçamento!"
)

// Pitch is the sales paragraph addressed to the client.
func Pitch(clientName string) string {
	return fmt.Sprintf("Prezado(a) %s, agradecemos a oportunidade de apresentar esta proposta. "+
		"Confira abaixo os itens, valores e condições preparados especialmente para você.", clientName)
}

// DiscountLabel avoids parentheses so the raw content stream needs no escaping for it.
func DiscountLabel(percent string) string {
	return "Desconto " + percent + "%:"
}

func FooterLine(generated, expires string) string {
	return "Orçamento gerado em " + generated + " - Válido até " + expires
}

// Contact joins the non-empty values with a separator.
func Contact(values ...string) string {
	out := ""
	for _, v := range values {
		if v == "" {
			continue
		}
		if out != "" {
			out += " | "
		}
		out += v
	}
	return out
}
