package pdf

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Monitoreo-api/internal/domain/entity"
)

var localePE = language.MustParse("es-PE")

var currencySymbols = map[entity.Currency]string{
	entity.CurrencyPEN: "S/",
	entity.CurrencyUSD: "US$",
}

// moneyFormatter importes con separadores de miles de es-PE y dos decimales.
type moneyFormatter struct {
	printer *message.Printer
	symbol  string
}

func newMoneyFormatter(cur entity.Currency) moneyFormatter {
	symbol, ok := currencySymbols[cur]
	if !ok {
		symbol = string(cur)
	}
	return moneyFormatter{printer: message.NewPrinter(localePE), symbol: symbol}
}

func (f moneyFormatter) format(d decimal.Decimal) string {
	v := d.Round(2).InexactFloat64()
	return f.symbol + " " + f.printer.Sprint(number.Decimal(v, number.Scale(2)))
}

func upper(s string) string {
	return cases.Upper(localePE).String(s)
}
