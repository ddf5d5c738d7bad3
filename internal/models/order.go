// Package models defines the order record and the derived metric types
// shared by the decoder, filter and aggregation engines.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Fallback labels used when a grouping field is absent from a record.
const (
	LabelUnknownState   = "Não informado"
	LabelUnknownProduct = "Produto não informado"
	LabelUnknownStatus  = "Status não informado"
	LabelNoVariation    = "Sem variação"
)

// Order is one line item of a sales order as found in a Shopee export.
// An order ID is not unique per line: one order can carry several line
// items. Records are created once at ingestion and never mutated.
//
// The csv tags carry the original export column names so filtered
// records round-trip to CSV with the headers the seller knows.
type Order struct {
	OrderID        string `csv:"ID do pedido" json:"order_id"`
	Status         string `csv:"Status do pedido" json:"status"`
	TrackingNumber string `csv:"Número de rastreamento" json:"tracking_number,omitempty"`
	CreatedAt      string `csv:"Data de criação do pedido" json:"created_at"`
	PaidAt         string `csv:"Hora do pagamento do pedido" json:"paid_at,omitempty"`

	ProductName   string `csv:"Nome do Produto" json:"product_name"`
	SKUReference  string `csv:"Número de referência SKU" json:"sku_reference,omitempty"`
	VariationName string `csv:"Nome da variação" json:"variation_name,omitempty"`

	OriginalPrice    decimal.Decimal `csv:"Preço original" json:"original_price"`
	UnitPriceAgreed  decimal.Decimal `csv:"Preço acordado" json:"unit_price_agreed"`
	Quantity         int             `csv:"Quantidade" json:"quantity"`
	ReturnedQuantity int             `csv:"Returned quantity" json:"returned_quantity"`
	ProductSubtotal  decimal.Decimal `csv:"Subtotal do produto" json:"product_subtotal"`
	TotalValue       decimal.Decimal `csv:"Valor Total" json:"total_value"`
	TotalGlobal      decimal.Decimal `csv:"Total global" json:"total_global"`

	BuyerUsername string          `csv:"Nome de usuário (comprador)" json:"buyer_username,omitempty"`
	RecipientName string          `csv:"Nome do destinatário" json:"recipient_name,omitempty"`
	Address       string          `csv:"Endereço de entrega" json:"address,omitempty"`
	City          string          `csv:"Cidade" json:"city,omitempty"`
	State         string          `csv:"UF" json:"state"`
	Country       string          `csv:"País" json:"country,omitempty"`
	PostalCode    decimal.Decimal `csv:"CEP" json:"postal_code"`

	// CreatedTime is the CreatedAt text parsed once at decode time.
	// nil means the timestamp could not be parsed; such records are
	// excluded from time-bucketed aggregates only.
	CreatedTime *time.Time `csv:"-" json:"-"`

	// Amounts holds numeric columns without a dedicated field above
	// (discounts, coupons, fees, weights and the like).
	Amounts map[string]decimal.Decimal `csv:"-" json:"-"`

	// Extra holds unrecognized text columns for forward compatibility.
	Extra map[string]string `csv:"-" json:"-"`
}

// ParseAmount converts a Brazilian-formatted monetary string into a
// decimal. Currency symbols and stray characters are stripped, a comma
// is treated as the decimal separator and dots as thousand separators
// when both appear. Malformed or empty input yields zero, never an
// error: field-level defects degrade, they do not propagate.
func ParseAmount(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if strings.Contains(cleaned, ",") {
		// Brazilian convention: dots are thousand separators
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
