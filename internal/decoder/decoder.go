// Package decoder converts raw tabular rows into typed Order records.
// The policy is partial decode, not rejection: a record survives a bad
// date or a malformed number, single rows are dropped only when their
// decode panics, and only structural problems bubble up to the caller.
package decoder

import (
	"strconv"
	"strings"
	"time"

	"fbarros/shopee-insights/internal/dateutils"
	"fbarros/shopee-insights/internal/logging"
	"fbarros/shopee-insights/internal/models"

	"github.com/shopspring/decimal"
)

// numericHeaders is the fixed allow-list of export columns that must be
// interpreted as numbers. Everything else stays text.
var numericHeaders = map[string]bool{
	"Preço original":                              true,
	"Preço acordado":                              true,
	"Quantidade":                                  true,
	"Returned quantity":                           true,
	"Subtotal do produto":                         true,
	"Desconto do vendedor":                        true,
	"Desconto do vendedor__1":                     true,
	"Reembolso Shopee":                            true,
	"Peso total SKU":                              true,
	"Número de produtos pedidos":                  true,
	"Peso total do pedido":                        true,
	"Cupom do vendedor":                           true,
	"Seller Absorbed Coin Cashback":               true,
	"Cupom Shopee":                                true,
	"Desconto Shopee da Leve Mais por Menos":      true,
	"Desconto da Leve Mais por Menos do vendedor": true,
	"Compensar Moedas Shopee":                     true,
	"Total descontado Cartão de Crédito":          true,
	"Valor Total":                                 true,
	"Taxa de envio pagas pelo comprador":          true,
	"Desconto de Frete Aproximado":                true,
	"Taxa de Envio Reversa":                       true,
	"Taxa de transação":                           true,
	"Taxa de comissão":                            true,
	"Taxa de serviço":                             true,
	"Total global":                                true,
	"Valor estimado do frete":                     true,
	"CEP":                                         true,
}

// Decode converts header-addressed rows into Order records.
//
// Per-field defects coerce to defaults. A row whose cells are all empty
// is excluded entirely. A panic while decoding one row skips that row
// with a diagnostic and the batch continues. Headers with an empty name
// are skipped with a warning and their column data is dropped.
func Decode(headers []string, rows [][]any, log logging.Logger) []models.Order {
	for i, h := range headers {
		if strings.TrimSpace(h) == "" {
			log.Warn("Skipping column with empty header name",
				logging.Field{Key: logging.FieldColumn, Value: i})
		}
	}

	orders := make([]models.Order, 0, len(rows))
	for i, row := range rows {
		order, ok := decodeRow(headers, row, i, log)
		if !ok {
			continue
		}
		orders = append(orders, order)
	}

	log.Info("Decoded order records",
		logging.Field{Key: logging.FieldCount, Value: len(orders)})
	return orders
}

// DecodeKeyed converts one already-keyed record (the JSON input shape)
// into an Order using the same coercion rules as positional decoding.
func DecodeKeyed(record map[string]any, log logging.Logger) (models.Order, bool) {
	headers := make([]string, 0, len(record))
	row := make([]any, 0, len(record))
	for name, value := range record {
		headers = append(headers, name)
		row = append(row, value)
	}
	return decodeRow(headers, row, -1, log)
}

func decodeRow(headers []string, row []any, index int, log logging.Logger) (order models.Order, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("Skipping row that failed to decode",
				logging.Field{Key: logging.FieldRow, Value: index},
				logging.Field{Key: logging.FieldReason, Value: r})
			ok = false
		}
	}()

	if rowIsEmpty(row) {
		log.Debug("Skipping empty row",
			logging.Field{Key: logging.FieldRow, Value: index})
		return models.Order{}, false
	}

	order.Amounts = make(map[string]decimal.Decimal)
	order.Extra = make(map[string]string)

	for i, name := range headers {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var cell any
		if i < len(row) {
			cell = row[i]
		}
		assignField(&order, name, cell)
	}

	if t, parsed := dateutils.ParseOrderDate(order.CreatedAt); parsed {
		order.CreatedTime = &t
	} else if order.CreatedAt != "" {
		log.Debug("Order creation date could not be parsed",
			logging.Field{Key: logging.FieldOrderID, Value: order.OrderID},
			logging.Field{Key: logging.FieldValue, Value: order.CreatedAt})
	}

	return order, true
}

// assignField routes one named cell into the record. Known headers land
// in typed fields; unknown numeric columns accumulate in Amounts and
// unknown text columns in Extra.
func assignField(order *models.Order, name string, cell any) {
	if numericHeaders[name] {
		num := coerceNumber(cell)
		switch name {
		case "Preço original":
			order.OriginalPrice = num
		case "Preço acordado":
			order.UnitPriceAgreed = num
		case "Quantidade":
			order.Quantity = int(num.IntPart())
		case "Returned quantity":
			order.ReturnedQuantity = int(num.IntPart())
		case "Subtotal do produto":
			order.ProductSubtotal = num
		case "Valor Total":
			order.TotalValue = num
		case "Total global":
			order.TotalGlobal = num
		case "CEP":
			order.PostalCode = num
		default:
			order.Amounts[name] = num
		}
		return
	}

	str := coerceString(cell)
	switch name {
	case "ID do pedido":
		order.OrderID = str
	case "Status do pedido":
		order.Status = str
	case "Número de rastreamento":
		order.TrackingNumber = str
	case "Data de criação do pedido":
		order.CreatedAt = str
	case "Hora do pagamento do pedido":
		order.PaidAt = str
	case "Nome do Produto":
		order.ProductName = str
	case "Número de referência SKU":
		order.SKUReference = str
	case "Nome da variação":
		order.VariationName = str
	case "Nome de usuário (comprador)":
		order.BuyerUsername = str
	case "Nome do destinatário":
		order.RecipientName = str
	case "Endereço de entrega":
		order.Address = str
	case "Cidade":
		order.City = str
	case "UF":
		order.State = str
	case "País":
		order.Country = str
	default:
		order.Extra[name] = str
	}
}

// coerceNumber converts a cell to a decimal. Native numeric types are
// used directly; text goes through the Brazilian amount rules; anything
// else defaults to zero.
func coerceNumber(cell any) decimal.Decimal {
	switch v := cell.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	case string:
		return models.ParseAmount(v)
	default:
		return decimal.Zero
	}
}

// coerceString converts a cell to trimmed text. Native timestamps keep
// their meaning as an ISO-8601 string instead of being lost to default
// formatting.
func coerceString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func rowIsEmpty(row []any) bool {
	for _, cell := range row {
		if cell == nil {
			continue
		}
		if s, isStr := cell.(string); isStr {
			if strings.TrimSpace(s) != "" {
				return false
			}
			continue
		}
		return false
	}
	return true
}
