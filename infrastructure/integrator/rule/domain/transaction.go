package ruledomain

import "github.com/shopspring/decimal"

// Transaction representa uma compra associada a um assinante.
// Amount é sempre interpretado junto de Currency.
type Transaction struct {
	ID           string           `json:"id"`
	SubscriberID string           `json:"subscriber_id"`
	Created      Timestamp        `json:"created"`
	Amount       decimal.Decimal  `json:"amount"`
	Currency     string           `json:"currency"`
	OrderID      *string          `json:"order_id"`
	Products     []map[string]any `json:"products"`
}

// UnmarshalJSON garante products como lista vazia
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction

	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*t = Transaction(decoded)
	if t.Products == nil {
		t.Products = []map[string]any{}
	}

	return nil
}
