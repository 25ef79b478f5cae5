package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyMarshalTwoDecimalString(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromFloat(9.99), `"9.99"`},
		{decimal.NewFromInt(5), `"5.00"`},
		{decimal.NewFromFloat(19.989), `"19.99"`},
		{decimal.Zero, `"0.00"`},
	}
	for _, tc := range cases {
		got, err := json.Marshal(NewMoneyFromDecimal(tc.in))
		if err != nil {
			t.Fatalf("marshal %s failed: %v", tc.in, err)
		}
		if string(got) != tc.want {
			t.Fatalf("marshal %s want %s got %s", tc.in, tc.want, got)
		}
	}
}

func TestMoneyUnmarshalStringAndNumber(t *testing.T) {
	var fromString Money
	if err := json.Unmarshal([]byte(`"19.98"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if fromString.String() != "19.98" {
		t.Fatalf("unmarshal string want 19.98 got %s", fromString)
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`5`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if fromNumber.String() != "5.00" {
		t.Fatalf("unmarshal number want 5.00 got %s", fromNumber)
	}
}

func TestMoneyJSONRoundTripInCart(t *testing.T) {
	cart := Cart{
		UUID:          "sess-1",
		PaymentMethod: "unknown",
		Items: []CartItem{
			{
				UUID:        "item-1",
				ProductUUID: "prod-1",
				Price:       NewMoneyFromDecimal(decimal.NewFromFloat(9.99)),
				Quantity:    2,
			},
		},
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		t.Fatalf("marshal cart failed: %v", err)
	}
	var got Cart
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(got.Items))
	}
	if got.Items[0].Price.String() != "9.99" {
		t.Fatalf("price want 9.99 got %s", got.Items[0].Price)
	}
	if got.Items[0].Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", got.Items[0].Quantity)
	}
}
