package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShippingAddress(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    ShippingAddress
		wantErr bool
	}{
		{
			name: "trims fields",
			raw:  `{"name":" A B ","address":"1 Main St ","city":" Springfield","zipCode":"62701 ","country":"US","email":" a@b.io ","phone":" +1 555 0100\n"}`,
			want: ShippingAddress{
				Name: "A B", Address: "1 Main St", City: "Springfield", ZipCode: "62701", Country: "US",
				Email: "a@b.io", Phone: "+1 555 0100",
			},
		},
		{
			name:    "empty",
			raw:     "  ",
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     "1 Main St, Springfield",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseShippingAddress(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidShippingAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestShippingAddress_MarshalRoundTrip(t *testing.T) {
	addr := ShippingAddress{Name: "A B", Address: "1 Main St", City: "Springfield", ZipCode: "62701", Email: "a@b.c"}

	raw, err := addr.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, raw, "address2", "empty optional fields are omitted")

	got, err := ParseShippingAddress(raw)
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}

func TestProviderOrder_Gob(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order := ProviderOrder{
		ID:         "42",
		ExternalID: "order-1",
		Status:     "fulfilled",
		Shipping:   "STANDARD",
		Created:    created,
		Updated:    created.Add(time.Hour),
		Shipments: []Shipment{
			{Carrier: "USPS", TrackingNumber: "9400", TrackingURL: "https://track/9400"},
		},
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got ProviderOrder
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order, got)

	assert.Error(t, new(ProviderOrder).Unmarshal([]byte("garbage")))
}

func TestProduct_IsProviderFulfilled(t *testing.T) {
	assert.True(t, Product{FulfillmentType: FulfillmentPrintful}.IsProviderFulfilled())
	assert.False(t, Product{FulfillmentType: FulfillmentManual}.IsProviderFulfilled())
}
