//go:build !integration

package repository

import (
	"math"
	"testing"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func rawDoc(t *testing.T, doc bson.M) bson.Raw {
	t.Helper()
	b, err := bson.Marshal(doc)
	require.NoError(t, err)
	return bson.Raw(b)
}

func dec128(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	d, err := primitive.ParseDecimal128(s)
	require.NoError(t, err)
	return d
}

func TestProductFromRaw_Defaults(t *testing.T) {
	p, ok := productFromRaw(rawDoc(t, bson.M{"_id": "7"}))
	require.True(t, ok)

	assert.Equal(t, "7", p.ID)
	assert.Equal(t, DefaultProductName, p.Name)
	assert.Equal(t, DefaultCategory, p.Category)
	assert.Equal(t, model.KindNormal, p.Kind)
	assert.Equal(t, 1, p.MaxFlavors)
	assert.Equal(t, 0, p.Quantity)
	assert.True(t, p.Price.IsZero())
	assert.True(t, p.Active)
	assert.Empty(t, p.Size)
}

func TestProductFromRaw_MissingID(t *testing.T) {
	_, ok := productFromRaw(rawDoc(t, bson.M{"nome": "Sem id"}))
	assert.False(t, ok)
}

func TestProductFromRaw_LooseNumbers(t *testing.T) {
	tests := []struct {
		name      string
		price     interface{}
		qty       interface{}
		wantPrice string
		wantQty   int
	}{
		{name: "int32", price: int32(30), qty: int32(4), wantPrice: "30", wantQty: 4},
		{name: "int64", price: int64(12), qty: int64(2), wantPrice: "12", wantQty: 2},
		{name: "double", price: 19.9, qty: 3.0, wantPrice: "19.9", wantQty: 3},
		{name: "decimal128", price: dec128(t, "45.50"), qty: "6", wantPrice: "45.5", wantQty: 6},
		{name: "string with comma", price: "7,25", qty: "1", wantPrice: "7.25", wantQty: 1},
		{name: "negative values clamp", price: -5, qty: -3, wantPrice: "0", wantQty: 0},
		{name: "garbage", price: "abc", qty: "x", wantPrice: "0", wantQty: 0},
		{name: "NaN", price: math.NaN(), qty: math.NaN(), wantPrice: "0", wantQty: 0},
		{name: "infinity", price: math.Inf(1), qty: math.Inf(-1), wantPrice: "0", wantQty: 0},
		{name: "decimal128 NaN", price: dec128(t, "NaN"), qty: int32(2), wantPrice: "0", wantQty: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := productFromRaw(rawDoc(t, bson.M{"_id": "1", "preco": tt.price, "quantidade": tt.qty}))
			require.True(t, ok)
			assert.True(t, decimal.RequireFromString(tt.wantPrice).Equal(p.Price), "price %s", p.Price)
			assert.Equal(t, tt.wantQty, p.Quantity)
		})
	}
}

func TestProductFromRaw_QuantityFallback(t *testing.T) {
	p, ok := productFromRaw(rawDoc(t, bson.M{"_id": "1", "quantidade_estoque": 9}))
	require.True(t, ok)
	assert.Equal(t, 9, p.Quantity)

	p, ok = productFromRaw(rawDoc(t, bson.M{"_id": "1", "quantidade": 2, "quantidade_estoque": 9}))
	require.True(t, ok)
	assert.Equal(t, 2, p.Quantity)
}

func TestProductFromRaw_Status(t *testing.T) {
	tests := []struct {
		status interface{}
		want   bool
	}{
		{"on", true},
		{"ativo", true},
		{"true", true},
		{true, true},
		{"off", false},
		{"inativo", false},
		{false, false},
	}

	for _, tt := range tests {
		p, ok := productFromRaw(rawDoc(t, bson.M{"_id": "1", "status": tt.status}))
		require.True(t, ok)
		assert.Equal(t, tt.want, p.Active, "status %v", tt.status)
	}
}

func TestProductFromRaw_IDs(t *testing.T) {
	oid := primitive.NewObjectID()
	p, ok := productFromRaw(rawDoc(t, bson.M{"_id": oid}))
	require.True(t, ok)
	assert.Equal(t, oid.Hex(), p.ID)

	p, ok = productFromRaw(rawDoc(t, bson.M{"_id": int32(42)}))
	require.True(t, ok)
	assert.Equal(t, "42", p.ID)
}

func TestProductFromRaw_MaxFlavors(t *testing.T) {
	p, _ := productFromRaw(rawDoc(t, bson.M{"_id": "1", "max_sabores": 3}))
	assert.Equal(t, 3, p.MaxFlavors)
	assert.True(t, p.SupportsFlavors())

	p, _ = productFromRaw(rawDoc(t, bson.M{"_id": "1", "max_sabores": 0}))
	assert.Equal(t, 1, p.MaxFlavors)

	p, _ = productFromRaw(rawDoc(t, bson.M{"_id": "1", "tipo": "adicional", "max_sabores": 4}))
	assert.Equal(t, 1, p.MaxFlavors)
	assert.True(t, p.IsAddon())
}

func TestProductFromRaw_AddonCategories(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  []string
	}{
		{name: "array", value: bson.A{"comida", "lanche"}, want: []string{"comida", "lanche"}},
		{name: "json string", value: `["comida","bebida"]`, want: []string{"comida", "bebida"}},
		{name: "comma separated", value: "comida, sobremesa ,", want: []string{"comida", "sobremesa"}},
		{name: "broken json", value: `["comida"`, want: nil},
		{name: "empty", value: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := productFromRaw(rawDoc(t, bson.M{"_id": "a1", "tipo": "adicional", "categorias_adicionais": tt.value}))
			require.True(t, ok)
			assert.Equal(t, tt.want, p.AddonCategories)
		})
	}
}

func TestProductFromRaw_NormalIgnoresAddonCategories(t *testing.T) {
	p, _ := productFromRaw(rawDoc(t, bson.M{"_id": "1", "categorias_adicionais": bson.A{"comida"}}))
	assert.Nil(t, p.AddonCategories)
}

func TestDecimal128RoundTrip(t *testing.T) {
	for _, s := range []string{"0", "5", "12.34", "40.005"} {
		d := decimal.RequireFromString(s)
		assert.True(t, d.Equal(decimalOf(toDecimal128(d))), s)
	}
}

func TestIDFilter(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, bson.M{"_id": bson.M{"$in": bson.A{oid.Hex(), oid}}}, idFilter(oid.Hex()))
	assert.Equal(t, bson.M{"_id": bson.M{"$in": bson.A{"42", int64(42)}}}, idFilter("42"))
	assert.Equal(t, bson.M{"_id": "pizza-grande"}, idFilter("pizza-grande"))
}

func TestCartDocumentRoundTrip(t *testing.T) {
	cart := &model.Cart{
		ID:      "c1",
		Version: 3,
		Items: []model.LineItem{{
			ID:        "10" + model.ComposedMarker + "abc",
			ProductID: "10",
			Name:      "Pizza (2 sabores)",
			UnitPrice: decimal.RequireFromString("42.50"),
			Quantity:  2,
			Addons:    []model.AddonSnapshot{{ID: "a1", Name: "Borda", Price: decimal.RequireFromString("5")}},
			Flavors:   []model.FlavorSnapshot{{ID: "10", Name: "Calabresa", Price: decimal.RequireFromString("40"), Count: 1}},
			Composed:  true,
		}},
		Orders: []model.Order{{ID: "PED1", Total: decimal.RequireFromString("90"), Status: model.StatusPending}},
	}

	got := cartFromDocument(cartToDocument(cart))

	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].SameEntry(cart.Items[0]))
	assert.True(t, cart.Items[0].UnitPrice.Equal(got.Items[0].UnitPrice))
	require.Len(t, got.Orders, 1)
	assert.Equal(t, "PED1", got.Orders[0].ID)
	assert.True(t, got.Orders[0].Total.Equal(decimal.NewFromInt(90)))
	assert.Equal(t, int64(3), got.Version)
}
