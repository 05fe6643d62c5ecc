package typejson_test

import (
	"reflect"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jmkw/typejson"
)

type address struct {
	Street string
	City   string
}

type invoice struct {
	ID       uuid.UUID
	Customer string
	Total    decimal.Decimal
	Paid     bool
	Lines    []line
	ShipTo   *address
}

type line struct {
	SKU      string
	Quantity int
	Price    decimal.Decimal
}

func TestRoundTrip(t *testing.T) {
	tests := []interface{}{
		true,
		false,
		0,
		-99,
		int16(1234),
		int32(-1),
		int64(1 << 40),
		float32(0.5),
		3.25,
		"",
		"plain",
		`with "quotes" and \backslash\`,
		uuid.MustParse("0e7bd95e-0c1d-4b3a-8d35-1a6f25b2a6c1"),
		[]int{},
		[]int{1, 2, 2, 1},
		[]string{"a", "a"},
		[][]bool{{true}, {}},
		address{Street: "1 Main St", City: "Springfield"},
		[]address{{City: "A"}, {City: "B"}},
	}
	for _, want := range tests {
		data, err := typejson.Marshal(want)
		if err != nil {
			t.Errorf("Marshal(%v): %v", want, err)
			continue
		}
		store := reflect.New(reflect.TypeOf(want))
		if err := typejson.Unmarshal(data, store.Interface()); err != nil {
			t.Errorf("Unmarshal(%s): %v", data, err)
			continue
		}
		if got := store.Elem().Interface(); !reflect.DeepEqual(got, want) {
			t.Errorf("round trip of %v via %s gave %v", want, data, got)
		}
	}
}

func TestRoundTripInvoice(t *testing.T) {
	want := invoice{
		ID:       uuid.MustParse("c56a4180-65aa-42ec-a945-5fd21dec0538"),
		Customer: "ACME \"Quality\" Tools",
		Total:    decimal.RequireFromString("1999.95"),
		Paid:     true,
		Lines: []line{
			{SKU: "bolt-m4", Quantity: 500, Price: decimal.RequireFromString("0.04")},
			{SKU: "anvil", Quantity: 1, Price: decimal.RequireFromString("1979.95")},
		},
		ShipTo: &address{Street: "2 Side St", City: "Shelbyville"},
	}
	data, err := typejson.Marshal(want)
	require.NoError(t, err)

	var got invoice
	require.NoError(t, typejson.Unmarshal(data, &got))

	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.Customer, got.Customer)
	require.True(t, want.Total.Equal(got.Total), "total %s != %s", want.Total, got.Total)
	require.Equal(t, want.Paid, got.Paid)
	require.Equal(t, want.ShipTo, got.ShipTo)
	require.Len(t, got.Lines, 2)
	for i := range want.Lines {
		require.Equal(t, want.Lines[i].SKU, got.Lines[i].SKU)
		require.Equal(t, want.Lines[i].Quantity, got.Lines[i].Quantity)
		require.True(t, want.Lines[i].Price.Equal(got.Lines[i].Price))
	}

	// a second marshal of the decoded value reproduces the text
	again, err := typejson.Marshal(got)
	require.NoError(t, err)
	if string(again) != string(data) {
		t.Errorf("marshal not stable:\n%s", diff.LineDiff(string(data), string(again)))
	}
}

func TestPointEndToEnd(t *testing.T) {
	type Point struct {
		X int
		Y int
	}
	data, err := typejson.Marshal(Point{X: 1, Y: 2})
	require.NoError(t, err)
	require.Equal(t, `{"X":1,"Y":2}`, string(data))

	var p Point
	require.NoError(t, typejson.Unmarshal(data, &p))
	require.Equal(t, Point{X: 1, Y: 2}, p)
}

func TestTypedFacade(t *testing.T) {
	codec := typejson.As[[]address](typejson.New())

	data, err := codec.Encode([]address{{Street: "s", City: "c"}})
	require.NoError(t, err)
	require.Equal(t, `[{"Street":"s","City":"c"}]`, string(data))

	got, err := codec.Decode(data)
	require.NoError(t, err)
	require.Equal(t, []address{{Street: "s", City: "c"}}, got)

	_, err = codec.Decode([]byte(`[{`))
	require.ErrorIs(t, err, typejson.ErrMalformedInput)
}

func TestValid(t *testing.T) {
	tests := []struct {
		have string
		want bool
	}{
		{`{"X":1,"Y":2}`, true},
		{`{ "a" : [ 1 , 2.5e3 , "s" , null ] }`, true},
		{"[]", true},
		{"{}", true},
		{`"closed"`, true},
		{"true", true},
		{"-12,500", true},
		{"", false},
		{"[1,2", false},
		{`{"a":1`, false},
		{`{"a" 1}`, false},
		{`"open`, false},
		{"nonsense", false},
		{"[[1]", false},
	}
	for _, test := range tests {
		if got := typejson.Valid([]byte(test.have)); got != test.want {
			t.Errorf("Valid(%q) = %v, want %v", test.have, got, test.want)
		}
	}
}

func TestUnknownKeysTolerated(t *testing.T) {
	var p struct{ X int }
	require.NoError(t, typejson.Unmarshal([]byte(`{"x":1,"extra":2,"X":3}`), &p))
	require.Equal(t, 3, p.X)
}
