package value_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gamedeals/internal/domain/value"
)

func TestParseNumberOrZero(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		want  decimal.Decimal
		ok    bool
	}{
		{name: "Integer", input: "85", want: decimal.NewFromInt(85), ok: true},
		{name: "Decimal", input: "9.99", want: decimal.RequireFromString("9.99"), ok: true},
		{name: "Zero", input: "0", want: decimal.Zero, ok: true},
		{name: "Absent", input: "", want: decimal.Zero, ok: false},
		{name: "Garbage", input: "n/a", want: decimal.Zero, ok: false},
		{name: "Surrounding whitespace", input: " 5", want: decimal.Zero, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got := value.ParseNumberOrZero(tc.input)
			rq.True(tc.want.Equal(got), "got %s", got)

			_, ok := value.ParseNumber(tc.input)
			rq.Equal(tc.ok, ok)
		})
	}
}

func TestDealID(t *testing.T) {
	rq := require.New(t)

	id := value.NewDealID()
	rq.NotEqual(id, value.NewDealID())

	parsed, err := value.ParseDealID(id.String())
	rq.NoError(err)
	rq.Equal(id, parsed)

	_, err = value.ParseDealID("not-an-id")
	rq.Error(err)
}
