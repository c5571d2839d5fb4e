package atomprop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedTable(t *testing.T) {
	tab, err := table()
	require.NoError(t, err)
	require.Len(t, tab, 12)

	c := tab[6]
	require.Equal(t, "C", c.Symbol)
	require.Equal(t, 12.011, c.Mass)
	require.Equal(t, 2, c.Period)
	require.Equal(t, 4, c.ValenceElectrons)
}

func TestParseTableErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":    "elements: [",
		"empty":     "elements: []",
		"zero Z":    "elements: [{symbol: X, z: 0, period: 1}]",
		"no period": "elements: [{symbol: C, z: 6}]",
		"duplicate": "elements: [{symbol: C, z: 6, period: 2}, {symbol: C, z: 6, period: 2}]",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseTable([]byte(doc))
			require.ErrorIs(t, err, ErrTable)
		})
	}
}
