package geo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-exp/geocore_go/pkg/geo"
)

func TestOrigin(t *testing.T) {
	require.Equal(t, geo.MakePoint(0, 0, 0), geo.Origin())
}

func TestPointArithmetic(t *testing.T) {
	p := geo.MakePoint(1, 2, 3)
	v := geo.MakeVector(10, 20, 30)

	require.Equal(t, geo.MakePoint(11, 22, 33), p.Add(v))
	require.Equal(t, v, p.Add(v).Sub(p))
	require.Equal(t, geo.MakeVector(20, 40, 60), v.Add(v))
	require.Equal(t, geo.MakeVector(5, 10, 15), v.Scale(0.5))
}

func TestMiddlePoint(t *testing.T) {
	a := geo.MakePoint(0, -2, 4)
	b := geo.MakePoint(2, 2, 8)
	require.Equal(t, geo.MakePoint(1, 0, 6), geo.MiddlePoint(a, b))
	require.Equal(t, a, geo.MiddlePoint(a, a))
}
