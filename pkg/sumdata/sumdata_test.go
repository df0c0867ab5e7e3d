package sumdata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-exp/geocore_go/pkg/sumdata"
)

func TestRunDataAggregate(t *testing.T) {
	a := sumdata.NewRunData("NEXT-100")
	b := sumdata.NewRunData("NEXT-100")

	require.NoError(t, a.Aggregate(b))
	require.Equal(t, "NEXT-100", a.DetName)

	c := sumdata.NewRunData("DEMO")
	err := a.Aggregate(c)
	require.Error(t, err)

	var mismatch *sumdata.DetectorMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "NEXT-100", mismatch.Have)
	require.Equal(t, "DEMO", mismatch.Got)

	// neither operand is touched by a failed merge
	require.Equal(t, "NEXT-100", a.DetName)
	require.Equal(t, "DEMO", c.DetName)
}

func TestRunDataDefaultName(t *testing.T) {
	require.Equal(t, "nodetectorname", sumdata.NewRunData("").DetName)
}

func TestPOTSummaryAggregate(t *testing.T) {
	a := sumdata.POTSummary{TotPOT: 1.5e18, TotGoodPOT: 1.25e18, TotSpills: 1000, GoodSpills: 800}
	b := sumdata.POTSummary{TotPOT: 0.5e18, TotGoodPOT: 0.25e18, TotSpills: 400, GoodSpills: 300}

	sum := a
	sum.Aggregate(b)
	require.Equal(t, sumdata.POTSummary{
		TotPOT: 2e18, TotGoodPOT: 1.5e18, TotSpills: 1400, GoodSpills: 1100,
	}, sum)

	// commutative
	other := b
	other.Aggregate(a)
	require.Equal(t, sum, other)

	// zero is the identity
	var zero sumdata.POTSummary
	zero.Aggregate(a)
	require.Equal(t, a, zero)
}

func TestPOTSummaryString(t *testing.T) {
	p := sumdata.POTSummary{TotPOT: 2e18, TotGoodPOT: 1.5e18, TotSpills: 1400, GoodSpills: 1100}
	require.Equal(t, "This sub-run has 1400 total spills with 1100 good spills and 1.5e+18 good POT", p.String())
}

func TestGeometryConfigurationInfo(t *testing.T) {
	var info sumdata.GeometryConfigurationInfo
	require.False(t, info.IsDataValid())

	info.DataVersion = 1
	info.DetectorName = "NEXT-100"
	require.True(t, info.IsDataValid())
	require.Contains(t, info.String(), `detector "NEXT-100"`)
	require.NotContains(t, info.String(), "service configuration")

	info.DataVersion = 2
	info.GeometryServiceConfiguration = "Geometry: {}"
	require.Contains(t, info.String(), "Geometry: {}")
}
