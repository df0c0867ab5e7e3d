package geo_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-exp/geocore_go/pkg/geo"
)

func TestInvalidIDs(t *testing.T) {
	cryo := geo.InvalidCryostatID()
	require.False(t, cryo.Valid)
	require.Equal(t, geo.InvalidCryostatIndex, cryo.Cryostat)

	wire := geo.InvalidWireID()
	require.False(t, wire.Valid)
	require.Equal(t, geo.InvalidCryostatIndex, wire.IndexAt(geo.LevelCryostat))
	require.Equal(t, geo.InvalidTPCIndex, wire.IndexAt(geo.LevelTPC))
	require.Equal(t, geo.InvalidPlaneIndex, wire.IndexAt(geo.LevelPlane))
	require.Equal(t, geo.InvalidWireIndex, wire.IndexAt(geo.LevelWire))

	opdet := geo.InvalidOpDetID()
	require.False(t, opdet.Valid)
	require.Equal(t, geo.InvalidOpDetIndex, opdet.OpDet)
}

func TestConstructors(t *testing.T) {
	wire := geo.NewWireID(2, 3, 1, 9)
	require.True(t, wire.Valid)
	require.Equal(t, uint32(2), wire.Cryostat)
	require.Equal(t, uint32(3), wire.TPC)
	require.Equal(t, uint32(1), wire.Plane)
	require.Equal(t, uint32(9), wire.Wire)

	// nested construction is equivalent to the flattened one
	nested := geo.NewCryostatID(2).TPCID(3).PlaneID(1).WireID(9)
	require.True(t, nested.Equal(wire))
	require.True(t, nested.Valid)

	require.True(t, wire.ParentID().Equal(geo.NewPlaneID(2, 3, 1)))
	require.True(t, wire.ParentID().ParentID().Equal(geo.NewTPCID(2, 3)))

	opdet := geo.NewCryostatID(0).OpDetID(5)
	require.True(t, opdet.Valid)
	require.Equal(t, uint32(5), opdet.OpDet)
}

func TestChildOfInvalidParent(t *testing.T) {
	// Building on an invalid parent is not rejected: the indices stay
	// live for formatting and comparison, only validity reports false.
	plane := geo.InvalidTPCID().PlaneID(2)
	require.False(t, plane.Valid)
	require.Equal(t, uint32(2), plane.Plane)
	require.Equal(t, geo.InvalidTPCIndex, plane.TPC)
}

func TestLevels(t *testing.T) {
	require.Equal(t, geo.LevelCryostat, geo.NewCryostatID(0).Level())
	require.Equal(t, geo.LevelTPC, geo.NewTPCID(0, 0).Level())
	require.Equal(t, geo.LevelOpDet, geo.NewOpDetID(0, 0).Level())
	require.Equal(t, geo.LevelPlane, geo.NewPlaneID(0, 0, 0).Level())
	require.Equal(t, geo.LevelWire, geo.NewWireID(0, 0, 0, 0).Level())
	require.Equal(t, geo.Level(4), geo.NLevels)
}

func TestIndexRoundTrip(t *testing.T) {
	wire := geo.NewWireID(1, 2, 3, 4)

	for level := geo.LevelCryostat; level <= geo.LevelWire; level++ {
		wire.SetIndexAt(level, uint32(40+level))
		require.Equal(t, uint32(40+level), wire.IndexAt(level))
	}

	*wire.DeepestIndex() = 7
	require.Equal(t, uint32(7), wire.Wire)
	require.Equal(t, uint32(7), wire.RelIndexAt(0))
	require.Equal(t, wire.Plane, wire.RelIndexAt(1))
	require.Equal(t, wire.Cryostat, wire.RelIndexAt(3))
}

func TestLevelOutOfRange(t *testing.T) {
	tpc := geo.NewTPCID(0, 1)
	require.Panics(t, func() { tpc.IndexAt(geo.LevelPlane) })
	require.Panics(t, func() { tpc.SetIndexAt(geo.LevelWire, 0) })
	require.Panics(t, func() { tpc.RelIndexAt(2) })

	cryo := geo.NewCryostatID(0)
	require.Panics(t, func() { cryo.IndexAt(geo.LevelTPC) })
	require.NotPanics(t, func() { cryo.RelIndexAt(0) })
}

func TestCmpTieBreak(t *testing.T) {
	// the ancestor level dominates regardless of the own index
	left := geo.NewPlaneID(1, 5, 9)
	right := geo.NewPlaneID(1, 6, 0)
	require.True(t, left.Less(right))
	require.Negative(t, left.Cmp(right))
	require.Positive(t, right.Cmp(left))

	// same ancestors: the own index decides
	require.True(t, geo.NewPlaneID(1, 5, 2).Less(geo.NewPlaneID(1, 5, 3)))
	require.Zero(t, geo.NewPlaneID(1, 5, 2).Cmp(geo.NewPlaneID(1, 5, 2)))
}

func TestValidityIgnoredByComparison(t *testing.T) {
	valid := geo.NewPlaneID(0, 0, 0)
	invalid := valid
	invalid.Valid = false

	require.True(t, valid.Equal(invalid))
	require.Zero(t, valid.Cmp(invalid))
	require.False(t, valid.Less(invalid))
	require.True(t, valid.Valid)
	require.False(t, invalid.Valid)
}

func TestOrderingConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ids := make([]geo.WireID, 60)
	for i := range ids {
		// small ranges to force plenty of ties at every level
		ids[i] = geo.NewWireID(
			uint32(rng.Intn(2)), uint32(rng.Intn(3)),
			uint32(rng.Intn(3)), uint32(rng.Intn(4)))
	}

	for _, a := range ids {
		for _, b := range ids {
			require.Equal(t, -b.Cmp(a), a.Cmp(b), "antisymmetry for %s vs %s", a, b)
			require.Equal(t, a.Cmp(b) < 0, a.Less(b))
			require.Equal(t, a.Cmp(b) == 0, a.Equal(b))
			for _, c := range ids {
				if a.Cmp(b) < 0 && b.Cmp(c) < 0 {
					require.Negative(t, a.Cmp(c), "transitivity for %s < %s < %s", a, b, c)
				}
			}
		}
	}
}

func TestStringFormat(t *testing.T) {
	require.Equal(t, "C:1", geo.NewCryostatID(1).String())
	require.Equal(t, "C:1 T:3", geo.NewTPCID(1, 3).String())
	require.Equal(t, "C:0 O:3", geo.NewOpDetID(0, 3).String())
	require.Equal(t, "C:1 T:3 P:2", geo.NewPlaneID(1, 3, 2).String())
	require.Equal(t, "C:1 T:3 P:2 W:9", geo.NewWireID(1, 3, 2, 9).String())

	// fmt uses the Stringer of the exact type
	require.Equal(t, "C:1 T:3 P:2 W:9", fmt.Sprintf("%s", geo.NewWireID(1, 3, 2, 9)))
}
