package detdb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-exp/geocore_go/pkg/geo"
	"github.com/next-exp/geocore_go/pkg/readout"
	"github.com/next-exp/geocore_go/pkg/sumdata"
)

func TestWireMappingEntryToID(t *testing.T) {
	entry := wireMappingEntry{Cryostat: 0, TPC: 1, Plane: 2, Wire: 345, Channel: 1029}
	id := entry.wireID()
	require.True(t, id.Valid)
	require.True(t, id.Equal(geo.NewWireID(0, 1, 2, 345)))
}

func TestROPEntryToID(t *testing.T) {
	entry := ropEntry{Cryostat: 0, TPCset: 1, ROP: 2}
	require.True(t, entry.ropID().Equal(readout.NewROPID(0, 1, 2)))
}

func TestPOTEntryToSummary(t *testing.T) {
	entry := potEntry{TotPOT: 1e17, TotGoodPOT: 9e16, TotSpills: 120, GoodSpills: 100}
	require.Equal(t, sumdata.POTSummary{
		TotPOT: 1e17, TotGoodPOT: 9e16, TotSpills: 120, GoodSpills: 100,
	}, entry.summary())
}

func TestChannelsSorted(t *testing.T) {
	mapping := WireChannelMap{
		7: geo.NewWireID(0, 0, 0, 7),
		1: geo.NewWireID(0, 0, 0, 1),
		4: geo.NewWireID(0, 0, 1, 0),
	}
	require.Equal(t, []ChannelID{1, 4, 7}, mapping.Channels())
}
