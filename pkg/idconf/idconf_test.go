package idconf_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/next-exp/geocore_go/pkg/geo"
	"github.com/next-exp/geocore_go/pkg/idconf"
	"github.com/next-exp/geocore_go/pkg/readout"
)

// decode is a test helper unmarshalling a configuration literal.
func decode[T any](t *testing.T, text string) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	return out
}

func TestReadWireID(t *testing.T) {
	cfg := decode[idconf.WireIDConfig](t, `{"C":2,"T":3,"P":1,"W":9}`)

	wire, err := idconf.ReadID[geo.WireID](cfg)
	require.NoError(t, err)
	require.True(t, wire.Equal(geo.NewWireID(2, 3, 1, 9)))
	require.True(t, wire.Valid)
}

func TestReadInvalidID(t *testing.T) {
	// an explicitly invalid table decodes to the canonical invalid ID
	// no matter which sibling fields are present
	for _, text := range []string{
		`{"isValid":false}`,
		`{"isValid":false,"C":1}`,
		`{"isValid":false,"C":1,"T":2,"P":0,"W":0}`,
	} {
		cfg := decode[idconf.WireIDConfig](t, text)
		wire, err := idconf.ReadID[geo.WireID](cfg)
		require.NoError(t, err, text)
		require.Equal(t, geo.InvalidWireID(), wire, text)
	}
}

func TestValidateMissingField(t *testing.T) {
	cases := []struct {
		text  string
		field string
	}{
		{`{}`, "C"},
		{`{"C":1}`, "T"},
		{`{"C":1,"T":2}`, "P"},
		{`{"C":1,"T":2,"P":0}`, "W"},
		{`{"isValid":true,"T":2}`, "C"},
	}
	for _, tc := range cases {
		cfg := decode[idconf.WireIDConfig](t, tc.text)
		_, err := idconf.ReadID[geo.WireID](cfg)
		require.Error(t, err, tc.text)

		var missing *idconf.MissingFieldError
		require.ErrorAs(t, err, &missing, tc.text)
		require.Equal(t, tc.field, missing.Field, tc.text)
	}
}

func TestReadOptionalID(t *testing.T) {
	type params struct {
		Plane *idconf.PlaneIDConfig `json:"plane"`
	}

	p := decode[params](t, `{}`)
	_, ok, err := idconf.ReadOptionalID[geo.PlaneID](p.Plane)
	require.NoError(t, err)
	require.False(t, ok)

	def := geo.NewPlaneID(0, 1, 2)
	plane, err := idconf.ReadOptionalIDOr[geo.PlaneID](p.Plane, def)
	require.NoError(t, err)
	require.True(t, plane.Equal(def))

	p = decode[params](t, `{"plane":{"C":1,"T":0,"P":2}}`)
	plane, ok, err = idconf.ReadOptionalID[geo.PlaneID](p.Plane)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, plane.Equal(geo.NewPlaneID(1, 0, 2)))
}

func TestReadIDSequence(t *testing.T) {
	cfgs := decode[[]idconf.PlaneIDConfig](t,
		`[{"C":0,"T":1,"P":0},{"C":0,"T":1,"P":1},{"C":0,"T":1,"P":2}]`)

	planes, err := idconf.ReadIDSequence[geo.PlaneID](cfgs)
	require.NoError(t, err)

	want := []geo.PlaneID{
		geo.NewPlaneID(0, 1, 0),
		geo.NewPlaneID(0, 1, 1),
		geo.NewPlaneID(0, 1, 2),
	}
	require.Empty(t, cmp.Diff(want, planes))

	empty, err := idconf.ReadIDSequence[geo.PlaneID]([]idconf.PlaneIDConfig{})
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Len(t, empty, 0)
}

func TestReadOptionalIDSequence(t *testing.T) {
	type params struct {
		Wires *[]idconf.WireIDConfig `json:"wires"`
	}

	// omitted: no value
	p := decode[params](t, `{}`)
	_, ok, err := idconf.ReadOptionalIDSequence[geo.WireID](p.Wires)
	require.NoError(t, err)
	require.False(t, ok)

	// present but empty: a zero-length value, distinguishable from omitted
	p = decode[params](t, `{"wires":[]}`)
	wires, ok, err := idconf.ReadOptionalIDSequence[geo.WireID](p.Wires)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, wires, 0)

	p = decode[params](t, `{"wires":[{"C":0,"T":0,"P":0,"W":4},{"C":0,"T":0,"P":0,"W":3}]}`)
	wires, ok, err = idconf.ReadOptionalIDSequence[geo.WireID](p.Wires)
	require.NoError(t, err)
	require.True(t, ok)
	want := []geo.WireID{
		geo.NewWireID(0, 0, 0, 4),
		geo.NewWireID(0, 0, 0, 3),
	}
	require.Empty(t, cmp.Diff(want, wires))

	// default collapse
	p = decode[params](t, `{}`)
	wires, err = idconf.ReadOptionalIDSequenceOr[geo.WireID](p.Wires, want)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(want, wires))
}

func TestReadReadoutIDs(t *testing.T) {
	setCfg := decode[idconf.TPCsetIDConfig](t, `{"C":0,"S":1}`)
	set, err := idconf.ReadID[readout.TPCsetID](setCfg)
	require.NoError(t, err)
	require.True(t, set.Equal(readout.NewTPCsetID(0, 1)))

	ropCfg := decode[idconf.ROPIDConfig](t, `{"C":0,"S":1,"R":2}`)
	rop, err := idconf.ReadID[readout.ROPID](ropCfg)
	require.NoError(t, err)
	require.True(t, rop.Equal(readout.NewROPID(0, 1, 2)))

	invalid := decode[idconf.ROPIDConfig](t, `{"isValid":false}`)
	rop, err = idconf.ReadID[readout.ROPID](invalid)
	require.NoError(t, err)
	require.Equal(t, readout.InvalidROPID(), rop)

	missing := decode[idconf.ROPIDConfig](t, `{"C":0,"S":1}`)
	_, err = idconf.ReadID[readout.ROPID](missing)
	var missingErr *idconf.MissingFieldError
	require.True(t, errors.As(err, &missingErr))
	require.Equal(t, "R", missingErr.Field)
}

func TestOpDetConfig(t *testing.T) {
	cfg := decode[idconf.OpDetIDConfig](t, `{"C":1,"O":7}`)
	opdet, err := idconf.ReadID[geo.OpDetID](cfg)
	require.NoError(t, err)
	require.True(t, opdet.Equal(geo.NewOpDetID(1, 7)))
}
