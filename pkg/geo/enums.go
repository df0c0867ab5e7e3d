package geo

import "fmt"

// Coordinate labels one axis of the global coordinate system.
type Coordinate int

const (
	XCoord Coordinate = iota // X coordinate
	YCoord                   // Y coordinate
	ZCoord                   // Z coordinate
)

func (c Coordinate) String() string {
	switch c {
	case XCoord:
		return "X"
	case YCoord:
		return "Y"
	case ZCoord:
		return "Z"
	}
	return fmt.Sprintf("Coordinate(%d)", int(c))
}

// View is the projection a wire plane measures.
type View int

const (
	ViewU       View = iota // planes which measure U
	ViewV                   // planes which measure V
	ViewW                   // planes which measure W (third view)
	View3D                  // 3D objects: hits, clusters, prongs
	ViewUnknown             // unknown view
)

// ViewZ labels planes with vertical wires measuring the Z direction.
// It is the same projection as ViewW.
const ViewZ = ViewW

func (v View) String() string {
	switch v {
	case ViewU:
		return "U"
	case ViewV:
		return "V"
	case ViewW:
		return "W"
	case View3D:
		return "3D"
	case ViewUnknown:
		return "?"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// Orientation describes whether a plane lies horizontally or vertically.
type Orientation int

const (
	Horizontal Orientation = iota // planes in the horizontal plane
	Vertical                      // planes in the vertical plane
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// SigType classifies the signal a plane produces.
type SigType int

const (
	Induction   SigType = iota // signal from induction planes
	Collection                 // signal from collection planes
	MysteryType                // who knows?
)

// SignalTypeName returns the name of the given signal type, or an
// error for values outside the enumeration.
func SignalTypeName(sigType SigType) (string, error) {
	switch sigType {
	case Induction:
		return "induction", nil
	case Collection:
		return "collection", nil
	case MysteryType:
		return "unknown", nil
	}
	return "", fmt.Errorf("geo: unexpected signal type #%d", int(sigType))
}

func (s SigType) String() string {
	name, err := SignalTypeName(s)
	if err != nil {
		return fmt.Sprintf("SigType(%d)", int(s))
	}
	return name
}

// DriftDirection is the sign of the drift, positive or negative.
// It does not distinguish drift axes: negative x drift and negative z
// drift are both NegDrift.
type DriftDirection int

const (
	UnknownDrift DriftDirection = iota // drift direction is unknown
	PosDrift                           // drift towards positive values
	NegDrift                           // drift towards negative values
)

// Aliases for drift along the X axis.
const (
	PosXDrift = PosDrift
	NegXDrift = NegDrift
)

func (d DriftDirection) String() string {
	switch d {
	case UnknownDrift:
		return "unknown"
	case PosDrift:
		return "positive"
	case NegDrift:
		return "negative"
	}
	return fmt.Sprintf("DriftDirection(%d)", int(d))
}
