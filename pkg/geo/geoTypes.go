// Package geo defines the identifiers and simple data types used to
// address elements of the detector geometry: cryostats, TPCs, optical
// detectors, wire planes and wires.
//
// Identifiers are plain value types. Each level of the hierarchy embeds
// the identifier of its parent level, so that a WireID carries the full
// path from the cryostat down to the wire. Identifiers are freely
// copyable and safe to share between goroutines for reading.
package geo

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Level is the depth of a geometry element in the hierarchy.
type Level uint32

// Geometry hierarchy depths. Optical detectors hang directly off the
// cryostat, at the same depth as TPCs.
const (
	LevelCryostat Level = 0
	LevelTPC      Level = 1
	LevelOpDet    Level = 1
	LevelPlane    Level = 2
	LevelWire     Level = 3
	NLevels       Level = 4
)

// Index types for each geometry level. They are all plain unsigned
// words; the ID structs below are what keeps levels from being mixed up.
type (
	CryostatIndex = uint32
	TPCIndex      = uint32
	OpDetIndex    = uint32
	PlaneIndex    = uint32
	WireIndex     = uint32
)

// Sentinel index values marking "no such element". Not the same thing
// as index 0, which is a legitimate first element.
const (
	InvalidCryostatIndex CryostatIndex = math.MaxUint32
	InvalidTPCIndex      TPCIndex      = math.MaxUint32
	InvalidOpDetIndex    OpDetIndex    = math.MaxUint32
	InvalidPlaneIndex    PlaneIndex    = math.MaxUint32
	InvalidWireIndex     WireIndex     = math.MaxUint32
)

// ThreeWay returns a negative, zero or positive value according to the
// order of a and b.
func ThreeWay[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}

func levelPanic(typ string, level, own Level) {
	panic(fmt.Sprintf("geo: level %d out of range for %s (deepest level %d)", level, typ, own))
}

func relLevel(typ string, own, above Level) Level {
	if above > own {
		panic(fmt.Sprintf("geo: no level %d above %s (deepest level %d)", above, typ, own))
	}
	return own - above
}

// CryostatID identifies a cryostat. It is the root of the geometry
// hierarchy: every deeper identifier embeds one.
//
// The Valid flag records whether the ID points to an actual element.
// It is deliberately kept out of comparisons: Cmp, Equal and Less look
// at indices only, so an invalid C:0 and a valid C:0 denote the same
// element. Native struct equality (==) does see the flag; use Equal for
// identity.
type CryostatID struct {
	Valid    bool          // whether this ID points to a valid element
	Cryostat CryostatIndex // index of the cryostat
}

// NewCryostatID returns a valid ID for the cryostat with index c.
func NewCryostatID(c CryostatIndex) CryostatID {
	return CryostatID{Valid: true, Cryostat: c}
}

// InvalidCryostatID returns the canonical invalid cryostat ID.
func InvalidCryostatID() CryostatID {
	return CryostatID{Cryostat: InvalidCryostatIndex}
}

// Level returns the hierarchy depth of this ID type.
func (CryostatID) Level() Level { return LevelCryostat }

// DeepestIndex returns a pointer to the index of this ID's own level.
func (id *CryostatID) DeepestIndex() *CryostatIndex { return &id.Cryostat }

// IndexAt returns the index stored at the given absolute level.
// It panics if level is below this ID's own level.
func (id CryostatID) IndexAt(level Level) uint32 {
	if level != LevelCryostat {
		levelPanic("CryostatID", level, LevelCryostat)
	}
	return id.Cryostat
}

// SetIndexAt overwrites the index stored at the given absolute level.
// It panics if level is below this ID's own level.
func (id *CryostatID) SetIndexAt(level Level, v uint32) {
	if level != LevelCryostat {
		levelPanic("CryostatID", level, LevelCryostat)
	}
	id.Cryostat = v
}

// RelIndexAt returns the index stored the given number of levels above
// this ID's own level.
func (id CryostatID) RelIndexAt(above Level) uint32 {
	return id.IndexAt(relLevel("CryostatID", LevelCryostat, above))
}

// Cmp compares two cryostat IDs, ignoring validity. The result of
// comparing invalid IDs is well defined but not meaningful.
func (id CryostatID) Cmp(other CryostatID) int {
	return ThreeWay(id.Cryostat, other.Cryostat)
}

// Equal reports whether the two IDs point to the same cryostat
// (validity is ignored).
func (id CryostatID) Equal(other CryostatID) bool { return id.Cmp(other) == 0 }

// Less orders cryostats by increasing index (validity is ignored).
func (id CryostatID) Less(other CryostatID) bool { return id.Cmp(other) < 0 }

func (id CryostatID) String() string { return fmt.Sprintf("C:%d", id.Cryostat) }

// TPCID identifies a TPC within a cryostat.
type TPCID struct {
	CryostatID
	TPC TPCIndex // index of the TPC within its cryostat
}

// NewTPCID returns a valid ID for the TPC with index t in cryostat c.
func NewTPCID(c CryostatIndex, t TPCIndex) TPCID {
	return TPCID{CryostatID: NewCryostatID(c), TPC: t}
}

// InvalidTPCID returns the canonical invalid TPC ID.
func InvalidTPCID() TPCID {
	return TPCID{CryostatID: InvalidCryostatID(), TPC: InvalidTPCIndex}
}

// TPCID returns the ID of the TPC with index t inside this cryostat.
// Validity is inherited from the cryostat: building on an invalid
// parent yields an ID that formats and compares like any other but
// reports Valid == false.
func (id CryostatID) TPCID(t TPCIndex) TPCID {
	return TPCID{CryostatID: id, TPC: t}
}

// ParentID returns the ID of the cryostat containing this TPC.
func (id TPCID) ParentID() CryostatID { return id.CryostatID }

// Level returns the hierarchy depth of this ID type.
func (TPCID) Level() Level { return LevelTPC }

// DeepestIndex returns a pointer to the index of this ID's own level.
func (id *TPCID) DeepestIndex() *TPCIndex { return &id.TPC }

// IndexAt returns the index stored at the given absolute level.
func (id TPCID) IndexAt(level Level) uint32 {
	switch level {
	case LevelCryostat:
		return id.Cryostat
	case LevelTPC:
		return id.TPC
	}
	levelPanic("TPCID", level, LevelTPC)
	return 0
}

// SetIndexAt overwrites the index stored at the given absolute level.
func (id *TPCID) SetIndexAt(level Level, v uint32) {
	switch level {
	case LevelCryostat:
		id.Cryostat = v
	case LevelTPC:
		id.TPC = v
	default:
		levelPanic("TPCID", level, LevelTPC)
	}
}

// RelIndexAt returns the index stored the given number of levels above
// this ID's own level.
func (id TPCID) RelIndexAt(above Level) uint32 {
	return id.IndexAt(relLevel("TPCID", LevelTPC, above))
}

// Cmp compares two TPC IDs: by cryostat first, by TPC index on a tie.
// Validity is ignored.
func (id TPCID) Cmp(other TPCID) int {
	if res := id.CryostatID.Cmp(other.CryostatID); res != 0 {
		return res
	}
	return ThreeWay(id.TPC, other.TPC)
}

// Equal reports whether the two IDs point to the same TPC.
func (id TPCID) Equal(other TPCID) bool { return id.Cmp(other) == 0 }

// Less orders TPC IDs by increasing cryostat, then TPC.
func (id TPCID) Less(other TPCID) bool { return id.Cmp(other) < 0 }

func (id TPCID) String() string {
	return fmt.Sprintf("%s T:%d", id.CryostatID, id.TPC)
}

// OpDetID identifies an optical detector within a cryostat.
type OpDetID struct {
	CryostatID
	OpDet OpDetIndex // index of the optical detector within its cryostat
}

// NewOpDetID returns a valid ID for the optical detector with index o
// in cryostat c.
func NewOpDetID(c CryostatIndex, o OpDetIndex) OpDetID {
	return OpDetID{CryostatID: NewCryostatID(c), OpDet: o}
}

// InvalidOpDetID returns the canonical invalid optical detector ID.
func InvalidOpDetID() OpDetID {
	return OpDetID{CryostatID: InvalidCryostatID(), OpDet: InvalidOpDetIndex}
}

// OpDetID returns the ID of the optical detector with index o inside
// this cryostat, inheriting its validity.
func (id CryostatID) OpDetID(o OpDetIndex) OpDetID {
	return OpDetID{CryostatID: id, OpDet: o}
}

// ParentID returns the ID of the cryostat containing this detector.
func (id OpDetID) ParentID() CryostatID { return id.CryostatID }

// Level returns the hierarchy depth of this ID type.
func (OpDetID) Level() Level { return LevelOpDet }

// DeepestIndex returns a pointer to the index of this ID's own level.
func (id *OpDetID) DeepestIndex() *OpDetIndex { return &id.OpDet }

// IndexAt returns the index stored at the given absolute level.
func (id OpDetID) IndexAt(level Level) uint32 {
	switch level {
	case LevelCryostat:
		return id.Cryostat
	case LevelOpDet:
		return id.OpDet
	}
	levelPanic("OpDetID", level, LevelOpDet)
	return 0
}

// SetIndexAt overwrites the index stored at the given absolute level.
func (id *OpDetID) SetIndexAt(level Level, v uint32) {
	switch level {
	case LevelCryostat:
		id.Cryostat = v
	case LevelOpDet:
		id.OpDet = v
	default:
		levelPanic("OpDetID", level, LevelOpDet)
	}
}

// RelIndexAt returns the index stored the given number of levels above
// this ID's own level.
func (id OpDetID) RelIndexAt(above Level) uint32 {
	return id.IndexAt(relLevel("OpDetID", LevelOpDet, above))
}

// Cmp compares two optical detector IDs: by cryostat first, by
// detector index on a tie. Validity is ignored.
func (id OpDetID) Cmp(other OpDetID) int {
	if res := id.CryostatID.Cmp(other.CryostatID); res != 0 {
		return res
	}
	return ThreeWay(id.OpDet, other.OpDet)
}

// Equal reports whether the two IDs point to the same optical detector.
func (id OpDetID) Equal(other OpDetID) bool { return id.Cmp(other) == 0 }

// Less orders optical detector IDs by increasing cryostat, then
// detector index.
func (id OpDetID) Less(other OpDetID) bool { return id.Cmp(other) < 0 }

func (id OpDetID) String() string {
	return fmt.Sprintf("%s O:%d", id.CryostatID, id.OpDet)
}

// PlaneID identifies a wire plane within a TPC.
type PlaneID struct {
	TPCID
	Plane PlaneIndex // index of the plane within its TPC
}

// NewPlaneID returns a valid ID for the plane with index p in TPC t of
// cryostat c.
func NewPlaneID(c CryostatIndex, t TPCIndex, p PlaneIndex) PlaneID {
	return PlaneID{TPCID: NewTPCID(c, t), Plane: p}
}

// InvalidPlaneID returns the canonical invalid plane ID.
func InvalidPlaneID() PlaneID {
	return PlaneID{TPCID: InvalidTPCID(), Plane: InvalidPlaneIndex}
}

// PlaneID returns the ID of the plane with index p inside this TPC,
// inheriting its validity.
func (id TPCID) PlaneID(p PlaneIndex) PlaneID {
	return PlaneID{TPCID: id, Plane: p}
}

// ParentID returns the ID of the TPC containing this plane.
func (id PlaneID) ParentID() TPCID { return id.TPCID }

// Level returns the hierarchy depth of this ID type.
func (PlaneID) Level() Level { return LevelPlane }

// DeepestIndex returns a pointer to the index of this ID's own level.
func (id *PlaneID) DeepestIndex() *PlaneIndex { return &id.Plane }

// IndexAt returns the index stored at the given absolute level.
func (id PlaneID) IndexAt(level Level) uint32 {
	switch level {
	case LevelCryostat:
		return id.Cryostat
	case LevelTPC:
		return id.TPC
	case LevelPlane:
		return id.Plane
	}
	levelPanic("PlaneID", level, LevelPlane)
	return 0
}

// SetIndexAt overwrites the index stored at the given absolute level.
func (id *PlaneID) SetIndexAt(level Level, v uint32) {
	switch level {
	case LevelCryostat:
		id.Cryostat = v
	case LevelTPC:
		id.TPC = v
	case LevelPlane:
		id.Plane = v
	default:
		levelPanic("PlaneID", level, LevelPlane)
	}
}

// RelIndexAt returns the index stored the given number of levels above
// this ID's own level.
func (id PlaneID) RelIndexAt(above Level) uint32 {
	return id.IndexAt(relLevel("PlaneID", LevelPlane, above))
}

// Cmp compares two plane IDs: by TPC chain first, by plane index on a
// tie. Validity is ignored.
func (id PlaneID) Cmp(other PlaneID) int {
	if res := id.TPCID.Cmp(other.TPCID); res != 0 {
		return res
	}
	return ThreeWay(id.Plane, other.Plane)
}

// Equal reports whether the two IDs point to the same plane.
func (id PlaneID) Equal(other PlaneID) bool { return id.Cmp(other) == 0 }

// Less orders plane IDs by increasing TPC, then plane.
func (id PlaneID) Less(other PlaneID) bool { return id.Cmp(other) < 0 }

func (id PlaneID) String() string {
	return fmt.Sprintf("%s P:%d", id.TPCID, id.Plane)
}

// WireID identifies a single sense wire within a plane.
type WireID struct {
	PlaneID
	Wire WireIndex // index of the wire within its plane
}

// NewWireID returns a valid ID for the wire with index w in plane p of
// TPC t of cryostat c.
func NewWireID(c CryostatIndex, t TPCIndex, p PlaneIndex, w WireIndex) WireID {
	return WireID{PlaneID: NewPlaneID(c, t, p), Wire: w}
}

// InvalidWireID returns the canonical invalid wire ID.
func InvalidWireID() WireID {
	return WireID{PlaneID: InvalidPlaneID(), Wire: InvalidWireIndex}
}

// WireID returns the ID of the wire with index w inside this plane,
// inheriting its validity.
func (id PlaneID) WireID(w WireIndex) WireID {
	return WireID{PlaneID: id, Wire: w}
}

// ParentID returns the ID of the plane containing this wire.
func (id WireID) ParentID() PlaneID { return id.PlaneID }

// Level returns the hierarchy depth of this ID type.
func (WireID) Level() Level { return LevelWire }

// DeepestIndex returns a pointer to the index of this ID's own level.
func (id *WireID) DeepestIndex() *WireIndex { return &id.Wire }

// IndexAt returns the index stored at the given absolute level.
func (id WireID) IndexAt(level Level) uint32 {
	switch level {
	case LevelCryostat:
		return id.Cryostat
	case LevelTPC:
		return id.TPC
	case LevelPlane:
		return id.Plane
	case LevelWire:
		return id.Wire
	}
	levelPanic("WireID", level, LevelWire)
	return 0
}

// SetIndexAt overwrites the index stored at the given absolute level.
func (id *WireID) SetIndexAt(level Level, v uint32) {
	switch level {
	case LevelCryostat:
		id.Cryostat = v
	case LevelTPC:
		id.TPC = v
	case LevelPlane:
		id.Plane = v
	case LevelWire:
		id.Wire = v
	default:
		levelPanic("WireID", level, LevelWire)
	}
}

// RelIndexAt returns the index stored the given number of levels above
// this ID's own level.
func (id WireID) RelIndexAt(above Level) uint32 {
	return id.IndexAt(relLevel("WireID", LevelWire, above))
}

// Cmp compares two wire IDs: by plane chain first, by wire index on a
// tie. Validity is ignored.
func (id WireID) Cmp(other WireID) int {
	if res := id.PlaneID.Cmp(other.PlaneID); res != 0 {
		return res
	}
	return ThreeWay(id.Wire, other.Wire)
}

// Equal reports whether the two IDs point to the same wire.
func (id WireID) Equal(other WireID) bool { return id.Cmp(other) == 0 }

// Less orders wire IDs by increasing plane, then wire.
func (id WireID) Less(other WireID) bool { return id.Cmp(other) < 0 }

func (id WireID) String() string {
	return fmt.Sprintf("%s W:%d", id.PlaneID, id.Wire)
}
