// Package readout defines the identifiers of the readout-electronics
// hierarchy: sets of TPCs sharing readout channels, and the readout
// planes within them.
//
// The hierarchy is parallel to the geometry one and shares its root:
// the cryostat level is geo.CryostatID itself.
package readout

import (
	"fmt"
	"math"

	"github.com/next-exp/geocore_go/pkg/geo"
)

// Level is the depth of a readout element in the hierarchy.
type Level = geo.Level

// Readout hierarchy depths. The "detector" level is noticeably missing.
const (
	LevelCryostat     Level = 0
	LevelTPCset       Level = 1
	LevelReadoutPlane Level = 2
	LevelChannel      Level = 3
	NLevels           Level = 4
)

// CryostatID is the root of the readout hierarchy, shared with the
// geometry one.
type CryostatID = geo.CryostatID

// Index types for the readout levels. The TPC set index is stored in a
// half-word.
type (
	TPCsetIndex = uint16
	ROPIndex    = uint32
)

// Sentinel index values marking "no such element".
const (
	InvalidTPCsetIndex TPCsetIndex = math.MaxUint16
	InvalidROPIndex    ROPIndex    = math.MaxUint32
)

// TPCsetID identifies a set of TPCs within a cryostat. The set is
// defined by not sharing readout channels with any TPC outside it.
//
// As for the geometry IDs, validity never participates in Cmp, Equal
// or Less; use Equal rather than == for identity.
type TPCsetID struct {
	CryostatID
	TPCset TPCsetIndex // index of the TPC set within its cryostat
}

// NewTPCsetID returns a valid ID for the TPC set with index s in
// cryostat c.
func NewTPCsetID(c geo.CryostatIndex, s TPCsetIndex) TPCsetID {
	return TPCsetID{CryostatID: geo.NewCryostatID(c), TPCset: s}
}

// TPCsetIDAt returns the ID of the TPC set with index s inside the
// given cryostat, inheriting its validity. Building on an invalid
// parent yields an ID that formats and compares like any other but
// reports Valid == false.
func TPCsetIDAt(cryo CryostatID, s TPCsetIndex) TPCsetID {
	return TPCsetID{CryostatID: cryo, TPCset: s}
}

// InvalidTPCsetID returns the canonical invalid TPC set ID.
func InvalidTPCsetID() TPCsetID {
	return TPCsetID{CryostatID: geo.InvalidCryostatID(), TPCset: InvalidTPCsetIndex}
}

// ParentID returns the ID of the cryostat containing this TPC set.
func (id TPCsetID) ParentID() CryostatID { return id.CryostatID }

// Level returns the hierarchy depth of this ID type.
func (TPCsetID) Level() Level { return LevelTPCset }

// DeepestIndex returns a pointer to the index of this ID's own level.
func (id *TPCsetID) DeepestIndex() *TPCsetIndex { return &id.TPCset }

// IndexAt returns the index stored at the given absolute level.
// It panics if level is below this ID's own level.
func (id TPCsetID) IndexAt(level Level) uint32 {
	switch level {
	case LevelCryostat:
		return id.Cryostat
	case LevelTPCset:
		return uint32(id.TPCset)
	}
	panic(fmt.Sprintf("readout: level %d out of range for TPCsetID (deepest level %d)", level, LevelTPCset))
}

// SetIndexAt overwrites the index stored at the given absolute level.
// Values written to the TPC set level are truncated to its half-word
// storage.
func (id *TPCsetID) SetIndexAt(level Level, v uint32) {
	switch level {
	case LevelCryostat:
		id.Cryostat = v
	case LevelTPCset:
		id.TPCset = TPCsetIndex(v)
	default:
		panic(fmt.Sprintf("readout: level %d out of range for TPCsetID (deepest level %d)", level, LevelTPCset))
	}
}

// RelIndexAt returns the index stored the given number of levels above
// this ID's own level.
func (id TPCsetID) RelIndexAt(above Level) uint32 {
	if above > LevelTPCset {
		panic(fmt.Sprintf("readout: no level %d above TPCsetID (deepest level %d)", above, LevelTPCset))
	}
	return id.IndexAt(LevelTPCset - above)
}

// Cmp compares two TPC set IDs: by cryostat first, by set index on a
// tie. Validity is ignored, and the result of comparing invalid IDs is
// well defined but not meaningful.
func (id TPCsetID) Cmp(other TPCsetID) int {
	if res := id.CryostatID.Cmp(other.CryostatID); res != 0 {
		return res
	}
	return geo.ThreeWay(id.TPCset, other.TPCset)
}

// Equal reports whether the two IDs point to the same TPC set.
func (id TPCsetID) Equal(other TPCsetID) bool { return id.Cmp(other) == 0 }

// Less orders TPC set IDs by increasing cryostat, then set index.
func (id TPCsetID) Less(other TPCsetID) bool { return id.Cmp(other) < 0 }

func (id TPCsetID) String() string {
	return fmt.Sprintf("%s S:%d", id.CryostatID, id.TPCset)
}

// ROPID identifies a readout plane: a set of wire planes sharing
// readout channels within a TPC set.
type ROPID struct {
	TPCsetID
	ROP ROPIndex // index of the readout plane within its TPC set
}

// NewROPID returns a valid ID for the readout plane with index r in
// TPC set s of cryostat c.
func NewROPID(c geo.CryostatIndex, s TPCsetIndex, r ROPIndex) ROPID {
	return ROPID{TPCsetID: NewTPCsetID(c, s), ROP: r}
}

// ROPID returns the ID of the readout plane with index r inside this
// TPC set, inheriting its validity.
func (id TPCsetID) ROPID(r ROPIndex) ROPID {
	return ROPID{TPCsetID: id, ROP: r}
}

// InvalidROPID returns the canonical invalid readout plane ID.
func InvalidROPID() ROPID {
	return ROPID{TPCsetID: InvalidTPCsetID(), ROP: InvalidROPIndex}
}

// ParentID returns the ID of the TPC set containing this plane.
func (id ROPID) ParentID() TPCsetID { return id.TPCsetID }

// Level returns the hierarchy depth of this ID type.
func (ROPID) Level() Level { return LevelReadoutPlane }

// DeepestIndex returns a pointer to the index of this ID's own level.
func (id *ROPID) DeepestIndex() *ROPIndex { return &id.ROP }

// IndexAt returns the index stored at the given absolute level.
func (id ROPID) IndexAt(level Level) uint32 {
	switch level {
	case LevelCryostat:
		return id.Cryostat
	case LevelTPCset:
		return uint32(id.TPCset)
	case LevelReadoutPlane:
		return id.ROP
	}
	panic(fmt.Sprintf("readout: level %d out of range for ROPID (deepest level %d)", level, LevelReadoutPlane))
}

// SetIndexAt overwrites the index stored at the given absolute level.
func (id *ROPID) SetIndexAt(level Level, v uint32) {
	switch level {
	case LevelCryostat:
		id.Cryostat = v
	case LevelTPCset:
		id.TPCset = TPCsetIndex(v)
	case LevelReadoutPlane:
		id.ROP = v
	default:
		panic(fmt.Sprintf("readout: level %d out of range for ROPID (deepest level %d)", level, LevelReadoutPlane))
	}
}

// RelIndexAt returns the index stored the given number of levels above
// this ID's own level.
func (id ROPID) RelIndexAt(above Level) uint32 {
	if above > LevelReadoutPlane {
		panic(fmt.Sprintf("readout: no level %d above ROPID (deepest level %d)", above, LevelReadoutPlane))
	}
	return id.IndexAt(LevelReadoutPlane - above)
}

// Cmp compares two readout plane IDs: by TPC set chain first, by plane
// index on a tie. Validity is ignored.
func (id ROPID) Cmp(other ROPID) int {
	if res := id.TPCsetID.Cmp(other.TPCsetID); res != 0 {
		return res
	}
	return geo.ThreeWay(id.ROP, other.ROP)
}

// Equal reports whether the two IDs point to the same readout plane.
func (id ROPID) Equal(other ROPID) bool { return id.Cmp(other) == 0 }

// Less orders readout plane IDs by increasing TPC set, then plane.
func (id ROPID) Less(other ROPID) bool { return id.Cmp(other) < 0 }

func (id ROPID) String() string {
	return fmt.Sprintf("%s R:%d", id.TPCsetID, id.ROP)
}
