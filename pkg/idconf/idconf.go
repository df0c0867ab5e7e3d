// Package idconf bridges validated configuration tables to the
// geometry and readout identifier types.
//
// A configuration table carries one field per hierarchy level, named
// with the same letters the identifiers print with, plus an optional
// boolean "isValid" flag at the cryostat level:
//
//	{ "C": 0, "T": 1, "P": 2 }
//	{ "isValid": false }
//
// The flag defaults to true. When it is false the index fields may be
// omitted and the table decodes to the canonical invalid identifier;
// when it is true every index field up to the table's own level is
// required, and Validate reports the first missing one.
//
// Four read primitives cover the supported parameter shapes; the shape
// the parameter field is declared with selects the function, which is
// this package's rendition of a uniform read interface:
//
//	value             WireIDConfig     ReadID
//	optional value    *WireIDConfig    ReadOptionalID / ReadOptionalIDOr
//	sequence          []WireIDConfig   ReadIDSequence
//	optional sequence *[]WireIDConfig  ReadOptionalIDSequence / ReadOptionalIDSequenceOr
//
// A nil optional sequence ("omitted") and an empty one are distinct:
// the former reports no value, the latter a present, zero-length list.
//
// The conversions themselves never validate: ID() trusts that Validate
// ran and substitutes the sentinel index for any field still missing.
package idconf

import (
	"fmt"

	"github.com/next-exp/geocore_go/pkg/geo"
	"github.com/next-exp/geocore_go/pkg/readout"
)

// MissingFieldError reports a required index field absent from a
// configuration table whose isValid flag is set.
type MissingFieldError struct {
	Table string // config table type, e.g. "WireIDConfig"
	Field string // missing field name, e.g. "W"
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("configuration error: %s requires field %q when isValid is true", e.Table, e.Field)
}

// IDConfig is the common surface of the per-level configuration
// tables: schema validation and conversion to the ID type T.
type IDConfig[T any] interface {
	Validate() error
	ID() T
}

// CryostatIDConfig is the configuration table for a geo.CryostatID.
type CryostatIDConfig struct {
	IsValid *bool   `json:"isValid,omitempty"` // whether the ID is valid (default: true)
	C       *uint32 `json:"C,omitempty"`       // cryostat number
}

// Valid reports the value of the isValid flag, true when omitted.
func (c CryostatIDConfig) Valid() bool { return c.IsValid == nil || *c.IsValid }

// Validate checks that every index field required by the isValid flag
// is present.
func (c CryostatIDConfig) Validate() error {
	if !c.Valid() {
		return nil
	}
	if c.C == nil {
		return &MissingFieldError{Table: "CryostatIDConfig", Field: "C"}
	}
	return nil
}

// ID converts the table into a cryostat ID. It assumes Validate
// passed; a missing field decodes as the sentinel index.
func (c CryostatIDConfig) ID() geo.CryostatID {
	if !c.Valid() {
		return geo.InvalidCryostatID()
	}
	return geo.NewCryostatID(indexOr(c.C, geo.InvalidCryostatIndex))
}

// TPCIDConfig is the configuration table for a geo.TPCID.
type TPCIDConfig struct {
	CryostatIDConfig
	T *uint32 `json:"T,omitempty"` // TPC number within the cryostat
}

func (c TPCIDConfig) Validate() error {
	if !c.Valid() {
		return nil
	}
	if err := c.CryostatIDConfig.Validate(); err != nil {
		return err
	}
	if c.T == nil {
		return &MissingFieldError{Table: "TPCIDConfig", Field: "T"}
	}
	return nil
}

func (c TPCIDConfig) ID() geo.TPCID {
	if !c.Valid() {
		return geo.InvalidTPCID()
	}
	return c.CryostatIDConfig.ID().TPCID(indexOr(c.T, geo.InvalidTPCIndex))
}

// OpDetIDConfig is the configuration table for a geo.OpDetID.
type OpDetIDConfig struct {
	CryostatIDConfig
	O *uint32 `json:"O,omitempty"` // optical detector number within the cryostat
}

func (c OpDetIDConfig) Validate() error {
	if !c.Valid() {
		return nil
	}
	if err := c.CryostatIDConfig.Validate(); err != nil {
		return err
	}
	if c.O == nil {
		return &MissingFieldError{Table: "OpDetIDConfig", Field: "O"}
	}
	return nil
}

func (c OpDetIDConfig) ID() geo.OpDetID {
	if !c.Valid() {
		return geo.InvalidOpDetID()
	}
	return c.CryostatIDConfig.ID().OpDetID(indexOr(c.O, geo.InvalidOpDetIndex))
}

// PlaneIDConfig is the configuration table for a geo.PlaneID.
type PlaneIDConfig struct {
	TPCIDConfig
	P *uint32 `json:"P,omitempty"` // plane number within the TPC
}

func (c PlaneIDConfig) Validate() error {
	if !c.Valid() {
		return nil
	}
	if err := c.TPCIDConfig.Validate(); err != nil {
		return err
	}
	if c.P == nil {
		return &MissingFieldError{Table: "PlaneIDConfig", Field: "P"}
	}
	return nil
}

func (c PlaneIDConfig) ID() geo.PlaneID {
	if !c.Valid() {
		return geo.InvalidPlaneID()
	}
	return c.TPCIDConfig.ID().PlaneID(indexOr(c.P, geo.InvalidPlaneIndex))
}

// WireIDConfig is the configuration table for a geo.WireID.
type WireIDConfig struct {
	PlaneIDConfig
	W *uint32 `json:"W,omitempty"` // wire number within the plane
}

func (c WireIDConfig) Validate() error {
	if !c.Valid() {
		return nil
	}
	if err := c.PlaneIDConfig.Validate(); err != nil {
		return err
	}
	if c.W == nil {
		return &MissingFieldError{Table: "WireIDConfig", Field: "W"}
	}
	return nil
}

func (c WireIDConfig) ID() geo.WireID {
	if !c.Valid() {
		return geo.InvalidWireID()
	}
	return c.PlaneIDConfig.ID().WireID(indexOr(c.W, geo.InvalidWireIndex))
}

// TPCsetIDConfig is the configuration table for a readout.TPCsetID.
type TPCsetIDConfig struct {
	CryostatIDConfig
	S *uint16 `json:"S,omitempty"` // TPC set number within the cryostat
}

func (c TPCsetIDConfig) Validate() error {
	if !c.Valid() {
		return nil
	}
	if err := c.CryostatIDConfig.Validate(); err != nil {
		return err
	}
	if c.S == nil {
		return &MissingFieldError{Table: "TPCsetIDConfig", Field: "S"}
	}
	return nil
}

func (c TPCsetIDConfig) ID() readout.TPCsetID {
	if !c.Valid() {
		return readout.InvalidTPCsetID()
	}
	return readout.TPCsetIDAt(c.CryostatIDConfig.ID(), indexOr(c.S, readout.InvalidTPCsetIndex))
}

// ROPIDConfig is the configuration table for a readout.ROPID.
type ROPIDConfig struct {
	TPCsetIDConfig
	R *uint32 `json:"R,omitempty"` // readout plane number within the TPC set
}

func (c ROPIDConfig) Validate() error {
	if !c.Valid() {
		return nil
	}
	if err := c.TPCsetIDConfig.Validate(); err != nil {
		return err
	}
	if c.R == nil {
		return &MissingFieldError{Table: "ROPIDConfig", Field: "R"}
	}
	return nil
}

func (c ROPIDConfig) ID() readout.ROPID {
	if !c.Valid() {
		return readout.InvalidROPID()
	}
	return c.TPCsetIDConfig.ID().ROPID(indexOr(c.R, readout.InvalidROPIndex))
}

func indexOr[T any](field *T, invalid T) T {
	if field == nil {
		return invalid
	}
	return *field
}
