package sumdata

import "fmt"

// DataVersion is the version of a GeometryConfigurationInfo record.
type DataVersion = uint32

// InvalidDataVersion denotes a record whose content is not valid.
const InvalidDataVersion DataVersion = 0

// GeometryConfigurationInfo describes the detector geometry
// configuration a data set was produced with; it carries enough
// information to decide whether two configurations are compatible.
// The compatibility logic itself lives with the geometry service.
//
// Version 1 records carry only the detector name; version 2 adds the
// full geometry service configuration string.
type GeometryConfigurationInfo struct {
	DataVersion                  DataVersion // version of this record (0 is invalid)
	GeometryServiceConfiguration string      // geometry service configuration
	DetectorName                 string      // name of the detector geometry
}

// IsDataValid reports whether the record content is valid.
func (info GeometryConfigurationInfo) IsDataValid() bool {
	return info.DataVersion != InvalidDataVersion
}

func (info GeometryConfigurationInfo) String() string {
	if !info.IsDataValid() {
		return "invalid geometry configuration information"
	}
	s := fmt.Sprintf("geometry configuration information (version %d): detector %q", info.DataVersion, info.DetectorName)
	if info.DataVersion >= 2 {
		s += fmt.Sprintf("\ngeometry service configuration: %s", info.GeometryServiceConfiguration)
	}
	return s
}
