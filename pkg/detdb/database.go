// Package detdb reads detector wiring and run-catalog metadata from
// the experiment MySQL database: the map between readout channels and
// sense wires, the readout plane layout, and the per-subrun exposure
// records.
//
// All lookups are versioned by run number: every table carries MinRun
// and MaxRun columns and a query selects the rows covering the
// requested run.
package detdb

import (
	"fmt"
	"sort"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx" //make alias name the package to sqlx
	"golang.org/x/exp/maps"

	"github.com/next-exp/geocore_go/pkg/geo"
	"github.com/next-exp/geocore_go/pkg/readout"
	"github.com/next-exp/geocore_go/pkg/sumdata"
)

// ChannelID is the raw readout channel number a wire is cabled to.
type ChannelID = uint32

// Connect opens a connection to the detector database.
func Connect(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

// WireChannelMap maps every readout channel to the wire it reads.
type WireChannelMap map[ChannelID]geo.WireID

// Channels returns the mapped channel numbers in increasing order.
func (m WireChannelMap) Channels() []ChannelID {
	channels := maps.Keys(m)
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })
	return channels
}

type wireMappingEntry struct {
	Cryostat uint32 `db:"Cryostat"`
	TPC      uint32 `db:"TPC"`
	Plane    uint32 `db:"Plane"`
	Wire     uint32 `db:"Wire"`
	Channel  uint32 `db:"Channel"`
}

// wireID converts a mapping row into the identifier of the wire it
// describes.
func (e wireMappingEntry) wireID() geo.WireID {
	return geo.NewWireID(e.Cryostat, e.TPC, e.Plane, e.Wire)
}

// GetWireChannelMap reads the channel-to-wire mapping valid for the
// given run.
func GetWireChannelMap(db *sqlx.DB, runNumber int) (WireChannelMap, error) {
	query := "SELECT Cryostat, TPC, Plane, Wire, Channel FROM WireChannelMapping WHERE MinRun <= %d and MaxRun >= %d ORDER BY Channel"
	query = fmt.Sprintf(query, runNumber, runNumber)

	if verbosity > 0 {
		logger.Info("Wire channel mapping read from DB", "database")
	}
	if verbosity > 2 {
		logger.Info(fmt.Sprintf("Query: %s", query), "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		return nil, &QueryError{Table: "WireChannelMapping", Err: err}
	}

	mapping := make(WireChannelMap)
	for rows.Next() {
		result := wireMappingEntry{}
		if err := rows.StructScan(&result); err != nil {
			return nil, &ScanError{Table: "WireChannelMapping", Err: err}
		}
		mapping[result.Channel] = result.wireID()
	}
	return mapping, nil
}

type ropEntry struct {
	Cryostat uint32 `db:"Cryostat"`
	TPCset   uint16 `db:"TPCset"`
	ROP      uint32 `db:"ROP"`
}

func (e ropEntry) ropID() readout.ROPID {
	return readout.NewROPID(e.Cryostat, e.TPCset, e.ROP)
}

// GetReadoutPlanes reads the readout plane layout valid for the given
// run, ordered the way the IDs order.
func GetReadoutPlanes(db *sqlx.DB, runNumber int) ([]readout.ROPID, error) {
	query := "SELECT Cryostat, TPCset, ROP FROM ReadoutPlanes WHERE MinRun <= %d and MaxRun >= %d ORDER BY Cryostat, TPCset, ROP"
	query = fmt.Sprintf(query, runNumber, runNumber)

	if verbosity > 0 {
		logger.Info("Readout plane layout read from DB", "database")
	}
	if verbosity > 2 {
		logger.Info(fmt.Sprintf("Query: %s", query), "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		return nil, &QueryError{Table: "ReadoutPlanes", Err: err}
	}

	var rops []readout.ROPID
	for rows.Next() {
		result := ropEntry{}
		if err := rows.StructScan(&result); err != nil {
			return nil, &ScanError{Table: "ReadoutPlanes", Err: err}
		}
		rops = append(rops, result.ropID())
	}
	return rops, nil
}

type runEntry struct {
	DetName string `db:"DetName"`
}

// GetRunData reads the run record for the given run. Every fragment
// recorded for the run must agree on the detector name; disagreement
// surfaces as the aggregation error.
func GetRunData(db *sqlx.DB, runNumber int) (sumdata.RunData, error) {
	query := fmt.Sprintf("SELECT DetName FROM Runs WHERE RunNumber = %d", runNumber)

	if verbosity > 2 {
		logger.Info(fmt.Sprintf("Query: %s", query), "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		return sumdata.RunData{}, &QueryError{Table: "Runs", Err: err}
	}

	var run sumdata.RunData
	first := true
	for rows.Next() {
		result := runEntry{}
		if err := rows.StructScan(&result); err != nil {
			return sumdata.RunData{}, &ScanError{Table: "Runs", Err: err}
		}
		if first {
			run = sumdata.NewRunData(result.DetName)
			first = false
			continue
		}
		if err := run.Aggregate(sumdata.NewRunData(result.DetName)); err != nil {
			return sumdata.RunData{}, err
		}
	}
	return run, nil
}

type potEntry struct {
	TotPOT     float64 `db:"TotPOT"`
	TotGoodPOT float64 `db:"TotGoodPOT"`
	TotSpills  uint32  `db:"TotSpills"`
	GoodSpills uint32  `db:"GoodSpills"`
}

func (e potEntry) summary() sumdata.POTSummary {
	return sumdata.POTSummary{
		TotPOT:     e.TotPOT,
		TotGoodPOT: e.TotGoodPOT,
		TotSpills:  e.TotSpills,
		GoodSpills: e.GoodSpills,
	}
}

// GetPOTSummary folds the per-subrun exposure rows of the given run
// into a single summary.
func GetPOTSummary(db *sqlx.DB, runNumber int) (sumdata.POTSummary, error) {
	query := fmt.Sprintf("SELECT TotPOT, TotGoodPOT, TotSpills, GoodSpills FROM SubRunPOT WHERE RunNumber = %d ORDER BY SubRun", runNumber)

	if verbosity > 0 {
		logger.Info("Subrun exposure read from DB", "database")
	}
	if verbosity > 2 {
		logger.Info(fmt.Sprintf("Query: %s", query), "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		return sumdata.POTSummary{}, &QueryError{Table: "SubRunPOT", Err: err}
	}

	var total sumdata.POTSummary
	for rows.Next() {
		result := potEntry{}
		if err := rows.StructScan(&result); err != nil {
			return sumdata.POTSummary{}, &ScanError{Table: "SubRunPOT", Err: err}
		}
		total.Aggregate(result.summary())
	}
	return total, nil
}
