// geoinfo decodes geometry and readout identifiers from a JSON
// configuration file, prints them, and optionally cross-checks them
// against the wiring metadata stored in the detector database.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	sqlx "github.com/jmoiron/sqlx"

	"github.com/next-exp/geocore_go/pkg/detdb"
	"github.com/next-exp/geocore_go/pkg/geo"
	"github.com/next-exp/geocore_go/pkg/idconf"
	"github.com/next-exp/geocore_go/pkg/readout"
	"github.com/next-exp/geocore_go/pkg/sumdata"
)

var dbConn *sqlx.DB
var configuration Configuration

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	var err error
	configuration, err = LoadConfiguration(*configFilename)
	if err != nil {
		fmt.Println("Error reading configuration file: ", err)
		return
	}

	logger := slog.New(NewHandler(os.Stdout, nil))
	printConfiguration(configuration, logger)

	detdb.SetLogger(slogLogger{l: logger})
	detdb.SetVerbosity(configuration.Verbosity)

	wires, err := idconf.ReadIDSequence[geo.WireID](configuration.Wires)
	if err != nil {
		logger.Error(fmt.Sprintf("Invalid wire parameter: %v", err), "module", "config")
		return
	}
	for _, wire := range wires {
		logger.Info(fmt.Sprintf("Wire %s (valid: %t)", wire, wire.Valid), "module", "geometry")
	}

	defaultPlane := geo.InvalidPlaneID()
	if len(wires) > 0 {
		defaultPlane = wires[0].ParentID()
	}
	refPlane, err := idconf.ReadOptionalIDOr[geo.PlaneID](configuration.ReferencePlane, defaultPlane)
	if err != nil {
		logger.Error(fmt.Sprintf("Invalid reference plane: %v", err), "module", "config")
		return
	}
	logger.Info(fmt.Sprintf("Reference plane %s (valid: %t)", refPlane, refPlane.Valid), "module", "geometry")

	opdets, err := idconf.ReadIDSequence[geo.OpDetID](configuration.OpDets)
	if err != nil {
		logger.Error(fmt.Sprintf("Invalid optical detector parameter: %v", err), "module", "config")
		return
	}
	for _, opdet := range opdets {
		logger.Info(fmt.Sprintf("Optical detector %s", opdet), "module", "geometry")
	}

	rops, ropsConfigured, err := idconf.ReadOptionalIDSequence[readout.ROPID](configuration.ROPs)
	if err != nil {
		logger.Error(fmt.Sprintf("Invalid readout plane parameter: %v", err), "module", "config")
		return
	}

	if configuration.NoDB {
		printReadoutPlanes(rops, ropsConfigured, logger)
		return
	}

	dbConn, err = detdb.Connect(configuration.User, configuration.Passwd, configuration.Host, configuration.DBName)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if !ropsConfigured {
		rops, err = detdb.GetReadoutPlanes(dbConn, configuration.Run)
		if err != nil {
			logger.Error(err.Error(), "module", "database")
			return
		}
	}
	printReadoutPlanes(rops, true, logger)

	mapping, err := detdb.GetWireChannelMap(dbConn, configuration.Run)
	if err != nil {
		logger.Error(err.Error(), "module", "database")
		return
	}
	checkWireChannels(wires, mapping, logger)

	run, err := detdb.GetRunData(dbConn, configuration.Run)
	if err != nil {
		logger.Error(err.Error(), "module", "database")
		return
	}
	if configuration.DetectorName != "" {
		if err := run.Aggregate(sumdata.NewRunData(configuration.DetectorName)); err != nil {
			logger.Error(err.Error(), "module", "rundata")
			return
		}
	}
	logger.Info(fmt.Sprintf("Run %d recorded by detector %s", configuration.Run, run.DetName), "module", "rundata")

	pot, err := detdb.GetPOTSummary(dbConn, configuration.Run)
	if err != nil {
		logger.Error(err.Error(), "module", "database")
		return
	}
	logger.Info(pot.String(), "module", "rundata")
}

func printReadoutPlanes(rops []readout.ROPID, present bool, logger *slog.Logger) {
	if !present {
		logger.Info("No readout planes configured", "module", "readout")
		return
	}
	logger.Info(fmt.Sprintf("Readout planes: %d", len(rops)), "module", "readout")
	for _, rop := range rops {
		logger.Info(fmt.Sprintf("Readout plane %s", rop), "module", "readout")
	}
}

// checkWireChannels reports, for every configured wire, the readout
// channel it is cabled to according to the database mapping.
func checkWireChannels(wires []geo.WireID, mapping detdb.WireChannelMap, logger *slog.Logger) {
	for _, wire := range wires {
		found := false
		for _, channel := range mapping.Channels() {
			if mapping[channel].Equal(wire) {
				logger.Info(fmt.Sprintf("Wire %s read by channel %d", wire, channel), "module", "database")
				found = true
				break
			}
		}
		if !found {
			logger.Info(fmt.Sprintf("Wire %s is not cabled", wire), "module", "database")
		}
	}
}
