package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/next-exp/geocore_go/pkg/idconf"
)

type Configuration struct {
	Verbosity    int    `json:"verbosity"`
	DetectorName string `json:"detector_name"`
	Run          int    `json:"run"`
	NoDB         bool   `json:"no_db"`
	Host         string `json:"host"`
	User         string `json:"user"`
	Passwd       string `json:"pass"`
	DBName       string `json:"dbname"`

	// Geometry parameters. Wires is required; the reference plane
	// defaults to the plane of the first wire; the readout plane list
	// may be omitted entirely, in which case it is read from the
	// database.
	Wires          []idconf.WireIDConfig  `json:"wires"`
	ReferencePlane *idconf.PlaneIDConfig  `json:"reference_plane"`
	ROPs           *[]idconf.ROPIDConfig  `json:"rops"`
	OpDets         []idconf.OpDetIDConfig `json:"opdets"`
}

func LoadConfiguration(filename string) (Configuration, error) {
	var config Configuration

	// Set default values
	config.Verbosity = 0
	config.Run = 0
	config.NoDB = false
	config.Host = "next.ific.uv.es"
	config.User = "nextreader"
	config.Passwd = "readonly"
	config.DBName = "NEXT100"

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}

func printConfiguration(config Configuration, logger *slog.Logger) {
	logger.Info(fmt.Sprintf("Detector name: %s", config.DetectorName), "module", "config")
	logger.Info(fmt.Sprintf("Run: %d", config.Run), "module", "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "module", "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "module", "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "module", "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "module", "config")
	logger.Info(fmt.Sprintf("Wires: %d", len(config.Wires)), "module", "config")
	logger.Info(fmt.Sprintf("Optical detectors: %d", len(config.OpDets)), "module", "config")
}
