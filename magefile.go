//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified
// If not set, running mage will list available targets
var Default = Build

func Build() error {
	mg.Deps(BuildGeoInfo)
	fmt.Println("Compilation finished")
	return nil
}

func BuildGeoInfo() error {
	fmt.Println("Building geoinfo executable...")
	cmd := exec.Command("go", "build", "-o", "./bin/geoinfo", ".")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func Test() error {
	fmt.Println("Running tests...")
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
