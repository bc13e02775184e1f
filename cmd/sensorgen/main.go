// Command sensorgen generates the threshold capability family for one
// physical quantity into the package it is run from. It is meant to be
// driven by go:generate directives next to the base Sensor declaration:
//
//	//go:generate go run github.com/OpenDevicePartnership/embedded-sensors/cmd/sensorgen -quantity Temperature -sample Celsius -unit "degrees Celsius"
package main

import (
	"flag"
	"log"
	"os"

	"github.com/OpenDevicePartnership/embedded-sensors/internal/gen"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sensorgen: ")

	var p gen.Params
	flag.StringVar(&p.Package, "package", os.Getenv("GOPACKAGE"), "target package name (defaults to $GOPACKAGE)")
	flag.StringVar(&p.Quantity, "quantity", "", `exported CamelCase quantity, e.g. "RelativeHumidity"`)
	flag.StringVar(&p.Sample, "sample", "", `sample type visible in the package, e.g. "Percentage"`)
	flag.StringVar(&p.Unit, "unit", "", `unit label for documentation, e.g. "percentage"`)
	profile := flag.String("profile", string(gen.ProfileBlocking), `calling convention: "blocking" or "async"`)
	out := flag.String("out", "", "output file (defaults to <quantity>_thresholds.go)")
	flag.Parse()
	p.Profile = gen.Profile(*profile)

	src, err := gen.File(p)
	if err != nil {
		log.Fatal(err)
	}
	name := *out
	if name == "" {
		name = gen.OutFile(p.Quantity)
	}
	if err := os.WriteFile(name, src, 0o644); err != nil {
		log.Fatal(err)
	}
}
