package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
Fitness tracker: computes distance, mean speed and calories for workouts.

Usage:
  tracker [-mode <mode>] [-config-path <file>]

Modes:
  cli               print summaries for the built-in sample workouts (default)
  tracker-service   HTTP API, workout history and live feed
  consumer-service  compute summaries for sensor packages from RabbitMQ

Options:
`

func PrintHelp() {
	fmt.Printf("%s", HelpMessage)
	flag.PrintDefaults()
}
