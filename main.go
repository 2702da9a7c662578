package main

import (
	"fmt"
	"os"
	"strings"

	"switch_finder_go/align"
	"switch_finder_go/benchmark"
	"switch_finder_go/config"
	"switch_finder_go/sanity_check"
	"switch_finder_go/switches"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Switch Finder - Custom Help Menu
Usage:
  switch_finder <tool> [options]

Tools:
  switches		Reconcile clusters of chains and mark structural switches
  align			Reconcile one chain against a dominant chain
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Switch Finder - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tSwitch Finder:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tSwitches:\t\t%s\n", config.Switches)
	fmt.Printf("\tAlign:\t\t\t%s\n", config.Align)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tChain Reader:\t\t%s\n", config.Chain_reader)
	fmt.Printf("\tSuper Aligner:\t\t%s\n", config.Super_aligner)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)
	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Executable-level help only when no tool is named
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "-help") {
		printCustomHelp()
	}

	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "switches":
			switches.Run(cleanedArgs)
		case "align":
			align.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("switch_finder %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
