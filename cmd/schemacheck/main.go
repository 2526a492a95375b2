/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command schemacheck validates table schema declaration files. It parses
// each YAML file given on the command line and prints the key patterns and
// required attributes of every table, or fails with the first declaration
// error it finds.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/suparena/dynawrap"
	"github.com/suparena/dynawrap/schema"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := dynawrap.GetVersionInfo()
		fmt.Printf("Dynawrap schemacheck version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: schemacheck [flags] <schema.yaml> [...]")
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		schemas, err := schema.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("%s: %d table(s)\n", path, len(schemas))
		for _, s := range schemas {
			fmt.Printf("  %s\n", s.Name())
			fmt.Printf("    PK: %s\n", s.PartitionKey().Template())
			if s.HasSortKey() {
				fmt.Printf("    SK: %s\n", s.SortKey().Template())
			}
			fmt.Printf("    attributes: %s\n", strings.Join(s.RequiredAttributes(), ", "))
		}
	}
	if failed {
		os.Exit(1)
	}
}
