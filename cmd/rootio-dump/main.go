// Copyright 2017 The go-hep Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rootio-dump lists and inspects the keys of a ROOT file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpivarski/rootio"
)

var (
	flagRecursive bool
	flagClass     string
	flagName      string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "rootio-dump <file.root> [key-path]",
	Short: "Dump the keys (or one key's class) of a ROOT file",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runDump,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagRecursive, "recursive", "r", false, "descend into subdirectories")
	rootCmd.PersistentFlags().StringVar(&flagClass, "class", "", "only list keys of this class")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "only list keys with this name")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "trace file-header and key-header fields")
}

func runDump(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		rootio.SetVerbose(true)
	}

	f, err := rootio.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if len(args) == 2 {
		obj, err := f.Get(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", args[1], obj.Class())
		return nil
	}

	dir := f.Root()
	if !flagRecursive {
		for _, k := range dir.Keys() {
			if flagClass != "" && k.Class() != flagClass {
				continue
			}
			if flagName != "" && k.Name() != flagName {
				continue
			}
			fmt.Printf("%-12s %-24s %s\n", k.Class(), k.Name(), k.Datetime().Format("2006-01-02 15:04:05"))
		}
		return nil
	}

	items, err := dir.AllItems(flagName, flagClass)
	if err != nil {
		return err
	}
	for _, it := range items {
		fmt.Printf("%-12s %s\n", it.Key.Class(), it.Path)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
