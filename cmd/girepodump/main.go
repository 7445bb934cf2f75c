// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	typelib "github.com/gi-typelib/girepository"
	"github.com/gi-typelib/girepository/diskblob"
)

var (
	directoryOffset uint32
	wantEnums       bool
	wantStructs     bool
	wantObjects     bool
	wantInterfaces  bool
	wantAll         bool
)

type enumDump struct {
	Name       string      `json:"name"`
	Values     []valueDump `json:"values"`
	Deprecated bool        `json:"deprecated,omitempty"`
}

type valueDump struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type structDump struct {
	Name    string   `json:"name"`
	Size    int      `json:"size"`
	Fields  []string `json:"fields"`
	Methods []string `json:"methods"`
}

type objectDump struct {
	Name       string   `json:"name"`
	TypeName   string   `json:"type_name"`
	Abstract   bool     `json:"abstract"`
	Interfaces []string `json:"interfaces"`
	Signals    []string `json:"signals"`
	VFuncs     []string `json:"vfuncs"`
}

func dumpEnum(h typelib.InfoHandle) enumDump {
	d := enumDump{Name: h.Name(), Deprecated: h.IsDeprecated()}
	n := h.GetNValues()
	for i := 0; i < n; i++ {
		v, ok := h.GetEnumValue(i)
		if !ok {
			continue
		}
		val, err := v.GetValue()
		if err != nil {
			continue
		}
		d.Values = append(d.Values, valueDump{Name: v.Name(), Value: val})
	}
	return d
}

func dumpStruct(h typelib.InfoHandle) structDump {
	d := structDump{Name: h.Name(), Size: h.GetSize()}
	for i := 0; i < h.GetNFields(); i++ {
		if f, ok := h.GetField(i); ok {
			d.Fields = append(d.Fields, f.Name())
		}
	}
	for i := 0; i < h.GetNMethods(); i++ {
		if m, ok := h.GetMethod(i); ok {
			d.Methods = append(d.Methods, m.Name())
		}
	}
	return d
}

func dumpObject(h typelib.InfoHandle) objectDump {
	d := objectDump{Name: h.Name(), TypeName: h.GetTypeName(), Abstract: h.GetAbstract()}
	for i := 0; i < h.GetNInterfaces(); i++ {
		if iface, ok := h.GetInterfaceAt(i); ok {
			d.Interfaces = append(d.Interfaces, iface.Name())
		}
	}
	for i := 0; i < h.GetNSignals(); i++ {
		if s, ok := h.GetSignalAt(i); ok {
			d.Signals = append(d.Signals, s.Name())
		}
	}
	for i := 0; i < h.GetNVFuncs(); i++ {
		if v, ok := h.GetVFunc(i); ok {
			d.VFuncs = append(d.VFuncs, v.Name())
		}
	}
	return d
}

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]

	region, err := diskblob.Map(path, nil)
	if err != nil {
		return fmt.Errorf("map %s: %w", path, err)
	}
	defer region.Close()

	repo, err := newDirectoryRepository(region.Typelib(), typelib.HeaderSize)
	if err != nil {
		return err
	}

	var enums []enumDump
	var structs []structDump
	var objects []objectDump

	for idx := uint16(1); idx <= repo.dirCount; idx++ {
		kind, err := repo.entryKind(idx)
		if err != nil {
			continue
		}
		h, err := repo.Resolve(region.Typelib(), idx)
		if err != nil {
			continue
		}
		switch kind {
		case typelib.KindEnum:
			if wantEnums || wantAll {
				enums = append(enums, dumpEnum(h))
			}
		case typelib.KindStruct:
			if wantStructs || wantAll {
				structs = append(structs, dumpStruct(h))
			}
		case typelib.KindObject:
			if wantObjects || wantAll {
				objects = append(objects, dumpObject(h))
			}
		case typelib.KindInterface:
			if wantInterfaces || wantAll {
				objects = append(objects, dumpObject(h))
			}
		}
	}

	out := map[string]interface{}{}
	if len(enums) > 0 {
		out["enums"] = enums
	}
	if len(structs) > 0 {
		out["structs"] = structs
	}
	if len(objects) > 0 {
		out["objects"] = objects
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func main() {
	var dumpCmd = &cobra.Command{
		Use:   "dump [typelib file]",
		Short: "Dumps entities described by a typelib image",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	dumpCmd.Flags().BoolVar(&wantEnums, "enums", false, "dump enums")
	dumpCmd.Flags().BoolVar(&wantStructs, "structs", false, "dump structs")
	dumpCmd.Flags().BoolVar(&wantObjects, "objects", false, "dump objects")
	dumpCmd.Flags().BoolVar(&wantInterfaces, "interfaces", false, "dump interfaces")
	dumpCmd.Flags().BoolVar(&wantAll, "all", false, "dump everything")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("girepodump 0.1.0")
		},
	}

	var rootCmd = &cobra.Command{
		Use:   "girepodump",
		Short: "A typelib navigator built for browsing compiled GI metadata",
	}
	rootCmd.AddCommand(dumpCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
