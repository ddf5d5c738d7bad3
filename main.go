package main

import (
	"fmt"
	"os"

	"fbarros/shopee-insights/cmd/abc"
	"fbarros/shopee-insights/cmd/analyze"
	"fbarros/shopee-insights/cmd/export"
	"fbarros/shopee-insights/cmd/info"
	"fbarros/shopee-insights/cmd/root"
	"fbarros/shopee-insights/cmd/timing"
	"fbarros/shopee-insights/cmd/variations"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(abc.Cmd)
	root.Cmd.AddCommand(timing.Cmd)
	root.Cmd.AddCommand(variations.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(info.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
