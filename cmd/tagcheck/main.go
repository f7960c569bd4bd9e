/*
Package main is the tagcheck CLI: it checks whether container image tag
variables declared in a configuration file are current, by running the
"skopeo list-tags" command attached to each declaration and comparing
the declared value against the latest available tag.
*/
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jaredhocutt/tagcheck"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"
	"github.com/spf13/afero"
)

const defaultFile = "inventory/host_vars/apps.yml"

type Options struct {
	Timeout     int  `short:"t" long:"timeout"      description:"Timeout in seconds for each enumeration command" default:"30"`
	UpdatesOnly bool `short:"u" long:"updates-only" description:"Only show variables that have updates available"`
	JSON        bool `short:"j" long:"json"         description:"Output results as JSON"`
	NoColor     bool `short:"C" long:"no-color"     description:"Disable colored output"`
	Verbose     bool `short:"v" long:"verbose"      description:"Enable debug logging on stderr"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"Configuration file to check"`
	} `positional-args:"yes"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default)
	parser.LongDescription = `tagcheck — check container image tag variables for updates.
Scans FILE for *_image_tag variables annotated with a "skopeo list-tags"
comment, runs each command, and reports which tags are behind the
latest available version.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := log.New(os.Stderr)
	if opt.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	file := opt.Args.File
	if file == "" {
		file = defaultFile
	}

	styles := newStyles(!opt.NoColor)

	srcs, err := tagcheck.LoadSources(afero.NewOsFs(), file)
	if err != nil {
		logger.Error("cannot read configuration", "file", file, "error", err)
		os.Exit(1)
	}

	if len(srcs) == 0 {
		fmt.Println(styles.warn.Render("No image tag variables with skopeo commands found."))
		os.Exit(0)
	}

	logger.Debug("extracted sources", "file", file, "count", len(srcs))

	copt := tagcheck.CheckOptions{
		Timeout: time.Duration(opt.Timeout) * time.Second,
	}

	if !opt.JSON {
		fmt.Printf("%s\n\n", styles.bold.Render(fmt.Sprintf("Checking %d image tags...", len(srcs))))
		copt.Progress = func(src tagcheck.TagSource) {
			fmt.Printf("  Checking %s... ", styles.name.Render(src.Variable))
		}
		copt.OnResult = func(res tagcheck.CheckResult) {
			fmt.Println(renderStatus(res.Status, styles))
		}
	} else {
		copt.Progress = func(src tagcheck.TagSource) {
			logger.Debug("checking", "variable", src.Variable, "line", src.Line)
		}
	}

	results, err := tagcheck.Check(context.Background(), srcs, copt)
	if err != nil {
		logger.Error("check aborted", "error", err)
		os.Exit(1)
	}

	if opt.UpdatesOnly {
		kept := make([]tagcheck.CheckResult, 0, len(results))
		for _, r := range results {
			if r.Status == tagcheck.StatusUpdateAvailable {
				kept = append(kept, r)
			}
		}
		results = kept
	}

	if opt.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			logger.Error("encode results", "error", err)
			os.Exit(1)
		}
	} else {
		printReport(results, styles, opt.UpdatesOnly)
	}

	for _, r := range results {
		if r.Status == tagcheck.StatusUpdateAvailable {
			os.Exit(1)
		}
	}
}
