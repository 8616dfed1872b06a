/*
 * Copyright (C) 2019-Present Pivotal Software, Inc. All rights reserved.
 *
 * This program and the accompanying materials are made available under the terms
 * of the Apache License, Version 2.0 (the "License”); you may not use this file
 * except in compliance with the License. You may obtain a copy of the License at:
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed
 * under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR
 * CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 */

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"fleet/pkg/fleet"
	"fleet/pkg/sequencer"
	"fleet/pkg/vehicle"
)

var (
	fleetList = flag.String("fleet", "", "Comma-separated kind:model list to move. Empty moves the Sedan, Jetliner and Yacht.")
	strict    = flag.Bool("strict", false, "Reject vehicles with an empty model")
	color     = flag.Bool("color", false, "Colour the sequence banners")
	summary   = flag.Bool("summary", false, "Print a per-kind summary to stderr")
	showLog   = flag.Bool("showLog", false, "Print the sequencer log to stderr")
)

func main() {
	flag.Parse()

	r, err := NewRunner(Config{
		FleetList: *fleetList,
		Strict:    *strict,
		Color:     *color,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not build fleet: %s\n", err.Error())
		os.Exit(1)
	}

	err = r.Run(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "there was an error during the movement sequence: %s\n", err.Error())
		os.Exit(1)
	}

	if *summary {
		r.Summary(os.Stderr)
	}

	if *showLog {
		r.Log(os.Stderr)
	}
}

type Config struct {
	FleetList string
	Strict    bool
	Color     bool
}

type Runner interface {
	Config() Config
	Fleet() fleet.Fleet
	Run(writer io.Writer) error
	Summary(writer io.Writer)
	Log(writer io.Writer)
}

type runner struct {
	config    Config
	fleet     fleet.Fleet
	sequencer sequencer.Sequencer
	au        aurora.Aurora
	logbuf    *bytes.Buffer
}

func (r *runner) Config() Config {
	return r.config
}

func (r *runner) Fleet() fleet.Fleet {
	return r.fleet
}

func (r *runner) Run(writer io.Writer) error {
	return r.sequencer.Perform(r.fleet, writer)
}

func (r *runner) Summary(writer io.Writer) {
	printer := message.NewPrinter(language.AmericanEnglish)
	counts := r.fleet.Kinds()

	fmt.Fprintln(writer, r.au.Bold(fmt.Sprintf("%-8s %8s", "Kind", "Vehicles")).Cyan())
	for _, k := range vehicle.Kinds() {
		fmt.Fprintln(writer, printer.Sprintf("%-8s %8d", k, counts[k]))
	}
	fmt.Fprintln(writer, printer.Sprintf("%-8s %8d", "Total", len(r.fleet)))
}

func (r *runner) Log(writer io.Writer) {
	fmt.Fprintln(writer, r.au.Bold("Sequencer log").BgBlue())
	fmt.Fprint(writer, r.logbuf.String())
}

func NewRunner(config Config) (Runner, error) {
	f := fleet.Canonical()
	if config.FleetList != "" {
		var err error
		f, err = fleet.Parse(config.FleetList, config.Strict)
		if err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	logger := newLogger(buf)
	logger.Debugw("fleet assembled", "vehicles", len(f))

	return &runner{
		config:    config,
		fleet:     f,
		sequencer: sequencer.NewSequencer(logger, config.Color),
		au:        aurora.NewAurora(config.Color),
		logbuf:    buf,
	}, nil
}

func newLogger(buf io.Writer) *zap.SugaredLogger {
	sink := zapcore.AddSync(buf)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		sink,
		zap.DebugLevel,
	)

	unsugaredLogger := zap.New(core)

	return unsugaredLogger.Named("fleet").Sugar()
}
