/*
 * PSX - Main process.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	reader "github.com/rcornwell/PSX/command/reader"
	config "github.com/rcornwell/PSX/config/configparser"
	core "github.com/rcornwell/PSX/emu/core"
	master "github.com/rcornwell/PSX/emu/master"
	motherboard "github.com/rcornwell/PSX/emu/motherboard"
	logger "github.com/rcornwell/PSX/util/logger"

	_ "github.com/rcornwell/PSX/util/debug"
)

var Logger *slog.Logger

// Settings collected from the configuration file.
var (
	biosPath  string
	debugOpts = map[string][]string{}
)

func init() {
	config.RegisterFile("BIOS", func(value string, _ []config.Option) error {
		biosPath = value
		return nil
	})
	config.RegisterOption("DEBUG", func(value string, options []config.Option) error {
		module := strings.ToUpper(value)
		for _, opt := range options {
			debugOpts[module] = append(debugOpts[module], opt.Name)
		}
		return nil
	})
}

func main() {
	optConfig := getopt.StringLong("config", 'c', "psx.cfg", "Configuration file")
	optBios := getopt.StringLong("bios", 'b', "", "BIOS image")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Echo debug output to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var logWriter io.Writer
	if *optLogFile != "" {
		file, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Could not create log file:", err)
			os.Exit(1)
		}
		logWriter = file
	}
	Logger = slog.New(logger.NewHandler(logWriter, slog.LevelDebug, *optDebug))
	slog.SetDefault(Logger)

	Logger.Info("PSX started")

	// The configuration file is optional when a BIOS is given on the
	// command line.
	if _, err := os.Stat(*optConfig); err == nil {
		if err := config.LoadConfigFile(*optConfig); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	}
	if *optBios != "" {
		biosPath = *optBios
	}
	if biosPath == "" {
		Logger.Error("No BIOS image; use --bios or a BIOS line in " + *optConfig)
		os.Exit(1)
	}

	bios, err := os.ReadFile(biosPath)
	if err != nil {
		Logger.Error("Could not read BIOS: " + err.Error())
		os.Exit(1)
	}
	Logger.Info(fmt.Sprintf("BIOS loaded from %s", biosPath))

	mb, err := motherboard.New(bios)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	// Apply configured debug options.
	for _, opt := range debugOpts["CPU"] {
		if !mb.CPU().SetDebug(opt) {
			Logger.Error("Unknown CPU debug option: " + opt)
			os.Exit(1)
		}
	}

	masterChannel := make(chan master.Packet)
	cpu := core.NewCore(mb, masterChannel)
	go cpu.Start()

	// The monitor owns the terminal until quit.
	reader.ConsoleReader(cpu)

	Logger.Info("Shutting down CPU")
	cpu.Stop()
}
