/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements. See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License. You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"github.com/noctarius/pgdialect"
	"github.com/noctarius/pgdialect/internal/logging"
	"github.com/noctarius/pgdialect/internal/supporting"
	"github.com/noctarius/pgdialect/internal/typeadapters"
	"github.com/noctarius/pgdialect/internal/version"
	spiconfig "github.com/noctarius/pgdialect/spi/config"
	"github.com/urfave/cli"
	"log"
	"os"
)

var (
	configurationFile string
	verbose           bool
	withCaller        bool
	logToStdErr       bool
	versionOnly       bool
)

func main() {
	app := &cli.App{
		Name:  "pgdialect",
		Usage: "Inspect PostgreSQL DDL type names for abstract column definitions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config,c",
				Value:       "",
				Usage:       "Load column definitions from `FILE`",
				Destination: &configurationFile,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "Show verbose output",
				Destination: &verbose,
			},
			&cli.BoolFlag{
				Name:        "caller",
				Usage:       "Collect caller information for log messages",
				Destination: &withCaller,
			},
			&cli.BoolFlag{
				Name:        "log-to-stderr",
				Usage:       "Redirects logging output to stderr",
				Destination: &logToStdErr,
			},
			&cli.BoolFlag{
				Name:        "version",
				Usage:       "Prints the version and exits",
				Destination: &versionOnly,
			},
		},
		Action: start,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func start(*cli.Context) error {
	fmt.Printf("%s version %s (git revision %s; branch %s)\n",
		version.BinName, version.Version, version.CommitHash, version.Branch,
	)

	if versionOnly {
		return nil
	}

	logging.WithCaller = withCaller
	logging.WithVerbose = verbose

	config := &spiconfig.Config{}

	// No configuration file set? Try env variable!
	if configurationFile == "" {
		if cf, present := os.LookupEnv("PGDIALECT_CONFIG"); present {
			fmt.Fprintf(os.Stderr, "Using configuration file from environment variable\n")
			configurationFile = cf
		}
	}

	if configurationFile == "" {
		return cli.NewExitError("Configuration file with column definitions required", 3)
	}

	fmt.Fprintf(os.Stderr, "Loading configuration file: %s\n", configurationFile)
	if err := spiconfig.LoadFile(configurationFile, config); err != nil {
		return cli.NewExitError(fmt.Sprintf("Configuration file couldn't be decoded: %v\n", err), 4)
	}

	if err := logging.InitializeLogging(config, logToStdErr); err != nil {
		return err
	}

	dialect, err := pgdialect.NewDialect(config)
	if err != nil {
		return supporting.AdaptError(err, 5)
	}
	defer dialect.Shutdown()

	for _, column := range config.Columns {
		dataType, err := dialect.DataTypeFor(column)
		if err != nil {
			return supporting.AdaptError(err, 6)
		}

		sqlType, err := dataType.SQLType()
		if err != nil {
			return supporting.AdaptError(err, 7)
		}

		if column.Sample == nil {
			fmt.Printf("%s.%s %s\n", column.Table, column.Name, sqlType)
			continue
		}

		escaped, err := typeadapters.Escape(
			dataType, *column.Sample, typeadapters.DefaultEscape,
		)
		if err != nil {
			return supporting.AdaptError(err, 8)
		}
		fmt.Printf("%s.%s %s %s\n", column.Table, column.Name, sqlType, escaped)
	}
	return nil
}
