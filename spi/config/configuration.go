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

package config

import (
	"os"
	"reflect"
	"strings"
	"time"
)

type Config struct {
	Dialect DialectConfig  `toml:"pgdialect"`
	Logging LoggerConfig   `toml:"logging"`
	Columns []ColumnConfig `toml:"columns"`
}

type DialectConfig struct {
	// StringDefaultLength is used for STRING columns without an
	// explicit length option (VARCHAR(n)).
	StringDefaultLength *int `toml:"stringdefaultlength"`

	// WarnOnStrippedOptions disables the diagnostics sink when set
	// to false. Stripping itself always happens.
	WarnOnStrippedOptions *bool `toml:"warnonstrippedoptions"`
}

// ColumnConfig describes one column for the pgdialect inspection
// tool. Type names match the datatypes.TypeID constants.
type ColumnConfig struct {
	Name         string   `toml:"name"`
	Table        string   `toml:"table"`
	Type         string   `toml:"type"`
	Length       *int     `toml:"length"`
	Precision    *int     `toml:"precision"`
	Scale        *int     `toml:"scale"`
	Decimals     *int     `toml:"decimals"`
	Unsigned     *bool    `toml:"unsigned"`
	Zerofill     *bool    `toml:"zerofill"`
	Binary       *bool    `toml:"binary"`
	GeometryType *string  `toml:"geometrytype"`
	Srid         *int     `toml:"srid"`
	SubType      *string  `toml:"subtype"`
	ElementType  *string  `toml:"elementtype"`
	Values       []string `toml:"values"`
	Sample       *string  `toml:"sample"`
}

type LoggerConfig struct {
	Level   string                     `toml:"level"`
	Outputs LoggerOutputConfig         `toml:"output"`
	Loggers map[string]SubLoggerConfig `toml:"loggers"`
}

type LoggerOutputConfig struct {
	Console LoggerConsoleConfig `toml:"console"`
	File    LoggerFileConfig    `toml:"file"`
}

type SubLoggerConfig struct {
	Level   *string            `toml:"level"`
	Outputs LoggerOutputConfig `toml:"output"`
}

type LoggerConsoleConfig struct {
	Enabled *bool `toml:"enabled"`
}

type LoggerFileConfig struct {
	Enabled     *bool          `toml:"enabled"`
	Path        string         `toml:"path"`
	Rotate      *bool          `toml:"rotate"`
	MaxSize     *string        `toml:"maxsize"`
	MaxDuration *time.Duration `toml:"maxduration"`
	Compress    bool           `toml:"compress"`
}

func GetOrDefault[V any](
	config *Config, canonicalProperty string, defaultValue V,
) V {

	if env, found := findEnvProperty(canonicalProperty, defaultValue); found {
		return env
	}

	properties := strings.Split(canonicalProperty, ".")

	element := reflect.ValueOf(*config)
	for _, property := range properties {
		if e, ok := findProperty(element, property); ok {
			element = e
		} else {
			return defaultValue
		}
	}

	if !element.IsZero() &&
		!(element.Kind() == reflect.Ptr && element.IsNil()) {

		if element.Kind() == reflect.Ptr {
			element = element.Elem()
		}

		return element.Convert(reflect.TypeOf(defaultValue)).Interface().(V)
	}
	return defaultValue
}

func findEnvProperty[V any](
	canonicalProperty string, defaultValue V,
) (V, bool) {

	t := reflect.TypeOf(defaultValue)

	envVarName := strings.ToUpper(canonicalProperty)
	envVarName = strings.ReplaceAll(envVarName, "_", "__")
	envVarName = strings.ReplaceAll(envVarName, ".", "_")
	if val, ok := os.LookupEnv(envVarName); ok {
		v := reflect.ValueOf(val)
		cv := v.Convert(t)
		if !cv.IsZero() &&
			!(cv.Kind() == reflect.Ptr && cv.IsNil()) {
			return cv.Interface().(V), true
		}
	}
	return defaultValue, false
}

func findProperty(
	element reflect.Value, property string,
) (reflect.Value, bool) {

	t := element.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" && !f.Anonymous {
			continue
		}

		if f.Tag.Get("toml") == property {
			return element.Field(i), true
		}
	}
	return reflect.Value{}, false
}
