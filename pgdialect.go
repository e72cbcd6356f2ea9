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

package pgdialect

import (
	"github.com/go-errors/errors"
	intdiagnostics "github.com/noctarius/pgdialect/internal/diagnostics"
	"github.com/noctarius/pgdialect/internal/typeadapters"
	spiconfig "github.com/noctarius/pgdialect/spi/config"
	"github.com/noctarius/pgdialect/spi/datatypes"
	"github.com/noctarius/pgdialect/spi/diagnostics"
	"github.com/samber/do"
	"strings"
)

// Dialect is the public entry point of the PostgreSQL data type
// adapter layer. It owns the adapter registry and the diagnostics
// sink used for one-time option stripping warnings.
type Dialect struct {
	injector *do.Injector
	registry *typeadapters.Registry
}

func NewDialect(
	config *spiconfig.Config,
) (*Dialect, error) {

	if config == nil {
		config = &spiconfig.Config{}
	}

	injector := do.New()
	do.Provide(injector, func(i *do.Injector) (diagnostics.Sink, error) {
		warn := config.Dialect.WarnOnStrippedOptions
		if warn != nil && !*warn {
			return diagnostics.NoopSink{}, nil
		}
		return intdiagnostics.NewLoggingSink()
	})
	do.Provide(injector, func(i *do.Injector) (*typeadapters.Registry, error) {
		sink, err := do.Invoke[diagnostics.Sink](i)
		if err != nil {
			return nil, err
		}

		options := make([]typeadapters.RegistryOption, 0, 1)
		if config.Dialect.StringDefaultLength != nil {
			options = append(options,
				typeadapters.WithStringDefaultLength(*config.Dialect.StringDefaultLength),
			)
		}
		return typeadapters.NewRegistry(sink, options...), nil
	})

	registry, err := do.Invoke[*typeadapters.Registry](injector)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	return &Dialect{
		injector: injector,
		registry: registry,
	}, nil
}

// Registry gives access to the adapter constructors for callers that
// assemble their own composite types.
func (d *Dialect) Registry() *typeadapters.Registry {
	return d.registry
}

// DataTypeFor builds the adapter described by a column definition,
// including composite RANGE / ARRAY adapters and context-bound ENUM
// adapters.
func (d *Dialect) DataTypeFor(
	column spiconfig.ColumnConfig,
) (datatypes.DataType, error) {

	opts := columnOptions(column)

	switch datatypes.TypeID(strings.ToUpper(column.Type)) {
	case datatypes.TypeRange:
		if column.SubType == nil {
			return nil, errors.Errorf(
				"RANGE column '%s' is missing its sub type", column.Name,
			)
		}
		subType, err := d.registry.ByID(
			datatypes.TypeID(strings.ToUpper(*column.SubType)), opts,
		)
		if err != nil {
			return nil, err
		}
		return d.registry.Range(subType), nil

	case datatypes.TypeArray:
		if column.ElementType == nil {
			return nil, errors.Errorf(
				"ARRAY column '%s' is missing its element type", column.Name,
			)
		}
		elementType, err := d.registry.ByID(
			datatypes.TypeID(strings.ToUpper(*column.ElementType)), opts,
		)
		if err != nil {
			return nil, err
		}
		return d.registry.Array(elementType), nil

	case datatypes.TypeEnum:
		if len(column.Values) == 0 {
			return nil, errors.Errorf(
				"ENUM column '%s' has no member values", column.Name,
			)
		}
		enum := d.registry.Enum(nil, column.Values...)
		if column.Table != "" && column.Name != "" {
			if attachable, ok := enum.(datatypes.ContextAttachable); ok {
				attachable.AttachUsageContext(&datatypes.UsageContext{
					TableName:  column.Table,
					ColumnName: column.Name,
				})
			}
		}
		return enum, nil
	}

	return d.registry.ByID(datatypes.TypeID(strings.ToUpper(column.Type)), opts)
}

func (d *Dialect) Shutdown() error {
	return d.injector.Shutdown()
}

func columnOptions(
	column spiconfig.ColumnConfig,
) *datatypes.Options {

	return &datatypes.Options{
		Length:       column.Length,
		Precision:    column.Precision,
		Scale:        column.Scale,
		Decimals:     column.Decimals,
		Unsigned:     column.Unsigned,
		Zerofill:     column.Zerofill,
		Binary:       column.Binary,
		GeometryType: column.GeometryType,
		Srid:         column.Srid,
		Values:       column.Values,
	}
}
