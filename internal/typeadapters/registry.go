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

package typeadapters

import (
	"fmt"
	"github.com/go-errors/errors"
	"github.com/noctarius/pgdialect/spi/datatypes"
	"github.com/noctarius/pgdialect/spi/diagnostics"
)

// errIllegalValue represents an illegal type conversion request
// for the given value
var errIllegalValue = fmt.Errorf("illegal value for data type conversion")

const defaultStringLength = 255

// Registry constructs the PostgreSQL adapters for the abstract
// column types. Adapters are built once when the type system is
// configured for this dialect and reused across all queries
// referencing the type; option stripping happens here, before an
// adapter is handed out.
type Registry struct {
	sink                diagnostics.Sink
	stringDefaultLength int
}

type RegistryOption func(r *Registry)

func WithStringDefaultLength(
	length int,
) RegistryOption {

	return func(r *Registry) {
		r.stringDefaultLength = length
	}
}

func NewRegistry(
	sink diagnostics.Sink, options ...RegistryOption,
) *Registry {

	if sink == nil {
		sink = diagnostics.NoopSink{}
	}

	registry := &Registry{
		sink:                sink,
		stringDefaultLength: defaultStringLength,
	}
	for _, option := range options {
		option(registry)
	}
	return registry
}

func (r *Registry) Boolean() datatypes.DataType {
	return r.expose(&booleanType{})
}

func (r *Registry) SmallInt(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&integerType{id: datatypes.TypeSmallInt, sqlName: "SMALLINT", opts: opts.Clone()})
}

func (r *Registry) Integer(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&integerType{id: datatypes.TypeInteger, sqlName: "INTEGER", opts: opts.Clone()})
}

func (r *Registry) BigInt(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&integerType{id: datatypes.TypeBigInt, sqlName: "BIGINT", opts: opts.Clone()})
}

func (r *Registry) Real(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&integerType{id: datatypes.TypeReal, sqlName: "REAL", opts: opts.Clone()})
}

func (r *Registry) Float(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&floatType{id: datatypes.TypeFloat, sqlName: "FLOAT", opts: opts.Clone()})
}

func (r *Registry) Double(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&floatType{id: datatypes.TypeDouble, sqlName: "DOUBLE PRECISION", opts: opts.Clone()})
}

func (r *Registry) Decimal(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&decimalType{opts: opts.Clone()})
}

func (r *Registry) String(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&stringType{
		id: datatypes.TypeString, sqlName: "VARCHAR",
		defaultLength: r.stringDefaultLength, opts: opts.Clone(),
	})
}

func (r *Registry) Char(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&stringType{
		id: datatypes.TypeChar, sqlName: "CHAR",
		defaultLength: r.stringDefaultLength, opts: opts.Clone(),
	})
}

func (r *Registry) Text(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&textType{id: datatypes.TypeText, sqlName: "TEXT", opts: opts.Clone()})
}

func (r *Registry) Citext() datatypes.DataType {
	return r.expose(&textType{id: datatypes.TypeCitext, sqlName: "CITEXT", opts: &datatypes.Options{}})
}

func (r *Registry) Tsvector() datatypes.DataType {
	return r.expose(&textType{id: datatypes.TypeTsvector, sqlName: "TSVECTOR", opts: &datatypes.Options{}})
}

func (r *Registry) Blob(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&blobType{opts: opts.Clone()})
}

func (r *Registry) Date(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&dateType{opts: opts.Clone()})
}

func (r *Registry) DateOnly() datatypes.DataType {
	return r.expose(&dateOnlyType{})
}

func (r *Registry) Uuid() datatypes.DataType {
	return r.expose(&uuidType{})
}

func (r *Registry) Json() datatypes.DataType {
	return r.expose(&jsonType{id: datatypes.TypeJson, sqlName: "JSON"})
}

func (r *Registry) Jsonb() datatypes.DataType {
	return r.expose(&jsonType{id: datatypes.TypeJsonb, sqlName: "JSONB"})
}

func (r *Registry) Hstore() datatypes.DataType {
	return r.expose(&hstoreType{})
}

func (r *Registry) Geometry(
	opts *datatypes.Options,
) datatypes.DataType {

	return r.expose(&geometryType{
		id: datatypes.TypeGeometry, sqlName: "GEOMETRY",
		uppercaseSubType: true, opts: opts.Clone(),
	})
}

func (r *Registry) Geography(
	opts *datatypes.Options,
) datatypes.DataType {

	// The subtype token is intentionally kept as given here, while
	// GEOMETRY upper-cases it.
	return r.expose(&geometryType{
		id: datatypes.TypeGeography, sqlName: "GEOGRAPHY",
		uppercaseSubType: false, opts: opts.Clone(),
	})
}

// Range builds a range adapter around the given sub type adapter.
// The sub type adapter is supplied by the caller and may be shared;
// the range adapter does not own it.
func (r *Registry) Range(
	subType datatypes.DataType,
) datatypes.DataType {

	return r.expose(&rangeType{subType: subType})
}

// Array builds an array adapter around the given element adapter.
func (r *Registry) Array(
	elementType datatypes.DataType,
) datatypes.DataType {

	return r.expose(&arrayType{elementType: elementType})
}

func (r *Registry) Enum(
	namer datatypes.EnumTypeNamer, values ...string,
) datatypes.DataType {

	if namer == nil {
		namer = DefaultEnumNamer{}
	}
	return r.expose(&enumType{namer: namer, opts: &datatypes.Options{Values: values}})
}

// ByID constructs an adapter for the given type identifier. Only
// non-composite types can be built this way; RANGE, ARRAY and ENUM
// need their collaborators and have dedicated constructors.
func (r *Registry) ByID(
	id datatypes.TypeID, opts *datatypes.Options,
) (datatypes.DataType, error) {

	switch id {
	case datatypes.TypeBoolean:
		return r.Boolean(), nil
	case datatypes.TypeSmallInt:
		return r.SmallInt(opts), nil
	case datatypes.TypeInteger:
		return r.Integer(opts), nil
	case datatypes.TypeBigInt:
		return r.BigInt(opts), nil
	case datatypes.TypeReal:
		return r.Real(opts), nil
	case datatypes.TypeFloat:
		return r.Float(opts), nil
	case datatypes.TypeDouble:
		return r.Double(opts), nil
	case datatypes.TypeDecimal:
		return r.Decimal(opts), nil
	case datatypes.TypeString:
		return r.String(opts), nil
	case datatypes.TypeChar:
		return r.Char(opts), nil
	case datatypes.TypeText:
		return r.Text(opts), nil
	case datatypes.TypeCitext:
		return r.Citext(), nil
	case datatypes.TypeTsvector:
		return r.Tsvector(), nil
	case datatypes.TypeBlob:
		return r.Blob(opts), nil
	case datatypes.TypeDate:
		return r.Date(opts), nil
	case datatypes.TypeDateOnly:
		return r.DateOnly(), nil
	case datatypes.TypeUuid:
		return r.Uuid(), nil
	case datatypes.TypeJson:
		return r.Json(), nil
	case datatypes.TypeJsonb:
		return r.Jsonb(), nil
	case datatypes.TypeHstore:
		return r.Hstore(), nil
	case datatypes.TypeGeometry:
		return r.Geometry(opts), nil
	case datatypes.TypeGeography:
		return r.Geography(opts), nil
	case datatypes.TypeEnum:
		if opts == nil || len(opts.Values) == 0 {
			return nil, errors.Errorf("ENUM requires at least one member value")
		}
		return r.Enum(nil, opts.Values...), nil
	}
	return nil, errors.Errorf("unsupported type identifier: %s", id)
}

// expose runs the one-time option stripping before the adapter is
// visible to callers.
func (r *Registry) expose(
	dataType datatypes.DataType,
) datatypes.DataType {

	if checker, ok := dataType.(datatypes.OptionChecker); ok {
		checker.CheckOptionSupport(r.sink)
	}
	return dataType
}
