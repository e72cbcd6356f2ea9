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

package datatypes

import (
	"github.com/noctarius/pgdialect/spi/diagnostics"
)

// TypeID identifies one abstract column type family. Composite
// types (RANGE, ARRAY) additionally reference a sub type adapter.
type TypeID string

const (
	TypeBoolean   TypeID = "BOOLEAN"
	TypeSmallInt  TypeID = "SMALLINT"
	TypeInteger   TypeID = "INTEGER"
	TypeBigInt    TypeID = "BIGINT"
	TypeReal      TypeID = "REAL"
	TypeFloat     TypeID = "FLOAT"
	TypeDouble    TypeID = "DOUBLE"
	TypeDecimal   TypeID = "DECIMAL"
	TypeString    TypeID = "STRING"
	TypeChar      TypeID = "CHAR"
	TypeText      TypeID = "TEXT"
	TypeCitext    TypeID = "CITEXT"
	TypeTsvector  TypeID = "TSVECTOR"
	TypeBlob      TypeID = "BLOB"
	TypeDate      TypeID = "DATE"
	TypeDateOnly  TypeID = "DATEONLY"
	TypeUuid      TypeID = "UUID"
	TypeJson      TypeID = "JSON"
	TypeJsonb     TypeID = "JSONB"
	TypeHstore    TypeID = "HSTORE"
	TypeRange     TypeID = "RANGE"
	TypeArray     TypeID = "ARRAY"
	TypeEnum      TypeID = "ENUM"
	TypeGeometry  TypeID = "GEOMETRY"
	TypeGeography TypeID = "GEOGRAPHY"
)

// EscapeFunc is the caller supplied primitive that renders a value
// as a safely escaped inline SQL literal.
type EscapeFunc func(value any) string

// BindFunc is the caller supplied primitive that registers a value
// as an out-of-band statement parameter and returns its placeholder.
type BindFunc func(value any) string

// Literal marks a string as a ready-made SQL fragment. Values of
// this type bypass the EscapeFunc / BindFunc primitives.
type Literal string

// DataType is the minimal contract every adapter fulfills. All
// further behavior is expressed through the optional capability
// interfaces below and dispatched by the registry, never through
// embedding based overrides.
type DataType interface {
	ID() TypeID
	Options() *Options
	// SQLType returns the dialect specific type name used in DDL.
	SQLType() (string, error)
}

// OptionChecker strips unsupported options from the adapter's
// Options and reports each removal once through the sink.
type OptionChecker interface {
	CheckOptionSupport(sink diagnostics.Sink)
}

// BindableValuer converts an application value into a form that is
// suitable for the escaping or parameter binding primitives.
type BindableValuer interface {
	BindableValue(value any) (any, error)
}

// Escaper renders a complete inline SQL literal. Adapters implement
// it when escaping is more than BindableValue plus EscapeFunc, for
// example to append an explicit cast or wrap a function call.
type Escaper interface {
	Escape(value any, escape EscapeFunc) (string, error)
}

// ParamBinder renders the placeholder expression for an out-of-band
// bound parameter.
type ParamBinder interface {
	BindParam(value any, bind BindFunc) (string, error)
}

// Parser converts the database's wire format result value back into
// an application level value.
type Parser interface {
	Parse(raw any) (any, error)
}

// Validator reports whether a value is acceptable for the type.
type Validator interface {
	Validate(value any) error
}

// Sanitizer normalizes user supplied input before validation.
type Sanitizer interface {
	Sanitize(value any) any
}
