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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/noctarius/pgdialect/spi/datatypes"
	"github.com/stretchr/testify/assert"
	"testing"
)

var rangeSqlTypeTestCases = []struct {
	name     string
	build    func(r *Registry) datatypes.DataType
	expected string
}{
	{
		name: "integer",
		build: func(r *Registry) datatypes.DataType {
			return r.Range(r.Integer(&datatypes.Options{}))
		},
		expected: "int4range",
	},
	{
		name: "bigint",
		build: func(r *Registry) datatypes.DataType {
			return r.Range(r.BigInt(&datatypes.Options{}))
		},
		expected: "int8range",
	},
	{
		name: "decimal",
		build: func(r *Registry) datatypes.DataType {
			return r.Range(r.Decimal(&datatypes.Options{}))
		},
		expected: "numrange",
	},
	{
		name: "date",
		build: func(r *Registry) datatypes.DataType {
			return r.Range(r.Date(&datatypes.Options{}))
		},
		expected: "tstzrange",
	},
	{
		name: "dateonly",
		build: func(r *Registry) datatypes.DataType {
			return r.Range(r.DateOnly())
		},
		expected: "daterange",
	},
}

func TestRange_SqlType(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	for _, testCase := range rangeSqlTypeTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			sqlType, err := testCase.build(registry).SQLType()
			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, sqlType)
		})
	}
}

func TestRange_Unsupported_SubType(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Range(registry.Boolean())

	_, err := dataType.SQLType()
	assert.Error(t, err)
}

func TestRange_Interval_Binding(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Range(registry.Integer(&datatypes.Options{}))

	bindable, err := BindableValue(dataType, pgtype.Range[any]{
		Lower:     1,
		Upper:     10,
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "[1,10)", bindable)
}

func TestRange_Unbounded_And_Empty_Binding(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Range(registry.Integer(&datatypes.Options{}))

	bindable, err := BindableValue(dataType, pgtype.Range[any]{
		Upper:     10,
		LowerType: pgtype.Unbounded,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "(,10)", bindable)

	bindable, err = BindableValue(dataType, pgtype.Range[any]{
		LowerType: pgtype.Empty,
		UpperType: pgtype.Empty,
		Valid:     true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "empty", bindable)
}

func TestRange_Scalar_Escape_Appends_Cast(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Range(registry.Integer(&datatypes.Options{}))

	escaped, err := Escape(dataType, 4, DefaultEscape)
	assert.NoError(t, err)
	assert.Equal(t, "4::int4range", escaped)
}

func TestRange_Interval_Escape_Stays_Uncast(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Range(registry.Integer(&datatypes.Options{}))

	escaped, err := Escape(dataType, pgtype.Range[any]{
		Lower:     1,
		Upper:     10,
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	}, DefaultEscape)
	assert.NoError(t, err)
	assert.Equal(t, "'[1,10)'", escaped)
}

func TestRange_BindParam_Asymmetry(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Range(registry.Integer(&datatypes.Options{}))

	bind := func(value any) string {
		return "$1"
	}

	bound, err := BindParam(dataType, 4, bind)
	assert.NoError(t, err)
	assert.Equal(t, "$1::int4range", bound)

	bound, err = BindParam(dataType, pgtype.Range[any]{
		Lower:     1,
		Upper:     10,
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	}, bind)
	assert.NoError(t, err)
	assert.Equal(t, "$1", bound)
}

func TestRange_Round_Trip(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Range(registry.Integer(&datatypes.Options{}))

	bindable, err := BindableValue(dataType, pgtype.Range[any]{
		Lower:     1,
		Upper:     10,
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	})
	assert.NoError(t, err)

	parsed, err := Parse(dataType, bindable)
	assert.NoError(t, err)

	interval := parsed.(pgtype.Range[any])
	assert.Equal(t, int32(1), interval.Lower)
	assert.Equal(t, int32(10), interval.Upper)
	assert.Equal(t, pgtype.Inclusive, interval.LowerType)
	assert.Equal(t, pgtype.Exclusive, interval.UpperType)
}

func TestRange_Parse_Rejects_Non_Textual(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Range(registry.Integer(&datatypes.Options{}))

	_, err := Parse(dataType, 42)
	assert.Error(t, err)
}
