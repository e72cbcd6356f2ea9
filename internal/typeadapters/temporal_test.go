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
	"github.com/noctarius/pgdialect/internal/supporting"
	"github.com/noctarius/pgdialect/spi/datatypes"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
	"time"
)

func TestDate_SqlType(
	t *testing.T,
) {

	registry := NewRegistry(nil)

	sqlType, err := registry.Date(&datatypes.Options{}).SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "TIMESTAMP WITH TIME ZONE", sqlType)

	sqlType, err = registry.Date(&datatypes.Options{
		Precision: supporting.AddrOf(6),
	}).SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "TIMESTAMP(6) WITH TIME ZONE", sqlType)
}

var dateInfinityTestCases = []struct {
	name     string
	value    any
	expected any
}{
	{name: "positive modifier", value: pgtype.Infinity, expected: "infinity"},
	{name: "negative modifier", value: pgtype.NegativeInfinity, expected: "-infinity"},
	{name: "positive float", value: math.Inf(1), expected: "infinity"},
	{name: "negative float", value: math.Inf(-1), expected: "-infinity"},
}

func TestDate_Infinity_Binding(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Date(&datatypes.Options{})

	for _, testCase := range dateInfinityTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			bindable, err := BindableValue(dataType, testCase.value)
			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, bindable)
		})
	}
}

func TestDate_Time_Binding(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Date(&datatypes.Options{})

	instant := time.Date(2023, 4, 5, 6, 7, 8, 123456000, time.UTC)
	bindable, err := BindableValue(dataType, instant)
	assert.NoError(t, err)
	assert.Equal(t, "2023-04-05 06:07:08.123456Z", bindable)
}

func TestDate_Parse_Is_Identity(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Date(&datatypes.Options{})

	parsed, err := Parse(dataType, "2023-04-05 06:07:08+00")
	assert.NoError(t, err)
	assert.Equal(t, "2023-04-05 06:07:08+00", parsed)
}

func TestDate_Validation_Accepts_Infinity(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Date(&datatypes.Options{})

	assert.NoError(t, Validate(dataType, pgtype.Infinity))
	assert.NoError(t, Validate(dataType, math.Inf(-1)))
	assert.NoError(t, Validate(dataType, time.Now()))
	assert.NoError(t, Validate(dataType, "2023-04-05T06:07:08Z"))
	assert.Error(t, Validate(dataType, "not a date"))
	assert.Error(t, Validate(dataType, 42))
}

func TestDateOnly_SqlType_And_Binding(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.DateOnly()

	sqlType, err := dataType.SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "DATE", sqlType)

	bindable, err := BindableValue(dataType, pgtype.Infinity)
	assert.NoError(t, err)
	assert.Equal(t, "infinity", bindable)

	bindable, err = BindableValue(dataType, time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "2023-04-05", bindable)
}

func TestDateOnly_Sanitize_Is_Case_Insensitive(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.DateOnly()

	assert.Equal(t, pgtype.Infinity, Sanitize(dataType, "Infinity"))
	assert.Equal(t, pgtype.NegativeInfinity, Sanitize(dataType, "-INFINITY"))
	assert.Equal(t, "2023-04-05", Sanitize(dataType, "2023-04-05"))
}

func TestDateOnly_Parse_Matches_Literals_Exactly(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.DateOnly()

	parsed, err := Parse(dataType, "infinity")
	assert.NoError(t, err)
	assert.Equal(t, pgtype.Infinity, parsed)

	parsed, err = Parse(dataType, "-infinity")
	assert.NoError(t, err)
	assert.Equal(t, pgtype.NegativeInfinity, parsed)

	parsed, err = Parse(dataType, "Infinity")
	assert.NoError(t, err)
	assert.Equal(t, "Infinity", parsed)

	parsed, err = Parse(dataType, "2023-04-05")
	assert.NoError(t, err)
	assert.Equal(t, "2023-04-05", parsed)
}
