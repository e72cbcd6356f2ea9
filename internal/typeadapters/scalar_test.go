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
	"github.com/stretchr/testify/assert"
	"testing"
)

var booleanParseTestCases = []struct {
	name     string
	raw      any
	expected any
	fails    bool
}{
	{name: "short true", raw: "t", expected: true},
	{name: "long true", raw: "true", expected: true},
	{name: "numeric true", raw: "1", expected: true},
	{name: "short false", raw: "f", expected: false},
	{name: "long false", raw: "false", expected: false},
	{name: "numeric false", raw: "0", expected: false},
	{name: "bytes", raw: []byte("t"), expected: true},
	{name: "native bool", raw: true, expected: true},
	{name: "garbage", raw: "yes", fails: true},
}

func TestBoolean_Parse(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Boolean()

	for _, testCase := range booleanParseTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			parsed, err := Parse(dataType, testCase.raw)
			if testCase.fails {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, parsed)
		})
	}
}

func TestUuid_Validation(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Uuid()

	assert.NoError(t, Validate(dataType, "0634ef33-b347-4704-a9a7-bbba1b1c0e0a"))
	assert.Error(t, Validate(dataType, "not-a-uuid"))
	assert.Error(t, Validate(dataType, 42))
}

func TestJson_Binding_And_Parsing(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Jsonb()

	sqlType, err := dataType.SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "JSONB", sqlType)

	bindable, err := BindableValue(dataType, map[string]any{"a": float64(1)})
	assert.NoError(t, err)
	assert.Equal(t, `{"a":1}`, bindable)

	bindable, err = BindableValue(dataType, `{"a":1}`)
	assert.NoError(t, err)
	assert.Equal(t, `{"a":1}`, bindable)

	parsed, err := Parse(dataType, `{"a":1}`)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, parsed)
}
