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
	"github.com/noctarius/pgdialect/internal/supporting"
	"github.com/noctarius/pgdialect/spi/datatypes"
	"github.com/noctarius/pgdialect/testsupport"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestString_SqlType(
	t *testing.T,
) {

	registry := NewRegistry(nil)

	sqlType, err := registry.String(&datatypes.Options{}).SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "VARCHAR(255)", sqlType)

	sqlType, err = registry.String(&datatypes.Options{
		Length: supporting.AddrOf(42),
	}).SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "VARCHAR(42)", sqlType)
}

func TestString_Configured_Default_Length(
	t *testing.T,
) {

	registry := NewRegistry(nil, WithStringDefaultLength(100))

	sqlType, err := registry.String(&datatypes.Options{}).SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "VARCHAR(100)", sqlType)
}

func TestString_Binary_Becomes_Bytea(
	t *testing.T,
) {

	sink := &testsupport.CapturingSink{}
	registry := NewRegistry(sink)

	dataType := registry.String(&datatypes.Options{
		Binary: supporting.AddrOf(true),
		Length: supporting.AddrOf(42),
	})

	sqlType, err := dataType.SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "BYTEA", sqlType)
	assert.Nil(t, dataType.Options().Length)
	assert.Equal(t, 1, len(sink.Warnings))
	assert.Equal(t, docsBinaryTypes, sink.Warnings[0].DocsURL)
}

func TestChar_SqlType(
	t *testing.T,
) {

	registry := NewRegistry(nil)

	sqlType, err := registry.Char(&datatypes.Options{
		Length: supporting.AddrOf(12),
	}).SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "CHAR(12)", sqlType)
}

func TestTextFamily_Strips_Length(
	t *testing.T,
) {

	sink := &testsupport.CapturingSink{}
	registry := NewRegistry(sink)

	dataType := registry.Text(&datatypes.Options{
		Length: supporting.AddrOf(42),
	})

	sqlType, err := dataType.SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "TEXT", sqlType)
	assert.Nil(t, dataType.Options().Length)
	assert.Equal(t, 1, len(sink.Warnings))
}

func TestCitext_And_Tsvector_SqlType(
	t *testing.T,
) {

	registry := NewRegistry(nil)

	sqlType, err := registry.Citext().SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "CITEXT", sqlType)

	sqlType, err = registry.Tsvector().SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "TSVECTOR", sqlType)
}

func TestBlob_Strips_Length_And_Binds_Bytes(
	t *testing.T,
) {

	sink := &testsupport.CapturingSink{}
	registry := NewRegistry(sink)

	dataType := registry.Blob(&datatypes.Options{
		Length: supporting.AddrOf(42),
	})

	sqlType, err := dataType.SQLType()
	assert.NoError(t, err)
	assert.Equal(t, "BYTEA", sqlType)
	assert.Equal(t, 1, len(sink.Warnings))

	bindable, err := BindableValue(dataType, "payload")
	assert.NoError(t, err)
	assert.Equal(t, []byte("payload"), bindable)
}
