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
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHstore_Binding(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Hstore()

	bindable, err := BindableValue(dataType, nil)
	assert.NoError(t, err)
	assert.Nil(t, bindable)

	bindable, err = BindableValue(dataType, map[string]string{"key": "value"})
	assert.NoError(t, err)
	assert.Equal(t, `"key"=>"value"`, bindable)

	bindable, err = BindableValue(dataType, `"key"=>"value"`)
	assert.NoError(t, err)
	assert.Equal(t, `"key"=>"value"`, bindable)

	_, err = BindableValue(dataType, 42)
	assert.Error(t, err)
}

func TestHstore_Round_Trip(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Hstore()

	value := "value"
	source := pgtype.Hstore{"key": &value, "empty": nil}

	bindable, err := BindableValue(dataType, source)
	assert.NoError(t, err)

	parsed, err := Parse(dataType, bindable)
	assert.NoError(t, err)
	assert.Equal(t, source, parsed)
}

func TestHstore_Parse_Rejects_Non_Textual(
	t *testing.T,
) {

	registry := NewRegistry(nil)
	dataType := registry.Hstore()

	_, err := Parse(dataType, 42)
	assert.Error(t, err)
}
