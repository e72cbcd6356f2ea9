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
	"github.com/noctarius/pgdialect/spi/datatypes"
	"reflect"
	"strings"
)

// arrayType composes an element adapter into a PostgreSQL array
// type. The element adapter is not owned and may be shared.
type arrayType struct {
	elementType datatypes.DataType
}

func (t *arrayType) ID() datatypes.TypeID {
	return datatypes.TypeArray
}

func (t *arrayType) Options() *datatypes.Options {
	return t.elementType.Options()
}

func (t *arrayType) SQLType() (string, error) {
	elementSqlType, err := t.elementType.SQLType()
	if err != nil {
		return "", err
	}
	return elementSqlType + "[]", nil
}

func (t *arrayType) BindableValue(
	value any,
) (any, error) {

	return t.convertElements(value)
}

// Escape renders an ARRAY constructor with an explicit element type
// cast, escaping every element through the element adapter.
func (t *arrayType) Escape(
	value any, escape datatypes.EscapeFunc,
) (string, error) {

	elements, err := sliceElements(value)
	if err != nil {
		return "", err
	}

	escaped := make([]string, len(elements))
	for i, element := range elements {
		item, err := Escape(t.elementType, element, escape)
		if err != nil {
			return "", err
		}
		escaped[i] = item
	}

	sqlType, err := t.SQLType()
	if err != nil {
		return "", err
	}
	return "ARRAY[" + strings.Join(escaped, ",") + "]::" + sqlType, nil
}

// BindParam converts every element to its bindable form and binds
// the whole array as a single parameter.
func (t *arrayType) BindParam(
	value any, bind datatypes.BindFunc,
) (string, error) {

	converted, err := t.convertElements(value)
	if err != nil {
		return "", err
	}
	return bind(converted), nil
}

func (t *arrayType) convertElements(
	value any,
) ([]any, error) {

	elements, err := sliceElements(value)
	if err != nil {
		return nil, err
	}

	converted := make([]any, len(elements))
	for i, element := range elements {
		item, err := BindableValue(t.elementType, element)
		if err != nil {
			return nil, err
		}
		converted[i] = item
	}
	return converted, nil
}

func sliceElements(
	value any,
) ([]any, error) {

	if elements, ok := value.([]any); ok {
		return elements, nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errIllegalValue
	}

	elements := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elements[i] = rv.Index(i).Interface()
	}
	return elements, nil
}
