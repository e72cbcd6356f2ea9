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
	"encoding/hex"
	"fmt"
	"github.com/noctarius/pgdialect/spi/datatypes"
	"strconv"
	"strings"
)

// BindableValue dispatches to the adapter's BindableValuer hook, or
// passes the value through unchanged when the hook isn't present.
func BindableValue(
	dataType datatypes.DataType, value any,
) (any, error) {

	if valuer, ok := dataType.(datatypes.BindableValuer); ok {
		return valuer.BindableValue(value)
	}
	return value, nil
}

// Escape renders an inline SQL literal for the value, using the
// adapter's Escaper hook when present and the escaping primitive
// otherwise.
func Escape(
	dataType datatypes.DataType, value any, escape datatypes.EscapeFunc,
) (string, error) {

	if escaper, ok := dataType.(datatypes.Escaper); ok {
		return escaper.Escape(value, escape)
	}

	bindable, err := BindableValue(dataType, value)
	if err != nil {
		return "", err
	}
	if literal, ok := bindable.(datatypes.Literal); ok {
		return string(literal), nil
	}
	return escape(bindable), nil
}

// BindParam renders the placeholder expression for a parameter
// bound out-of-band.
func BindParam(
	dataType datatypes.DataType, value any, bind datatypes.BindFunc,
) (string, error) {

	if binder, ok := dataType.(datatypes.ParamBinder); ok {
		return binder.BindParam(value, bind)
	}

	bindable, err := BindableValue(dataType, value)
	if err != nil {
		return "", err
	}
	if literal, ok := bindable.(datatypes.Literal); ok {
		return string(literal), nil
	}
	return bind(bindable), nil
}

// Parse converts a wire format result value into an application
// value. Adapters without a Parser hook return the raw value.
func Parse(
	dataType datatypes.DataType, raw any,
) (any, error) {

	if parser, ok := dataType.(datatypes.Parser); ok {
		return parser.Parse(raw)
	}
	return raw, nil
}

func Validate(
	dataType datatypes.DataType, value any,
) error {

	if validator, ok := dataType.(datatypes.Validator); ok {
		return validator.Validate(value)
	}
	return nil
}

func Sanitize(
	dataType datatypes.DataType, value any,
) any {

	if sanitizer, ok := dataType.(datatypes.Sanitizer); ok {
		return sanitizer.Sanitize(value)
	}
	return value
}

// QuoteLiteral escapes a string for safe use as a single quoted
// SQL literal (single quotes doubled).
func QuoteLiteral(
	literal string,
) string {

	return "'" + strings.ReplaceAll(literal, "'", "''") + "'"
}

// DefaultEscape is a ready-made EscapeFunc for callers that don't
// bring their own query generator.
func DefaultEscape(
	value any,
) string {

	switch v := value.(type) {
	case nil:
		return "NULL"
	case datatypes.Literal:
		return string(v)
	case string:
		return QuoteLiteral(v)
	case []byte:
		return `'\x` + hex.EncodeToString(v) + `'`
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", value)
}
