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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/noctarius/pgdialect/spi/datatypes"
	"strings"
)

// rangeType composes a sub type adapter into one of the built-in
// PostgreSQL range types. The sub type adapter is not owned and may
// be shared with other composite adapters.
//
// A scalar bound escaped inline gets an explicit range cast appended
// since an untyped literal is ambiguous; an interval serialized to
// the range grammar is self-describing and stays uncast.
type rangeType struct {
	subType datatypes.DataType
}

func (t *rangeType) ID() datatypes.TypeID {
	return datatypes.TypeRange
}

func (t *rangeType) Options() *datatypes.Options {
	return t.subType.Options()
}

func (t *rangeType) SQLType() (string, error) {
	name, ok := rangeTypeNames[t.subType.ID()]
	if !ok {
		return "", errors.Errorf("unsupported range sub type: %s", t.subType.ID())
	}
	return name, nil
}

func (t *rangeType) BindableValue(
	value any,
) (any, error) {

	if interval, ok := value.(pgtype.Range[any]); ok {
		return serializeRange(interval, t.subType)
	}
	return BindableValue(t.subType, value)
}

func (t *rangeType) Escape(
	value any, escape datatypes.EscapeFunc,
) (string, error) {

	if interval, ok := value.(pgtype.Range[any]); ok {
		serialized, err := serializeRange(interval, t.subType)
		if err != nil {
			return "", err
		}
		return escape(serialized), nil
	}

	name, err := t.SQLType()
	if err != nil {
		return "", err
	}
	escaped, err := Escape(t.subType, value, escape)
	if err != nil {
		return "", err
	}
	return escaped + "::" + name, nil
}

func (t *rangeType) BindParam(
	value any, bind datatypes.BindFunc,
) (string, error) {

	if interval, ok := value.(pgtype.Range[any]); ok {
		serialized, err := serializeRange(interval, t.subType)
		if err != nil {
			return "", err
		}
		return bind(serialized), nil
	}

	name, err := t.SQLType()
	if err != nil {
		return "", err
	}
	bindable, err := BindableValue(t.subType, value)
	if err != nil {
		return "", err
	}
	return bind(bindable) + "::" + name, nil
}

// Parse decodes the range text grammar and runs the sub type parser
// on both bound values.
func (t *rangeType) Parse(
	raw any,
) (any, error) {

	text, ok := rawText(raw)
	if !ok {
		return nil, errors.Errorf("range value must be textual, got %T", raw)
	}

	name, err := t.SQLType()
	if err != nil {
		return nil, err
	}

	oid := rangeTypeOids[name]
	registration, ok := typeMap.TypeForOID(oid)
	if !ok {
		return nil, errors.Errorf("no codec registered for %s", name)
	}

	decoded, err := registration.Codec.DecodeValue(
		typeMap, oid, pgtype.TextFormatCode, []byte(text),
	)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	interval, ok := decoded.(pgtype.Range[any])
	if !ok {
		return nil, errIllegalValue
	}
	return parseRangeBounds(interval, t.subType)
}

func parseRangeBounds(
	interval pgtype.Range[any], subType datatypes.DataType,
) (pgtype.Range[any], error) {

	if interval.LowerType == pgtype.Inclusive || interval.LowerType == pgtype.Exclusive {
		lower, err := Parse(subType, interval.Lower)
		if err != nil {
			return interval, err
		}
		interval.Lower = lower
	}
	if interval.UpperType == pgtype.Inclusive || interval.UpperType == pgtype.Exclusive {
		upper, err := Parse(subType, interval.Upper)
		if err != nil {
			return interval, err
		}
		interval.Upper = upper
	}
	return interval, nil
}

// serializeRange renders the range text grammar, converting each
// bound through the sub type adapter first.
func serializeRange(
	interval pgtype.Range[any], subType datatypes.DataType,
) (string, error) {

	if !interval.Valid || interval.LowerType == pgtype.Empty {
		return "empty", nil
	}

	builder := strings.Builder{}
	if interval.LowerType == pgtype.Inclusive {
		builder.WriteString("[")
	} else {
		builder.WriteString("(")
	}

	if interval.LowerType != pgtype.Unbounded {
		lower, err := boundAsText(interval.Lower, subType)
		if err != nil {
			return "", err
		}
		builder.WriteString(lower)
	}
	builder.WriteString(",")
	if interval.UpperType != pgtype.Unbounded {
		upper, err := boundAsText(interval.Upper, subType)
		if err != nil {
			return "", err
		}
		builder.WriteString(upper)
	}

	if interval.UpperType == pgtype.Inclusive {
		builder.WriteString("]")
	} else {
		builder.WriteString(")")
	}
	return builder.String(), nil
}

func boundAsText(
	bound any, subType datatypes.DataType,
) (string, error) {

	converted, err := BindableValue(subType, bound)
	if err != nil {
		return "", err
	}

	switch v := converted.(type) {
	case datatypes.Literal:
		return string(v), nil
	case string:
		return quoteRangeBound(v), nil
	case []byte:
		return quoteRangeBound(string(v)), nil
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprintf("%v", v), nil
	}
	return "", errors.Errorf("range bound %+v does not stringify to text", bound)
}

// quoteRangeBound double quotes a bound value when the range grammar
// would otherwise misread it.
func quoteRangeBound(
	bound string,
) string {

	if bound != "" && !strings.ContainsAny(bound, `",\()[] `) {
		return bound
	}
	escaped := strings.ReplaceAll(bound, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}
