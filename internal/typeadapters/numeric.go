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
	"github.com/noctarius/pgdialect/spi/diagnostics"
	"math"
	"strconv"
	"strings"
)

// integerType covers SMALLINT, INTEGER, BIGINT and REAL. PostgreSQL
// has no display width, unsigned or zerofill modifiers for any of
// them, so all three options are stripped unconditionally.
type integerType struct {
	id      datatypes.TypeID
	sqlName string
	opts    *datatypes.Options
}

func (t *integerType) ID() datatypes.TypeID {
	return t.id
}

func (t *integerType) Options() *datatypes.Options {
	return t.opts
}

func (t *integerType) SQLType() (string, error) {
	return t.sqlName, nil
}

func (t *integerType) CheckOptionSupport(
	sink diagnostics.Sink,
) {

	stripped := make([]string, 0, 3)
	if t.opts.Length != nil {
		t.opts.Length = nil
		stripped = append(stripped, "length")
	}
	if t.opts.Unsigned != nil {
		t.opts.Unsigned = nil
		stripped = append(stripped, "unsigned")
	}
	if t.opts.Zerofill != nil {
		t.opts.Zerofill = nil
		stripped = append(stripped, "zerofill")
	}

	if len(stripped) > 0 {
		sink.Warn(docsNumericTypes, fmt.Sprintf(
			"PostgreSQL does not support %s with %s. Plain %s will be used instead.",
			t.sqlName, strings.Join(stripped, ", "), t.sqlName,
		))
	}
}

// floatType covers FLOAT and DOUBLE PRECISION. The decimals option
// (together with its length counterpart) is stripped with one
// warning, unsigned and zerofill each with their own.
type floatType struct {
	id      datatypes.TypeID
	sqlName string
	opts    *datatypes.Options
}

func (t *floatType) ID() datatypes.TypeID {
	return t.id
}

func (t *floatType) Options() *datatypes.Options {
	return t.opts
}

func (t *floatType) SQLType() (string, error) {
	return t.sqlName, nil
}

func (t *floatType) CheckOptionSupport(
	sink diagnostics.Sink,
) {

	if t.opts.Decimals != nil {
		t.opts.Length = nil
		t.opts.Decimals = nil
		sink.Warn(docsNumericTypes, fmt.Sprintf(
			"PostgreSQL does not support %s with decimals. Plain %s will be used instead.",
			t.sqlName, t.sqlName,
		))
	}
	if t.opts.Unsigned != nil {
		t.opts.Unsigned = nil
		sink.Warn(docsNumericTypes, fmt.Sprintf(
			"PostgreSQL does not support %s unsigned. Plain %s will be used instead.",
			t.sqlName, t.sqlName,
		))
	}
	if t.opts.Zerofill != nil {
		t.opts.Zerofill = nil
		sink.Warn(docsNumericTypes, fmt.Sprintf(
			"PostgreSQL does not support %s zerofill. Plain %s will be used instead.",
			t.sqlName, t.sqlName,
		))
	}
}

// decimalType maps to DECIMAL / DECIMAL(p,s). PostgreSQL natively
// stores NaN in numeric columns, so NaN passes validation and is
// recovered on the parsing path.
type decimalType struct {
	opts *datatypes.Options
}

func (t *decimalType) ID() datatypes.TypeID {
	return datatypes.TypeDecimal
}

func (t *decimalType) Options() *datatypes.Options {
	return t.opts
}

func (t *decimalType) SQLType() (string, error) {
	if t.opts.Precision != nil {
		if t.opts.Scale != nil {
			return fmt.Sprintf("DECIMAL(%d,%d)", *t.opts.Precision, *t.opts.Scale), nil
		}
		return fmt.Sprintf("DECIMAL(%d)", *t.opts.Precision), nil
	}
	return "DECIMAL", nil
}

func (t *decimalType) BindableValue(
	value any,
) (any, error) {

	switch v := value.(type) {
	case float32:
		if math.IsNaN(float64(v)) {
			return "NaN", nil
		}
	case float64:
		if math.IsNaN(v) {
			return "NaN", nil
		}
	case pgtype.Numeric:
		if v.NaN {
			return "NaN", nil
		}
	}
	return value, nil
}

func (t *decimalType) Parse(
	raw any,
) (any, error) {

	if text, ok := rawText(raw); ok && text == "NaN" {
		return math.NaN(), nil
	}
	return raw, nil
}

func (t *decimalType) Validate(
	value any,
) error {

	switch v := value.(type) {
	case float32:
		if math.IsNaN(float64(v)) {
			return nil
		}
	case float64:
		if math.IsNaN(v) {
			return nil
		}
	case pgtype.Numeric:
		return nil
	}
	return validateNumeric(value)
}

// validateNumeric is the base numeric check shared by the numeric
// family: finite numbers and numeric strings pass, everything else
// fails.
func validateNumeric(
	value any,
) error {

	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return errors.Errorf("%v is not a valid decimal", v)
		}
		return nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Errorf("%v is not a valid decimal", v)
		}
		return nil
	case string:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return errors.Errorf("'%s' is not a valid decimal", v)
		}
		return nil
	}
	return errors.Errorf("%+v is not a valid decimal", value)
}

func rawText(
	raw any,
) (string, bool) {

	switch v := raw.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	}
	return "", false
}
