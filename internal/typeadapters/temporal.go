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
	"math"
	"strings"
	"time"
)

const (
	infinityToken         = "infinity"
	negativeInfinityToken = "-infinity"

	timestampTzFormat = "2006-01-02 15:04:05.999999Z07:00"
)

// dateType maps the abstract DATE type to TIMESTAMP WITH TIME ZONE.
// PostgreSQL timestamps support signed infinity, expressed on the
// Go side as pgtype.InfinityModifier or an infinite float64.
type dateType struct {
	opts *datatypes.Options
}

func (t *dateType) ID() datatypes.TypeID {
	return datatypes.TypeDate
}

func (t *dateType) Options() *datatypes.Options {
	return t.opts
}

func (t *dateType) SQLType() (string, error) {
	if t.opts.Precision != nil {
		return fmt.Sprintf("TIMESTAMP(%d) WITH TIME ZONE", *t.opts.Precision), nil
	}
	return "TIMESTAMP WITH TIME ZONE", nil
}

func (t *dateType) BindableValue(
	value any,
) (any, error) {

	if token, ok := asInfinityToken(value); ok {
		return token, nil
	}
	if v, ok := value.(time.Time); ok {
		return v.Format(timestampTzFormat), nil
	}
	return value, nil
}

// Parse intentionally returns the raw textual representation and
// leaves constructing a temporal object to the caller.
func (t *dateType) Parse(
	raw any,
) (any, error) {

	return raw, nil
}

func (t *dateType) Validate(
	value any,
) error {

	if _, ok := asInfinityToken(value); ok {
		return nil
	}
	switch v := value.(type) {
	case time.Time, pgtype.Timestamptz:
		return nil
	case string:
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return nil
		}
		if _, err := time.Parse(timestampTzFormat, v); err == nil {
			return nil
		}
		return errors.Errorf("'%s' is not a valid date", v)
	}
	return errors.Errorf("%+v is not a valid date", value)
}

// dateOnlyType maps the abstract DATEONLY type to DATE.
type dateOnlyType struct{}

func (t *dateOnlyType) ID() datatypes.TypeID {
	return datatypes.TypeDateOnly
}

func (t *dateOnlyType) Options() *datatypes.Options {
	return &datatypes.Options{}
}

func (t *dateOnlyType) SQLType() (string, error) {
	return "DATE", nil
}

func (t *dateOnlyType) BindableValue(
	value any,
) (any, error) {

	if token, ok := asInfinityToken(value); ok {
		return token, nil
	}
	if v, ok := value.(time.Time); ok {
		return v.Format(time.DateOnly), nil
	}
	return value, nil
}

// Sanitize normalizes infinity spellings case-insensitively, while
// Parse below only matches the exact wire format literals.
func (t *dateOnlyType) Sanitize(
	value any,
) any {

	if text, ok := rawText(value); ok {
		switch strings.ToLower(text) {
		case infinityToken:
			return pgtype.Infinity
		case negativeInfinityToken:
			return pgtype.NegativeInfinity
		}
	}
	if modifier, ok := asInfinityModifier(value); ok {
		return modifier
	}
	return value
}

func (t *dateOnlyType) Parse(
	raw any,
) (any, error) {

	if text, ok := rawText(raw); ok {
		switch text {
		case infinityToken:
			return pgtype.Infinity, nil
		case negativeInfinityToken:
			return pgtype.NegativeInfinity, nil
		}
	}
	return raw, nil
}

// asInfinityToken maps the supported signed infinity inputs to the
// PostgreSQL literal tokens.
func asInfinityToken(
	value any,
) (string, bool) {

	if modifier, ok := asInfinityModifier(value); ok {
		if modifier == pgtype.Infinity {
			return infinityToken, true
		}
		return negativeInfinityToken, true
	}
	return "", false
}

func asInfinityModifier(
	value any,
) (pgtype.InfinityModifier, bool) {

	switch v := value.(type) {
	case pgtype.InfinityModifier:
		if v != pgtype.Finite {
			return v, true
		}
	case float32:
		return floatInfinityModifier(float64(v))
	case float64:
		return floatInfinityModifier(v)
	case pgtype.Timestamptz:
		if v.InfinityModifier != pgtype.Finite {
			return v.InfinityModifier, true
		}
	case pgtype.Date:
		if v.InfinityModifier != pgtype.Finite {
			return v.InfinityModifier, true
		}
	}
	return pgtype.Finite, false
}

func floatInfinityModifier(
	value float64,
) (pgtype.InfinityModifier, bool) {

	if math.IsInf(value, 1) {
		return pgtype.Infinity, true
	}
	if math.IsInf(value, -1) {
		return pgtype.NegativeInfinity, true
	}
	return pgtype.Finite, false
}
