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
	"github.com/go-errors/errors"
	"github.com/goccy/go-json"
	"github.com/hashicorp/go-uuid"
	"github.com/noctarius/pgdialect/spi/datatypes"
)

type booleanType struct{}

func (t *booleanType) ID() datatypes.TypeID {
	return datatypes.TypeBoolean
}

func (t *booleanType) Options() *datatypes.Options {
	return &datatypes.Options{}
}

func (t *booleanType) SQLType() (string, error) {
	return "BOOLEAN", nil
}

func (t *booleanType) Parse(
	raw any,
) (any, error) {

	if text, ok := rawText(raw); ok {
		switch text {
		case "t", "true", "1":
			return true, nil
		case "f", "false", "0":
			return false, nil
		}
		return nil, errIllegalValue
	}
	if v, ok := raw.(bool); ok {
		return v, nil
	}
	return raw, nil
}

type uuidType struct{}

func (t *uuidType) ID() datatypes.TypeID {
	return datatypes.TypeUuid
}

func (t *uuidType) Options() *datatypes.Options {
	return &datatypes.Options{}
}

func (t *uuidType) SQLType() (string, error) {
	return "UUID", nil
}

func (t *uuidType) Validate(
	value any,
) error {

	text, ok := rawText(value)
	if !ok {
		return errors.Errorf("%+v is not a valid uuid", value)
	}
	if _, err := uuid.ParseUUID(text); err != nil {
		return errors.Errorf("'%s' is not a valid uuid", text)
	}
	return nil
}

type jsonType struct {
	id      datatypes.TypeID
	sqlName string
}

func (t *jsonType) ID() datatypes.TypeID {
	return t.id
}

func (t *jsonType) Options() *datatypes.Options {
	return &datatypes.Options{}
}

func (t *jsonType) SQLType() (string, error) {
	return t.sqlName, nil
}

func (t *jsonType) BindableValue(
	value any,
) (any, error) {

	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case json.RawMessage:
		return string(v), nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return string(data), nil
}

func (t *jsonType) Parse(
	raw any,
) (any, error) {

	text, ok := rawText(raw)
	if !ok {
		return raw, nil
	}

	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return value, nil
}
