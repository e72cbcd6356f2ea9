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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/noctarius/pgdialect/spi/datatypes"
)

// hstoreType delegates the key-value text grammar to the pgx hstore
// implementation in both directions.
type hstoreType struct{}

func (t *hstoreType) ID() datatypes.TypeID {
	return datatypes.TypeHstore
}

func (t *hstoreType) Options() *datatypes.Options {
	return &datatypes.Options{}
}

func (t *hstoreType) SQLType() (string, error) {
	return "HSTORE", nil
}

func (t *hstoreType) BindableValue(
	value any,
) (any, error) {

	var hstore pgtype.Hstore
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return v, nil
	case pgtype.Hstore:
		hstore = v
	case map[string]*string:
		hstore = v
	case map[string]string:
		hstore = make(pgtype.Hstore, len(v))
		for key, entry := range v {
			hstore[key] = &entry
		}
	default:
		return nil, errIllegalValue
	}

	serialized, err := hstore.Value()
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	switch s := serialized.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}
	return nil, errIllegalValue
}

func (t *hstoreType) Parse(
	raw any,
) (any, error) {

	if raw == nil {
		return nil, nil
	}

	text, ok := rawText(raw)
	if !ok {
		if v, ok := raw.(pgtype.Hstore); ok {
			return v, nil
		}
		return nil, errIllegalValue
	}

	var hstore pgtype.Hstore
	if err := hstore.Scan(text); err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return hstore, nil
}
