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
	"github.com/noctarius/pgdialect/spi/datatypes"
	"github.com/noctarius/pgdialect/spi/diagnostics"
)

// stringType covers STRING (VARCHAR) and CHAR. With the binary
// option the column becomes BYTEA, which has no length validation
// at the SQL level, so a given length is stripped.
type stringType struct {
	id            datatypes.TypeID
	sqlName       string
	defaultLength int
	opts          *datatypes.Options
}

func (t *stringType) ID() datatypes.TypeID {
	return t.id
}

func (t *stringType) Options() *datatypes.Options {
	return t.opts
}

func (t *stringType) SQLType() (string, error) {
	if t.opts.Binary != nil && *t.opts.Binary {
		return "BYTEA", nil
	}

	length := t.defaultLength
	if t.opts.Length != nil {
		length = *t.opts.Length
	}
	return fmt.Sprintf("%s(%d)", t.sqlName, length), nil
}

func (t *stringType) CheckOptionSupport(
	sink diagnostics.Sink,
) {

	if t.opts.Binary != nil && *t.opts.Binary && t.opts.Length != nil {
		t.opts.Length = nil
		sink.Warn(docsBinaryTypes, fmt.Sprintf(
			"PostgreSQL does not support %s with both length and binary. The length option is ignored.",
			t.sqlName,
		))
	}
}

// textType covers the unparameterized text family: TEXT, CITEXT and
// TSVECTOR.
type textType struct {
	id      datatypes.TypeID
	sqlName string
	opts    *datatypes.Options
}

func (t *textType) ID() datatypes.TypeID {
	return t.id
}

func (t *textType) Options() *datatypes.Options {
	return t.opts
}

func (t *textType) SQLType() (string, error) {
	return t.sqlName, nil
}

func (t *textType) CheckOptionSupport(
	sink diagnostics.Sink,
) {

	if t.opts.Length != nil {
		t.opts.Length = nil
		sink.Warn(docsCharacterTypes, fmt.Sprintf(
			"PostgreSQL does not support %s with length. Plain %s will be used instead.",
			t.sqlName, t.sqlName,
		))
	}
}

type blobType struct {
	opts *datatypes.Options
}

func (t *blobType) ID() datatypes.TypeID {
	return datatypes.TypeBlob
}

func (t *blobType) Options() *datatypes.Options {
	return t.opts
}

func (t *blobType) SQLType() (string, error) {
	return "BYTEA", nil
}

func (t *blobType) CheckOptionSupport(
	sink diagnostics.Sink,
) {

	if t.opts.Length != nil {
		t.opts.Length = nil
		sink.Warn(docsBinaryTypes,
			"PostgreSQL does not support BLOB with length. Plain BYTEA will be used instead.",
		)
	}
}

func (t *blobType) BindableValue(
	value any,
) (any, error) {

	switch v := value.(type) {
	case string:
		return []byte(v), nil
	}
	return value, nil
}
