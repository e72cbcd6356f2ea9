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
	"github.com/noctarius/pgdialect/spi/datatypes"
	"github.com/samber/lo"
)

// DefaultEnumNamer derives the enum type name the same way the DDL
// generator does when creating the type.
type DefaultEnumNamer struct{}

func (DefaultEnumNamer) EnumTypeName(
	tableName, columnName string,
) string {

	return fmt.Sprintf(`"enum_%s_%s"`, tableName, columnName)
}

// enumType resolves its SQL type name from the table and column the
// type is used at. The usage context is attached when the type is
// bound to a column; generating SQL before that point is a
// configuration error.
type enumType struct {
	namer datatypes.EnumTypeNamer
	ctx   *datatypes.UsageContext
	opts  *datatypes.Options
}

func (t *enumType) ID() datatypes.TypeID {
	return datatypes.TypeEnum
}

func (t *enumType) Options() *datatypes.Options {
	return t.opts
}

func (t *enumType) AttachUsageContext(
	ctx *datatypes.UsageContext,
) {

	t.ctx = ctx
}

func (t *enumType) SQLType() (string, error) {
	if t.ctx == nil {
		return "", errors.Errorf(
			"ENUM type was used without being bound to a table and column",
		)
	}
	return t.namer.EnumTypeName(t.ctx.TableName, t.ctx.ColumnName), nil
}

func (t *enumType) Validate(
	value any,
) error {

	text, ok := rawText(value)
	if !ok {
		return errors.Errorf("%+v is not a valid choice for this enum", value)
	}
	if !lo.Contains(t.opts.Values, text) {
		return errors.Errorf("'%s' is not a valid choice for this enum", text)
	}
	return nil
}
