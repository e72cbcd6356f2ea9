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

package datatypes

// UsageContext names the table and column an ENUM type is bound to.
// It is attached lazily by the model layer, not at construction.
// SQL generation for an ENUM fails while the context is absent.
type UsageContext struct {
	TableName  string
	ColumnName string
}

// EnumTypeNamer is the query generator collaborator that produces a
// dialect qualified enum type name for a table / column pair.
type EnumTypeNamer interface {
	EnumTypeName(
		tableName, columnName string,
	) string
}

// ContextAttachable is implemented by adapters that resolve naming
// information from an attached usage context.
type ContextAttachable interface {
	AttachUsageContext(
		ctx *UsageContext,
	)
}
