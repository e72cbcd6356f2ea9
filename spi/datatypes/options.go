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

// Options carries the type specific configuration of one adapter
// instance. Unset pointer fields mean the option wasn't given.
// Options are immutable after construction, except for the one-time
// option stripping performed by CheckOptionSupport before the
// adapter is exposed for use.
type Options struct {
	Length       *int
	Precision    *int
	Scale        *int
	Decimals     *int
	Unsigned     *bool
	Zerofill     *bool
	Binary       *bool
	GeometryType *string
	Srid         *int
	Values       []string
}

func (o *Options) Clone() *Options {
	if o == nil {
		return &Options{}
	}

	clone := *o
	if o.Values != nil {
		clone.Values = make([]string, len(o.Values))
		copy(clone.Values, o.Values)
	}
	return &clone
}
