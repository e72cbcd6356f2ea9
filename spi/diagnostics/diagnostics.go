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

package diagnostics

// Sink receives non-fatal diagnostics from the data type adapters.
// Implementations never raise and never block; emission of the same
// message is deduplicated so each warning appears at most once per
// process. A Sink instance is handed to the adapter registry at
// construction time and lives as long as the registry does.
type Sink interface {
	Warn(
		docsURL, message string,
	)
}

// NoopSink discards all diagnostics.
type NoopSink struct{}

func (NoopSink) Warn(
	_, _ string,
) {
}
