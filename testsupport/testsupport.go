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

package testsupport

// Warning is one recorded diagnostics emission.
type Warning struct {
	DocsURL string
	Message string
}

// CapturingSink records every warning emitted during option
// stripping so tests can assert on count and content.
type CapturingSink struct {
	Warnings []Warning
}

func (c *CapturingSink) Warn(
	docsURL, message string,
) {

	c.Warnings = append(c.Warnings, Warning{DocsURL: docsURL, Message: message})
}
