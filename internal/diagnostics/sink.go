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

import (
	"fmt"
	"github.com/noctarius/pgdialect/internal/logging"
	"github.com/noctarius/pgdialect/spi/diagnostics"
	"sync"
)

// loggingSink forwards adapter warnings to the logging subsystem.
// Identical messages are emitted once; repetition is dropped.
type loggingSink struct {
	logger *logging.Logger

	seen      map[string]struct{}
	seenMutex sync.Mutex
}

func NewLoggingSink() (diagnostics.Sink, error) {
	logger, err := logging.NewLogger("TypeAdapters")
	if err != nil {
		return nil, err
	}

	return &loggingSink{
		logger: logger,
		seen:   make(map[string]struct{}),
	}, nil
}

func (s *loggingSink) Warn(
	docsURL, message string,
) {

	key := fmt.Sprintf("%s|%s", docsURL, message)

	s.seenMutex.Lock()
	if _, present := s.seen[key]; present {
		s.seenMutex.Unlock()
		return
	}
	s.seen[key] = struct{}{}
	s.seenMutex.Unlock()

	s.logger.Warnf("%s (%s)", message, docsURL)
}
