// Copyright (c) 2025 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cli

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LogTestSuite struct {
	suite.Suite

	origOsExit func(int)
}

func (s *LogTestSuite) SetupTest() {
	s.origOsExit = osExit
}

func (s *LogTestSuite) TearDownTest() {
	osExit = s.origOsExit
}

func (s *LogTestSuite) TestLogFatal() {
	tests := []struct {
		name     string
		args     []any
		validate func(output string, exitCode int)
	}{
		{
			name: "logs error and exits non-zero",
			args: nil,
			validate: func(output string, exitCode int) {
				s.Equal(1, exitCode)
				s.Contains(output, "something broke")
				s.Contains(output, "disk on fire")
			},
		},
		{
			name: "includes extra key-value context",
			args: []any{slog.String("config_file", "/etc/ledgerd/ledgerd.yaml")},
			validate: func(output string, exitCode int) {
				s.Equal(1, exitCode)
				s.Contains(output, "/etc/ledgerd/ledgerd.yaml")
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			exitCode := 0
			osExit = func(code int) { exitCode = code }

			LogFatal(logger, "something broke", fmt.Errorf("disk on fire"), tt.args...)

			tt.validate(buf.String(), exitCode)
		})
	}
}

func TestLogTestSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}
