// Copyright 2016 Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may not
// use this file except in compliance with the License. A copy of the
// License is located at
//
// http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
// either express or implied. See the License for the specific language governing
// permissions and limitations under the License.

package log

import (
	"fmt"
	"sync"

	"github.com/cihub/seelog"
)

const (
	// DefaultLogDir is where the scheduler writes its log files when no
	// override is configured.
	DefaultLogDir = "log"
	// LogFile is the name of the main log file within the log directory.
	LogFile = "taskscheduler.log"
	// ErrorFile is the name of the error-only log file within the log directory.
	ErrorFile = "errors.log"
)

var pkgMutex = new(sync.Mutex)

// New builds a T backed by seelog, logging to logDir/LogFile with errors
// mirrored to logDir/ErrorFile. minLevel is a seelog level name such as
// "debug", "info", or "warn".
func New(logDir, minLevel string) (T, error) {
	seaLogger, err := seelog.LoggerFromConfigAsBytes(config(logDir, minLevel))
	if err != nil {
		return nil, fmt.Errorf("log: parsing seelog config: %w", err)
	}
	seaLogger.SetAdditionalStackDepth(2)
	return &Wrapper{
		Format:   ContextFormatFilter{},
		M:        pkgMutex,
		Delegate: &DelegateLogger{BaseLoggerInstance: seaLogger},
	}, nil
}

func config(logDir, minLevel string) []byte {
	if minLevel == "" {
		minLevel = "info"
	}
	logFilePath := logDir + "/" + LogFile
	errorFilePath := logDir + "/" + ErrorFile

	return []byte(`
<seelog type="adaptive" mininterval="2000000" maxinterval="100000000" critmsgcount="500" minlevel="` + minLevel + `">
    <outputs formatid="all">
        <console formatid="all"/>
        <file path="` + logFilePath + `"/>
        <filter levels="error,critical" formatid="all">
            <file path="` + errorFilePath + `"/>
        </filter>
    </outputs>
    <formats>
        <format id="all" format="%Date %Time %LEVEL [%FuncShort @ %File.%Line] %Msg%n"/>
    </formats>
</seelog>
`)
}
