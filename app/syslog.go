package app

import (
	"fmt"
	"sync"
	"time"

	"hub/data"
)

// The in-memory log is the fast path; every line is also persisted so
// /admin/syslog survives a restart. Sized to match the API call log.
const sysLogMaxEntries = 200

// SysLogEntry is a single system log line.
type SysLogEntry struct {
	Time    time.Time
	Package string
	Message string
}

var (
	sysLogMu      sync.Mutex
	sysLogEntries []*SysLogEntry
)

// appendSysLog records a log line in the ring buffer and persists it.
// Persistence failures are printed only; logging must never fail the caller.
func appendSysLog(pkg, format string, args ...interface{}) {
	entry := &SysLogEntry{
		Time:    time.Now(),
		Package: pkg,
		Message: fmt.Sprintf(format, args...),
	}

	sysLogMu.Lock()
	sysLogEntries = append(sysLogEntries, entry)
	if len(sysLogEntries) > sysLogMaxEntries {
		sysLogEntries = sysLogEntries[len(sysLogEntries)-sysLogMaxEntries:]
	}
	sysLogMu.Unlock()

	if err := data.InsertSysLog(&data.SysLogLine{
		Time:    entry.Time,
		Package: entry.Package,
		Message: entry.Message,
	}); err != nil {
		fmt.Printf("[app] failed to persist log line: %v\n", err)
	}
}

// GetSysLog returns a copy of the in-memory log, newest first.
func GetSysLog() []*SysLogEntry {
	sysLogMu.Lock()
	defer sysLogMu.Unlock()
	result := make([]*SysLogEntry, len(sysLogEntries))
	for i, e := range sysLogEntries {
		result[len(sysLogEntries)-1-i] = e
	}
	return result
}
