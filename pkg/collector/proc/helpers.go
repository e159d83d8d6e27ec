package proc

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/srodi/proctop/pkg/types"
)

// readFile allows tests to stub reading /proc/PID/stat.
var readFile = os.ReadFile

// maxCommLen bounds the command name carried in a record, matching the
// kernel's TASK_COMM_LEN.
const maxCommLen = 16

// statFieldsAfterComm is the minimum number of fields that must follow the
// "(comm)" token for a stat line to be usable: state through nice.
const statFieldsAfterComm = 17

var errMalformedStat = errors.New("malformed stat record")

// parseStatLine extracts a ProcessRecord from one /proc/<pid>/stat line:
//
//	pid (comm) state ppid pgrp session tty_nr tpgid flags minflt cminflt
//	majflt cmajflt utime stime cutime cstime priority nice ...
//
// The comm field may itself contain spaces or parentheses, so the line is
// split around the first '(' and the last ')'.
func parseStatLine(data []byte) (types.ProcessRecord, error) {
	line := strings.TrimSpace(string(data))

	open := strings.IndexByte(line, '(')
	closing := strings.LastIndexByte(line, ')')
	if open < 0 || closing < open {
		return types.ProcessRecord{}, errMalformedStat
	}

	pid, err := strconv.Atoi(strings.TrimSpace(line[:open]))
	if err != nil || pid <= 0 {
		return types.ProcessRecord{}, errMalformedStat
	}

	comm := line[open+1 : closing]
	if len(comm) > maxCommLen {
		comm = comm[:maxCommLen]
	}

	rest := strings.Fields(line[closing+1:])
	if len(rest) < statFieldsAfterComm {
		return types.ProcessRecord{}, errMalformedStat
	}

	ppid, err := strconv.Atoi(rest[1])
	if err != nil {
		return types.ProcessRecord{}, errMalformedStat
	}
	utime, err := strconv.ParseUint(rest[11], 10, 64)
	if err != nil {
		return types.ProcessRecord{}, errMalformedStat
	}
	stime, err := strconv.ParseUint(rest[12], 10, 64)
	if err != nil {
		return types.ProcessRecord{}, errMalformedStat
	}
	nice, err := strconv.Atoi(rest[16])
	if err != nil {
		return types.ProcessRecord{}, errMalformedStat
	}

	return types.ProcessRecord{
		PID:   pid,
		PPID:  ppid,
		State: types.ParseProcState(rest[0][0]),
		Comm:  comm,
		UTime: utime,
		STime: stime,
		Nice:  nice,
	}, nil
}

// degradedRecord stands in for a process whose stat data could not be
// parsed. Only that process is affected; the scan carries on.
func degradedRecord(pid int) types.ProcessRecord {
	return types.ProcessRecord{
		PID:   pid,
		State: types.StateUnknown,
	}
}
