package trace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/not-matthias/fdtrace/internal/syscallrecord"
)

// parseLine parses one `;`-separated trace line into a Record. Fields are
// strictly positional; an unknown op or a field that fails to parse is a
// fatal error (SPEC_FULL.md §7), not a silent drop.
func parseLine(line string) (syscallrecord.Record, error) {
	parts := strings.Split(line, ";")
	if len(parts) < 4 {
		return syscallrecord.Record{}, fmt.Errorf("too few fields: %q", line)
	}

	ts, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return syscallrecord.Record{}, fmt.Errorf("bad ts in %q: %w", line, err)
	}
	pid, err := parseInt32(parts[1])
	if err != nil {
		return syscallrecord.Record{}, fmt.Errorf("bad pid in %q: %w", line, err)
	}
	tid, err := parseInt32(parts[2])
	if err != nil {
		return syscallrecord.Record{}, fmt.Errorf("bad tid in %q: %w", line, err)
	}

	rec := syscallrecord.Record{TS: ts, PID: pid, TID: tid}
	args := parts[3:]

	op := args[0]
	args = args[1:]

	switch op {
	case "execve":
		path, err := field(args, 0, "path")
		if err != nil {
			return rec, lineErr(line, err)
		}
		rec.Op = syscallrecord.Execve
		rec.Path = path

	case "open":
		path, err := field(args, 0, "path")
		if err != nil {
			return rec, lineErr(line, err)
		}
		flags, err := intField(args, 1, "flags")
		if err != nil {
			return rec, lineErr(line, err)
		}
		// mode (args[2]) is part of the wire format but not retained on Record.
		rec.Op = syscallrecord.Open
		rec.Path = path
		rec.Flags = flags

	case "open_exit":
		ret, err := intField(args, 0, "ret")
		if err != nil {
			return rec, lineErr(line, err)
		}
		rec.Op = syscallrecord.OpenExit
		rec.Ret = ret

	case "openat":
		dirfd, err := intField(args, 0, "dirfd")
		if err != nil {
			return rec, lineErr(line, err)
		}
		path, err := field(args, 1, "path")
		if err != nil {
			return rec, lineErr(line, err)
		}
		flags, err := intField(args, 2, "flags")
		if err != nil {
			return rec, lineErr(line, err)
		}
		rec.Op = syscallrecord.OpenAt
		rec.DirFD = dirfd
		rec.Path = path
		rec.Flags = flags

	case "openat_exit":
		ret, err := intField(args, 0, "ret")
		if err != nil {
			return rec, lineErr(line, err)
		}
		rec.Op = syscallrecord.OpenAtExit
		rec.Ret = ret

	case "close":
		fd, err := uintField(args, 0, "fd")
		if err != nil {
			return rec, lineErr(line, err)
		}
		rec.Op = syscallrecord.Close
		rec.FD = fd

	case "close_exit":
		ret, err := intField(args, 0, "ret")
		if err != nil {
			return rec, lineErr(line, err)
		}
		rec.Op = syscallrecord.CloseExit
		rec.Ret = ret

	case "read":
		fd, err := uintField(args, 0, "fd")
		if err != nil {
			return rec, lineErr(line, err)
		}
		count, err := intField(args, 1, "count")
		if err != nil {
			return rec, lineErr(line, err)
		}
		rec.Op = syscallrecord.Read
		rec.FD = fd
		rec.Count = count

	case "read_exit":
		n, err := intField(args, 0, "read")
		if err != nil {
			return rec, lineErr(line, err)
		}
		rec.Op = syscallrecord.ReadExit
		rec.ReadN = n

	case "write":
		fd, err := uintField(args, 0, "fd")
		if err != nil {
			return rec, lineErr(line, err)
		}
		count, err := intField(args, 1, "count")
		if err != nil {
			return rec, lineErr(line, err)
		}
		rec.Op = syscallrecord.Write
		rec.FD = fd
		rec.Count = count

	case "write_exit":
		written, err := intField(args, 0, "written")
		if err != nil {
			return rec, lineErr(line, err)
		}
		rec.Op = syscallrecord.WriteExit
		rec.Written = written

	default:
		return rec, fmt.Errorf("unknown op %q in %q", op, line)
	}

	return rec, nil
}

func field(args []string, i int, name string) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing field %s", name)
	}
	return args[i], nil
}

func intField(args []string, i int, name string) (int64, error) {
	s, err := field(args, i, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", name, err)
	}
	return v, nil
}

func uintField(args []string, i int, name string) (uint64, error) {
	s, err := field(args, i, name)
	if err != nil {
		return 0, err
	}
	// The probe may emit raw negative register values for malformed fd
	// arguments; reinterpret those bit patterns as an opaque uint64 key
	// rather than failing the parse.
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return uint64(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", name, err)
	}
	return v, nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func lineErr(line string, err error) error {
	return fmt.Errorf("%w in %q", err, line)
}
