package trace

import (
	"fmt"

	"github.com/not-matthias/fdtrace/internal/syscallrecord"
)

// Format renders a Record back into the `;`-separated wire format it was
// parsed from (sans the header line; the `mode` argument of open, which
// Record does not retain, is written as 0), used to verify the parser's
// round-trip property (SPEC_FULL.md §8).
func Format(r syscallrecord.Record) string {
	prefix := fmt.Sprintf("%d;%d;%d", r.TS, r.PID, r.TID)
	switch r.Op {
	case syscallrecord.Execve:
		return fmt.Sprintf("%s;execve;%s", prefix, r.Path)
	case syscallrecord.Open:
		return fmt.Sprintf("%s;open;%s;%d;0", prefix, r.Path, r.Flags)
	case syscallrecord.OpenExit:
		return fmt.Sprintf("%s;open_exit;%d", prefix, r.Ret)
	case syscallrecord.OpenAt:
		return fmt.Sprintf("%s;openat;%d;%s;%d", prefix, r.DirFD, r.Path, r.Flags)
	case syscallrecord.OpenAtExit:
		return fmt.Sprintf("%s;openat_exit;%d", prefix, r.Ret)
	case syscallrecord.Close:
		return fmt.Sprintf("%s;close;%d", prefix, r.FD)
	case syscallrecord.CloseExit:
		return fmt.Sprintf("%s;close_exit;%d", prefix, r.Ret)
	case syscallrecord.Read:
		return fmt.Sprintf("%s;read;%d;%d", prefix, r.FD, r.Count)
	case syscallrecord.ReadExit:
		return fmt.Sprintf("%s;read_exit;%d", prefix, r.ReadN)
	case syscallrecord.Write:
		return fmt.Sprintf("%s;write;%d;%d", prefix, r.FD, r.Count)
	case syscallrecord.WriteExit:
		return fmt.Sprintf("%s;write_exit;%d", prefix, r.Written)
	default:
		return prefix
	}
}
