package session

import (
	"sync"

	"github.com/not-matthias/fdtrace/internal/logger"
	"github.com/not-matthias/fdtrace/internal/syscallrecord"
)

// Options configures the reconstructor.
type Options struct {
	// TraceStdFD, when true, pre-opens synthetic sessions for fds 0/1/2
	// ("/dev/stdin", "/dev/stdout", "/dev/stderr") and finalizes them at
	// end-of-stream if never explicitly closed (SPEC_FULL.md §4.3, §9).
	TraceStdFD bool
	// Concurrency bounds the worker pool Analyze uses to reconstruct
	// independent threads in parallel. Values <= 1 run sequentially.
	Concurrency int
}

var stdFDPaths = map[uint64]string{
	0: "/dev/stdin",
	1: "/dev/stdout",
	2: "/dev/stderr",
}

// Reconstruct runs the session-reconstructor state machine over one
// thread's time-ordered records and returns its per-path model. It is a
// pure function of its input: given the same records and options, it
// always produces a structurally equal ThreadAnalysis.
func Reconstruct(tid int32, records []syscallrecord.Record, opts Options) *ThreadAnalysis {
	ta := newThreadAnalysis(tid)
	open := make(map[uint64]*FileSession)

	var firstTS, lastTS uint64
	if len(records) > 0 {
		firstTS = records[0].TS
		lastTS = records[len(records)-1].TS
	}

	if opts.TraceStdFD {
		for fd, path := range stdFDPaths {
			open[fd] = &FileSession{Path: ta.intern(path), OpenTS: firstTS}
		}
	}

	it := newLookahead(records)
	for {
		rec, ok := it.next()
		if !ok {
			break
		}
		switch rec.Op {
		case syscallrecord.Open, syscallrecord.OpenAt:
			handleOpen(it, rec, open, ta)
		case syscallrecord.Read:
			handleRW(it, rec, open, ReadEvent)
		case syscallrecord.Write:
			handleRW(it, rec, open, WriteEvent)
		case syscallrecord.Close:
			handleClose(rec, open, ta)
		default:
			// Execve and every *Exit op reached as the current record is
			// consumed by its entry's handler (or was never matched); there
			// is nothing left to do with it here.
		}
	}

	if opts.TraceStdFD {
		for fd := range stdFDPaths {
			sess, ok := open[fd]
			if !ok {
				continue
			}
			sess.CloseTS = lastTS
			fi := ta.fileInfo(sess.Path)
			fi.Sessions = append(fi.Sessions, *sess)
			delete(open, fd)
		}
	}

	return ta
}

func handleOpen(it *lookahead, entry syscallrecord.Record, open map[uint64]*FileSession, ta *ThreadAnalysis) {
	exit, ok := it.peek(1)
	if !ok || (exit.Op != syscallrecord.OpenExit && exit.Op != syscallrecord.OpenAtExit) {
		logger.Warn.Printf("open syscall not followed by exit: %+v", entry)
		return
	}
	if exit.Failed() {
		return
	}
	open[uint64(exit.Ret)] = &FileSession{Path: ta.intern(entry.Path), OpenTS: entry.TS}
}

func handleRW(it *lookahead, entry syscallrecord.Record, open map[uint64]*FileSession, kind EventKind) {
	wantExit := syscallrecord.ReadExit
	if kind == WriteEvent {
		wantExit = syscallrecord.WriteExit
	}

	var exit syscallrecord.Record
	found := false
	for n := 1; n <= 2; n++ {
		cand, ok := it.peek(n)
		if !ok {
			break
		}
		if cand.Op == wantExit {
			exit = cand
			found = true
			break
		}
	}
	if !found {
		logger.Warn.Printf("%s syscall not followed by exit: %+v", entry.Op, entry)
		return
	}
	if exit.Failed() {
		return
	}

	sess, ok := open[entry.FD]
	if !ok {
		logger.Warn.Printf("%s on fd with no open session: %+v", entry.Op, entry)
		return
	}

	count := exit.ReadN
	if kind == WriteEvent {
		count = exit.Written
	}
	if count == 0 {
		// Failed() already dropped negative/EOF sentinels; a write that
		// legitimately transfers zero bytes is still not recorded, per
		// SPEC_FULL.md §8's "recorded events only carry bytes > 0" invariant.
		return
	}

	sess.Events = append(sess.Events, FileEvent{
		Kind:    kind,
		Bytes:   uint64(count),
		StartTS: entry.TS,
		EndTS:   exit.TS,
	})
}

func handleClose(entry syscallrecord.Record, open map[uint64]*FileSession, ta *ThreadAnalysis) {
	sess, ok := open[entry.FD]
	if !ok {
		logger.Warn.Printf("close on fd with no open session: %+v", entry)
		return
	}
	delete(open, entry.FD)
	sess.CloseTS = entry.TS
	fi := ta.fileInfo(sess.Path)
	fi.Sessions = append(fi.Sessions, *sess)
}

// Analyze reconstructs each thread's already-partitioned records (see
// thread.Partition) independently. Threads are embarrassingly parallel
// (SPEC_FULL.md §5): each worker owns its own open-sessions table and result
// map exclusively, and the only shared state is the work queue (a channel)
// and the results map below, which workers write only under a mutex. The fan-out shape mirrors the teacher's policy-engine
// worker pool (core/policyengine/engine/interpreter.go's StartWorkers/worker).
func Analyze(byTID map[int32][]syscallrecord.Record, opts Options) Analysis {
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	type job struct {
		tid     int32
		records []syscallrecord.Record
	}

	jobs := make(chan job, len(byTID))
	for tid, records := range byTID {
		jobs <- job{tid, records}
	}
	close(jobs)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		threads = make(map[int32]*ThreadAnalysis, len(byTID))
	)

	worker := func() {
		defer wg.Done()
		for j := range jobs {
			ta := Reconstruct(j.tid, j.records, opts)
			mu.Lock()
			threads[j.tid] = ta
			mu.Unlock()
		}
	}

	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go worker()
	}
	wg.Wait()

	return Analysis{Threads: threads}
}
