// Package launcher starts game processes on request and forgets them.
// Each child is reaped by its own goroutine; its exit is logged and recorded, never reported back
package launcher

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status of a launched process
type Status string

const (
	StatusRunning Status = "running"
	StatusExited  Status = "exited"
	StatusFailed  Status = "failed"
)

// Launch records one started (or attempted) game process
type Launch struct {
	ID       string    `json:"id"`
	Command  []string  `json:"command"`
	PID      int       `json:"pid,omitempty"`
	Started  time.Time `json:"started"`
	Ended    time.Time `json:"ended,omitzero"`
	Status   Status    `json:"status"`
	ExitCode int       `json:"exit_code"`
	Error    string    `json:"error,omitempty"`
}

// Process is a started child
type Process interface {
	Pid() int
	Wait() error
}

// Starter starts a child process without waiting for it
type Starter func(name string, args ...string) (Process, error)

// Observer counts launch outcomes
type Observer interface {
	LaunchStarted()
	LaunchFailed()
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p execProcess) Pid() int    { return p.cmd.Process.Pid }
func (p execProcess) Wait() error { return p.cmd.Wait() }

// ExecStarter starts name as a child with no stdio attached
func ExecStarter(name string, args ...string) (Process, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return execProcess{cmd: cmd}, nil
}

// Options configures a Launcher
type Options struct {
	Command  string
	Args     []string
	History  int
	Starter  Starter
	Observer Observer
	Logger   *slog.Logger
}

// Launcher starts the configured command and keeps a bounded launch history
type Launcher struct {
	mu       sync.Mutex
	command  string
	args     []string
	launches []*Launch // oldest first
	history  int

	starter  Starter
	observer Observer
	logger   *slog.Logger
	now      func() time.Time

	reapers sync.WaitGroup
}

// New creates a launcher
func New(opts Options) *Launcher {
	l := &Launcher{
		command:  opts.Command,
		args:     append([]string(nil), opts.Args...),
		history:  opts.History,
		starter:  opts.Starter,
		observer: opts.Observer,
		logger:   opts.Logger,
		now:      time.Now,
	}
	if l.history <= 0 {
		l.history = 50
	}
	if l.starter == nil {
		l.starter = ExecStarter
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// SetCommand replaces the command used by later launches
func (l *Launcher) SetCommand(command string, args []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.command = command
	l.args = append([]string(nil), args...)
	l.logger.Info("Launch command updated", "command", command, "args", args)
}

// Launch starts the command and returns immediately with the launch record
func (l *Launcher) Launch() (Launch, error) {
	l.mu.Lock()
	command, args := l.command, l.args
	l.mu.Unlock()

	rec := &Launch{
		ID:      uuid.NewString(),
		Command: append([]string{command}, args...),
		Started: l.now().UTC(),
		Status:  StatusRunning,
	}

	if command == "" {
		return l.fail(rec, errors.New("no launch command configured"))
	}

	proc, err := l.starter(command, args...)
	if err != nil {
		return l.fail(rec, fmt.Errorf("start %s: %w", command, err))
	}
	rec.PID = proc.Pid()

	l.mu.Lock()
	l.record(rec)
	snapshot := *rec
	l.mu.Unlock()

	if l.observer != nil {
		l.observer.LaunchStarted()
	}
	l.logger.Info("Game launched", "id", rec.ID, "pid", rec.PID, "command", rec.Command)

	l.reapers.Add(1)
	go l.reap(rec, proc)

	return snapshot, nil
}

func (l *Launcher) fail(rec *Launch, err error) (Launch, error) {
	rec.Status = StatusFailed
	rec.Error = err.Error()
	rec.Ended = rec.Started

	l.mu.Lock()
	l.record(rec)
	snapshot := *rec
	l.mu.Unlock()

	if l.observer != nil {
		l.observer.LaunchFailed()
	}
	l.logger.Error("Launch failed", "id", rec.ID, "error", err)
	return snapshot, err
}

// record appends under l.mu, evicting the oldest past the history bound
func (l *Launcher) record(rec *Launch) {
	l.launches = append(l.launches, rec)
	if over := len(l.launches) - l.history; over > 0 {
		clear(l.launches[:over])
		l.launches = l.launches[over:]
	}
}

func (l *Launcher) reap(rec *Launch, proc Process) {
	defer l.reapers.Done()

	err := proc.Wait()

	l.mu.Lock()
	rec.Ended = l.now().UTC()
	rec.Status = StatusExited
	if err != nil {
		var exit interface{ ExitCode() int }
		if errors.As(err, &exit) {
			rec.ExitCode = exit.ExitCode()
		} else {
			rec.ExitCode = -1
			rec.Status = StatusFailed
		}
		rec.Error = err.Error()
	}
	ended := *rec
	l.mu.Unlock()

	l.logger.Info("Game exited", "id", ended.ID, "pid", ended.PID, "exit_code", ended.ExitCode,
		"duration", ended.Ended.Sub(ended.Started))
}

// Recent returns up to n launches, newest first. n <= 0 returns all kept
func (l *Launcher) Recent(n int) []Launch {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.launches) {
		n = len(l.launches)
	}
	out := make([]Launch, 0, n)
	for i := len(l.launches) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, *l.launches[i])
	}
	return out
}

// Get returns a launch by id
func (l *Launcher) Get(id string) (Launch, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, rec := range l.launches {
		if rec.ID == id {
			return *rec, true
		}
	}
	return Launch{}, false
}

// Wait blocks until every launched child has been reaped
func (l *Launcher) Wait() {
	l.reapers.Wait()
}
