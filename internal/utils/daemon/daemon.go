package daemon

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"MerlinsForkAPI/internal/pkg/logger"

	"github.com/gofrs/flock"
)

// ChildEnv marks a process started by Daemonize
const ChildEnv = "MERLINSFORK_API_DAEMON"

var (
	ErrAlreadyRunning = errors.New("service is already running")
	ErrNotRunning     = errors.New("service is not running")
)

// PIDFile is a PID file held under an exclusive advisory lock for the
// lifetime of the process
type PIDFile struct {
	path string
	lock *flock.Flock
}

// IsChild reports whether the current process was started by Daemonize
func IsChild() bool {
	return os.Getenv(ChildEnv) == "1"
}

// Acquire locks the PID file and writes the current process ID to it
func Acquire(pidFile string) (*PIDFile, error) {
	if err := os.MkdirAll(filepath.Dir(pidFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for PID file: %w", err)
	}

	lock := flock.New(pidFile)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock PID file: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (PID file %s is locked)", ErrAlreadyRunning, pidFile)
	}

	pid := os.Getpid()
	if err := os.WriteFile(pidFile, []byte(strconv.Itoa(pid)), 0644); err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to write PID file: %w", err)
	}

	logger.Info("Wrote PID to file",
		logger.Int("pid", pid),
		logger.String("file", pidFile))

	return &PIDFile{path: pidFile, lock: lock}, nil
}

// Path returns the location of the PID file
func (p *PIDFile) Path() string {
	return p.path
}

// Release removes the PID file and drops the lock
func (p *PIDFile) Release() {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		logger.Error("Failed to remove PID file during shutdown",
			logger.Err(err),
			logger.String("file", p.path))
	} else {
		logger.Info("Removed PID file during shutdown",
			logger.String("file", p.path))
	}

	if err := p.lock.Unlock(); err != nil {
		logger.Warn("Failed to unlock PID file", logger.Err(err))
	}
}

// IsRunning checks if the service is already running
func IsRunning(pidFile string) bool {
	running, _ := GetStatus(pidFile)
	return running
}

// ChildArgs builds the command line of the daemon child so that it resolves
// the same configuration and PID file as its parent
func ChildArgs(configPath, pidFile string) []string {
	args := []string{"start"}
	if configPath != "" {
		args = append(args, "--config", configPath)
	}
	if pidFile != "" {
		args = append(args, "--pid-file", pidFile)
	}
	return args
}

// Daemonize starts a detached copy of the current executable and returns its PID
func Daemonize(configPath, pidFile string) (int, error) {
	executable, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("failed to get executable path: %w", err)
	}

	cmd := exec.Command(executable, ChildArgs(configPath, pidFile)...)
	cmd.Env = append(os.Environ(), ChildEnv+"=1")
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start daemon process: %w", err)
	}

	pid := cmd.Process.Pid
	logger.Info("Started daemon process", logger.Int("pid", pid))

	if err := cmd.Process.Release(); err != nil {
		logger.Warn("Failed to release daemon process", logger.Err(err))
	}
	return pid, nil
}

// StopProcess sends SIGTERM to the process recorded in the PID file
func StopProcess(pidFile string) (int, error) {
	pid, err := readPID(pidFile)
	if err != nil {
		return 0, err
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return 0, fmt.Errorf("failed to find process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return 0, fmt.Errorf("failed to send terminate signal: %w", err)
	}

	return pid, nil
}

// GetStatus checks if the service is running and returns the PID
func GetStatus(pidFile string) (bool, int) {
	pid, err := readPID(pidFile)
	if err != nil {
		if !errors.Is(err, ErrNotRunning) {
			logger.Error("Failed to read PID file",
				logger.Err(err),
				logger.String("file", pidFile))
		}
		return false, 0
	}

	if processExists(pid) {
		return true, pid
	}

	// stale PID file left by a crashed process
	lock := flock.New(pidFile)
	if locked, err := lock.TryLock(); err == nil && locked {
		os.Remove(pidFile)
		_ = lock.Unlock()
	}
	return false, 0
}

func readPID(pidFile string) (int, error) {
	data, err := os.ReadFile(pidFile)
	if os.IsNotExist(err) {
		return 0, fmt.Errorf("%w (PID file not found)", ErrNotRunning)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read PID file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %w", err)
	}
	return pid, nil
}

// processExists sends signal 0 since FindProcess always succeeds on Unix
func processExists(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
