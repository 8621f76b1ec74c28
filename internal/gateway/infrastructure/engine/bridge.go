package engine

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/Rutuauti/banking-transaction-manager-project/internal/gateway/domain"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/logging"
)

const (
	DefaultTimeout = 20 * time.Second

	emptyOutputPlaceholder = "No output from backend"
	unavailableMessage     = "Backend executable not found. Please compile BankingTransactionManager."
)

// ExecutableName returns the platform-dependent engine binary name.
func ExecutableName() string {
	if runtime.GOOS == "windows" {
		return "BankingTransactionManager.exe"
	}

	return "BankingTransactionManager"
}

// Bridge runs the external transaction engine as a child process. Arguments
// are passed as a literal argv, never through a shell, and each invocation is
// bounded by a fixed timeout after which the child is killed.
type Bridge struct {
	path    string
	timeout time.Duration
	logger  logging.Logger
}

func NewBridge(path string, timeout time.Duration, logger logging.Logger) *Bridge {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Bridge{
		path:    path,
		timeout: timeout,
		logger:  logger,
	}
}

func (b *Bridge) Invoke(ctx context.Context, op string, args ...string) (string, error) {
	if _, err := os.Stat(b.path); err != nil {
		return "", &domain.EngineUnavailableError{Msg: unavailableMessage}
	}

	// A disconnecting client must not kill an engine that may be mid-mutation;
	// the timeout below is the only cancellation point for the child.
	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, b.path, append([]string{op}, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	b.logger.Info("running engine", "op", op, "args", strings.Join(args, " "))

	err := cmd.Run()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return "", &domain.EngineTimeoutError{Msg: "Backend timed out after " + b.timeout.String() + "."}
	}

	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}

		return "", &domain.EngineFailedError{Msg: msg}
	}

	// Stderr noise on a zero exit is logged but does not fail the call; only
	// the exit status decides success.
	if warning := strings.TrimSpace(stderr.String()); warning != "" {
		b.logger.Warn("engine stderr", "op", op, "output", warning)
	}

	output := strings.TrimSpace(stdout.String())
	if output == "" {
		output = emptyOutputPlaceholder
	}

	return output, nil
}
