package bootstrap

import (
	"fmt"
	"net"
	"strconv"
	"sync/atomic"

	"caldav-bridge/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// State is the lifecycle stage of a launched process.
type State int32

const (
	// StateBuilt: an image exists but no process has been started from it.
	StateBuilt State = iota
	// StateStarting: environment loaded, entry point resolving, port binding.
	StateStarting
	// StateListening: the socket is bound and the server is accepting.
	StateListening
	// StateTerminated: the server has exited.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateBuilt:
		return "built"
	case StateStarting:
		return "starting"
	case StateListening:
		return "listening"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// StartOptions are the runtime inputs to Launcher.Start.
type StartOptions struct {
	// EntryPoint is the module-qualified application reference.
	EntryPoint string
	// EnvFile is an optional env file applied before anything else; its
	// values override pre-existing variables of the same name.
	EnvFile string
	// Port overrides the PORT variable when non-empty.
	Port string
}

// Launcher starts exactly one server process image: env file in, entry
// point resolved, one socket bound, one application served.
type Launcher struct {
	registry *Registry
	logger   *zap.Logger
}

// NewLauncher creates a launcher over the given registry.
func NewLauncher(registry *Registry, logger *zap.Logger) *Launcher {
	return &Launcher{registry: registry, logger: logger}
}

// Handle tracks a launched server process.
type Handle struct {
	state atomic.Int32
	app   *fiber.App
	ln    net.Listener
	port  int
	done  chan struct{}
	err   error
}

// State returns the current lifecycle stage.
func (h *Handle) State() State {
	return State(h.state.Load())
}

// Port returns the bound port.
func (h *Handle) Port() int {
	return h.port
}

// Addr returns the bound listener address.
func (h *Handle) Addr() string {
	return h.ln.Addr().String()
}

// Wait blocks until the server exits and returns its terminal error, if any.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

// Shutdown gracefully stops the server and waits for termination.
func (h *Handle) Shutdown() error {
	err := h.app.Shutdown()
	<-h.done
	if err != nil {
		return err
	}
	return h.err
}

// StartImage launches a built image: its env file and entry-point reference
// feed Start.
func (l *Launcher) StartImage(img *Image, opts StartOptions) (*Handle, error) {
	opts.EntryPoint = img.EntryPoint
	opts.EnvFile = img.EnvFilePath()
	return l.Start(opts)
}

// Start resolves the environment, entry point and port, binds the listening
// socket and serves the application. Failures are fatal: a BindError or
// EntryPointResolutionError leaves no socket open and no partial state.
func (l *Launcher) Start(opts StartOptions) (*Handle, error) {
	h := &Handle{done: make(chan struct{})}
	h.state.Store(int32(StateStarting))

	env, err := LoadEnvironment(opts.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load environment file %q: %w", opts.EnvFile, err)
	}

	rawPort := opts.Port
	if rawPort == "" {
		rawPort = env.GetDefault("PORT", strconv.Itoa(server.DefaultPort))
	}
	port, err := server.ParsePort(rawPort)
	if err != nil {
		return nil, &BindError{Port: rawPort, Err: err}
	}

	// Entry point resolution happens before the socket is created so a bad
	// reference never leaves a partially listening process.
	factory, err := l.registry.Resolve(opts.EntryPoint)
	if err != nil {
		return nil, err
	}
	app, err := factory(env, l.logger)
	if err != nil {
		return nil, fmt.Errorf("entry point %q failed to initialize: %w", opts.EntryPoint, err)
	}

	ln, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", port))
	if err != nil {
		return nil, &BindError{Port: rawPort, Err: err}
	}

	h.app = app
	h.ln = ln
	h.port = port
	h.state.Store(int32(StateListening))
	l.logger.Info("Server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("entry_point", opts.EntryPoint),
	)

	go func() {
		h.err = app.Listener(ln)
		h.state.Store(int32(StateTerminated))
		close(h.done)
	}()

	return h, nil
}
