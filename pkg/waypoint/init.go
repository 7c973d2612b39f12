// Package waypoint is the entry point of the walking tracker's client:
// it loads configuration, sets up logging and messages, and builds the
// router that owns what is on screen.
//
// The navigation engine itself lives in the router package; browser
// bindings live in dom, application screens in views.
package waypoint

import (
	"html"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/trailmark/waypoint/pkg/waypoint/constants"
	"github.com/trailmark/waypoint/pkg/waypoint/internal"
	"github.com/trailmark/waypoint/pkg/waypoint/router"
)

// Options configures initialization.
type Options struct {
	ConfigPath string   // Path to waypoint.toml; ignored when ConfigTOML is set
	ConfigTOML string   // Inline config document, used by the browser build
	Languages  []string // Preferred languages, most preferred first
	LogPath    string   // Full path for a log file; overrides the config
	LogLevel   string   // Overrides the config and WAYPOINT_LOG_LEVEL
}

var (
	stateMu  sync.RWMutex
	config   internal.Config
	messages *internal.Messages
)

// Init loads configuration and message catalogues and configures logging.
// Must be called before NewRouter.
func Init(options Options) error {
	var (
		cfg internal.Config
		err error
	)
	switch {
	case options.ConfigTOML != "":
		cfg, err = internal.ParseConfig([]byte(options.ConfigTOML))
	case options.ConfigPath != "":
		cfg, err = internal.LoadConfig(options.ConfigPath)
	default:
		cfg, err = internal.LoadConfig(os.Getenv(constants.ConfigPathEnvVar))
	}
	if err != nil {
		return NewInfrastructureError("load_config", err)
	}

	logPath := cfg.Log.Path
	if options.LogPath != "" {
		logPath = options.LogPath
	}
	if logPath != "" {
		internal.SetLogPath(logPath)
	}

	level := cfg.Log.Level
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	if options.LogLevel != "" {
		level = options.LogLevel
	}
	internal.SetRawLogLevel(level)
	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(internal.ParseLevel(level))
	}

	languages := append(append([]string{}, options.Languages...), cfg.I18n.Language)
	msgs, err := internal.NewMessages(languages...)
	if err != nil {
		return NewInfrastructureError("load_messages", err)
	}

	stateMu.Lock()
	config = cfg
	messages = msgs
	stateMu.Unlock()

	internal.GetInternalLogger().Debug("initialized", "language", msgs.Tag().String(), "region", cfg.Host.RegionID)
	return nil
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// Host bundles the host collaborators a router needs.
type Host struct {
	Region      router.Region
	Indicator   router.Indicator
	History     router.History
	Highlighter router.Highlighter
}

// NewRouter builds a router over routes with localized error content and
// the framework logger.
func NewRouter(routes map[string]router.Factory, host Host) (*router.Router, error) {
	msgs, err := GetMessages()
	if err != nil {
		return nil, err
	}
	table, err := router.NewTable(routes)
	if err != nil {
		return nil, NewInfrastructureError("build_routes", err)
	}
	r, err := router.New(table, router.Options{
		Region:       host.Region,
		Indicator:    host.Indicator,
		History:      host.History,
		Highlighter:  host.Highlighter,
		Logger:       internal.GetInternalLogger(),
		ErrorContent: ErrorContent(msgs),
	})
	if err != nil {
		return nil, NewInfrastructureError("build_router", err)
	}
	return r, nil
}

// ErrorContent renders the generic error state in the catalogue's language.
// The error itself is logged by the router and never shown to the user.
func ErrorContent(msgs *internal.Messages) router.ErrorContentFunc {
	return func(path string, _ error) router.Content {
		text := msgs.Text("GenericError", nil)
		return router.Content(`<section class="error" role="alert"><p>` + html.EscapeString(text) + `</p></section>`)
	}
}

// GetConfig returns the configuration loaded by Init.
func GetConfig() (internal.Config, error) {
	stateMu.RLock()
	defer stateMu.RUnlock()
	if messages == nil {
		return internal.Config{}, ErrNotInitialized
	}
	return config, nil
}

// GetMessages returns the message catalogue loaded by Init.
func GetMessages() (*internal.Messages, error) {
	stateMu.RLock()
	defer stateMu.RUnlock()
	if messages == nil {
		return nil, ErrNotInitialized
	}
	return messages, nil
}

// SetLogOutput sends console logs to w instead of stdout.
// Call before Init() to take effect.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// DefaultConfigTOML is the configuration embedded in the browser build.
const DefaultConfigTOML = internal.DefaultConfigTOML
