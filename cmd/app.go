package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"pot-portal/core/api"
	"pot-portal/core/config"
	"pot-portal/core/database"
	"pot-portal/core/logger"
	"pot-portal/core/middleware"
	"pot-portal/core/output"
	"pot-portal/core/session"
	"pot-portal/core/storage"
	"pot-portal/core/toast"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the collaborators shared by every command. One instance is built per invocation.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	session *session.Store
	toasts  *toast.Store
	client  *api.Client
	printer *output.Printer

	db *gorm.DB
}

func newApp() (*app, error) {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	sess := session.NewStore(cfg.Session)
	client, err := api.NewClient(cfg.API, l, middleware.BearerToken(sess), middleware.RayID())
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}

	toasts := toast.NewStore(cfg.Toast)
	toasts.Subscribe(toast.LogSubscriber(l))

	return &app{
		cfg:     cfg,
		logger:  l,
		session: sess,
		toasts:  toasts,
		client:  client,
		printer: output.NewPrinter(os.Stdout, format),
	}, nil
}

// reportedError marks an error already shown to the user as a toast.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// fail reports err through the toast store and returns it for cobra.
func (a *app) fail(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		a.logger.Debug("Request failed", zap.Error(err))
		toast.ReportError(a.toasts, err)
	} else {
		a.toasts.Push(err.Error(), toast.Options{Type: toast.TypeError})
	}
	return &reportedError{err: err}
}

// success pushes a success toast.
func (a *app) success(message string) {
	a.toasts.Push(message, toast.Options{Type: toast.TypeSuccess})
}

func (a *app) storage() (storage.Client, error) {
	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return client, nil
}

func (a *app) database() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := database.Connect(a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = db
	return db, nil
}

func (a *app) close() {
	a.toasts.Close()
	if a.db != nil {
		_ = database.Close(a.db)
	}
	_ = a.logger.Sync()
}

// withApp builds the app for a command and reports the command's error.
func withApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		return a.fail(fn(cmd, args, a))
	}
}

// stdin is shared so buffered input is not lost between prompts.
var stdin = bufio.NewReader(os.Stdin)

// prompt reads one line from stdin when value is empty.
func prompt(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprintf(os.Stderr, "%s: ", label)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("%s is required", strings.ToLower(label))
	}
	return line, nil
}
