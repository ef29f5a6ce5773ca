package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/mitchellh/cli"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wirescreen/wirescreen-go/internal/config"
	"github.com/wirescreen/wirescreen-go/internal/logger"
	"github.com/wirescreen/wirescreen-go/pkg/httpclient"
	"github.com/wirescreen/wirescreen-go/pkg/wirescreen"
)

// API is the subset of *wirescreen.Client the commands call.
type API interface {
	Search(ctx context.Context, params wirescreen.SearchParams) (any, error)
	AdvancedSearch(ctx context.Context, params wirescreen.AdvancedSearchParams) (any, error)
	GetOrganization(ctx context.Context, uid uuid.UUID) (any, error)
	GetOrganizations(ctx context.Context, uids []uuid.UUID) (any, error)
	GetPerson(ctx context.Context, uid uuid.UUID) (any, error)
	GetPersons(ctx context.Context, uids []uuid.UUID) (any, error)
}

// ClientFactory builds the API client for a command run.
type ClientFactory func(cfg *config.Config, sugar *zap.SugaredLogger) (API, error)

// NewClient builds a *wirescreen.Client on a resty transport whose diagnostics
// go to sugar.
func NewClient(cfg *config.Config, sugar *zap.SugaredLogger) (API, error) {
	transport := httpclient.NewRestyClient(cfg.Timeout)
	if sugar != nil {
		transport.SetLogger(sugar)
	}

	client, err := wirescreen.New(cfg.Host, cfg.APIToken,
		wirescreen.WithHTTPClient(transport),
		wirescreen.WithLogger(logger.From(sugar)),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// baseCommand carries what every subcommand shares.
type baseCommand struct {
	UI        cli.Ui
	LogOut    io.Writer
	NewClient ClientFactory
}

func (b *baseCommand) flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	config.RegisterFlags(fs)
	return fs
}

func (b *baseCommand) parse(fs *pflag.FlagSet, args []string) bool {
	if err := fs.Parse(args); err != nil {
		b.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return false
	}
	return true
}

// execute loads config, builds the client, runs call and prints its result.
func (b *baseCommand) execute(fs *pflag.FlagSet, call func(context.Context, API) (any, error)) int {
	cfg, err := config.Load(fs)
	if err != nil {
		b.UI.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}

	sugar := logger.Init(b.LogOut, cfg.LogLevel)
	defer logger.Close()
	log := logger.From(sugar)
	log.DebugObj("config loaded", "config", cfg.String())

	newClient := b.NewClient
	if newClient == nil {
		newClient = NewClient
	}
	api, err := newClient(cfg, sugar)
	if err != nil {
		b.UI.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := call(ctx, api)
	if err != nil {
		log.ErrorObj("command failed", "error", err.Error())
		b.UI.Error(describeError(err))
		return 1
	}

	out, err := render(cfg.Output, result)
	if err != nil {
		b.UI.Error(fmt.Sprintf("error rendering result: %v", err))
		return 1
	}
	b.UI.Output(out)
	return 0
}

func describeError(err error) string {
	var reqErr *wirescreen.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("request failed with status %d: %s", reqErr.StatusCode, reqErr.Snippet())
	}
	return err.Error()
}

func parseUIDs(args []string) ([]uuid.UUID, error) {
	uids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		uid, err := uuid.Parse(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("invalid uid %q: %w", arg, err)
		}
		uids = append(uids, uid)
	}
	return uids, nil
}
