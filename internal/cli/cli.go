package cli

import (
	"context"
	"maps"
	"slices"

	"github.com/vk/tcplika/internal/catalog"
	"github.com/vk/tcplika/internal/config"
	"github.com/vk/tcplika/internal/ctxlog"
	"github.com/vk/tcplika/internal/profile"
)

// Exit codes returned through ExitError.
const (
	ExitEngine      = 1
	ExitCommandLine = 2
)

// ExitError is a custom error type that includes a specific exit code. The
// message has already been shown to the user when it is returned.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the error that caused the exit.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Tokenize lexes args and, when a profile option is present, merges the
// profile beneath the command-line tokens. The context must carry a logger.
func Tokenize(ctx context.Context, args []string) (Tokens, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("CLI lexer started.", "args", len(args))

	tokens := Lex(args, catalog.SingleOptions())
	logger.Debug("Arguments lexed.", "options", len(tokens.Options), "positionals", len(tokens.Positionals))

	path := profilePath(tokens.Options)
	if path == "" {
		return tokens, nil
	}

	p, err := profile.Load(ctx, path)
	if err != nil {
		return Tokens{}, err
	}
	tokens.Options, tokens.Positionals = p.Merge(tokens.Options, tokens.Positionals)
	logger.Debug("Profile merged.", "path", path, "options", len(tokens.Options), "positionals", len(tokens.Positionals))
	return tokens, nil
}

// Parse runs Tokenize and resolves the result into a Configuration.
func Parse(ctx context.Context, args []string) (config.Configuration, error) {
	tokens, err := Tokenize(ctx, args)
	if err != nil {
		return config.Configuration{}, err
	}
	return config.Resolve(tokens.Options, tokens.Positionals)
}

// profilePath returns the value of the profile option. With several
// spellings present the one the resolver applies last is used.
func profilePath(options map[string]string) string {
	path := ""
	for _, name := range slices.Sorted(maps.Keys(options)) {
		if catalog.Lookup(name) == catalog.Profile {
			path = options[name]
		}
	}
	return path
}
