package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/solid-pod/internal/adapter"
	"github.com/MKhiriev/solid-pod/internal/logger"
)

// App runs client commands against a [adapter.ResourceClient] and prints
// the results to out.
type App struct {
	client adapter.ResourceClient
	in     io.Reader
	out    io.Writer
	logger *logger.Logger
}

func NewApp(client adapter.ResourceClient, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		client: client,
		in:     in,
		out:    out,
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected one of profile|get|put|delete|options", ErrUnknownCommand)
	}

	cmd, operands := args[0], args[1:]
	a.logger.Debug().Str("command", cmd).Strs("args", operands).Msg("running client command")

	switch cmd {
	case "profile":
		return a.profile(ctx, operands)
	case "get":
		return a.get(ctx, operands)
	case "put":
		return a.put(ctx, operands)
	case "delete":
		return a.delete(ctx, operands)
	case "options":
		return a.options(ctx, operands)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) profile(ctx context.Context, operands []string) error {
	if len(operands) != 0 {
		return fmt.Errorf("%w: profile takes no arguments", ErrWrongArguments)
	}

	profile, err := a.client.Profile(ctx)
	if err != nil {
		return err
	}

	return a.printJSON(profile)
}

func (a *App) get(ctx context.Context, operands []string) error {
	if len(operands) != 1 {
		return fmt.Errorf("%w: usage: get <id>", ErrWrongArguments)
	}

	resource, err := a.client.Get(ctx, operands[0])
	if err != nil {
		return err
	}

	return a.printJSON(resource.Value)
}

func (a *App) put(ctx context.Context, operands []string) error {
	if len(operands) != 2 {
		return fmt.Errorf("%w: usage: put <id> <json|->", ErrWrongArguments)
	}

	value := []byte(operands[1])
	if operands[1] == "-" {
		var err error
		if value, err = io.ReadAll(a.in); err != nil {
			return fmt.Errorf("read document from stdin: %w", err)
		}
	}

	if err := a.client.Put(ctx, operands[0], json.RawMessage(value)); err != nil {
		return err
	}

	_, err := fmt.Fprintf(a.out, "stored %s\n", operands[0])
	return err
}

func (a *App) delete(ctx context.Context, operands []string) error {
	if len(operands) != 1 {
		return fmt.Errorf("%w: usage: delete <id>", ErrWrongArguments)
	}

	if err := a.client.Delete(ctx, operands[0]); err != nil {
		return err
	}

	_, err := fmt.Fprintf(a.out, "deleted %s\n", operands[0])
	return err
}

func (a *App) options(ctx context.Context, operands []string) error {
	if len(operands) != 1 {
		return fmt.Errorf("%w: usage: options <id>", ErrWrongArguments)
	}

	header, err := a.client.Options(ctx, operands[0])
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(header))
	for k := range header {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err = fmt.Fprintf(a.out, "%s: %s\n", k, strings.Join(header[k], ", ")); err != nil {
			return err
		}
	}
	return nil
}

// printJSON writes v indented. Raw documents that are not valid JSON are
// printed as received.
func (a *App) printJSON(v any) error {
	raw, ok := v.(json.RawMessage)
	if !ok {
		var err error
		if raw, err = json.Marshal(v); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		buf.Reset()
		buf.Write(raw)
	}
	buf.WriteByte('\n')

	_, err := a.out.Write(buf.Bytes())
	return err
}
