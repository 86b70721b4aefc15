package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
)

var errEnd = errors.New("end")

// InteractiveCLI contains the terminal state shared by interactive sessions
type InteractiveCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	now          func() time.Time
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
}

type Option func(*InteractiveCLI)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(cli *InteractiveCLI) {
		cli.stdinReader = bufio.NewReader(in)
		cli.stdoutWriter = out
	}
}

func WithClock(now func() time.Time) Option {
	return func(cli *InteractiveCLI) {
		cli.now = now
	}
}

func newInteractiveCLI(opts ...Option) *InteractiveCLI {
	cli := &InteractiveCLI{
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		now:          time.Now,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

//go:generate mockgen -source=interactive_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli

type Session interface {
	Session(context context.Context) error
}

func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// readLine returns errEnd once stdin is exhausted.
func (cli *InteractiveCLI) readLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(cli.stdoutWriter, prompt)
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errEnd
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readChoice asks until the answer is an integer in [minValue, maxValue] or one of the keys.
// It returns the matched key, or "" with the number.
func (cli *InteractiveCLI) readChoice(prompt string, minValue, maxValue int, keys ...string) (string, int, error) {
	for {
		answer, err := cli.readLine(prompt)
		if err != nil {
			return "", 0, err
		}
		for _, key := range keys {
			if strings.EqualFold(answer, key) {
				return key, 0, nil
			}
		}
		v, err := strconv.Atoi(answer)
		if err == nil && v >= minValue && v <= maxValue {
			return "", v, nil
		}
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Please enter a number between %d and %d\n", minValue, maxValue)
	}
}
