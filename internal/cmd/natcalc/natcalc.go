/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Package natcalc parses natcalc command flags and runs the interactive
// stack calculator.
package natcalc

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/capitalone/natural"
	"github.com/capitalone/natural/calc"
	"github.com/capitalone/natural/internal/config"
)

// Config holds natcalc command configuration.
type Config struct {
	Base   int    `env:"NATCALC_BASE" envDefault:"10"`
	Prompt string `env:"NATCALC_PROMPT" envDefault:"> "`
	Locale string `env:"NATCALC_LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Base, "base", cfg.Base, "The base numbers are entered and shown in (2-36)")
	fs.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "The input prompt")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "The BCP 47 language tag for messages")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Base < natural.MinBase || cfg.Base > natural.MaxBase {
		return Config{}, fmt.Errorf("%w: got %d", natural.ErrInvalidBase, cfg.Base)
	}
	return cfg, nil
}

const helpText = `Commands:
  <digits>, push <digits>  push a number in the current base; use push
                           for digits that spell a command, as in push ADD
  pop                      drop the top number
  add, +                   replace the top two numbers with their sum
  mul, *                   replace the top two numbers with their product
  base <n>                 convert the whole stack to base n (2-36)
  stack                    show the stack, top first
  help                     show this text
  quit, exit               leave
`

// session is the state of one interactive run.
type session struct {
	calc   calc.Calculator
	out    io.Writer
	p      *message.Printer
	prompt string
}

// Run reads commands from in, one per line, and writes results to out until
// in is exhausted, the user quits or ctx is done. Bad input is reported and
// skipped; a broken arithmetic invariant stops the run with an error. An
// unknown cfg.Locale is reported before any input is read.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c, err := calc.New(cfg.Base)
	if err != nil {
		return err
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return fmt.Errorf("parse locale %q: %w", cfg.Locale, err)
	}
	s := &session{calc: c, out: out, p: message.NewPrinter(tag), prompt: cfg.Prompt}

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- sc.Err()
	}()

	s.p.Fprintf(out, "Working in base %d. Type help for commands.\n", s.calc.Base())
	for {
		fmt.Fprint(out, s.prompt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			quit, err := s.exec(line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// exec runs one command line. It returns an error only for failures that
// must end the session.
func (s *session) exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	var next calc.Calculator
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprint(s.out, helpText)
		return false, nil
	case "stack":
		s.printStack()
		return false, nil
	case "pop":
		next, err = s.calc.Pop()
	case "push":
		if len(args) != 1 {
			return false, s.report(&calc.InputError{Message: "usage: push <digits>"})
		}
		next, err = s.calc.Push(args[0])
	case "base":
		if len(args) != 1 {
			return false, s.report(&calc.InputError{Message: "usage: base <n>"})
		}
		var base int
		if base, err = calc.ParseBase(args[0]); err == nil {
			next, err = s.calc.Rebase(base)
		}
	default:
		if op, opErr := calc.ParseOp(cmd); opErr == nil {
			next, err = s.calc.Combine(op)
		} else if len(args) == 0 {
			next, err = s.calc.Push(fields[0])
		} else {
			return false, s.report(&calc.InputError{Message: fmt.Sprintf("unknown command %q", fields[0])})
		}
	}
	if err != nil {
		return false, s.report(err)
	}
	s.calc = next
	s.printStack()
	return false, nil
}

// report shows a recoverable error to the user, or passes an internal one
// back to end the session.
func (s *session) report(err error) error {
	if calc.IsInternal(err) {
		return fmt.Errorf("internal error: %w", err)
	}
	var ie *calc.InputError
	if errors.As(err, &ie) {
		s.p.Fprintf(s.out, "error: %s\n", ie.Message)
		return nil
	}
	s.p.Fprintf(s.out, "error: %v\n", err)
	return nil
}

func (s *session) printStack() {
	rendered := s.calc.Render()
	if len(rendered) == 0 {
		s.p.Fprintf(s.out, "The stack is empty. Push a number to get started.\n")
		return
	}
	s.p.Fprintf(s.out, "Stack (base %d, %d numbers):\n", s.calc.Base(), len(rendered))
	for _, digits := range rendered {
		fmt.Fprintf(s.out, "  %s\n", digits)
	}
}
