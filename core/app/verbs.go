// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ValveSoftware/vogl-sub002/core/app/flags"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/pkg/errors"
)

// Verb is a runnable command.
type Verb struct {
	Name       string // The name of the command
	ShortHelp  string // Help for the purpose of the command
	ShortUsage string // Help for how to use the command
	// Action holds the flags of the verb as fields and runs it.
	Action   Action
	Flags    *flags.Set
	verbs    []*Verb
	selected *Verb
}

// Action is implemented by the flag structs of verbs.
type Action interface {
	// Run performs the verb with the arguments left after flag parsing.
	Run(ctx context.Context, args []string) error
}

// Preparer is implemented by verbs that inspect the raw arguments before
// flags are parsed, for example to load defaults from a file that the
// flags then override.
type Preparer interface {
	Prepare(ctx context.Context, args []string) error
}

var globalVerbs = Verb{Flags: flags.NewSet("", os.Stderr)}

// Add adds child to the verbs of v. It panics on a duplicate name.
func (v *Verb) Add(child *Verb) {
	if child.Flags == nil {
		child.Flags = flags.NewSet(child.Name, os.Stderr)
	}
	if child.Action != nil {
		child.Flags.Bind("", child.Action, "")
	}
	for _, existing := range v.verbs {
		if existing.Name == child.Name {
			panic(fmt.Errorf("Duplicate verb name %s", child.Name))
		}
	}
	v.verbs = append(v.verbs, child)
}

// Filter returns the verbs whose names start with prefix. An exact match
// is returned on its own.
func (v *Verb) Filter(prefix string) (result []*Verb) {
	for _, child := range v.verbs {
		if child.Name == prefix {
			return []*Verb{child}
		}
		if strings.HasPrefix(child.Name, prefix) {
			result = append(result, child)
		}
	}
	return result
}

// Invoke selects the verb named by args[0] and runs it with the rest.
func (v *Verb) Invoke(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.Wrapf(ErrUsage, "Must supply a verb to %s", v.Name)
	}
	name := args[0]
	matches := v.Filter(name)
	switch len(matches) {
	case 1:
		v.selected = matches[0]
		if p, ok := v.selected.Action.(Preparer); ok {
			if err := p.Prepare(ctx, args[1:]); err != nil {
				return err
			}
		}
		if err := v.selected.Flags.Parse(args[1:]...); err != nil {
			return errors.Wrap(ErrUsage, err.Error())
		}
		rest := v.selected.Flags.Args()
		if len(v.selected.verbs) > 0 {
			return v.selected.Invoke(ctx, rest)
		}
		if v.selected.Action == nil {
			return fmt.Errorf("Verb %s has nothing to run", v.selected.Name)
		}
		return v.selected.Action.Run(log.Enter(ctx, v.selected.Name), rest)
	case 0:
		if name == "help" {
			Usage(ctx, "")
			return nil
		}
		return errors.Wrapf(ErrUsage, "Verb '%s' is unknown", name)
	default:
		return errors.Wrapf(ErrUsage, "Verb '%s' is ambiguous", name)
	}
}

// AddVerb adds a verb to the application. It panics on a duplicate name.
func AddVerb(v *Verb) {
	globalVerbs.Add(v)
}

// FilterVerbs returns the application verbs whose names start with prefix.
func FilterVerbs(prefix string) []*Verb {
	return globalVerbs.Filter(prefix)
}
