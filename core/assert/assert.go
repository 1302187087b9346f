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

// Package assert is a fluent assertion library for tests.
//
//	ctx := log.Testing(t)
//	assert.For(ctx, "replay handle").ThatInteger(got).Equals(3)
//
// Failures are reported through the log handler bound to the context, so a
// failing assertion is an Error message on the test.
package assert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ValveSoftware/vogl-sub002/core/log"
)

// Output matches the logging methods of testing.T.
type Output interface {
	Fatal(...interface{})
	Error(...interface{})
	Log(...interface{})
}

// Manager builds assertions that report to one Output.
type Manager struct {
	out Output
}

type ctxOutput struct{ ctx context.Context }
type stdOutput struct{}

// To returns a Manager that reports to t, which can be a context.Context, an
// Output or nil for stdout.
func To(t interface{}) Manager {
	switch t := t.(type) {
	case nil:
		return Manager{stdOutput{}}
	case context.Context:
		return Manager{ctxOutput{t}}
	case Output:
		return Manager{t}
	default:
		panic(fmt.Errorf("Unsupported assertion target type %T", t))
	}
}

// For is shorthand for assert.To(t).For(msg, args...).
func For(t interface{}, msg string, args ...interface{}) *Assertion {
	return To(t).For(msg, args...)
}

// For starts a new assertion with the given title.
func (m Manager) For(msg string, args ...interface{}) *Assertion {
	a := &Assertion{to: m.out, out: &bytes.Buffer{}}
	fmt.Fprintf(a.out, msg, args...)
	a.out.WriteString("\n")
	return a
}

// Assertion accumulates the text of one check.
type Assertion struct {
	to    Output
	out   *bytes.Buffer
	fatal bool
}

// Critical makes a failure of this assertion stop the test.
func (a *Assertion) Critical() *Assertion {
	a.fatal = true
	return a
}

func pretty(v interface{}) string {
	switch v := v.(type) {
	case string:
		return "`" + v + "`"
	case error:
		return "`" + v.Error() + "`"
	default:
		return fmt.Sprint(v)
	}
}

func (a *Assertion) add(key string, values ...interface{}) {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = pretty(v)
	}
	fmt.Fprintf(a.out, "    %s\t%s\n", key, strings.Join(strs, "\t"))
}

func (a *Assertion) compare(got interface{}, op string, expect ...interface{}) *Assertion {
	a.add("Got", got)
	a.add("Expect\t"+op, expect...)
	return a
}

// test reports the assertion if ok is false and returns ok.
func (a *Assertion) test(ok bool) bool {
	if !ok {
		a.commit()
	}
	return ok
}

func (a *Assertion) commit() {
	buf := &bytes.Buffer{}
	w := tabwriter.NewWriter(buf, 4, 4, 1, ' ', 0)
	w.Write(a.out.Bytes())
	w.Flush()
	text := strings.TrimRight(buf.String(), "\n")
	if a.fatal {
		a.to.Fatal(text)
	} else {
		a.to.Error(text)
	}
}

func (o ctxOutput) Fatal(args ...interface{}) { log.F(o.ctx, "%v", fmt.Sprint(args...)) }
func (o ctxOutput) Error(args ...interface{}) { log.E(o.ctx, "%v", fmt.Sprint(args...)) }
func (o ctxOutput) Log(args ...interface{})   { log.I(o.ctx, "%v", fmt.Sprint(args...)) }

func (stdOutput) Fatal(args ...interface{}) {
	fmt.Fprintln(os.Stdout, args...)
	panic("Fatal error without test context")
}
func (stdOutput) Error(args ...interface{}) { fmt.Fprintln(os.Stdout, args...) }
func (stdOutput) Log(args ...interface{})   { fmt.Fprintln(os.Stdout, args...) }
