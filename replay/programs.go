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

package replay

import (
	"context"
	"strings"

	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/trace"
)

func init() {
	handlers[gl.LinkProgram] = withHooks(nil, afterLink)
	handlers[gl.CreateShaderProgramv] = withHooks(nil, afterCreateShaderProgram)
}

func afterLink(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status {
	h, live := l.p.Args[0].Uint(), uint32(l.args[0].Uint())
	if h == 0 || live == 0 {
		return OK
	}
	if r.procs.QueryInts(gl.GetProgramiv, 1, gl.Uint(uint64(live)), gl.E(gl.LINK_STATUS))[0] == 0 {
		log.W(ctx, "Program %d failed to link", h)
	}
	stages := []stage{}
	for _, s := range r.procs.AttachedShaders(live) {
		typ := r.procs.QueryInts(gl.GetShaderiv, 1, gl.Uint(uint64(s)), gl.E(gl.SHADER_TYPE))[0]
		stages = append(stages, stage{typ: gl.Enum(typ), source: r.procs.ShaderSource(s)})
	}
	r.linked(ctx, c, h, live, l.p, stages)
	return OK
}

func afterCreateShaderProgram(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status {
	h, live := l.p.Return.Uint(), uint32(l.ret.Uint())
	if h == 0 || live == 0 {
		return OK
	}
	src := strings.Join(gl.SplitSources(l.p.Args[2].Mem, int(l.p.Args[1].Int()), nil), "")
	r.linked(ctx, c, h, live, l.p, []stage{{typ: l.p.Args[0].Enum(), source: src}})
	return OK
}

// linked rebuilds the location shadow of the trace program h from the
// uniform locations p recorded at link time, and stores the stages it was
// linked from.
func (r *Replayer) linked(ctx context.Context, c *contextState, h uint64, live uint32, p *trace.Packet, stages []stage) {
	g := r.groups[c.group]
	m := newLocationMap()
	for _, k := range p.KVM.Keys() {
		if !k.IsString() || !strings.HasPrefix(k.Name, trace.KeyUniformPrefix) {
			continue
		}
		loc, ok := p.KVM.Int(k)
		if !ok || loc < 0 {
			continue
		}
		name := strings.TrimPrefix(k.Name, trace.KeyUniformPrefix)
		if got := r.procs.UniformLocation(live, name); got >= 0 {
			m.add(int32(loc), got)
		} else {
			log.W(ctx, "Uniform %q of program %d is inactive at replay", name, h)
		}
	}
	g.locations[h] = m
	g.stages[h] = stages
}
