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
	"io/ioutil"
	"time"

	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Options control a Replayer. Field tags bind them to command line flags
// and to the keys of a YAML options file.
type Options struct {
	SnapshotCaching   bool `name:"snapshot-caching" help:"Cache a snapshot at the start of every frame for fast seeking" yaml:"snapshot_caching"`
	SnapshotCacheSize int  `name:"snapshot-cache-size" help:"Maximum number of cached frame snapshots" yaml:"snapshot_cache_size"`
	Benchmark         bool `help:"Skip error checks and divergence checks" yaml:"benchmark"`
	Verbose           bool `help:"Log every context switch and object creation" yaml:"verbose"`
	ForceDebugContext bool `name:"force-debug-context" help:"Create every context as a debug context" yaml:"force_debug_context"`

	DumpAllPackets         bool   `name:"dump-all-packets" help:"Log every packet as a function call" yaml:"dump_all_packets"`
	DumpPacketsOnError     bool   `name:"dump-packets-on-error" help:"Log the packet that caused a failure" yaml:"dump_packets_on_error"`
	DumpShadersOnDraw      bool   `name:"dump-shaders-on-draw" help:"Log the shader sources of the current program on every draw" yaml:"dump_shaders_on_draw"`
	DumpFramebufferOnDraws bool   `name:"dump-framebuffer-on-draws" help:"Write the draw framebuffer to a PNG after every draw" yaml:"dump_framebuffer_on_draws"`
	DumpScreenshots        bool   `name:"dump-screenshots" help:"Write the backbuffer to a PNG at every swap" yaml:"dump_screenshots"`
	ScreenshotPrefix       string `name:"screenshot-prefix" help:"File name prefix of written PNGs" yaml:"screenshot_prefix"`
	ScreenshotDir          string `name:"screenshot-dir" help:"Directory written PNGs are placed in" yaml:"screenshot_dir"`
	HashBackbuffer         bool   `name:"hash-backbuffer" help:"Hash the backbuffer at every swap" yaml:"hash_backbuffer"`
	SumHashing             bool   `name:"sum-hashing" help:"Use a byte sum instead of CRC64 for backbuffer hashes" yaml:"sum_hashing"`

	LockWindowDimensions      bool `name:"lock-window-dimensions" help:"Never resize the window to the recorded size" yaml:"lock_window_dimensions"`
	ClearUninitializedBuffers bool `name:"clear-uninitialized-buffers" help:"Zero client array scratch memory before every draw" yaml:"clear_uninitialized_buffers"`
	DisableRestoreFrontBuffer bool `name:"disable-restore-front-buffer" help:"Do not restore the default framebuffer contents from snapshots" yaml:"disable_restore_front_buffer"`
	StrictRemap               bool `name:"strict-remap" help:"Treat a handle that cannot be remapped as a hard failure" yaml:"strict_remap"`
	CheckTrackers             bool `name:"check-trackers" help:"Verify handle tracker consistency after context switches and restores" yaml:"check_trackers"`

	// KillThreshold skips draws whose index within the frame is at least
	// the threshold. Negative disables.
	KillThreshold   int64         `name:"kill-threshold" help:"Skip draws at or beyond this per-frame index, -1 disables" yaml:"kill_threshold"`
	ResizeTimeout   time.Duration `name:"resize-timeout" help:"How long to wait for a window resize" yaml:"resize_timeout"`
	ClientArraySize int           `name:"client-array-size" help:"Size in bytes of each client side vertex array scratch buffer" yaml:"client_array_size"`
}

// DefaultOptions returns the default replay options.
func DefaultOptions() Options {
	return Options{
		SnapshotCacheSize: 8,
		StrictRemap:       true,
		KillThreshold:     -1,
		ResizeTimeout:     5 * time.Second,
		ClientArraySize:   1 << 20,
		ScreenshotPrefix:  "screenshot",
		ScreenshotDir:     ".",
	}
}

// LoadOptionsFile overlays the options in the YAML file at path onto o.
// Keys missing from the file keep their current values.
func LoadOptionsFile(ctx context.Context, path string, o *Options) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "Reading options file %v", path)
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return log.Errf(ctx, err, "Parsing options file %v", path)
	}
	log.D(ctx, "Loaded replay options from %v", path)
	return nil
}
