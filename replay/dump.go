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
	"fmt"
	"hash/crc64"
	"image"
	"image/png"

	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/core/os/file"
	"github.com/ValveSoftware/vogl-sub002/gl"
)

var crcTable = crc64.MakeTable(crc64.ISO)

// invoke issues e on the current context, ignoring unresolved entrypoints.
func (r *Replayer) invoke(e gl.Entrypoint, args ...gl.Value) gl.Value {
	v, _ := r.procs.Call(e, args...)
	return v
}

// readFramebuffer reads the RGBA8 color contents of the live framebuffer
// fb. The pack state it disturbs is restored.
func (r *Replayer) readFramebuffer(fb uint32, w, h int) []byte {
	if w <= 0 || h <= 0 {
		return nil
	}
	read := r.procs.GetInteger(gl.READ_FRAMEBUFFER_BINDING)
	align := r.procs.GetInteger(gl.PACK_ALIGNMENT)
	pack := r.procs.GetInteger(gl.PIXEL_PACK_BUFFER_BINDING)
	r.invoke(gl.BindFramebuffer, gl.E(gl.READ_FRAMEBUFFER), gl.Uint(uint64(fb)))
	r.invoke(gl.PixelStorei, gl.E(gl.PACK_ALIGNMENT), gl.Int(1))
	if pack != 0 {
		r.invoke(gl.BindBuffer, gl.E(gl.PIXEL_PACK_BUFFER), gl.Uint(0))
	}
	pixels := make([]byte, w*h*4)
	r.invoke(gl.ReadPixels, gl.Int(0), gl.Int(0), gl.Int(int64(w)), gl.Int(int64(h)), gl.E(gl.RGBA), gl.E(gl.UNSIGNED_BYTE), gl.Mem(pixels))
	if pack != 0 {
		r.invoke(gl.BindBuffer, gl.E(gl.PIXEL_PACK_BUFFER), gl.Uint(uint64(pack)))
	}
	r.invoke(gl.PixelStorei, gl.E(gl.PACK_ALIGNMENT), gl.Int(int64(align)))
	r.invoke(gl.BindFramebuffer, gl.E(gl.READ_FRAMEBUFFER), gl.Uint(uint64(read)))
	r.procs.ClearErrors()
	return pixels
}

// hashPixels returns the backbuffer hash of pixels.
func (r *Replayer) hashPixels(pixels []byte) uint64 {
	if r.opts.SumHashing {
		sum := uint64(0)
		for _, b := range pixels {
			sum += uint64(b)
		}
		return sum
	}
	return crc64.Checksum(pixels, crcTable)
}

func (r *Replayer) screenshotPath(kind string, n int64) file.Path {
	return file.Abs(r.opts.ScreenshotDir).Join(fmt.Sprintf("%s_%s_%06d.png", r.opts.ScreenshotPrefix, kind, n))
}

// writeScreenshot writes bottom-up RGBA8 pixels to a PNG at path.
func (r *Replayer) writeScreenshot(ctx context.Context, path file.Path, w, h int, pixels []byte) {
	if len(pixels) < w*h*4 {
		return
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:], pixels[(h-1-y)*w*4:(h-y)*w*4])
	}
	if err := file.Mkdir(path.Parent()); err != nil {
		log.W(ctx, "Cannot create %v: %v", path.Parent(), err)
		return
	}
	f, err := file.Create(path)
	if err != nil {
		log.W(ctx, "Cannot create %v: %v", path, err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.W(ctx, "Writing %v: %v", path, err)
		return
	}
	log.D(ctx, "Wrote %v", path)
}

// dumpShaders logs the sources of the shaders attached to the program in
// use.
func (r *Replayer) dumpShaders(ctx context.Context, c *contextState) {
	if c.program == 0 {
		log.I(ctx, "Draw %d uses the fixed function pipeline", r.frameDraws)
		return
	}
	live, ok := r.tracker(c, gl.Programs).MapToReplay(c.program)
	if !ok {
		return
	}
	for _, s := range r.procs.AttachedShaders(uint32(live)) {
		typ := r.procs.QueryInts(gl.GetShaderiv, 1, gl.Uint(uint64(s)), gl.E(gl.SHADER_TYPE))[0]
		log.I(ctx, "Program %d %v:\n%s", c.program, gl.Enum(typ), r.procs.ShaderSource(s))
	}
}

// dumpFramebuffer writes the draw framebuffer after a draw.
func (r *Replayer) dumpFramebuffer(ctx context.Context) {
	w, h := r.backend.Dimensions()
	fb := uint32(r.procs.GetInteger(gl.FRAMEBUFFER_BINDING))
	pixels := r.readFramebuffer(fb, w, h)
	r.writeScreenshot(ctx, r.screenshotPath(fmt.Sprintf("frame%06d_draw", r.frame), r.frameDraws), w, h, pixels)
}
