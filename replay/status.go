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

import "fmt"

// Status is the outcome of processing one packet. Negative values are
// failures, positive values are control signals for the caller's loop.
type Status int

const (
	// HardFailure means the replay state can no longer be trusted. The
	// session must be torn down.
	HardFailure Status = -3
	// SoftFailure means the effect of one call was skipped or is wrong.
	SoftFailure Status = -2
	// GLError means the driver raised an error the trace did not record.
	GLError Status = -1
	// OK means continue with the next packet.
	OK Status = 0
	// NextFrame is returned after a swap.
	NextFrame Status = 1
	// ResizeWindow means a window resize is in flight. Pump the window
	// system and call ProcessPendingPackets.
	ResizeWindow Status = 2
	// AtEOF means the packet source is exhausted.
	AtEOF Status = 3
)

var statusNames = map[Status]string{
	HardFailure:  "HardFailure",
	SoftFailure:  "SoftFailure",
	GLError:      "GLError",
	OK:           "OK",
	NextFrame:    "NextFrame",
	ResizeWindow: "ResizeWindow",
	AtEOF:        "AtEOF",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Failed returns true for the failure statuses.
func (s Status) Failed() bool { return s < OK }

// Fatal returns true if replay must stop.
func (s Status) Fatal() bool { return s == HardFailure }

// worst returns the more severe of a and b.
func worst(a, b Status) Status {
	if b < a {
		return b
	}
	return a
}
