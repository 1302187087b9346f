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

// Package fault holds the error helpers shared by the replay packages.
package fault

// Const is an error type that can be declared as a constant.
type Const string

func (e Const) Error() string { return string(e) }

// NotAnError is returned by From when handed a value that is not an error.
const NotAnError = Const("value is not an error")

// From converts a recovered value into an error.
// nil stays nil, errors pass through and anything else becomes NotAnError.
func From(value interface{}) error {
	switch err := value.(type) {
	case nil:
		return nil
	case error:
		return err
	default:
		return NotAnError
	}
}
