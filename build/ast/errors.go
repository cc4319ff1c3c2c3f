// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ErrContract reports a construction contract violation: a kind tag
// paired with a payload that does not belong to it, or an out-of-domain
// value passed to a constructor. The wrapping message identifies the
// constructor and the invariant that failed, so the parser can turn it
// into a diagnostic at the current source position.
var ErrContract = errors.New("construction contract violation")

// contractf records and returns a contract violation. A constructor
// reporting one must not have allocated its node: a failed call leaves
// nothing reachable in the session.
func (b *Builder) contractf(format string, args ...interface{}) error {
	err := errors.Wrapf(ErrContract, format, args...)
	b.errs = append(b.errs, err)
	return err
}

// Err returns every construction error recorded during the session,
// combined into one. It returns nil if every constructor call
// succeeded.
func (b *Builder) Err() error {
	return multierr.Combine(b.errs...)
}
