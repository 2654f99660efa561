// Copyright Krzesimir Nowak
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

package itergen

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every error returned from the
// constructors in this package.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArg(formatStr string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(formatStr, args...))
}

func checkNonNegative(name string, v int) error {
	if v < 0 {
		return invalidArg("%s (=%d) < 0", name, v)
	}
	return nil
}

func checkRN(r, n int) error {
	if err := checkNonNegative("r", r); err != nil {
		return err
	}
	return checkNonNegative("n", n)
}
