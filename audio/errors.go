// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNilSource = errors.New("nil audio source")
)
