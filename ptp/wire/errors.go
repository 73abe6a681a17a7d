/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package wire

import "errors"

// Wire codec errors.
var (
	ErrBufferTooShort = errors.New("field exceeds buffer size")
	ErrCapacity       = errors.New("write exceeds buffer capacity")
	ErrOutOfRange     = errors.New("value outside of allowed range")
	ErrSizeMismatch   = errors.New("declared length disagrees with octets consumed")
)
