/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"errors"

	"github.com/openptp/ptpmgmt/ptp/wire"
)

// Parse and build errors. Each call returns exactly one of these (nil on
// success); the Message retains the last one for diagnostics.
var (
	ErrMsg        = errors.New("management error status TLV received")
	ErrInvalidID  = errors.New("invalid management TLV id or action for TLV")
	ErrInvalidTLV = errors.New("wrong TLV header")
	ErrSizeMiss   = errors.New("size mismatch of field with length")
	ErrTooSmall   = errors.New("buffer is too small")
	ErrSize       = errors.New("TLV length is odd")
	ErrVal        = errors.New("value is out of range or invalid")
	ErrHeader     = errors.New("wrong value in header")
	ErrAction     = errors.New("wrong action value")
	ErrUnsupport  = errors.New("do not know how to parse the TLV data")
	ErrMem        = errors.New("failed to allocate TLV data")
)

// tlvErr translates a wire codec error into the taxonomy.
func tlvErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wire.ErrBufferTooShort):
		return ErrTooSmall
	case errors.Is(err, wire.ErrCapacity):
		return ErrTooSmall
	case errors.Is(err, wire.ErrSizeMismatch):
		return ErrSizeMiss
	case errors.Is(err, wire.ErrOutOfRange):
		return ErrVal
	}
	return err
}

// ErrorID is the managementErrorId carried by a MANAGEMENT_ERROR_STATUS TLV.
type ErrorID uint16

// Management error ids.
const (
	ResponseTooBig ErrorID = 0x0001
	NoSuchID       ErrorID = 0x0002
	WrongLength    ErrorID = 0x0003
	WrongValue     ErrorID = 0x0004
	NotSetable     ErrorID = 0x0005
	NotSupported   ErrorID = 0x0006
	GeneralError   ErrorID = 0xFFFE
)

func (e ErrorID) String() string {
	switch e {
	case ResponseTooBig:
		return "RESPONSE_TOO_BIG"
	case NoSuchID:
		return "NO_SUCH_ID"
	case WrongLength:
		return "WRONG_LENGTH"
	case WrongValue:
		return "WRONG_VALUE"
	case NotSetable:
		return "NOT_SETABLE"
	case NotSupported:
		return "NOT_SUPPORTED"
	case GeneralError:
		return "GENERAL_ERROR"
	}
	return "unknown"
}
