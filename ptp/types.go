/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package ptp provides the IEEE 1588 data types shared by PTP messages,
// together with their octet layout on the wire.
package ptp

import (
	"encoding/hex"
	"fmt"
	"math"
	"net"

	"github.com/openptp/ptpmgmt/ptp/wire"
)

// ClockIdentity is the EUI-64 derived identity of a PTP clock.
type ClockIdentity [8]byte

// Wire moves the identity octets through the coder.
func (ci *ClockIdentity) Wire(c wire.Coder) error {
	return c.Bytes(ci[:])
}

func (ci ClockIdentity) String() string {
	return fmt.Sprintf("%02x%02x%02x.%02x%02x.%02x%02x%02x",
		ci[0], ci[1], ci[2], ci[3], ci[4], ci[5], ci[6], ci[7])
}

// PortIdentity names one port of a clock.
type PortIdentity struct {
	ClockIdentity ClockIdentity
	PortNumber    uint16
}

// AllPortsIdentity returns the wildcard identity addressing every port of
// every clock: an all-ones ClockIdentity with port number 0xFFFF.
func AllPortsIdentity() PortIdentity {
	return PortIdentity{
		ClockIdentity: ClockIdentity{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		PortNumber:    0xFFFF,
	}
}

// IsAllPorts reports whether the identity is the all-ports wildcard.
func (pi PortIdentity) IsAllPorts() bool {
	return pi == AllPortsIdentity()
}

// Wire moves the identity fields through the coder.
func (pi *PortIdentity) Wire(c wire.Coder) error {
	if err := pi.ClockIdentity.Wire(c); err != nil {
		return err
	}
	return c.U16(&pi.PortNumber)
}

func (pi PortIdentity) String() string {
	return fmt.Sprintf("%s-%d", pi.ClockIdentity, pi.PortNumber)
}

// Timestamp carries seconds and nanoseconds since the PTP epoch. The
// seconds field occupies 48 bits on the wire.
type Timestamp struct {
	SecondsField     uint64
	NanosecondsField uint32
}

// Wire moves the timestamp fields through the coder.
func (t *Timestamp) Wire(c wire.Coder) error {
	if err := c.U48(&t.SecondsField); err != nil {
		return err
	}
	return c.U32(&t.NanosecondsField)
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%09d", t.SecondsField, t.NanosecondsField)
}

// TimeInterval is a signed time interval in units of nanoseconds * 2^16.
type TimeInterval struct {
	ScaledNanoseconds int64
}

// Wire moves the interval through the coder.
func (t *TimeInterval) Wire(c wire.Coder) error {
	return c.I64(&t.ScaledNanoseconds)
}

// Interval returns the interval in nanoseconds.
func (t TimeInterval) Interval() float64 {
	return float64(t.ScaledNanoseconds) / 0x10000
}

// ClockQuality summarizes the quality of a clock for best-master selection.
type ClockQuality struct {
	ClockClass              uint8
	ClockAccuracy           ClockAccuracy
	OffsetScaledLogVariance uint16
}

// Wire moves the quality fields through the coder.
func (q *ClockQuality) Wire(c wire.Coder) error {
	if err := c.U8(&q.ClockClass); err != nil {
		return err
	}
	acc := uint8(q.ClockAccuracy)
	if err := c.U8(&acc); err != nil {
		return err
	}
	q.ClockAccuracy = ClockAccuracy(acc)
	return c.U16(&q.OffsetScaledLogVariance)
}

// PTPText is a length-prefixed UTF-8 text field. The wire form is a
// one-octet length followed by that many octets, with no terminator.
type PTPText string

// Wire moves the text through the coder.
func (t *PTPText) Wire(c wire.Coder) error {
	if c.Building() {
		if len(*t) > math.MaxUint8 {
			return wire.ErrOutOfRange
		}
		length := uint8(len(*t))
		if err := c.U8(&length); err != nil {
			return err
		}
		return c.Bytes([]byte(*t))
	}
	var length uint8
	if err := c.U8(&length); err != nil {
		return err
	}
	if c.Remaining() < int(length) {
		return wire.ErrSizeMismatch
	}
	buf := make([]byte, length)
	if err := c.Bytes(buf); err != nil {
		return err
	}
	*t = PTPText(buf)
	return nil
}

// EncodedLen returns the octet count of the text on the wire.
func (t PTPText) EncodedLen() int {
	return 1 + len(t)
}

// PortAddress is the protocol address of a PTP port.
type PortAddress struct {
	NetworkProtocol NetworkProtocol
	AddressField    []byte
}

// Wire moves the address fields through the coder.
func (a *PortAddress) Wire(c wire.Coder) error {
	proto := uint16(a.NetworkProtocol)
	if err := c.U16(&proto); err != nil {
		return err
	}
	a.NetworkProtocol = NetworkProtocol(proto)
	if !a.NetworkProtocol.Valid() {
		return wire.ErrOutOfRange
	}
	if c.Building() {
		if len(a.AddressField) > math.MaxUint16 {
			return wire.ErrOutOfRange
		}
		length := uint16(len(a.AddressField))
		if err := c.U16(&length); err != nil {
			return err
		}
		return c.Bytes(a.AddressField)
	}
	var length uint16
	if err := c.U16(&length); err != nil {
		return err
	}
	if c.Remaining() < int(length) {
		return wire.ErrSizeMismatch
	}
	a.AddressField = make([]byte, length)
	return c.Bytes(a.AddressField)
}

// EncodedLen returns the octet count of the address on the wire.
func (a PortAddress) EncodedLen() int {
	return 4 + len(a.AddressField)
}

// String renders the address per its network protocol.
func (a PortAddress) String() string {
	switch a.NetworkProtocol {
	case UDPIPv4:
		if len(a.AddressField) == net.IPv4len {
			return net.IP(a.AddressField).String()
		}
	case UDPIPv6:
		if len(a.AddressField) == net.IPv6len {
			return net.IP(a.AddressField).String()
		}
	}
	return hex.EncodeToString(a.AddressField)
}

// FaultRecord describes one entry of a clock's fault log. The record
// length counts every octet following the length field itself.
type FaultRecord struct {
	FaultTime        Timestamp
	SeverityCode     FaultSeverity
	FaultName        PTPText
	FaultValue       PTPText
	FaultDescription PTPText
}

// Wire moves the record through the coder. The record length is recomputed
// when building and validated against the octets consumed when parsing.
func (f *FaultRecord) Wire(c wire.Coder) error {
	length := uint16(f.EncodedLen() - 2)
	if err := c.U16(&length); err != nil {
		return err
	}
	start := c.Pos()
	if err := f.FaultTime.Wire(c); err != nil {
		return err
	}
	sev := uint8(f.SeverityCode)
	if err := c.U8(&sev); err != nil {
		return err
	}
	f.SeverityCode = FaultSeverity(sev)
	if !f.SeverityCode.Valid() {
		return wire.ErrOutOfRange
	}
	if err := f.FaultName.Wire(c); err != nil {
		return err
	}
	if err := f.FaultValue.Wire(c); err != nil {
		return err
	}
	if err := f.FaultDescription.Wire(c); err != nil {
		return err
	}
	if !c.Building() && c.Pos()-start != int(length) {
		return wire.ErrSizeMismatch
	}
	return nil
}

// EncodedLen returns the octet count of the record on the wire, including
// the length field.
func (f FaultRecord) EncodedLen() int {
	return 2 + 10 + 1 + f.FaultName.EncodedLen() + f.FaultValue.EncodedLen() +
		f.FaultDescription.EncodedLen()
}

// AcceptableMaster is one entry of the acceptable master table.
type AcceptableMaster struct {
	AcceptablePortIdentity PortIdentity
	AlternatePriority1     uint8
}

// Wire moves the entry through the coder.
func (a *AcceptableMaster) Wire(c wire.Coder) error {
	if err := a.AcceptablePortIdentity.Wire(c); err != nil {
		return err
	}
	return c.U8(&a.AlternatePriority1)
}

// Flag bits of the timePropertiesDS flag field.
const (
	FlagLeap61             = 1 << 0
	FlagLeap59             = 1 << 1
	FlagUTCOffsetValid     = 1 << 2
	FlagPTPTimescale       = 1 << 3
	FlagTimeTraceable      = 1 << 4
	FlagFrequencyTraceable = 1 << 5
)

// IsLeap61 reports whether the last minute of the current UTC day is 61s.
func IsLeap61(flags uint8) bool { return flags&FlagLeap61 != 0 }

// IsLeap59 reports whether the last minute of the current UTC day is 59s.
func IsLeap59(flags uint8) bool { return flags&FlagLeap59 != 0 }

// IsUTCOffsetValid reports whether the current UTC offset is valid.
func IsUTCOffsetValid(flags uint8) bool { return flags&FlagUTCOffsetValid != 0 }

// IsPTPTimescale reports whether the grandmaster timescale is PTP.
func IsPTPTimescale(flags uint8) bool { return flags&FlagPTPTimescale != 0 }

// IsTimeTraceable reports whether time is traceable to a primary reference.
func IsTimeTraceable(flags uint8) bool { return flags&FlagTimeTraceable != 0 }

// IsFrequencyTraceable reports whether frequency is traceable to a primary reference.
func IsFrequencyTraceable(flags uint8) bool { return flags&FlagFrequencyTraceable != 0 }
