/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ptp_test

import (
	"testing"

	"github.com/openptp/ptpmgmt/ptp"
	"github.com/openptp/ptpmgmt/ptp/wire"
	"github.com/stretchr/testify/assert"
)

func TestTimestampRoundTrip(t *testing.T) {
	ts := ptp.Timestamp{SecondsField: 0x0000FFFFFFFFFFFF, NanosecondsField: 999999999}
	w := wire.NewWriter()
	assert.NoError(t, ts.Wire(w))
	assert.Equal(t, 10, w.Pos())

	var got ptp.Timestamp
	assert.NoError(t, got.Wire(wire.NewReader(w.Wire())))
	assert.Equal(t, ts, got)
}

func TestTimestampSecondsRange(t *testing.T) {
	ts := ptp.Timestamp{SecondsField: 1 << 48}
	assert.ErrorIs(t, ts.Wire(wire.NewWriter()), wire.ErrOutOfRange)
}

func TestPortIdentityAllPorts(t *testing.T) {
	pi := ptp.AllPortsIdentity()
	assert.True(t, pi.IsAllPorts())
	w := wire.NewWriter()
	assert.NoError(t, pi.Wire(w))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, w.Wire())

	pi.PortNumber = 1
	assert.False(t, pi.IsAllPorts())
}

func TestPTPTextRoundTrip(t *testing.T) {
	text := ptp.PTPText("ptp4l")
	w := wire.NewWriter()
	assert.NoError(t, text.Wire(w))
	assert.Equal(t, []byte{5, 'p', 't', 'p', '4', 'l'}, w.Wire())
	assert.Equal(t, 6, text.EncodedLen())

	var got ptp.PTPText
	assert.NoError(t, got.Wire(wire.NewReader(w.Wire())))
	assert.Equal(t, text, got)
}

func TestPTPTextTruncated(t *testing.T) {
	// Declared length of 5 with only 2 octets behind it.
	var got ptp.PTPText
	assert.ErrorIs(t, got.Wire(wire.NewReader([]byte{5, 'p', 't'})), wire.ErrSizeMismatch)
}

func TestPortAddressRoundTrip(t *testing.T) {
	addr := ptp.PortAddress{
		NetworkProtocol: ptp.UDPIPv4,
		AddressField:    []byte{192, 0, 2, 1},
	}
	w := wire.NewWriter()
	assert.NoError(t, addr.Wire(w))
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x04, 192, 0, 2, 1}, w.Wire())
	assert.Equal(t, 8, addr.EncodedLen())
	assert.Equal(t, "192.0.2.1", addr.String())

	var got ptp.PortAddress
	assert.NoError(t, got.Wire(wire.NewReader(w.Wire())))
	assert.Equal(t, addr, got)
}

func TestPortAddressBadProtocol(t *testing.T) {
	var got ptp.PortAddress
	err := got.Wire(wire.NewReader([]byte{0x00, 0x09, 0x00, 0x00}))
	assert.ErrorIs(t, err, wire.ErrOutOfRange)
}

func TestFaultRecordRoundTrip(t *testing.T) {
	rec := ptp.FaultRecord{
		FaultTime:        ptp.Timestamp{SecondsField: 100, NanosecondsField: 7},
		SeverityCode:     ptp.FaultError,
		FaultName:        "over",
		FaultValue:       "ok",
		FaultDescription: "threshold exceeded",
	}
	w := wire.NewWriter()
	assert.NoError(t, rec.Wire(w))
	assert.Equal(t, rec.EncodedLen(), w.Pos())
	// The record length counts everything after itself.
	assert.Equal(t, []byte{0x00, byte(rec.EncodedLen() - 2)}, w.Wire()[:2])

	var got ptp.FaultRecord
	assert.NoError(t, got.Wire(wire.NewReader(w.Wire())))
	assert.Equal(t, rec, got)
}

func TestFaultRecordLengthMismatch(t *testing.T) {
	rec := ptp.FaultRecord{SeverityCode: ptp.FaultNotice, FaultName: "x"}
	w := wire.NewWriter()
	assert.NoError(t, rec.Wire(w))
	buf := append([]byte{}, w.Wire()...)
	buf[1]++ // declared length no longer matches the interior fields
	var got ptp.FaultRecord
	assert.ErrorIs(t, got.Wire(wire.NewReader(buf)), wire.ErrSizeMismatch)
}

func TestTimeIntervalConversion(t *testing.T) {
	ti := ptp.TimeInterval{ScaledNanoseconds: 3 << 16}
	assert.Equal(t, 3.0, ti.Interval())
	ti.ScaledNanoseconds = -(1 << 15)
	assert.Equal(t, -0.5, ti.Interval())
}

func TestStringConversions(t *testing.T) {
	ci := ptp.ClockIdentity{0x00, 0x1B, 0x19, 0xFF, 0xFE, 0xF0, 0x00, 0x01}
	assert.Equal(t, "001b19.fffe.f00001", ci.String())
	pi := ptp.PortIdentity{ClockIdentity: ci, PortNumber: 1}
	assert.Equal(t, "001b19.fffe.f00001-1", pi.String())
	assert.Equal(t, "12.000000007", ptp.Timestamp{SecondsField: 12, NanosecondsField: 7}.String())
	assert.Equal(t, "MASTER", ptp.Master.String())
	assert.Equal(t, "GNSS", ptp.GNSS.String())
	assert.Equal(t, "UDP_IPv4", ptp.UDPIPv4.String())
	assert.Equal(t, "100ns", ptp.Accurate100ns.String())
	assert.Equal(t, "Notice", ptp.FaultNotice.String())
}

func TestFlagHelpers(t *testing.T) {
	flags := uint8(ptp.FlagLeap61 | ptp.FlagPTPTimescale | ptp.FlagFrequencyTraceable)
	assert.True(t, ptp.IsLeap61(flags))
	assert.False(t, ptp.IsLeap59(flags))
	assert.False(t, ptp.IsUTCOffsetValid(flags))
	assert.True(t, ptp.IsPTPTimescale(flags))
	assert.False(t, ptp.IsTimeTraceable(flags))
	assert.True(t, ptp.IsFrequencyTraceable(flags))
}
