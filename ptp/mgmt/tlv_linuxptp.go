/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"github.com/openptp/ptpmgmt/ptp"
	"github.com/openptp/ptpmgmt/ptp/wire"
)

// linuxptp implementation-specific TLVs. These are not part of IEEE 1588
// and are only decoded when MsgParams.UseLinuxPTPTlvs is set.

// Subscription event numbers of SUBSCRIBE_EVENTS_NP.
const (
	NotifyPortState = iota
	NotifyTimeSync
	NotifyParentDataSet
	NotifyCmlds
)

// TimeStatusNP is the TIME_STATUS_NP payload.
type TimeStatusNP struct {
	MasterOffset               int64 // nanoseconds
	IngressTime                int64 // nanoseconds
	CumulativeScaledRateOffset int32
	ScaledLastGmPhaseChange    int32
	GmTimeBaseIndicator        uint16
	// lastGmPhaseChange, a scaled nanoseconds triple
	NanosecondsMsb        uint16
	NanosecondsLsb        uint64
	FractionalNanoseconds uint16
	GmPresent             int32
	GmIdentity            ptp.ClockIdentity
}

// ID returns MID_TIME_STATUS_NP.
func (*TimeStatusNP) ID() ID { return MID_TIME_STATUS_NP }

func (d *TimeStatusNP) wire(c wire.Coder) error {
	if err := c.I64(&d.MasterOffset); err != nil {
		return err
	}
	if err := c.I64(&d.IngressTime); err != nil {
		return err
	}
	if err := c.I32(&d.CumulativeScaledRateOffset); err != nil {
		return err
	}
	if err := c.I32(&d.ScaledLastGmPhaseChange); err != nil {
		return err
	}
	if err := c.U16(&d.GmTimeBaseIndicator); err != nil {
		return err
	}
	if err := c.U16(&d.NanosecondsMsb); err != nil {
		return err
	}
	if err := c.U64(&d.NanosecondsLsb); err != nil {
		return err
	}
	if err := c.U16(&d.FractionalNanoseconds); err != nil {
		return err
	}
	if err := c.I32(&d.GmPresent); err != nil {
		return err
	}
	return d.GmIdentity.Wire(c)
}

// GrandmasterSettingsNP is the GRANDMASTER_SETTINGS_NP payload.
type GrandmasterSettingsNP struct {
	ClockQuality     ptp.ClockQuality
	CurrentUtcOffset int16
	Flags            uint8
	TimeSource       ptp.TimeSource
}

// ID returns MID_GRANDMASTER_SETTINGS_NP.
func (*GrandmasterSettingsNP) ID() ID { return MID_GRANDMASTER_SETTINGS_NP }

func (d *GrandmasterSettingsNP) wire(c wire.Coder) error {
	if err := d.ClockQuality.Wire(c); err != nil {
		return err
	}
	if err := c.I16(&d.CurrentUtcOffset); err != nil {
		return err
	}
	if err := c.U8(&d.Flags); err != nil {
		return err
	}
	return procTimeSource(c, &d.TimeSource)
}

// PortDataSetNP is the PORT_DATA_SET_NP payload.
type PortDataSetNP struct {
	NeighborPropDelayThresh uint32
	AsCapable               int32
}

// ID returns MID_PORT_DATA_SET_NP.
func (*PortDataSetNP) ID() ID { return MID_PORT_DATA_SET_NP }

func (d *PortDataSetNP) wire(c wire.Coder) error {
	if err := c.U32(&d.NeighborPropDelayThresh); err != nil {
		return err
	}
	return c.I32(&d.AsCapable)
}

// SubscribeEventsNP is the SUBSCRIBE_EVENTS_NP payload.
type SubscribeEventsNP struct {
	Duration uint16
	Bitmask  [64]byte
}

// ID returns MID_SUBSCRIBE_EVENTS_NP.
func (*SubscribeEventsNP) ID() ID { return MID_SUBSCRIBE_EVENTS_NP }

// SetEvent subscribes the given event number.
func (d *SubscribeEventsNP) SetEvent(event int) {
	if event >= 0 && event < len(d.Bitmask)*8 {
		d.Bitmask[event/8] |= 1 << uint(event%8)
	}
}

// ClearEvent unsubscribes the given event number.
func (d *SubscribeEventsNP) ClearEvent(event int) {
	if event >= 0 && event < len(d.Bitmask)*8 {
		d.Bitmask[event/8] &^= 1 << uint(event%8)
	}
}

// Event reports whether the given event number is subscribed.
func (d *SubscribeEventsNP) Event(event int) bool {
	return event >= 0 && event < len(d.Bitmask)*8 &&
		d.Bitmask[event/8]&(1<<uint(event%8)) != 0
}

func (d *SubscribeEventsNP) wire(c wire.Coder) error {
	if err := c.U16(&d.Duration); err != nil {
		return err
	}
	return c.Bytes(d.Bitmask[:])
}

// PortPropertiesNP is the PORT_PROPERTIES_NP payload.
type PortPropertiesNP struct {
	PortIdentity ptp.PortIdentity
	PortState    ptp.PortState
	Timestamping ptp.TimestampType
	Interface    ptp.PTPText
}

// ID returns MID_PORT_PROPERTIES_NP.
func (*PortPropertiesNP) ID() ID { return MID_PORT_PROPERTIES_NP }

func (d *PortPropertiesNP) wire(c wire.Coder) error {
	if err := d.PortIdentity.Wire(c); err != nil {
		return err
	}
	if err := procPortState(c, &d.PortState); err != nil {
		return err
	}
	ts := uint8(d.Timestamping)
	if err := c.U8(&ts); err != nil {
		return err
	}
	d.Timestamping = ptp.TimestampType(ts)
	if !d.Timestamping.Valid() {
		return wire.ErrOutOfRange
	}
	return d.Interface.Wire(c)
}

// PortStatsNP is the PORT_STATS_NP payload. The per-message-type counters
// are little endian on the wire, unlike every other field.
type PortStatsNP struct {
	PortIdentity ptp.PortIdentity
	RxMsgType    [16]uint64
	TxMsgType    [16]uint64
}

// ID returns MID_PORT_STATS_NP.
func (*PortStatsNP) ID() ID { return MID_PORT_STATS_NP }

func (d *PortStatsNP) wire(c wire.Coder) error {
	if err := d.PortIdentity.Wire(c); err != nil {
		return err
	}
	for i := range d.RxMsgType {
		if err := c.U64LE(&d.RxMsgType[i]); err != nil {
			return err
		}
	}
	for i := range d.TxMsgType {
		if err := c.U64LE(&d.TxMsgType[i]); err != nil {
			return err
		}
	}
	return nil
}

// SynchronizationUncertainNP is the SYNCHRONIZATION_UNCERTAIN_NP payload.
type SynchronizationUncertainNP struct {
	Val uint8
}

// ID returns MID_SYNCHRONIZATION_UNCERTAIN_NP.
func (*SynchronizationUncertainNP) ID() ID { return MID_SYNCHRONIZATION_UNCERTAIN_NP }

func (d *SynchronizationUncertainNP) wire(c wire.Coder) error {
	if err := c.U8(&d.Val); err != nil {
		return err
	}
	return procRes(c, 1)
}
