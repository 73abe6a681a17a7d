/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"math"

	"github.com/openptp/ptpmgmt/ptp"
	"github.com/openptp/ptpmgmt/ptp/wire"
)

// Data is a typed management TLV payload. Each implementation walks its
// fields once through a wire.Coder, in wire order; the Coder supplies the
// direction, so the same routine parses and builds.
type Data interface {
	ID() ID
	wire(c wire.Coder) error
}

// procRes transfers n reserved octets: zeros out, ignored in.
func procRes(c wire.Coder, n int) error {
	var zeros [8]byte
	return c.Bytes(zeros[:n])
}

func procTimeSource(c wire.Coder, v *ptp.TimeSource) error {
	raw := uint8(*v)
	if err := c.U8(&raw); err != nil {
		return err
	}
	*v = ptp.TimeSource(raw)
	if !v.Valid() {
		return wire.ErrOutOfRange
	}
	return nil
}

func procPortState(c wire.Coder, v *ptp.PortState) error {
	raw := uint8(*v)
	if err := c.U8(&raw); err != nil {
		return err
	}
	*v = ptp.PortState(raw)
	if !v.Valid() {
		return wire.ErrOutOfRange
	}
	return nil
}

func procClockAccuracy(c wire.Coder, v *ptp.ClockAccuracy) error {
	raw := uint8(*v)
	if err := c.U8(&raw); err != nil {
		return err
	}
	*v = ptp.ClockAccuracy(raw)
	if !v.Valid() {
		return wire.ErrOutOfRange
	}
	return nil
}

// ClockDescription is the CLOCK_DESCRIPTION payload.
type ClockDescription struct {
	ClockType             ptp.ClockType
	PhysicalLayerProtocol ptp.PTPText
	PhysicalAddress       []byte
	ProtocolAddress       ptp.PortAddress
	ManufacturerIdentity  [3]byte
	ProductDescription    ptp.PTPText
	RevisionData          ptp.PTPText
	UserDescription       ptp.PTPText
	ProfileIdentity       [6]byte
}

// ID returns MID_CLOCK_DESCRIPTION.
func (*ClockDescription) ID() ID { return MID_CLOCK_DESCRIPTION }

func (d *ClockDescription) wire(c wire.Coder) error {
	clockType := uint16(d.ClockType)
	if err := c.U16(&clockType); err != nil {
		return err
	}
	d.ClockType = ptp.ClockType(clockType)
	if err := d.PhysicalLayerProtocol.Wire(c); err != nil {
		return err
	}
	if c.Building() {
		if len(d.PhysicalAddress) > math.MaxUint16 {
			return wire.ErrOutOfRange
		}
		length := uint16(len(d.PhysicalAddress))
		if err := c.U16(&length); err != nil {
			return err
		}
		if err := c.Bytes(d.PhysicalAddress); err != nil {
			return err
		}
	} else {
		var length uint16
		if err := c.U16(&length); err != nil {
			return err
		}
		if c.Remaining() < int(length) {
			return wire.ErrSizeMismatch
		}
		d.PhysicalAddress = make([]byte, length)
		if err := c.Bytes(d.PhysicalAddress); err != nil {
			return err
		}
	}
	if err := d.ProtocolAddress.Wire(c); err != nil {
		return err
	}
	if err := c.Bytes(d.ManufacturerIdentity[:]); err != nil {
		return err
	}
	if err := procRes(c, 1); err != nil {
		return err
	}
	if err := d.ProductDescription.Wire(c); err != nil {
		return err
	}
	if err := d.RevisionData.Wire(c); err != nil {
		return err
	}
	if err := d.UserDescription.Wire(c); err != nil {
		return err
	}
	return c.Bytes(d.ProfileIdentity[:])
}

// UserDescription is the USER_DESCRIPTION payload.
type UserDescription struct {
	UserDescription ptp.PTPText
}

// ID returns MID_USER_DESCRIPTION.
func (*UserDescription) ID() ID { return MID_USER_DESCRIPTION }

func (d *UserDescription) wire(c wire.Coder) error {
	return d.UserDescription.Wire(c)
}

// Initialize is the INITIALIZE payload.
type Initialize struct {
	InitializationKey uint16
}

// ID returns MID_INITIALIZE.
func (*Initialize) ID() ID { return MID_INITIALIZE }

func (d *Initialize) wire(c wire.Coder) error {
	return c.U16(&d.InitializationKey)
}

// FaultLog is the FAULT_LOG payload.
type FaultLog struct {
	NumberOfFaultRecords uint16
	FaultRecords         []ptp.FaultRecord
}

// ID returns MID_FAULT_LOG.
func (*FaultLog) ID() ID { return MID_FAULT_LOG }

func (d *FaultLog) wire(c wire.Coder) error {
	if c.Building() {
		if len(d.FaultRecords) > math.MaxUint16 {
			return wire.ErrOutOfRange
		}
		d.NumberOfFaultRecords = uint16(len(d.FaultRecords))
	}
	if err := c.U16(&d.NumberOfFaultRecords); err != nil {
		return err
	}
	if !c.Building() {
		d.FaultRecords = make([]ptp.FaultRecord, d.NumberOfFaultRecords)
	}
	for i := range d.FaultRecords {
		if err := d.FaultRecords[i].Wire(c); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDataSet is the DEFAULT_DATA_SET payload. Flags bit 0 is the
// two-step flag, bit 1 slave-only.
type DefaultDataSet struct {
	Flags         uint8
	NumberPorts   uint16
	Priority1     uint8
	ClockQuality  ptp.ClockQuality
	Priority2     uint8
	ClockIdentity ptp.ClockIdentity
	DomainNumber  uint8
}

// ID returns MID_DEFAULT_DATA_SET.
func (*DefaultDataSet) ID() ID { return MID_DEFAULT_DATA_SET }

// TwoStepFlag reports whether the clock is two-step.
func (d *DefaultDataSet) TwoStepFlag() bool { return d.Flags&(1<<0) != 0 }

// SlaveOnly reports whether the clock is slave-only.
func (d *DefaultDataSet) SlaveOnly() bool { return d.Flags&(1<<1) != 0 }

func (d *DefaultDataSet) wire(c wire.Coder) error {
	if err := c.U8(&d.Flags); err != nil {
		return err
	}
	if err := procRes(c, 1); err != nil {
		return err
	}
	if err := c.U16(&d.NumberPorts); err != nil {
		return err
	}
	if err := c.U8(&d.Priority1); err != nil {
		return err
	}
	if err := d.ClockQuality.Wire(c); err != nil {
		return err
	}
	if err := c.U8(&d.Priority2); err != nil {
		return err
	}
	if err := d.ClockIdentity.Wire(c); err != nil {
		return err
	}
	if err := c.U8(&d.DomainNumber); err != nil {
		return err
	}
	return procRes(c, 1)
}

// CurrentDataSet is the CURRENT_DATA_SET payload.
type CurrentDataSet struct {
	StepsRemoved     uint16
	OffsetFromMaster ptp.TimeInterval
	MeanPathDelay    ptp.TimeInterval
}

// ID returns MID_CURRENT_DATA_SET.
func (*CurrentDataSet) ID() ID { return MID_CURRENT_DATA_SET }

func (d *CurrentDataSet) wire(c wire.Coder) error {
	if err := c.U16(&d.StepsRemoved); err != nil {
		return err
	}
	if err := d.OffsetFromMaster.Wire(c); err != nil {
		return err
	}
	return d.MeanPathDelay.Wire(c)
}

// ParentDataSet is the PARENT_DATA_SET payload.
type ParentDataSet struct {
	ParentPortIdentity                    ptp.PortIdentity
	ParentStats                           uint8
	ObservedParentOffsetScaledLogVariance uint16
	ObservedParentClockPhaseChangeRate    int32
	GrandmasterPriority1                  uint8
	GrandmasterClockQuality               ptp.ClockQuality
	GrandmasterPriority2                  uint8
	GrandmasterIdentity                   ptp.ClockIdentity
}

// ID returns MID_PARENT_DATA_SET.
func (*ParentDataSet) ID() ID { return MID_PARENT_DATA_SET }

func (d *ParentDataSet) wire(c wire.Coder) error {
	if err := d.ParentPortIdentity.Wire(c); err != nil {
		return err
	}
	if err := c.U8(&d.ParentStats); err != nil {
		return err
	}
	if err := procRes(c, 1); err != nil {
		return err
	}
	if err := c.U16(&d.ObservedParentOffsetScaledLogVariance); err != nil {
		return err
	}
	if err := c.I32(&d.ObservedParentClockPhaseChangeRate); err != nil {
		return err
	}
	if err := c.U8(&d.GrandmasterPriority1); err != nil {
		return err
	}
	if err := d.GrandmasterClockQuality.Wire(c); err != nil {
		return err
	}
	if err := c.U8(&d.GrandmasterPriority2); err != nil {
		return err
	}
	return d.GrandmasterIdentity.Wire(c)
}

// TimePropertiesDataSet is the TIME_PROPERTIES_DATA_SET payload.
type TimePropertiesDataSet struct {
	CurrentUtcOffset int16
	Flags            uint8
	TimeSource       ptp.TimeSource
}

// ID returns MID_TIME_PROPERTIES_DATA_SET.
func (*TimePropertiesDataSet) ID() ID { return MID_TIME_PROPERTIES_DATA_SET }

func (d *TimePropertiesDataSet) wire(c wire.Coder) error {
	if err := c.I16(&d.CurrentUtcOffset); err != nil {
		return err
	}
	if err := c.U8(&d.Flags); err != nil {
		return err
	}
	return procTimeSource(c, &d.TimeSource)
}

// PortDataSet is the PORT_DATA_SET payload.
type PortDataSet struct {
	PortIdentity            ptp.PortIdentity
	PortState               ptp.PortState
	LogMinDelayReqInterval  int8
	PeerMeanPathDelay       ptp.TimeInterval
	LogAnnounceInterval     int8
	AnnounceReceiptTimeout  uint8
	LogSyncInterval         int8
	DelayMechanism          uint8
	LogMinPdelayReqInterval int8
	VersionNumber           uint8
}

// ID returns MID_PORT_DATA_SET.
func (*PortDataSet) ID() ID { return MID_PORT_DATA_SET }

func (d *PortDataSet) wire(c wire.Coder) error {
	if err := d.PortIdentity.Wire(c); err != nil {
		return err
	}
	if err := procPortState(c, &d.PortState); err != nil {
		return err
	}
	if err := c.I8(&d.LogMinDelayReqInterval); err != nil {
		return err
	}
	if err := d.PeerMeanPathDelay.Wire(c); err != nil {
		return err
	}
	if err := c.I8(&d.LogAnnounceInterval); err != nil {
		return err
	}
	if err := c.U8(&d.AnnounceReceiptTimeout); err != nil {
		return err
	}
	if err := c.I8(&d.LogSyncInterval); err != nil {
		return err
	}
	if err := c.U8(&d.DelayMechanism); err != nil {
		return err
	}
	if err := c.I8(&d.LogMinPdelayReqInterval); err != nil {
		return err
	}
	return c.U8(&d.VersionNumber)
}

// Priority1 is the PRIORITY1 payload.
type Priority1 struct {
	Priority1 uint8
}

// ID returns MID_PRIORITY1.
func (*Priority1) ID() ID { return MID_PRIORITY1 }

func (d *Priority1) wire(c wire.Coder) error {
	if err := c.U8(&d.Priority1); err != nil {
		return err
	}
	return procRes(c, 1)
}

// Priority2 is the PRIORITY2 payload.
type Priority2 struct {
	Priority2 uint8
}

// ID returns MID_PRIORITY2.
func (*Priority2) ID() ID { return MID_PRIORITY2 }

func (d *Priority2) wire(c wire.Coder) error {
	if err := c.U8(&d.Priority2); err != nil {
		return err
	}
	return procRes(c, 1)
}

// Domain is the DOMAIN payload.
type Domain struct {
	DomainNumber uint8
}

// ID returns MID_DOMAIN.
func (*Domain) ID() ID { return MID_DOMAIN }

func (d *Domain) wire(c wire.Coder) error {
	if err := c.U8(&d.DomainNumber); err != nil {
		return err
	}
	return procRes(c, 1)
}

// SlaveOnly is the SLAVE_ONLY payload. Flags bit 0 is the slave-only flag.
type SlaveOnly struct {
	Flags uint8
}

// ID returns MID_SLAVE_ONLY.
func (*SlaveOnly) ID() ID { return MID_SLAVE_ONLY }

func (d *SlaveOnly) wire(c wire.Coder) error {
	if err := c.U8(&d.Flags); err != nil {
		return err
	}
	return procRes(c, 1)
}

// LogAnnounceInterval is the LOG_ANNOUNCE_INTERVAL payload.
type LogAnnounceInterval struct {
	LogAnnounceInterval int8
}

// ID returns MID_LOG_ANNOUNCE_INTERVAL.
func (*LogAnnounceInterval) ID() ID { return MID_LOG_ANNOUNCE_INTERVAL }

func (d *LogAnnounceInterval) wire(c wire.Coder) error {
	if err := c.I8(&d.LogAnnounceInterval); err != nil {
		return err
	}
	return procRes(c, 1)
}

// AnnounceReceiptTimeout is the ANNOUNCE_RECEIPT_TIMEOUT payload.
type AnnounceReceiptTimeout struct {
	AnnounceReceiptTimeout uint8
}

// ID returns MID_ANNOUNCE_RECEIPT_TIMEOUT.
func (*AnnounceReceiptTimeout) ID() ID { return MID_ANNOUNCE_RECEIPT_TIMEOUT }

func (d *AnnounceReceiptTimeout) wire(c wire.Coder) error {
	if err := c.U8(&d.AnnounceReceiptTimeout); err != nil {
		return err
	}
	return procRes(c, 1)
}

// LogSyncInterval is the LOG_SYNC_INTERVAL payload.
type LogSyncInterval struct {
	LogSyncInterval int8
}

// ID returns MID_LOG_SYNC_INTERVAL.
func (*LogSyncInterval) ID() ID { return MID_LOG_SYNC_INTERVAL }

func (d *LogSyncInterval) wire(c wire.Coder) error {
	if err := c.I8(&d.LogSyncInterval); err != nil {
		return err
	}
	return procRes(c, 1)
}

// VersionNumber is the VERSION_NUMBER payload.
type VersionNumber struct {
	VersionNumber uint8
}

// ID returns MID_VERSION_NUMBER.
func (*VersionNumber) ID() ID { return MID_VERSION_NUMBER }

func (d *VersionNumber) wire(c wire.Coder) error {
	if err := c.U8(&d.VersionNumber); err != nil {
		return err
	}
	return procRes(c, 1)
}

// Time is the TIME payload.
type Time struct {
	CurrentTime ptp.Timestamp
}

// ID returns MID_TIME.
func (*Time) ID() ID { return MID_TIME }

func (d *Time) wire(c wire.Coder) error {
	return d.CurrentTime.Wire(c)
}

// ClockAccuracy is the CLOCK_ACCURACY payload.
type ClockAccuracy struct {
	ClockAccuracy ptp.ClockAccuracy
}

// ID returns MID_CLOCK_ACCURACY.
func (*ClockAccuracy) ID() ID { return MID_CLOCK_ACCURACY }

func (d *ClockAccuracy) wire(c wire.Coder) error {
	if err := procClockAccuracy(c, &d.ClockAccuracy); err != nil {
		return err
	}
	return procRes(c, 1)
}

// UTCProperties is the UTC_PROPERTIES payload.
type UTCProperties struct {
	CurrentUtcOffset int16
	Flags            uint8
}

// ID returns MID_UTC_PROPERTIES.
func (*UTCProperties) ID() ID { return MID_UTC_PROPERTIES }

func (d *UTCProperties) wire(c wire.Coder) error {
	if err := c.I16(&d.CurrentUtcOffset); err != nil {
		return err
	}
	if err := c.U8(&d.Flags); err != nil {
		return err
	}
	return procRes(c, 1)
}

// TraceabilityProperties is the TRACEABILITY_PROPERTIES payload.
type TraceabilityProperties struct {
	Flags uint8
}

// ID returns MID_TRACEABILITY_PROPERTIES.
func (*TraceabilityProperties) ID() ID { return MID_TRACEABILITY_PROPERTIES }

func (d *TraceabilityProperties) wire(c wire.Coder) error {
	if err := c.U8(&d.Flags); err != nil {
		return err
	}
	return procRes(c, 1)
}

// TimescaleProperties is the TIMESCALE_PROPERTIES payload.
type TimescaleProperties struct {
	Flags      uint8
	TimeSource ptp.TimeSource
}

// ID returns MID_TIMESCALE_PROPERTIES.
func (*TimescaleProperties) ID() ID { return MID_TIMESCALE_PROPERTIES }

func (d *TimescaleProperties) wire(c wire.Coder) error {
	if err := c.U8(&d.Flags); err != nil {
		return err
	}
	return procTimeSource(c, &d.TimeSource)
}

// UnicastNegotiationEnable is the UNICAST_NEGOTIATION_ENABLE payload.
// Flags bit 0 enables unicast negotiation.
type UnicastNegotiationEnable struct {
	Flags uint8
}

// ID returns MID_UNICAST_NEGOTIATION_ENABLE.
func (*UnicastNegotiationEnable) ID() ID { return MID_UNICAST_NEGOTIATION_ENABLE }

func (d *UnicastNegotiationEnable) wire(c wire.Coder) error {
	if err := c.U8(&d.Flags); err != nil {
		return err
	}
	return procRes(c, 1)
}

// PathTraceList is the PATH_TRACE_LIST payload: the identities of the
// clocks traversed, in order.
type PathTraceList struct {
	PathSequence []ptp.ClockIdentity
}

// ID returns MID_PATH_TRACE_LIST.
func (*PathTraceList) ID() ID { return MID_PATH_TRACE_LIST }

func (d *PathTraceList) wire(c wire.Coder) error {
	if c.Building() {
		for i := range d.PathSequence {
			if err := d.PathSequence[i].Wire(c); err != nil {
				return err
			}
		}
		return nil
	}
	d.PathSequence = nil
	for c.Remaining() >= 8 {
		var ci ptp.ClockIdentity
		if err := ci.Wire(c); err != nil {
			return err
		}
		d.PathSequence = append(d.PathSequence, ci)
	}
	return nil
}

// PathTraceEnable is the PATH_TRACE_ENABLE payload. Flags bit 0 enables
// the path trace option.
type PathTraceEnable struct {
	Flags uint8
}

// ID returns MID_PATH_TRACE_ENABLE.
func (*PathTraceEnable) ID() ID { return MID_PATH_TRACE_ENABLE }

func (d *PathTraceEnable) wire(c wire.Coder) error {
	if err := c.U8(&d.Flags); err != nil {
		return err
	}
	return procRes(c, 1)
}

// GrandmasterClusterTable is the GRANDMASTER_CLUSTER_TABLE payload.
type GrandmasterClusterTable struct {
	LogQueryInterval int8
	ActualTableSize  uint8
	PortAddresses    []ptp.PortAddress
}

// ID returns MID_GRANDMASTER_CLUSTER_TABLE.
func (*GrandmasterClusterTable) ID() ID { return MID_GRANDMASTER_CLUSTER_TABLE }

func (d *GrandmasterClusterTable) wire(c wire.Coder) error {
	if err := c.I8(&d.LogQueryInterval); err != nil {
		return err
	}
	if c.Building() {
		if len(d.PortAddresses) > math.MaxUint8 {
			return wire.ErrOutOfRange
		}
		d.ActualTableSize = uint8(len(d.PortAddresses))
	}
	if err := c.U8(&d.ActualTableSize); err != nil {
		return err
	}
	if !c.Building() {
		d.PortAddresses = make([]ptp.PortAddress, d.ActualTableSize)
	}
	for i := range d.PortAddresses {
		if err := d.PortAddresses[i].Wire(c); err != nil {
			return err
		}
	}
	return nil
}

// UnicastMasterTable is the UNICAST_MASTER_TABLE payload.
type UnicastMasterTable struct {
	LogQueryInterval int8
	ActualTableSize  uint16
	PortAddresses    []ptp.PortAddress
}

// ID returns MID_UNICAST_MASTER_TABLE.
func (*UnicastMasterTable) ID() ID { return MID_UNICAST_MASTER_TABLE }

func (d *UnicastMasterTable) wire(c wire.Coder) error {
	if err := c.I8(&d.LogQueryInterval); err != nil {
		return err
	}
	if c.Building() {
		if len(d.PortAddresses) > math.MaxUint16 {
			return wire.ErrOutOfRange
		}
		d.ActualTableSize = uint16(len(d.PortAddresses))
	}
	if err := c.U16(&d.ActualTableSize); err != nil {
		return err
	}
	if !c.Building() {
		d.PortAddresses = make([]ptp.PortAddress, d.ActualTableSize)
	}
	for i := range d.PortAddresses {
		if err := d.PortAddresses[i].Wire(c); err != nil {
			return err
		}
	}
	return nil
}

// UnicastMasterMaxTableSize is the UNICAST_MASTER_MAX_TABLE_SIZE payload.
type UnicastMasterMaxTableSize struct {
	MaxTableSize uint16
}

// ID returns MID_UNICAST_MASTER_MAX_TABLE_SIZE.
func (*UnicastMasterMaxTableSize) ID() ID { return MID_UNICAST_MASTER_MAX_TABLE_SIZE }

func (d *UnicastMasterMaxTableSize) wire(c wire.Coder) error {
	return c.U16(&d.MaxTableSize)
}

// AcceptableMasterTable is the ACCEPTABLE_MASTER_TABLE payload.
type AcceptableMasterTable struct {
	ActualTableSize uint16
	List            []ptp.AcceptableMaster
}

// ID returns MID_ACCEPTABLE_MASTER_TABLE.
func (*AcceptableMasterTable) ID() ID { return MID_ACCEPTABLE_MASTER_TABLE }

func (d *AcceptableMasterTable) wire(c wire.Coder) error {
	if c.Building() {
		if len(d.List) > math.MaxUint16 {
			return wire.ErrOutOfRange
		}
		d.ActualTableSize = uint16(len(d.List))
	}
	if err := c.U16(&d.ActualTableSize); err != nil {
		return err
	}
	if !c.Building() {
		d.List = make([]ptp.AcceptableMaster, d.ActualTableSize)
	}
	for i := range d.List {
		if err := d.List[i].Wire(c); err != nil {
			return err
		}
	}
	return nil
}

// AcceptableMasterTableEnabled is the ACCEPTABLE_MASTER_TABLE_ENABLED
// payload. Flags bit 0 enables the table.
type AcceptableMasterTableEnabled struct {
	Flags uint8
}

// ID returns MID_ACCEPTABLE_MASTER_TABLE_ENABLED.
func (*AcceptableMasterTableEnabled) ID() ID { return MID_ACCEPTABLE_MASTER_TABLE_ENABLED }

func (d *AcceptableMasterTableEnabled) wire(c wire.Coder) error {
	if err := c.U8(&d.Flags); err != nil {
		return err
	}
	return procRes(c, 1)
}

// AcceptableMasterMaxTableSize is the ACCEPTABLE_MASTER_MAX_TABLE_SIZE payload.
type AcceptableMasterMaxTableSize struct {
	MaxTableSize uint16
}

// ID returns MID_ACCEPTABLE_MASTER_MAX_TABLE_SIZE.
func (*AcceptableMasterMaxTableSize) ID() ID { return MID_ACCEPTABLE_MASTER_MAX_TABLE_SIZE }

func (d *AcceptableMasterMaxTableSize) wire(c wire.Coder) error {
	return c.U16(&d.MaxTableSize)
}

// AlternateMaster is the ALTERNATE_MASTER payload. Flags bit 0 is
// transmit-alternate-multicast-sync.
type AlternateMaster struct {
	Flags                             uint8
	LogAlternateMulticastSyncInterval int8
	NumberOfAlternateMasters          uint8
}

// ID returns MID_ALTERNATE_MASTER.
func (*AlternateMaster) ID() ID { return MID_ALTERNATE_MASTER }

func (d *AlternateMaster) wire(c wire.Coder) error {
	if err := c.U8(&d.Flags); err != nil {
		return err
	}
	if err := c.I8(&d.LogAlternateMulticastSyncInterval); err != nil {
		return err
	}
	if err := c.U8(&d.NumberOfAlternateMasters); err != nil {
		return err
	}
	return procRes(c, 1)
}

// AlternateTimeOffsetEnable is the ALTERNATE_TIME_OFFSET_ENABLE payload.
// Flags bit 0 enables the alternate timescale of the key.
type AlternateTimeOffsetEnable struct {
	KeyField uint8
	Flags    uint8
}

// ID returns MID_ALTERNATE_TIME_OFFSET_ENABLE.
func (*AlternateTimeOffsetEnable) ID() ID { return MID_ALTERNATE_TIME_OFFSET_ENABLE }

func (d *AlternateTimeOffsetEnable) wire(c wire.Coder) error {
	if err := c.U8(&d.KeyField); err != nil {
		return err
	}
	return c.U8(&d.Flags)
}

// AlternateTimeOffsetName is the ALTERNATE_TIME_OFFSET_NAME payload.
type AlternateTimeOffsetName struct {
	KeyField    uint8
	DisplayName ptp.PTPText
}

// ID returns MID_ALTERNATE_TIME_OFFSET_NAME.
func (*AlternateTimeOffsetName) ID() ID { return MID_ALTERNATE_TIME_OFFSET_NAME }

func (d *AlternateTimeOffsetName) wire(c wire.Coder) error {
	if err := c.U8(&d.KeyField); err != nil {
		return err
	}
	return d.DisplayName.Wire(c)
}

// AlternateTimeOffsetMaxKey is the ALTERNATE_TIME_OFFSET_MAX_KEY payload.
type AlternateTimeOffsetMaxKey struct {
	MaxKey uint8
}

// ID returns MID_ALTERNATE_TIME_OFFSET_MAX_KEY.
func (*AlternateTimeOffsetMaxKey) ID() ID { return MID_ALTERNATE_TIME_OFFSET_MAX_KEY }

func (d *AlternateTimeOffsetMaxKey) wire(c wire.Coder) error {
	if err := c.U8(&d.MaxKey); err != nil {
		return err
	}
	return procRes(c, 1)
}

// AlternateTimeOffsetProperties is the ALTERNATE_TIME_OFFSET_PROPERTIES
// payload. TimeOfNextJump is a 48-bit seconds value.
type AlternateTimeOffsetProperties struct {
	KeyField       uint8
	CurrentOffset  int32
	JumpSeconds    int32
	TimeOfNextJump uint64
}

// ID returns MID_ALTERNATE_TIME_OFFSET_PROPERTIES.
func (*AlternateTimeOffsetProperties) ID() ID { return MID_ALTERNATE_TIME_OFFSET_PROPERTIES }

func (d *AlternateTimeOffsetProperties) wire(c wire.Coder) error {
	if err := c.U8(&d.KeyField); err != nil {
		return err
	}
	if err := c.I32(&d.CurrentOffset); err != nil {
		return err
	}
	if err := c.I32(&d.JumpSeconds); err != nil {
		return err
	}
	if err := c.U48(&d.TimeOfNextJump); err != nil {
		return err
	}
	return procRes(c, 1)
}

// TransparentClockDefaultDataSet is the TRANSPARENT_CLOCK_DEFAULT_DATA_SET payload.
type TransparentClockDefaultDataSet struct {
	ClockIdentity  ptp.ClockIdentity
	NumberPorts    uint16
	DelayMechanism uint8
	PrimaryDomain  uint8
}

// ID returns MID_TRANSPARENT_CLOCK_DEFAULT_DATA_SET.
func (*TransparentClockDefaultDataSet) ID() ID { return MID_TRANSPARENT_CLOCK_DEFAULT_DATA_SET }

func (d *TransparentClockDefaultDataSet) wire(c wire.Coder) error {
	if err := d.ClockIdentity.Wire(c); err != nil {
		return err
	}
	if err := c.U16(&d.NumberPorts); err != nil {
		return err
	}
	if err := c.U8(&d.DelayMechanism); err != nil {
		return err
	}
	return c.U8(&d.PrimaryDomain)
}

// TransparentClockPortDataSet is the TRANSPARENT_CLOCK_PORT_DATA_SET
// payload. Flags bit 0 is the faulty flag.
type TransparentClockPortDataSet struct {
	PortIdentity            ptp.PortIdentity
	Flags                   uint8
	LogMinPdelayReqInterval int8
	PeerMeanPathDelay       ptp.TimeInterval
}

// ID returns MID_TRANSPARENT_CLOCK_PORT_DATA_SET.
func (*TransparentClockPortDataSet) ID() ID { return MID_TRANSPARENT_CLOCK_PORT_DATA_SET }

func (d *TransparentClockPortDataSet) wire(c wire.Coder) error {
	if err := d.PortIdentity.Wire(c); err != nil {
		return err
	}
	if err := c.U8(&d.Flags); err != nil {
		return err
	}
	if err := c.I8(&d.LogMinPdelayReqInterval); err != nil {
		return err
	}
	return d.PeerMeanPathDelay.Wire(c)
}

// PrimaryDomain is the PRIMARY_DOMAIN payload.
type PrimaryDomain struct {
	PrimaryDomain uint8
}

// ID returns MID_PRIMARY_DOMAIN.
func (*PrimaryDomain) ID() ID { return MID_PRIMARY_DOMAIN }

func (d *PrimaryDomain) wire(c wire.Coder) error {
	if err := c.U8(&d.PrimaryDomain); err != nil {
		return err
	}
	return procRes(c, 1)
}

// DelayMechanism is the DELAY_MECHANISM payload.
type DelayMechanism struct {
	DelayMechanism uint8
}

// ID returns MID_DELAY_MECHANISM.
func (*DelayMechanism) ID() ID { return MID_DELAY_MECHANISM }

func (d *DelayMechanism) wire(c wire.Coder) error {
	if err := c.U8(&d.DelayMechanism); err != nil {
		return err
	}
	return procRes(c, 1)
}

// LogMinPdelayReqInterval is the LOG_MIN_PDELAY_REQ_INTERVAL payload.
type LogMinPdelayReqInterval struct {
	LogMinPdelayReqInterval int8
}

// ID returns MID_LOG_MIN_PDELAY_REQ_INTERVAL.
func (*LogMinPdelayReqInterval) ID() ID { return MID_LOG_MIN_PDELAY_REQ_INTERVAL }

func (d *LogMinPdelayReqInterval) wire(c wire.Coder) error {
	if err := c.I8(&d.LogMinPdelayReqInterval); err != nil {
		return err
	}
	return procRes(c, 1)
}
