/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package mgmt builds and parses PTP management messages: the TLV schema
// registry, the per-id field processors, the message frame engine, and the
// dispatcher that routes parsed TLVs to typed handlers.
package mgmt

// Action is the management action field of a message.
type Action uint8

// Management actions.
const (
	Get Action = iota
	Set
	Response
	Command
	Acknowledge
)

func (a Action) String() string {
	switch a {
	case Get:
		return "GET"
	case Set:
		return "SET"
	case Response:
		return "RESPONSE"
	case Command:
		return "COMMAND"
	case Acknowledge:
		return "ACKNOWLEDGE"
	}
	return "unknown"
}

// TLV types carried by management messages.
const (
	tlvManagement            uint16 = 0x0001
	tlvManagementErrorStatus uint16 = 0x0002
)

// ID selects one management TLV schema. The value is a dense index into
// the registry, not the 16-bit wire value.
type ID int

// Management ids.
const (
	MID_NULL_PTP_MANAGEMENT ID = iota
	MID_CLOCK_DESCRIPTION
	MID_USER_DESCRIPTION
	MID_SAVE_IN_NON_VOLATILE_STORAGE
	MID_RESET_NON_VOLATILE_STORAGE
	MID_INITIALIZE
	MID_FAULT_LOG
	MID_FAULT_LOG_RESET
	MID_DEFAULT_DATA_SET
	MID_CURRENT_DATA_SET
	MID_PARENT_DATA_SET
	MID_TIME_PROPERTIES_DATA_SET
	MID_PORT_DATA_SET
	MID_PRIORITY1
	MID_PRIORITY2
	MID_DOMAIN
	MID_SLAVE_ONLY
	MID_LOG_ANNOUNCE_INTERVAL
	MID_ANNOUNCE_RECEIPT_TIMEOUT
	MID_LOG_SYNC_INTERVAL
	MID_VERSION_NUMBER
	MID_ENABLE_PORT
	MID_DISABLE_PORT
	MID_TIME
	MID_CLOCK_ACCURACY
	MID_UTC_PROPERTIES
	MID_TRACEABILITY_PROPERTIES
	MID_TIMESCALE_PROPERTIES
	MID_UNICAST_NEGOTIATION_ENABLE
	MID_PATH_TRACE_LIST
	MID_PATH_TRACE_ENABLE
	MID_GRANDMASTER_CLUSTER_TABLE
	MID_UNICAST_MASTER_TABLE
	MID_UNICAST_MASTER_MAX_TABLE_SIZE
	MID_ACCEPTABLE_MASTER_TABLE
	MID_ACCEPTABLE_MASTER_TABLE_ENABLED
	MID_ACCEPTABLE_MASTER_MAX_TABLE_SIZE
	MID_ALTERNATE_MASTER
	MID_ALTERNATE_TIME_OFFSET_ENABLE
	MID_ALTERNATE_TIME_OFFSET_NAME
	MID_ALTERNATE_TIME_OFFSET_MAX_KEY
	MID_ALTERNATE_TIME_OFFSET_PROPERTIES
	MID_TRANSPARENT_CLOCK_DEFAULT_DATA_SET
	MID_TRANSPARENT_CLOCK_PORT_DATA_SET
	MID_PRIMARY_DOMAIN
	MID_DELAY_MECHANISM
	MID_LOG_MIN_PDELAY_REQ_INTERVAL
	// linuxptp implementation-specific ids
	MID_TIME_STATUS_NP
	MID_GRANDMASTER_SETTINGS_NP
	MID_PORT_DATA_SET_NP
	MID_SUBSCRIBE_EVENTS_NP
	MID_PORT_PROPERTIES_NP
	MID_PORT_STATS_NP
	MID_SYNCHRONIZATION_UNCERTAIN_NP

	lastMngID
)

func (id ID) String() string {
	if id >= 0 && id < lastMngID {
		return mngTab[id].name
	}
	return "unknown"
}

// Scope of a management TLV: the whole clock or a single port.
type scope uint8

const (
	scopeClock scope = iota
	scopePort
)

// Allowed-action bits of a registry row.
const (
	useGet uint8 = 1 << iota
	useSet
	useCommand
)

// Registry size markers.
const (
	sizeUnsupported = -1 // recognized id without a decoder
	sizeComputed    = -2 // size is a function of the current value
)

type mngInfo struct {
	name     string
	wire     uint16
	scope    scope
	allowed  uint8
	size     int
	linuxptp bool
	make     func() Data // nil for ids with an empty payload
}

// mngTab is the management TLV schema registry, one row per id, immutable
// after program start.
var mngTab = [lastMngID]mngInfo{
	MID_NULL_PTP_MANAGEMENT:                {name: "NULL_PTP_MANAGEMENT", wire: 0x0000, scope: scopeClock, allowed: useGet | useSet | useCommand, size: 0},
	MID_CLOCK_DESCRIPTION:                  {name: "CLOCK_DESCRIPTION", wire: 0x0001, scope: scopePort, allowed: useGet, size: sizeComputed, make: func() Data { return new(ClockDescription) }},
	MID_USER_DESCRIPTION:                   {name: "USER_DESCRIPTION", wire: 0x0002, scope: scopeClock, allowed: useGet | useSet, size: sizeComputed, make: func() Data { return new(UserDescription) }},
	MID_SAVE_IN_NON_VOLATILE_STORAGE:       {name: "SAVE_IN_NON_VOLATILE_STORAGE", wire: 0x0003, scope: scopeClock, allowed: useCommand, size: 0},
	MID_RESET_NON_VOLATILE_STORAGE:         {name: "RESET_NON_VOLATILE_STORAGE", wire: 0x0004, scope: scopeClock, allowed: useCommand, size: 0},
	MID_INITIALIZE:                         {name: "INITIALIZE", wire: 0x0005, scope: scopeClock, allowed: useCommand, size: 2, make: func() Data { return new(Initialize) }},
	MID_FAULT_LOG:                          {name: "FAULT_LOG", wire: 0x0006, scope: scopeClock, allowed: useGet, size: sizeComputed, make: func() Data { return new(FaultLog) }},
	MID_FAULT_LOG_RESET:                    {name: "FAULT_LOG_RESET", wire: 0x0007, scope: scopeClock, allowed: useCommand, size: 0},
	MID_DEFAULT_DATA_SET:                   {name: "DEFAULT_DATA_SET", wire: 0x2000, scope: scopeClock, allowed: useGet, size: 20, make: func() Data { return new(DefaultDataSet) }},
	MID_CURRENT_DATA_SET:                   {name: "CURRENT_DATA_SET", wire: 0x2001, scope: scopeClock, allowed: useGet, size: 18, make: func() Data { return new(CurrentDataSet) }},
	MID_PARENT_DATA_SET:                    {name: "PARENT_DATA_SET", wire: 0x2002, scope: scopeClock, allowed: useGet, size: 32, make: func() Data { return new(ParentDataSet) }},
	MID_TIME_PROPERTIES_DATA_SET:           {name: "TIME_PROPERTIES_DATA_SET", wire: 0x2003, scope: scopeClock, allowed: useGet, size: 4, make: func() Data { return new(TimePropertiesDataSet) }},
	MID_PORT_DATA_SET:                      {name: "PORT_DATA_SET", wire: 0x2004, scope: scopePort, allowed: useGet, size: 26, make: func() Data { return new(PortDataSet) }},
	MID_PRIORITY1:                          {name: "PRIORITY1", wire: 0x2005, scope: scopeClock, allowed: useGet | useSet, size: 2, make: func() Data { return new(Priority1) }},
	MID_PRIORITY2:                          {name: "PRIORITY2", wire: 0x2006, scope: scopeClock, allowed: useGet | useSet, size: 2, make: func() Data { return new(Priority2) }},
	MID_DOMAIN:                             {name: "DOMAIN", wire: 0x2007, scope: scopeClock, allowed: useGet | useSet, size: 2, make: func() Data { return new(Domain) }},
	MID_SLAVE_ONLY:                         {name: "SLAVE_ONLY", wire: 0x2008, scope: scopeClock, allowed: useGet | useSet, size: 2, make: func() Data { return new(SlaveOnly) }},
	MID_LOG_ANNOUNCE_INTERVAL:              {name: "LOG_ANNOUNCE_INTERVAL", wire: 0x2009, scope: scopePort, allowed: useGet | useSet, size: 2, make: func() Data { return new(LogAnnounceInterval) }},
	MID_ANNOUNCE_RECEIPT_TIMEOUT:           {name: "ANNOUNCE_RECEIPT_TIMEOUT", wire: 0x200A, scope: scopePort, allowed: useGet | useSet, size: 2, make: func() Data { return new(AnnounceReceiptTimeout) }},
	MID_LOG_SYNC_INTERVAL:                  {name: "LOG_SYNC_INTERVAL", wire: 0x200B, scope: scopePort, allowed: useGet | useSet, size: 2, make: func() Data { return new(LogSyncInterval) }},
	MID_VERSION_NUMBER:                     {name: "VERSION_NUMBER", wire: 0x200C, scope: scopePort, allowed: useGet | useSet, size: 2, make: func() Data { return new(VersionNumber) }},
	MID_ENABLE_PORT:                        {name: "ENABLE_PORT", wire: 0x200D, scope: scopePort, allowed: useCommand, size: 0},
	MID_DISABLE_PORT:                       {name: "DISABLE_PORT", wire: 0x200E, scope: scopePort, allowed: useCommand, size: 0},
	MID_TIME:                               {name: "TIME", wire: 0x200F, scope: scopeClock, allowed: useGet | useSet, size: 10, make: func() Data { return new(Time) }},
	MID_CLOCK_ACCURACY:                     {name: "CLOCK_ACCURACY", wire: 0x2010, scope: scopeClock, allowed: useGet | useSet, size: 2, make: func() Data { return new(ClockAccuracy) }},
	MID_UTC_PROPERTIES:                     {name: "UTC_PROPERTIES", wire: 0x2011, scope: scopeClock, allowed: useGet | useSet, size: 4, make: func() Data { return new(UTCProperties) }},
	MID_TRACEABILITY_PROPERTIES:            {name: "TRACEABILITY_PROPERTIES", wire: 0x2012, scope: scopeClock, allowed: useGet | useSet, size: 2, make: func() Data { return new(TraceabilityProperties) }},
	MID_TIMESCALE_PROPERTIES:               {name: "TIMESCALE_PROPERTIES", wire: 0x2013, scope: scopeClock, allowed: useGet | useSet, size: 2, make: func() Data { return new(TimescaleProperties) }},
	MID_UNICAST_NEGOTIATION_ENABLE:         {name: "UNICAST_NEGOTIATION_ENABLE", wire: 0x2014, scope: scopePort, allowed: useGet | useSet, size: 2, make: func() Data { return new(UnicastNegotiationEnable) }},
	MID_PATH_TRACE_LIST:                    {name: "PATH_TRACE_LIST", wire: 0x2015, scope: scopeClock, allowed: useGet, size: sizeComputed, make: func() Data { return new(PathTraceList) }},
	MID_PATH_TRACE_ENABLE:                  {name: "PATH_TRACE_ENABLE", wire: 0x2016, scope: scopeClock, allowed: useGet | useSet, size: 2, make: func() Data { return new(PathTraceEnable) }},
	MID_GRANDMASTER_CLUSTER_TABLE:          {name: "GRANDMASTER_CLUSTER_TABLE", wire: 0x2017, scope: scopeClock, allowed: useGet | useSet, size: sizeComputed, make: func() Data { return new(GrandmasterClusterTable) }},
	MID_UNICAST_MASTER_TABLE:               {name: "UNICAST_MASTER_TABLE", wire: 0x2018, scope: scopePort, allowed: useGet | useSet, size: sizeComputed, make: func() Data { return new(UnicastMasterTable) }},
	MID_UNICAST_MASTER_MAX_TABLE_SIZE:      {name: "UNICAST_MASTER_MAX_TABLE_SIZE", wire: 0x2019, scope: scopePort, allowed: useGet, size: 2, make: func() Data { return new(UnicastMasterMaxTableSize) }},
	MID_ACCEPTABLE_MASTER_TABLE:            {name: "ACCEPTABLE_MASTER_TABLE", wire: 0x201A, scope: scopeClock, allowed: useGet | useSet, size: sizeComputed, make: func() Data { return new(AcceptableMasterTable) }},
	MID_ACCEPTABLE_MASTER_TABLE_ENABLED:    {name: "ACCEPTABLE_MASTER_TABLE_ENABLED", wire: 0x201B, scope: scopePort, allowed: useGet | useSet, size: 2, make: func() Data { return new(AcceptableMasterTableEnabled) }},
	MID_ACCEPTABLE_MASTER_MAX_TABLE_SIZE:   {name: "ACCEPTABLE_MASTER_MAX_TABLE_SIZE", wire: 0x201C, scope: scopeClock, allowed: useGet, size: 2, make: func() Data { return new(AcceptableMasterMaxTableSize) }},
	MID_ALTERNATE_MASTER:                   {name: "ALTERNATE_MASTER", wire: 0x201D, scope: scopePort, allowed: useGet | useSet, size: 4, make: func() Data { return new(AlternateMaster) }},
	MID_ALTERNATE_TIME_OFFSET_ENABLE:       {name: "ALTERNATE_TIME_OFFSET_ENABLE", wire: 0x201E, scope: scopeClock, allowed: useGet | useSet, size: 2, make: func() Data { return new(AlternateTimeOffsetEnable) }},
	MID_ALTERNATE_TIME_OFFSET_NAME:         {name: "ALTERNATE_TIME_OFFSET_NAME", wire: 0x201F, scope: scopeClock, allowed: useGet | useSet, size: sizeComputed, make: func() Data { return new(AlternateTimeOffsetName) }},
	MID_ALTERNATE_TIME_OFFSET_MAX_KEY:      {name: "ALTERNATE_TIME_OFFSET_MAX_KEY", wire: 0x2020, scope: scopeClock, allowed: useGet, size: 2, make: func() Data { return new(AlternateTimeOffsetMaxKey) }},
	MID_ALTERNATE_TIME_OFFSET_PROPERTIES:   {name: "ALTERNATE_TIME_OFFSET_PROPERTIES", wire: 0x2021, scope: scopeClock, allowed: useGet | useSet, size: 16, make: func() Data { return new(AlternateTimeOffsetProperties) }},
	MID_TRANSPARENT_CLOCK_DEFAULT_DATA_SET: {name: "TRANSPARENT_CLOCK_DEFAULT_DATA_SET", wire: 0x4000, scope: scopeClock, allowed: useGet, size: 12, make: func() Data { return new(TransparentClockDefaultDataSet) }},
	MID_TRANSPARENT_CLOCK_PORT_DATA_SET:    {name: "TRANSPARENT_CLOCK_PORT_DATA_SET", wire: 0x4001, scope: scopePort, allowed: useGet, size: 20, make: func() Data { return new(TransparentClockPortDataSet) }},
	MID_PRIMARY_DOMAIN:                     {name: "PRIMARY_DOMAIN", wire: 0x4002, scope: scopeClock, allowed: useGet | useSet, size: 2, make: func() Data { return new(PrimaryDomain) }},
	MID_DELAY_MECHANISM:                    {name: "DELAY_MECHANISM", wire: 0x6000, scope: scopePort, allowed: useGet | useSet, size: 2, make: func() Data { return new(DelayMechanism) }},
	MID_LOG_MIN_PDELAY_REQ_INTERVAL:        {name: "LOG_MIN_PDELAY_REQ_INTERVAL", wire: 0x6001, scope: scopePort, allowed: useGet | useSet, size: 2, make: func() Data { return new(LogMinPdelayReqInterval) }},

	MID_TIME_STATUS_NP:             {name: "TIME_STATUS_NP", wire: 0xC000, scope: scopeClock, allowed: useGet, size: 50, linuxptp: true, make: func() Data { return new(TimeStatusNP) }},
	MID_GRANDMASTER_SETTINGS_NP:    {name: "GRANDMASTER_SETTINGS_NP", wire: 0xC001, scope: scopeClock, allowed: useGet | useSet, size: 8, linuxptp: true, make: func() Data { return new(GrandmasterSettingsNP) }},
	MID_PORT_DATA_SET_NP:           {name: "PORT_DATA_SET_NP", wire: 0xC002, scope: scopePort, allowed: useGet | useSet, size: 8, linuxptp: true, make: func() Data { return new(PortDataSetNP) }},
	MID_SUBSCRIBE_EVENTS_NP:        {name: "SUBSCRIBE_EVENTS_NP", wire: 0xC003, scope: scopeClock, allowed: useGet | useSet, size: 66, linuxptp: true, make: func() Data { return new(SubscribeEventsNP) }},
	MID_PORT_PROPERTIES_NP:         {name: "PORT_PROPERTIES_NP", wire: 0xC004, scope: scopePort, allowed: useGet, size: sizeComputed, linuxptp: true, make: func() Data { return new(PortPropertiesNP) }},
	MID_PORT_STATS_NP:              {name: "PORT_STATS_NP", wire: 0xC005, scope: scopePort, allowed: useGet, size: 266, linuxptp: true, make: func() Data { return new(PortStatsNP) }},
	MID_SYNCHRONIZATION_UNCERTAIN_NP: {name: "SYNCHRONIZATION_UNCERTAIN_NP", wire: 0xC006, scope: scopeClock, allowed: useGet | useSet, size: 2, linuxptp: true, make: func() Data { return new(SynchronizationUncertainNP) }},
}

// wireToID maps 16-bit wire values back to registry indexes.
var wireToID = func() map[uint16]ID {
	m := make(map[uint16]ID, lastMngID)
	for id := ID(0); id < lastMngID; id++ {
		m[mngTab[id].wire] = id
	}
	return m
}()

// WireValue returns the 16-bit value of the id on the wire.
func (id ID) WireValue() uint16 {
	return mngTab[id].wire
}

// findID resolves a wire value to a registry id.
func findID(wireValue uint16) (ID, bool) {
	id, ok := wireToID[wireValue]
	return id, ok
}

// IDByName resolves a canonical management id name, e.g. "PRIORITY1".
func IDByName(name string) (ID, bool) {
	for id := ID(0); id < lastMngID; id++ {
		if mngTab[id].name == name {
			return id, true
		}
	}
	return 0, false
}

// allowedAction reports whether the action is legal for the id.
// Response and Acknowledge are accepted iff the id permits the mirrored
// request action: GET or SET for Response, COMMAND for Acknowledge.
func allowedAction(id ID, action Action) bool {
	if id < 0 || id >= lastMngID {
		return false
	}
	allowed := mngTab[id].allowed
	switch action {
	case Get:
		return allowed&useGet != 0
	case Set:
		return allowed&useSet != 0
	case Command:
		return allowed&useCommand != 0
	case Response:
		return allowed&(useGet|useSet) != 0
	case Acknowledge:
		return allowed&useCommand != 0
	}
	return false
}

// IsEmpty reports whether the id carries no payload on request.
func IsEmpty(id ID) bool {
	return id >= 0 && id < lastMngID && mngTab[id].size == 0
}
