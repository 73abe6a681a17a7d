/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"github.com/openptp/ptpmgmt/core"
	"github.com/openptp/ptpmgmt/ptp"
	"github.com/openptp/ptpmgmt/ptp/wire"
)

// PTP header constants for management messages.
const (
	msgTypeManagement  = 0x0D
	versionPTP         = 2
	controlManagement  = 0x04
	logMessageInterval = 0x7F
	flagUnicast        = 1 << 2 // flagField[0]

	headerLen = 34
	mngHdrLen = 14
	tlvHdrLen = 6
	minMsgLen = headerLen + mngHdrLen + tlvHdrLen
)

// MsgParams are the runtime parameters of a Message. DomainNumber and
// BoundaryHops are carried as int so UpdateParams can reject values that
// do not fit their one-octet wire fields.
type MsgParams struct {
	TransportSpecific uint8
	DomainNumber      int
	BoundaryHops      int
	IsUnicast         bool
	UseLinuxPTPTlvs   bool
	Target            ptp.PortIdentity
	SelfID            ptp.PortIdentity
}

// DefaultMsgParams returns the parameters used by a fresh Message: one
// boundary hop, unicast, targeting all ports, vendor TLVs disabled.
func DefaultMsgParams() MsgParams {
	return MsgParams{
		BoundaryHops: 1,
		IsUnicast:    true,
		Target:       ptp.AllPortsIdentity(),
	}
}

// Message builds and parses PTP management messages. A Message owns its
// send buffer and the last decoded TLV value; both are overwritten by the
// next Build or Parse call. A Message is not safe for concurrent use.
type Message struct {
	prms MsgParams

	// Send state
	action   Action
	tlvID    ID
	dataSend Data
	sendBuf  []byte
	msgLen   int

	// Parse state
	sequence   uint16
	peer       ptp.PortIdentity
	isUnicast  bool
	dataGet    Data
	errID      ErrorID
	errDisplay ptp.PTPText
	lastErr    error
}

// NewMessage creates a Message with default parameters.
func NewMessage() *Message {
	return NewMessageParams(DefaultMsgParams())
}

// NewMessageParams creates a Message with the given parameters.
func NewMessageParams(prms MsgParams) *Message {
	m := &Message{}
	m.UpdateParams(prms)
	return m
}

// Params returns the current parameters.
func (m *Message) Params() MsgParams {
	return m.prms
}

// UpdateParams replaces the runtime parameters. It fails when
// DomainNumber or BoundaryHops do not fit one octet.
func (m *Message) UpdateParams(prms MsgParams) bool {
	if prms.DomainNumber < 0 || prms.DomainNumber > 0xFF ||
		prms.BoundaryHops < 0 || prms.BoundaryHops > 0xFF {
		return false
	}
	m.prms = prms
	return true
}

// UseConfig pulls transportSpecific, domainNumber and boundaryHops for the given port
// section from the loaded configuration, falling back to the global
// section. It fails when no configuration is loaded or a value does not
// fit its field.
func (m *Message) UseConfig(section string) bool {
	if !core.HasConfig() {
		return false
	}
	prms := m.prms
	ts := core.GetSectionIntDefault(section, "transportSpecific", int(prms.TransportSpecific))
	if ts < 0 || ts > 0x0F {
		return false
	}
	prms.TransportSpecific = uint8(ts)
	prms.DomainNumber = core.GetSectionIntDefault(section, "domainNumber", prms.DomainNumber)
	prms.BoundaryHops = core.GetSectionIntDefault(section, "boundaryHops", prms.BoundaryHops)
	return m.UpdateParams(prms)
}

// SetAllPorts targets the message at every port of every clock.
func (m *Message) SetAllPorts() {
	m.prms.Target = ptp.AllPortsIdentity()
}

// IsAllPorts reports whether the message targets all ports.
func (m *Message) IsAllPorts() bool {
	return m.prms.Target.IsAllPorts()
}

// SetAction selects the action and management id for the next Build. A
// typed payload value must be supplied for SET and COMMAND of ids with a
// payload; it is ignored for GET and empty ids. SetAction fails, leaving
// the Message unchanged, when the action is not allowed for the id, when
// the id is gated off, or when the payload is missing or of the wrong id.
func (m *Message) SetAction(action Action, id ID, data ...Data) bool {
	if id < 0 || id >= lastMngID {
		return false
	}
	if mngTab[id].linuxptp && !m.prms.UseLinuxPTPTlvs {
		return false
	}
	if mngTab[id].size == sizeUnsupported {
		return false
	}
	if !allowedAction(id, action) {
		return false
	}
	if action == Get || IsEmpty(id) {
		m.action, m.tlvID, m.dataSend = action, id, nil
		return true
	}
	if len(data) == 0 || data[0] == nil || data[0].ID() != id {
		return false
	}
	m.action, m.tlvID, m.dataSend = action, id, data[0]
	return true
}

// Action returns the action selected for the next Build.
func (m *Message) Action() Action {
	return m.action
}

// TlvID returns the management id of the message: the id selected with
// SetAction, or the id of the last parsed TLV.
func (m *Message) TlvID() ID {
	return m.tlvID
}

// Build frames the selected action and TLV into the Message's own send
// buffer, which remains valid until the next Build.
func (m *Message) Build(sequence uint16) ([]byte, error) {
	w := wire.NewWriter()
	err := m.buildInto(w, sequence)
	m.lastErr = err
	if err != nil {
		return nil, err
	}
	m.sendBuf = w.Wire()
	m.msgLen = len(m.sendBuf)
	return m.sendBuf, nil
}

// BuildTo frames the message into the caller's buffer, failing with
// ErrTooSmall when it does not fit. It returns the encoded length.
func (m *Message) BuildTo(buf []byte, sequence uint16) (int, error) {
	w := wire.NewWriterCap(len(buf))
	err := m.buildInto(w, sequence)
	m.lastErr = err
	if err != nil {
		return 0, err
	}
	m.msgLen = copy(buf, w.Wire())
	return m.msgLen, nil
}

// MsgLen returns the length of the last built message.
func (m *Message) MsgLen() int {
	return m.msgLen
}

// SendBuf returns the buffer of the last Build. The Message owns it.
func (m *Message) SendBuf() []byte {
	return m.sendBuf
}

// PlannedLen returns the encoded length the next Build will produce, or
// -1 when the attached payload cannot be encoded.
func (m *Message) PlannedLen() int {
	size := minMsgLen
	if m.action != Get && m.dataSend != nil {
		w := wire.NewWriter()
		if err := m.dataSend.wire(w); err != nil {
			return -1
		}
		n := w.Pos()
		if n%2 != 0 {
			n++
		}
		size += n
	}
	return size
}

func (m *Message) buildInto(w *wire.Writer, sequence uint16) error {
	b := uint8(m.prms.TransportSpecific<<4 | msgTypeManagement)
	if err := w.U8(&b); err != nil {
		return tlvErr(err)
	}
	b = versionPTP
	if err := w.U8(&b); err != nil {
		return tlvErr(err)
	}
	var lenField uint16 // back-filled
	if err := w.U16(&lenField); err != nil {
		return tlvErr(err)
	}
	b = uint8(m.prms.DomainNumber)
	if err := w.U8(&b); err != nil {
		return tlvErr(err)
	}
	if err := procRes(w, 1); err != nil {
		return tlvErr(err)
	}
	var flags [2]uint8
	if m.prms.IsUnicast {
		flags[0] |= flagUnicast
	}
	if err := w.Bytes(flags[:]); err != nil {
		return tlvErr(err)
	}
	// correctionField and the following reserved field are zero
	if err := procRes(w, 8); err != nil {
		return tlvErr(err)
	}
	if err := procRes(w, 4); err != nil {
		return tlvErr(err)
	}
	self := m.prms.SelfID
	if err := self.Wire(w); err != nil {
		return tlvErr(err)
	}
	if err := w.U16(&sequence); err != nil {
		return tlvErr(err)
	}
	b = controlManagement
	if err := w.U8(&b); err != nil {
		return tlvErr(err)
	}
	b = logMessageInterval
	if err := w.U8(&b); err != nil {
		return tlvErr(err)
	}

	target := m.prms.Target
	if err := target.Wire(w); err != nil {
		return tlvErr(err)
	}
	hops := uint8(m.prms.BoundaryHops)
	if err := w.U8(&hops); err != nil {
		return tlvErr(err)
	}
	if err := w.U8(&hops); err != nil {
		return tlvErr(err)
	}
	b = uint8(m.action) & 0x0F
	if err := w.U8(&b); err != nil {
		return tlvErr(err)
	}
	if err := procRes(w, 1); err != nil {
		return tlvErr(err)
	}

	tlvType := tlvManagement
	if err := w.U16(&tlvType); err != nil {
		return tlvErr(err)
	}
	lenOff := w.Pos()
	if err := w.U16(&lenField); err != nil {
		return tlvErr(err)
	}
	wireID := mngTab[m.tlvID].wire
	if err := w.U16(&wireID); err != nil {
		return tlvErr(err)
	}
	if m.action != Get && m.dataSend != nil {
		if err := m.dataSend.wire(w); err != nil {
			return tlvErr(err)
		}
	}
	tlvLen := w.Pos() - lenOff - 2
	if tlvLen%2 != 0 {
		if err := procRes(w, 1); err != nil {
			return tlvErr(err)
		}
		tlvLen++
	}
	w.PutU16At(lenOff, uint16(tlvLen))
	w.PutU16At(2, uint16(w.Pos()))
	return nil
}

// Parse consumes a fully framed management message. On success the
// decoded TLV value is owned by the Message until the next Parse. On
// failure the Message holds no decoded value and retains the diagnostic.
func (m *Message) Parse(buf []byte) error {
	m.dataGet = nil
	m.errID = 0
	m.errDisplay = ""
	err := m.parse(buf)
	m.lastErr = err
	return err
}

func (m *Message) parse(buf []byte) error {
	r := wire.NewReader(buf)
	var b uint8
	if err := r.U8(&b); err != nil {
		return tlvErr(err)
	}
	if b&0x0F != msgTypeManagement {
		return ErrHeader
	}
	if err := r.U8(&b); err != nil {
		return tlvErr(err)
	}
	if b&0x0F != versionPTP {
		return ErrHeader
	}
	var msgLen uint16
	if err := r.U16(&msgLen); err != nil {
		return tlvErr(err)
	}
	if int(msgLen) > len(buf) {
		// The datagram was truncated below its own declared length.
		return ErrTooSmall
	}
	if int(msgLen) != len(buf) {
		return ErrHeader
	}
	// domainNumber and the reserved octet are not validated
	if err := r.Skip(2); err != nil {
		return tlvErr(err)
	}
	var flags [2]uint8
	if err := r.Bytes(flags[:]); err != nil {
		return tlvErr(err)
	}
	m.isUnicast = flags[0]&flagUnicast != 0
	// correctionField and the following reserved field
	if err := r.Skip(12); err != nil {
		return tlvErr(err)
	}
	if err := m.peer.Wire(r); err != nil {
		return tlvErr(err)
	}
	if err := r.U16(&m.sequence); err != nil {
		return tlvErr(err)
	}
	if err := r.U8(&b); err != nil {
		return tlvErr(err)
	}
	if b != controlManagement {
		return ErrHeader
	}
	if err := r.Skip(1); err != nil { // logMessageInterval
		return tlvErr(err)
	}

	// Management header: target and hops are not validated on receive.
	if err := r.Skip(12); err != nil {
		return tlvErr(err)
	}
	if err := r.U8(&b); err != nil {
		return tlvErr(err)
	}
	action := Action(b & 0x0F) // upper reserved nibble is ignored
	if err := r.Skip(1); err != nil {
		return tlvErr(err)
	}

	var tlvType, tlvLen uint16
	if err := r.U16(&tlvType); err != nil {
		return tlvErr(err)
	}
	if tlvType != tlvManagement && tlvType != tlvManagementErrorStatus {
		return ErrInvalidTLV
	}
	if err := r.U16(&tlvLen); err != nil {
		return tlvErr(err)
	}
	if tlvLen%2 != 0 {
		return ErrSize
	}
	if int(tlvLen) > r.Remaining() {
		return ErrTooSmall
	}
	body := buf[r.Pos() : r.Pos()+int(tlvLen)]

	if tlvType == tlvManagementErrorStatus {
		return m.parseErrStatus(body)
	}
	if action > Acknowledge {
		return ErrAction
	}
	if action != Response && action != Acknowledge {
		// Requests from a peer are not parsed; this side sends them.
		return ErrAction
	}

	br := wire.NewReader(body)
	var wireID uint16
	if err := br.U16(&wireID); err != nil {
		return tlvErr(err)
	}
	id, ok := findID(wireID)
	if !ok {
		return ErrInvalidID
	}
	info := &mngTab[id]
	if info.linuxptp && !m.prms.UseLinuxPTPTlvs {
		return ErrInvalidID
	}
	if info.size == sizeUnsupported {
		return ErrUnsupport
	}
	if !allowedAction(id, action) {
		return ErrInvalidID
	}
	m.tlvID = id

	dataLen := int(tlvLen) - 2
	if info.size >= 0 && dataLen != info.size {
		return ErrSizeMiss
	}
	if info.make == nil || dataLen == 0 {
		return nil
	}
	data := info.make()
	if data == nil {
		return ErrMem
	}
	pr := wire.NewReader(body[2 : 2+dataLen])
	if err := data.wire(pr); err != nil {
		return tlvErr(err)
	}
	m.dataGet = data
	return nil
}

func (m *Message) parseErrStatus(body []byte) error {
	br := wire.NewReader(body)
	var errID, wireID uint16
	if err := br.U16(&errID); err != nil {
		return tlvErr(err)
	}
	if err := br.U16(&wireID); err != nil {
		return tlvErr(err)
	}
	if id, ok := findID(wireID); ok {
		m.tlvID = id
	}
	if err := br.Skip(4); err != nil {
		return tlvErr(err)
	}
	m.errID = ErrorID(errID)
	if br.Remaining() > 0 {
		if err := m.errDisplay.Wire(br); err != nil {
			return tlvErr(err)
		}
	}
	return ErrMsg
}

// Sequence returns the sequence id of the last parsed message.
func (m *Message) Sequence() uint16 {
	return m.sequence
}

// Peer returns the source port identity of the last parsed message.
func (m *Message) Peer() ptp.PortIdentity {
	return m.peer
}

// IsUnicast reports whether the last parsed message had the unicast flag.
func (m *Message) IsUnicast() bool {
	return m.isUnicast
}

// Data returns the decoded TLV value of the last Parse, or nil. The
// Message owns it; it is invalidated by the next Parse.
func (m *Message) Data() Data {
	return m.dataGet
}

// ErrID returns the managementErrorId of the last parsed
// MANAGEMENT_ERROR_STATUS TLV.
func (m *Message) ErrID() ErrorID {
	return m.errID
}

// ErrDisplay returns the display text of the last parsed
// MANAGEMENT_ERROR_STATUS TLV.
func (m *Message) ErrDisplay() string {
	return string(m.errDisplay)
}

// LastErr returns the diagnostic of the most recent Build or Parse.
func (m *Message) LastErr() error {
	return m.lastErr
}
