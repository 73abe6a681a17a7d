/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

// Dispatcher routes a parsed management TLV to the handler registered for
// its id. Handlers are registered explicitly; an id without a handler
// falls through to NoTlvCallback. Handlers receive values borrowed from
// the Message, valid only for the duration of the call.
type Dispatcher struct {
	handlers map[ID]func(*Message, Data)

	// NoTlv is invoked when the parsed message carried no TLV value.
	NoTlv func(msg *Message)
	// NoTlvCallback is invoked for a TLV whose id has no handler.
	NoTlvCallback func(msg *Message, idName string)
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[ID]func(*Message, Data))}
}

// Handle registers a handler for the given id, replacing any previous one.
func (d *Dispatcher) Handle(id ID, fn func(msg *Message, tlv Data)) {
	d.handlers[id] = fn
}

// Dispatch routes the last parsed TLV of the message.
func (d *Dispatcher) Dispatch(msg *Message) {
	tlv := msg.Data()
	if tlv == nil {
		if d.NoTlv != nil {
			d.NoTlv(msg)
		}
		return
	}
	id := msg.TlvID()
	if fn, ok := d.handlers[id]; ok {
		fn(msg, tlv)
		return
	}
	if d.NoTlvCallback != nil {
		d.NoTlvCallback(msg, id.String())
	}
}

// Handle registers a typed handler, deriving the id from the payload type.
func Handle[T Data](d *Dispatcher, fn func(msg *Message, tlv T)) {
	var zero T
	d.Handle(zero.ID(), func(msg *Message, tlv Data) {
		fn(msg, tlv.(T))
	})
}

// Builder populates a typed TLV value through a registered callback and
// attaches it to its Message before a send. The Builder owns the value it
// allocates until the next BuildTLV call.
type Builder struct {
	msg      *Message
	build    map[ID]func(*Message, Data) bool
	lastData Data
}

// NewBuilder creates a Builder for the given Message.
func NewBuilder(msg *Message) *Builder {
	return &Builder{msg: msg, build: make(map[ID]func(*Message, Data) bool)}
}

// Register installs a build callback for the given id. The callback
// populates the freshly allocated payload and reports success.
func (b *Builder) Register(id ID, fn func(msg *Message, tlv Data) bool) {
	b.build[id] = fn
}

// Build registers a typed build callback, deriving the id from the
// payload type.
func Build[T Data](b *Builder, fn func(msg *Message, tlv T) bool) {
	var zero T
	b.Register(zero.ID(), func(msg *Message, tlv Data) bool {
		return fn(msg, tlv.(T))
	})
}

// BuildTLV sets the action for the id, allocating a payload value and
// running the registered build callback when one is required. It fails
// when the id needs a payload but no callback is registered or the
// callback reports failure.
func (b *Builder) BuildTLV(action Action, id ID) bool {
	if action == Get || IsEmpty(id) {
		return b.msg.SetAction(action, id)
	}
	if id < 0 || id >= lastMngID || mngTab[id].make == nil {
		return false
	}
	fn, ok := b.build[id]
	if !ok {
		return false
	}
	tlv := mngTab[id].make()
	if !fn(b.msg, tlv) {
		return false
	}
	b.lastData = tlv
	return b.msg.SetAction(action, id, tlv)
}
