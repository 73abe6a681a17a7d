/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt_test

import (
	"testing"

	"github.com/openptp/ptpmgmt/ptp/mgmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchTypedHandler(t *testing.T) {
	m := newMsg(t)
	buf := buildResponse(t, m, mgmt.MID_PRIORITY1, &mgmt.Priority1{Priority1: 0x42}, 1)
	rcv := newMsg(t)
	require.NoError(t, rcv.Parse(buf))

	d := mgmt.NewDispatcher()
	var got uint8
	mgmt.Handle(d, func(msg *mgmt.Message, tlv *mgmt.Priority1) {
		assert.Same(t, rcv, msg)
		got = tlv.Priority1
	})
	d.Dispatch(rcv)
	assert.Equal(t, uint8(0x42), got)
}

func TestDispatchUnhandledID(t *testing.T) {
	m := newMsg(t)
	buf := buildResponse(t, m, mgmt.MID_PRIORITY2, &mgmt.Priority2{Priority2: 1}, 1)
	rcv := newMsg(t)
	require.NoError(t, rcv.Parse(buf))

	d := mgmt.NewDispatcher()
	mgmt.Handle(d, func(*mgmt.Message, *mgmt.Priority1) {
		t.Fatal("handler for another id must not run")
	})
	var fellThrough string
	d.NoTlvCallback = func(_ *mgmt.Message, idName string) {
		fellThrough = idName
	}
	d.Dispatch(rcv)
	assert.Equal(t, "PRIORITY2", fellThrough)
}

func TestDispatchNoTlv(t *testing.T) {
	m := newMsg(t)
	require.True(t, m.SetAction(mgmt.Acknowledge, mgmt.MID_ENABLE_PORT))
	buf, err := m.Build(1)
	require.NoError(t, err)
	rcv := newMsg(t)
	require.NoError(t, rcv.Parse(buf))
	require.Nil(t, rcv.Data())

	d := mgmt.NewDispatcher()
	called := false
	d.NoTlv = func(*mgmt.Message) { called = true }
	d.NoTlvCallback = func(*mgmt.Message, string) {
		t.Fatal("NoTlvCallback must not run without a TLV")
	}
	d.Dispatch(rcv)
	assert.True(t, called)
}

func TestBuilderPopulatesTLV(t *testing.T) {
	m := newMsg(t)
	b := mgmt.NewBuilder(m)
	mgmt.Build(b, func(_ *mgmt.Message, tlv *mgmt.Priority1) bool {
		tlv.Priority1 = 200
		return true
	})
	require.True(t, b.BuildTLV(mgmt.Set, mgmt.MID_PRIORITY1))
	buf, err := m.Build(3)
	require.NoError(t, err)

	// Parse accepts replies only, so the built SET is checked on the wire:
	// the action nibble, then priority1 as the first dataField octet.
	assert.Equal(t, uint8(mgmt.Set), buf[46]&0x0F)
	assert.Equal(t, uint8(200), buf[54])
}

func TestBuilderGetNeedsNoCallback(t *testing.T) {
	m := newMsg(t)
	b := mgmt.NewBuilder(m)
	assert.True(t, b.BuildTLV(mgmt.Get, mgmt.MID_PRIORITY1))
	assert.Equal(t, mgmt.Get, m.Action())
	assert.True(t, b.BuildTLV(mgmt.Command, mgmt.MID_ENABLE_PORT))
}

func TestBuilderFailures(t *testing.T) {
	m := newMsg(t)
	b := mgmt.NewBuilder(m)
	// SET without a registered callback.
	assert.False(t, b.BuildTLV(mgmt.Set, mgmt.MID_PRIORITY1))
	// A callback reporting failure aborts the build.
	mgmt.Build(b, func(*mgmt.Message, *mgmt.Priority1) bool { return false })
	assert.False(t, b.BuildTLV(mgmt.Set, mgmt.MID_PRIORITY1))
}
