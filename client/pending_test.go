/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package client

import (
	"testing"

	"github.com/openptp/ptpmgmt/ptp/mgmt"
	"github.com/stretchr/testify/assert"
)

func TestPendingTable(t *testing.T) {
	p := newPendingTable()
	p.add(3, mgmt.MID_PRIORITY1)
	p.add(1, mgmt.MID_DEFAULT_DATA_SET)
	p.add(2, mgmt.MID_CURRENT_DATA_SET)

	id, ok := p.get(1)
	assert.True(t, ok)
	assert.Equal(t, mgmt.MID_DEFAULT_DATA_SET, id)

	assert.Equal(t, []uint16{1, 2, 3}, p.sequences())

	p.remove(2)
	_, ok = p.get(2)
	assert.False(t, ok)
	assert.Equal(t, []uint16{1, 3}, p.sequences())
}

func TestSelfIdentity(t *testing.T) {
	pi := SelfIdentity()
	assert.NotEqual(t, 0, int(pi.PortNumber)|int(pi.ClockIdentity[6])|int(pi.ClockIdentity[7]))
	assert.False(t, pi.IsAllPorts())
}
