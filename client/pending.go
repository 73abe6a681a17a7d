/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package client

import (
	"github.com/cornelk/hashmap"
	"golang.org/x/exp/slices"

	"github.com/openptp/ptpmgmt/ptp/mgmt"
)

// pendingTable tracks in-flight exchanges by sequence id. Lookups are
// lock-free so monitoring code can inspect the table while an exchange
// is in progress.
type pendingTable struct {
	table hashmap.HashMap
}

func newPendingTable() *pendingTable {
	return new(pendingTable)
}

func (p *pendingTable) add(seq uint16, id mgmt.ID) {
	p.table.Set(seq, id)
}

func (p *pendingTable) remove(seq uint16) {
	p.table.Del(seq)
}

// get returns the management id awaiting the sequence, if any.
func (p *pendingTable) get(seq uint16) (mgmt.ID, bool) {
	value, ok := p.table.Get(seq)
	if !ok {
		return 0, false
	}
	return value.(mgmt.ID), true
}

// sequences returns the in-flight sequence ids in ascending order.
func (p *pendingTable) sequences() []uint16 {
	seqs := make([]uint16, 0, p.table.Len())
	for kv := range p.table.Iter() {
		seqs = append(seqs, kv.Key.(uint16))
	}
	slices.Sort(seqs)
	return seqs
}

// PendingSequences returns the sequence ids of exchanges awaiting a
// response, in ascending order.
func (c *Client) PendingSequences() []uint16 {
	return c.pending.sequences()
}

// PendingID returns the management id awaiting the given sequence.
func (c *Client) PendingID(seq uint16) (mgmt.ID, bool) {
	return c.pending.get(seq)
}
