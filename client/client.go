/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package client correlates management requests with their responses over
// a transport, one outstanding exchange per sequence id.
package client

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/openptp/ptpmgmt/core"
	"github.com/openptp/ptpmgmt/ptp"
	"github.com/openptp/ptpmgmt/ptp/mgmt"
	"github.com/openptp/ptpmgmt/transport"
)

// ErrNoResponse is returned when the daemon does not answer in time.
var ErrNoResponse = errors.New("no response from daemon")

// Config selects the transport endpoint of a Client.
type Config struct {
	UDSAddress     string
	SocketPriority int
	Timeout        time.Duration
}

// ConfigFromFile builds a Config from the loaded configuration, honoring
// per-section overrides of uds_address and socket_priority.
func ConfigFromFile(section string) Config {
	return Config{
		UDSAddress:     core.GetSectionStringDefault(section, "uds_address", transport.DefaultUDSAddress),
		SocketPriority: core.GetSectionIntDefault(section, "socket_priority", 0),
		Timeout:        time.Duration(core.GetSectionIntDefault(section, "timeout_ms", 1000)) * time.Millisecond,
	}
}

// SelfIdentity derives the port identity this process presents as a
// management node, from its process id, the way the reference client does
// for the Unix datagram transport.
func SelfIdentity() ptp.PortIdentity {
	pid := uint32(os.Getpid())
	return ptp.PortIdentity{
		ClockIdentity: ptp.ClockIdentity{
			0, 0, 0, 0, 0, 0, uint8(pid >> 24), uint8(pid >> 16),
		},
		PortNumber: uint16(pid),
	}
}

// Client drives management exchanges over a transport. Calls are
// serialized; the pending table survives concurrent inspection.
type Client struct {
	mu      sync.Mutex
	msg     *mgmt.Message
	conn    *transport.UDS
	seq     uint16
	timeout time.Duration
	pending *pendingTable
}

// New connects a Client with the given message parameters. The self
// identity is filled in from the process id when unset.
func New(prms mgmt.MsgParams, cfg Config) (*Client, error) {
	if prms.SelfID == (ptp.PortIdentity{}) {
		prms.SelfID = SelfIdentity()
	}
	msg := mgmt.NewMessageParams(prms)
	if msg == nil || !msg.UpdateParams(prms) {
		return nil, errors.New("invalid message parameters")
	}
	if cfg.UDSAddress == "" {
		cfg.UDSAddress = transport.DefaultUDSAddress
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Second
	}
	conn, err := transport.NewUDS(cfg.UDSAddress, cfg.SocketPriority)
	if err != nil {
		return nil, err
	}
	return &Client{
		msg:     msg,
		conn:    conn,
		timeout: cfg.Timeout,
		pending: newPendingTable(),
	}, nil
}

// Message exposes the underlying codec, for callers that render decoded
// values or adjust parameters between exchanges.
func (c *Client) Message() *mgmt.Message {
	return c.msg
}

// Get requests the id and returns the decoded response value. The value
// is owned by the Client's codec and is invalidated by the next exchange.
func (c *Client) Get(id mgmt.ID) (mgmt.Data, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.msg.SetAction(mgmt.Get, id) {
		return nil, mgmt.ErrInvalidID
	}
	if err := c.exchange(id); err != nil {
		return nil, err
	}
	return c.msg.Data(), nil
}

// Set transmits the value under the SET action and waits for the
// response acknowledging it.
func (c *Client) Set(id mgmt.ID, data mgmt.Data) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.msg.SetAction(mgmt.Set, id, data) {
		return mgmt.ErrInvalidID
	}
	return c.exchange(id)
}

// Command transmits the id under the COMMAND action and waits for the
// acknowledgment.
func (c *Client) Command(id mgmt.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.msg.SetAction(mgmt.Command, id) {
		return mgmt.ErrInvalidID
	}
	return c.exchange(id)
}

// Subscribe renews a SUBSCRIBE_EVENTS_NP subscription for the given
// duration in seconds. Requires UseLinuxPTPTlvs in the parameters.
func (c *Client) Subscribe(duration uint16, events ...int) error {
	sub := &mgmt.SubscribeEventsNP{Duration: duration}
	for _, ev := range events {
		sub.SetEvent(ev)
	}
	return c.Set(mgmt.MID_SUBSCRIBE_EVENTS_NP, sub)
}

func (c *Client) exchange(id mgmt.ID) error {
	c.seq++
	seq := c.seq
	buf, err := c.msg.Build(seq)
	if err != nil {
		return err
	}
	c.pending.add(seq, id)
	defer c.pending.remove(seq)
	if err := c.conn.Send(buf); err != nil {
		return err
	}

	rcv := make([]byte, 2048)
	deadline := time.Now().Add(c.timeout)
	for {
		left := time.Until(deadline)
		if left <= 0 {
			return ErrNoResponse
		}
		n, err := c.conn.Receive(rcv, left)
		if errors.Is(err, transport.ErrTimeout) {
			return ErrNoResponse
		}
		if err != nil {
			return err
		}
		err = c.msg.Parse(rcv[:n])
		switch {
		case err == nil:
		case errors.Is(err, mgmt.ErrMsg):
			return fmt.Errorf("%s: %w (%s)", c.msg.ErrID(), err, c.msg.ErrDisplay())
		default:
			core.LogDebug("Client", "Discarding malformed datagram: "+err.Error())
			continue
		}
		if c.msg.Sequence() != seq {
			// A stale answer to an abandoned exchange.
			core.LogTrace("Client", "Discarding stale response")
			continue
		}
		return nil
	}
}

// Close releases the transport.
func (c *Client) Close() error {
	return c.conn.Close()
}
