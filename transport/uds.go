/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package transport carries framed management messages between the codec
// and a PTP daemon endpoint.
package transport

import (
	"errors"
	"os"
	"strconv"
	"time"

	"golang.org/x/sys/unix"

	"github.com/openptp/ptpmgmt/core"
)

// ErrTimeout is returned by Receive when no datagram arrives in time.
var ErrTimeout = errors.New("receive timed out")

// DefaultUDSAddress is the conventional ptp4l Unix datagram endpoint.
const DefaultUDSAddress = "/var/run/ptp4l"

// UDS is a Unix-datagram transport to a PTP daemon. It binds its own
// per-process path, as the reference management client does, and sends to
// the configured daemon address.
type UDS struct {
	fd        int
	localPath string
	remote    *unix.SockaddrUnix
}

// NewUDS opens a Unix datagram socket bound to a per-process path and
// aimed at the daemon address. A socketPriority above zero is applied
// with SO_PRIORITY.
func NewUDS(remotePath string, socketPriority int) (*UDS, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_DGRAM, 0)
	if err != nil {
		return nil, err
	}
	localPath := "/var/run/ptpmgmt." + strconv.Itoa(os.Getpid())
	if err := unix.Bind(fd, &unix.SockaddrUnix{Name: localPath}); err != nil {
		// /var/run may not be writable; retry under the temp directory.
		localPath = os.TempDir() + "/ptpmgmt." + strconv.Itoa(os.Getpid())
		if err := unix.Bind(fd, &unix.SockaddrUnix{Name: localPath}); err != nil {
			unix.Close(fd)
			return nil, err
		}
	}
	if socketPriority > 0 {
		if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_PRIORITY, socketPriority); err != nil {
			core.LogWarn("UDS", "Unable to set socket priority: "+err.Error())
		}
	}
	core.LogDebug("UDS", "Bound to "+localPath+", daemon at "+remotePath)
	return &UDS{
		fd:        fd,
		localPath: localPath,
		remote:    &unix.SockaddrUnix{Name: remotePath},
	}, nil
}

// Send transmits one framed message to the daemon.
func (u *UDS) Send(buf []byte) error {
	return unix.Sendto(u.fd, buf, 0, u.remote)
}

// Receive waits up to timeout for one datagram, reading it into buf and
// returning the datagram length.
func (u *UDS) Receive(buf []byte, timeout time.Duration) (int, error) {
	fds := []unix.PollFd{{Fd: int32(u.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrTimeout
	}
	n, _, err = unix.Recvfrom(u.fd, buf, 0)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Close releases the socket and its bound path.
func (u *UDS) Close() error {
	err := unix.Close(u.fd)
	if u.localPath != "" {
		os.Remove(u.localPath)
	}
	return err
}
