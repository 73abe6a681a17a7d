/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core_test

import (
	"testing"

	"github.com/openptp/ptpmgmt/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionFallback(t *testing.T) {
	require.NoError(t, core.LoadConfigString(`
[global]
domainNumber = 2
uds_address = "/var/run/ptp4l"

[eth0]
domainNumber = 5
socket_priority = 3
`))
	assert.True(t, core.HasConfig())

	// A section value overrides the global one.
	assert.Equal(t, 5, core.GetSectionIntDefault("eth0", "domainNumber", 0))
	// A missing section value falls back to global.
	assert.Equal(t, 2, core.GetSectionIntDefault("eth1", "domainNumber", 0))
	assert.Equal(t, "/var/run/ptp4l", core.GetSectionStringDefault("eth0", "uds_address", ""))
	// A value in neither section yields the default.
	assert.Equal(t, 9, core.GetSectionIntDefault("eth0", "udp_ttl", 9))
	assert.Equal(t, 3, core.GetSectionIntDefault("eth0", "socket_priority", 0))
}

func TestConfigDefaults(t *testing.T) {
	require.NoError(t, core.LoadConfigString(`
[core]
log_level = "DEBUG"
`))
	assert.Equal(t, "DEBUG", core.GetConfigStringDefault("core.log_level", "INFO"))
	assert.Equal(t, "INFO", core.GetConfigStringDefault("core.other", "INFO"))
	assert.Equal(t, 7, core.GetConfigIntDefault("core.missing", 7))
	assert.True(t, core.GetConfigBoolDefault("core.missing_flag", true))
}
