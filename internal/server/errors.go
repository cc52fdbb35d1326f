// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harborlight Recovery Services

package server

import "errors"

// errNoListenAddress is returned by NewServer when the configuration carries
// no HTTP listen address. This is treated as a fatal misconfiguration and
// causes the application to fail at startup.
var errNoListenAddress = errors.New("no HTTP listen address configured")
