// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package templates - text of generated configuration files
package templates

import (
	"io"
	"text/template"
)

// Token - values substituted into the configuration template
type Token struct {
	Principal   string
	Owner       string
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply string
	Listen      string
}

const (
	/**** Configuration template ****/
	ConfigurationTemplate = `-- tokend.conf  -*- mode: lua -*-

local M = {}

-- relative paths below are resolved against this directory
M.data_directory = "."

-- optional pid file if not absolute path then is created relative to
-- the data directory
-- M.pidfile = "tokend.pid"

M.database = {
    directory = "data",
    name = "tokend.leveldb",
}

-- values only used the first time the database is created
M.token = {
    principal = "{{.Principal}}",
    name = "{{.Name}}",
    symbol = "{{.Symbol}}",
    logo = "",
    decimals = {{.Decimals}},
    total_supply = "{{.TotalSupply}}",
    owner = "{{.Owner}}",
    fee = "0",
    fee_to = "",
    test = false,
}

M.client_rpc = {
    maximum_connections = 50,
    listen = {
        "{{.Listen}}",
    },
    certificate = "rpc.crt",
    private_key = "rpc.key",
}

-- timeout and receivers are reloaded when this file changes
M.notification = {
    timeout = "30s",
    private_key = "notify.private",
    receivers = {
        -- ["base58-account"] = "127.0.0.1:2150",
    },
}

M.publishing = {
    broadcast = {
        -- "127.0.0.1:2140",
    },
}

M.logging = {
    size = 1048576,
    count = 10,
    directory = "log",
    file = "tokend.log",
    levels = {
        DEFAULT = "info",
    },
}

return M
`
)

var configuration = template.Must(template.New("configuration").Parse(ConfigurationTemplate))

// WriteConfiguration - render a configuration file for a token
func WriteConfiguration(w io.Writer, t *Token) error {
	return configuration.Execute(w, t)
}
