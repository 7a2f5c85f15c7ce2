// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file and watch it
// for changes
//
// the file is an ordinary Lua chunk that must return a table; base Lua
// is available so key data can be read from other files and getenv
// can supply items from the environment.  The global arg[0] holds the
// path of the file being read.
package configuration
