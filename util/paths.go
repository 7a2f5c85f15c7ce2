// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - prefix a relative path with the directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// ResolveAll - make every path absolute relative to directory
func ResolveAll(directory string, paths ...*string) {
	for _, p := range paths {
		*p = EnsureAbsolute(directory, *p)
	}
}

// ResolveOptional - like ResolveAll but blank paths stay blank
func ResolveOptional(directory string, paths ...*string) {
	for _, p := range paths {
		if "" != *p {
			*p = EnsureAbsolute(directory, *p)
		}
	}
}

// IsPlainName - true for a file name without any directory part
func IsPlainName(name string) bool {
	if "" == name || "." == name || ".." == name {
		return false
	}
	_, file := filepath.Split(name)
	return file == name
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
