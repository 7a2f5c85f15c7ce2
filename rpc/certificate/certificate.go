// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS key pairs for the client RPC listener
package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/util"
)

// validity of a generated certificate
const validity = 10 * 365 * 24 * time.Hour

// Load - read a PEM key pair and return a server configuration with
// the SHA3-256 fingerprint of its certificate
func Load(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		log.Errorf("%s: failed to load key pair: %s", name, err)
		return nil, fin, err
	}

	fin = Fingerprint(keyPair.Certificate[0])
	log.Infof("%s: SHA3-256 fingerprint: %x", name, fin)

	return &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
	}, fin, nil
}

// Generate - write a new self-signed key pair
//
// existing files are never overwritten
func Generate(name string, certificateFileName string, keyFileName string, extraHosts []string) error {
	if util.EnsureFileExists(certificateFileName) {
		return fault.CertificateFileExists
	}
	if util.EnsureFileExists(keyFileName) {
		return fault.KeyFileExists
	}

	org := "tokend self signed cert for: " + name
	cert, key, err := certgen.NewTLSCertPair(org, time.Now().Add(validity), false, extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0644); nil != err {
		return err
	}
	if err = ioutil.WriteFile(keyFileName, key, 0600); nil != err {
		os.Remove(certificateFileName)
		return err
	}
	return nil
}

// Fingerprint - SHA3-256 of a DER certificate
//
// openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
