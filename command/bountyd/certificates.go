// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/rpc/certificate"
	"github.com/bitmark-inc/bountyd/util"
)

const certificateLifetime = 10 * 365 * 24 * time.Hour

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) ([32]byte, error) {

	fingerprint := [32]byte{}

	if util.EnsureFileExists(certificateFileName) {
		return fingerprint, fault.ErrCertificateFileAlreadyExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fingerprint, fault.ErrKeyFileAlreadyExists
	}

	org := "bountyd self signed cert for: " + name
	validUntil := time.Now().Add(certificateLifetime)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return fingerprint, err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); err != nil {
		return fingerprint, err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); err != nil {
		os.Remove(certificateFileName)
		return fingerprint, err
	}

	keyPair, err := tls.X509KeyPair(cert, key)
	if nil != err {
		return fingerprint, err
	}
	return certificate.Fingerprint(keyPair.Certificate[0]), nil
}
