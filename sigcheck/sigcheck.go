// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package sigcheck verifies a detached PKCS#7 signature over an immutable
// typelib image — generalized to any detached signature a typelib
// distributor chooses to publish alongside the binary, since typelibs have
// no embedded signature directory of their own.
package sigcheck

import (
	"crypto/x509"
	"fmt"

	"go.mozilla.org/pkcs7"
)

// VerifyDetached checks that sig is a valid PKCS#7 detached signature over
// data, chaining to one of the certificates in roots. A nil roots pool
// falls back to pkcs7's own signer-certificate verification without a
// trust anchor, for callers that only want structural validity.
func VerifyDetached(data, sig []byte, roots *x509.CertPool) error {
	p7, err := pkcs7.Parse(sig)
	if err != nil {
		return fmt.Errorf("sigcheck: parse detached signature: %w", err)
	}
	p7.Content = data

	if roots == nil {
		return p7.Verify()
	}
	return verifyAgainst(p7, roots)
}

func verifyAgainst(p7 *pkcs7.PKCS7, roots *x509.CertPool) error {
	for _, cert := range p7.Certificates {
		opts := x509.VerifyOptions{Roots: roots, KeyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageAny}}
		if _, err := cert.Verify(opts); err == nil {
			return p7.Verify()
		}
	}
	return fmt.Errorf("sigcheck: no signer certificate chains to a trusted root")
}
