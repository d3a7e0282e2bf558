/*
Copyright © 2026 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

// Package digest computes and compares MD5 content digests for file
// integrity verification.
//
// The digest format is the canonical lowercase hexadecimal encoding
// produced by the md5sum utility:
//
//	out := digest.Compute([]byte("hello"))
//	// "5d41402abc4b2a76b9719d911017c592"
//
// VerifyFile combines reading, hashing, and comparison:
//
//	outcome, err := digest.VerifyFile("foo.txt", "4d93d51945b88325c213640ef59fc50b")
//	if err != nil {
//	    return err // file could not be read
//	}
//	if !outcome.Match() {
//	    fmt.Println(outcome) // mismatch (expected ..., actual ...)
//	}
//
// MD5 is used for integrity checking against existing md5sum manifests,
// not for any security purpose.
package digest
