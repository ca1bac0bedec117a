// Package io reads test specification documents and writes generated
// artifacts.
//
// # Input Format
//
// A specification is a single YAML document:
//
//	title: Login
//	cases:
//	  - title: Authentication
//	    children:
//	      - title: Password
//	        children:
//	          - title: Valid credentials
//	            operations:
//	              - Open the login page
//	              - Submit a valid user and password
//	            confirmations:
//	              - The dashboard is shown
//	            remarks:
//	              - Use the staging account
//
// The title key is required at every level and the root needs a cases key;
// an explicit empty value ("" or []) is fine. The children lists and the
// three leaf lists may be omitted; an omitted list decodes to nil, which
// renderers treat exactly like an empty list. Because JSON is a subset of YAML, the
// same document written as JSON is accepted as well.
//
// Decoding is strict: unknown keys are rejected, which catches documents
// written against the older three-level schema (categories/cases). Empty
// input and streams with more than one YAML document are rejected too.
//
// # Import
//
// Use [ImportSpec] to read a specification from a file path, or [ReadSpec] to
// read from any io.Reader:
//
//	spec, err := io.ImportSpec("login.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decoding failures carry [errors.ErrCodeParse]; a missing file carries
// [errors.ErrCodeFileNotFound].
//
// # Export
//
// [WriteArtifact] writes a fully rendered artifact to a path. The data is
// written to a temporary file in the destination directory and renamed into
// place, so a failed run never leaves a truncated file behind.
//
// [errors.ErrCodeParse]: github.com/matzehuels/testspec/pkg/errors.ErrCodeParse
// [errors.ErrCodeFileNotFound]: github.com/matzehuels/testspec/pkg/errors.ErrCodeFileNotFound
package io
