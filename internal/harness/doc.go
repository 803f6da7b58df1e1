// Package harness runs conformance cases against the converter.
//
// A case converts one input in one direction and checks the output against
// the expectations declared in the case file. Cases are plain data so that
// behavior can be pinned without writing Go.
//
// # Case Format
//
// Cases are YAML files with the following structure:
//
//	name: literal_declarators
//	description: "Literal initializers become annotations"
//	direction: typed
//	input: |
//	  const x = 5;
//	expect:
//	  equals: |
//	    const x: number = 5;
//	  contains:
//	    - "x: number"
//	  not_contains:
//	    - "unknown"
//	roundtrip: true
//
// A case that expects failure names the failing stage instead:
//
//	expect:
//	  error: parse
//
// # Checks
//
//   - equals: the output must match exactly
//   - contains / not_contains: substrings that must or must not appear
//   - error: conversion must fail in the given stage ("parse" or "print")
//   - roundtrip: converting the output back and forth again reproduces it
//
// # Deterministic Testing
//
// Each Run records the conversion in a fresh in-memory history store with
// sequential run IDs, so the recorded run is the same on every execution.
//
// # Usage
//
//	c, err := harness.LoadCase("testdata/cases/literals.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
