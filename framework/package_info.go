// Package framework contains the test definition model and the engine that
// runs it.
//
// The general model is:
//
// 1. The caller supplies Definitions: an ordered list of named test bodies,
// each optionally carrying Attributes.
//
// 2. Normalize turns the definitions into Tests with sorted attributes, and
// BuildSuite applies those attributes: ignored tests are dropped, up to four
// tests become the suite's lifecycle hooks, and ExpectException markers are
// collected on the tests that carry them.
//
// 3. RunSuite executes the hooks and tests strictly in order and produces
// Results, reporting each outcome to a TestLogger as it goes.
//
// Rendering results for people to read is the job of the report package.
package framework
