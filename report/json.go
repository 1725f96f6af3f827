package report

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/massalabs/attest/framework"
)

// JSONDocument returns a machine-readable form of the results:
//
//	{"runId": "...", "passed": 1, "failed": 1, "total": 2, "percentage": 50,
//	 "summary": "Passed: 1 / 2 = 50%",
//	 "tests": [{"name": "t1", "passed": true}, {"name": "t2", "passed": false,
//	            "message": "...", "kind": "Error"}]}
func JSONDocument(runID string, results framework.Results) ldvalue.Value {
	tests := ldvalue.ArrayBuild()
	for _, r := range results.Tests {
		item := ldvalue.ObjectBuild().
			Set("name", ldvalue.String(r.Name)).
			Set("passed", ldvalue.Bool(r.Passed)).
			Set("durationMs", ldvalue.Int(int(r.Duration.Milliseconds())))
		if r.Message != "" {
			item.Set("message", ldvalue.String(r.Message))
		}
		if r.Kind != "" {
			item.Set("kind", ldvalue.String(string(r.Kind)))
		}
		tests.Add(item.Build())
	}

	doc := ldvalue.ObjectBuild()
	if runID != "" {
		doc.Set("runId", ldvalue.String(runID))
	}
	return doc.
		Set("passed", ldvalue.Int(results.Passed())).
		Set("failed", ldvalue.Int(results.Failed())).
		Set("total", ldvalue.Int(results.Total())).
		Set("percentage", ldvalue.Float64(results.Percentage())).
		Set("summary", ldvalue.String(results.Summary())).
		Set("tests", tests.Build()).
		Build()
}
