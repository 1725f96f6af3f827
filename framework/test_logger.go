package framework

// TestLogger receives test events as the engine runs a suite. Report surfaces
// implement it to render results while the run is in progress.
type TestLogger interface {
	TestStarted(name string)
	TestFinished(result TestResult)
	TestSkipped(name string, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(string)         {}
func (n nullTestLogger) TestFinished(TestResult)    {}
func (n nullTestLogger) TestSkipped(string, string) {}

// MultiTestLogger forwards every event to each of its loggers in order.
type MultiTestLogger []TestLogger

func (m MultiTestLogger) TestStarted(name string) {
	for _, l := range m {
		l.TestStarted(name)
	}
}

func (m MultiTestLogger) TestFinished(result TestResult) {
	for _, l := range m {
		l.TestFinished(result)
	}
}

func (m MultiTestLogger) TestSkipped(name string, reason string) {
	for _, l := range m {
		l.TestSkipped(name, reason)
	}
}
