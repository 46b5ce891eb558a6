package metrics

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

const metricsLogPrefix = "metrics"

type capabilities struct{}

func (capabilities) Reporting() bool { return true }
func (capabilities) Tagging() bool   { return true }

// LogReporter writes tally metrics into logrus at debug level
type LogReporter struct {
	log *logrus.Entry
}

// NewLogReporter returns a tally reporter backed by a logrus logger
func NewLogReporter(logger *logrus.Logger) *LogReporter {
	return &LogReporter{
		log: logger.WithField("prefix", metricsLogPrefix),
	}
}

// NewRootScope returns the root metrics scope of the service, flushed every interval
func NewRootScope(prefix string, interval time.Duration, reporter tally.StatsReporter) (tally.Scope, io.Closer) {
	return tally.NewRootScope(tally.ScopeOptions{
		Prefix:   prefix,
		Reporter: reporter,
	}, interval)
}

func (r *LogReporter) entry(name string, tags map[string]string) *logrus.Entry {
	fields := logrus.Fields{"metric": name}
	for k, v := range tags {
		fields["tag."+k] = v
	}
	return r.log.WithFields(fields)
}

func (r *LogReporter) ReportCounter(name string, tags map[string]string, value int64) {
	r.entry(name, tags).WithField("value", value).Debug("counter")
}

func (r *LogReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.entry(name, tags).WithField("value", value).Debug("gauge")
}

func (r *LogReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.entry(name, tags).WithField("value", interval).Debug("timer")
}

func (r *LogReporter) ReportHistogramValueSamples(
	name string,
	tags map[string]string,
	buckets tally.Buckets,
	bucketLowerBound,
	bucketUpperBound float64,
	samples int64,
) {
	r.entry(name, tags).WithFields(logrus.Fields{
		"lower":   bucketLowerBound,
		"upper":   bucketUpperBound,
		"samples": samples,
	}).Debug("histogram")
}

func (r *LogReporter) ReportHistogramDurationSamples(
	name string,
	tags map[string]string,
	buckets tally.Buckets,
	bucketLowerBound,
	bucketUpperBound time.Duration,
	samples int64,
) {
	r.entry(name, tags).WithFields(logrus.Fields{
		"lower":   bucketLowerBound,
		"upper":   bucketUpperBound,
		"samples": samples,
	}).Debug("histogram")
}

func (r *LogReporter) Capabilities() tally.Capabilities {
	return capabilities{}
}

func (r *LogReporter) Flush() {}
