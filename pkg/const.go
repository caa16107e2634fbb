package pkg

const (
	HeaderTraceId   string = "X-Trace-Id"
	HeaderRequestId string = "X-Request-Id"
)

const (
	TraceId   string = "trace_id"
	RequestId string = "request_id"
)

// TimestampLayout is the wire format for response timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// DefaultCurrency is applied when a request omits the currency field.
const DefaultCurrency = "USD"

type PredictionOutcome string

const (
	OutcomeFraudulent PredictionOutcome = "FRAUDULENT"
	OutcomeNormal     PredictionOutcome = "NORMAL"
)
