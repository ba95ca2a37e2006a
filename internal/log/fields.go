package log

import "time"

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldSuccess    = "success"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldMonth      = "month"
	FieldCount      = "count"
	FieldReport     = "report"
	FieldSQL        = "sql"
	FieldRows       = "rows"
	FieldBatchID    = "batch_id"
	FieldDBPath     = "db_path"
	FieldBackend    = "backend"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentGenerator = "generator"
	ComponentStorage   = "storage"
	ComponentReports   = "reports"
	ComponentCache     = "cache"
	ComponentAMQP      = "amqp"
	ComponentExport    = "export"
	ComponentTUI       = "tui"
)

// Operations defines standard operation names
const (
	OpGenerate = "generate"
	OpAppend   = "append"
	OpList     = "list"
	OpInsights = "insights"
	OpQuery    = "query"
	OpReport   = "report"
	OpExport   = "export"
	OpPublish  = "publish"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithRequestID adds request ID field
func (f LogFields) WithRequestID(requestID string) LogFields {
	f[FieldRequestID] = requestID
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithBatch adds the fields describing a generated batch
func (f LogFields) WithBatch(month string, count int) LogFields {
	f[FieldMonth] = month
	f[FieldCount] = count
	return f
}

// WithReport adds report name and result size
func (f LogFields) WithReport(name string, rows int) LogFields {
	f[FieldReport] = name
	f[FieldRows] = rows
	return f
}

// WithSQL adds a query text, truncated to keep records readable
func (f LogFields) WithSQL(sql string) LogFields {
	const max = 200
	if len(sql) > max {
		sql = sql[:max] + "..."
	}
	f[FieldSQL] = sql
	return f
}

// WithHTTPRequest adds HTTP request fields
func (f LogFields) WithHTTPRequest(method, path, query, userAgent string) LogFields {
	f[FieldMethod] = method
	f[FieldPath] = path
	f[FieldQuery] = query
	f[FieldUserAgent] = userAgent
	return f
}

// WithHTTPResponse adds HTTP response fields
func (f LogFields) WithHTTPResponse(statusCode int, duration time.Duration) LogFields {
	f[FieldStatusCode] = statusCode
	f[FieldDuration] = duration.Milliseconds()
	f[FieldSuccess] = statusCode < 400
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
