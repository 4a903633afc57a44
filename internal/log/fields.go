package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldRecordKind = "record_kind"
	FieldRecordID   = "record_id"
	FieldStage      = "stage"
	FieldValueCents = "value_cents"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldSearch     = "search"
	FieldBackend    = "backend"
	FieldEventID    = "event_id"
)

// Components defines standard component names.
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentWorkspace = "workspace"
	ComponentStore     = "store"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentWorker    = "worker"
	ComponentConfig    = "config"
	ComponentTrace     = "trace"
)

// Operations defines standard operation names.
const (
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpToggle   = "toggle_pin"
	OpList     = "list"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpPersist  = "persist"
	OpLoad     = "load"
	OpSeed     = "seed"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
