package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"

	FieldStream       = "stream"
	FieldSegmentPath  = "segment_path"
	FieldBatchID      = "batch_id"
	FieldSubscriberID = "subscriber_id"
	FieldPrevLength   = "prev_length"
	FieldNewLength    = "new_length"
)
