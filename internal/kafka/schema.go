package kafka

// ValveCommand is the message carried on the command topic, keyed by device
// id so commands for one device stay ordered within a partition.
type ValveCommand struct {
	ID        string `json:"id"`
	DeviceID  string `json:"device_id"`
	State     int    `json:"state"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// StructuredConnectRecord wraps a command with its schema so a Kafka Connect
// JDBC sink can archive the topic without a schema registry.
type StructuredConnectRecord struct {
	Schema  Schema       `json:"schema"`
	Payload ValveCommand `json:"payload"`
}

type Schema struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Fields   []Field `json:"fields"`
	Optional bool    `json:"optional"`
}

type Field struct {
	Field string `json:"field"`
	Type  string `json:"type"`
}

var StructuredSchema = Schema{
	Type:     "struct",
	Name:     "ValveCommand",
	Optional: false,
	Fields: []Field{
		{Field: "id", Type: "string"},
		{Field: "device_id", Type: "string"},
		{Field: "state", Type: "int32"},
		{Field: "source", Type: "string"},
		{Field: "timestamp", Type: "int64"},
	},
}
