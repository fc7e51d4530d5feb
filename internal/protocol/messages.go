// Package protocol defines the JSONL message envelope the connector emits on
// stdout for the host sync framework.
package protocol

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dbsmedya/lakesync/internal/schema"
	"github.com/dbsmedya/lakesync/internal/stream"
	"github.com/dbsmedya/lakesync/internal/types"
)

// Message types.
const (
	TypeRecord           = "RECORD"
	TypeState            = "STATE"
	TypeCatalog          = "CATALOG"
	TypeConnectionStatus = "CONNECTION_STATUS"
	TypeLog              = "LOG"
)

// Connection status values.
const (
	StatusSucceeded = "SUCCEEDED"
	StatusFailed    = "FAILED"
)

// Message is the envelope for every line the connector emits.
type Message struct {
	Type             string            `json:"type"`
	Record           *RecordMessage    `json:"record,omitempty"`
	State            *StateMessage     `json:"state,omitempty"`
	Catalog          *Catalog          `json:"catalog,omitempty"`
	ConnectionStatus *ConnectionStatus `json:"connectionStatus,omitempty"`
	Log              *LogMessage       `json:"log,omitempty"`
}

// RecordMessage carries one extracted row.
type RecordMessage struct {
	Stream    string        `json:"stream"`
	EmittedAt int64         `json:"emitted_at"`
	Data      *types.Record `json:"data"`
}

// StateMessage carries the cursor watermark for persistence.
type StateMessage struct {
	Data stream.State `json:"data"`
}

// ConnectionStatus reports the check outcome.
type ConnectionStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// LogMessage carries a log line addressed to the host.
type LogMessage struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Catalog lists the streams this connector offers.
type Catalog struct {
	Streams []StreamDescriptor `json:"streams"`
}

// StreamDescriptor describes one stream: identity, schema, and sync modes.
type StreamDescriptor struct {
	Name               string             `json:"name"`
	JSONSchema         *schema.Descriptor `json:"json_schema"`
	SupportedSyncModes []stream.SyncMode  `json:"supported_sync_modes"`
	DefaultCursorField []string           `json:"default_cursor_field,omitempty"`
}

// DescribeStream builds the descriptor for a table stream.
func DescribeStream(s *stream.TableStream, descriptor *schema.Descriptor) StreamDescriptor {
	modes := []stream.SyncMode{stream.SyncModeFullRefresh}
	var cursorField []string
	if s.SupportsIncremental() {
		modes = append(modes, stream.SyncModeIncremental)
		cursorField = []string{s.CursorField()}
	}
	return StreamDescriptor{
		Name:               s.Name(),
		JSONSchema:         descriptor,
		SupportedSyncModes: modes,
		DefaultCursorField: cursorField,
	}
}

// Writer emits protocol messages as JSON lines. Safe for use from one
// goroutine; the sync surface is single-threaded by design.
type Writer struct {
	mu  sync.Mutex
	enc *json.Encoder
	now func() time.Time
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		enc: json.NewEncoder(w),
		now: time.Now,
	}
}

func (w *Writer) write(msg *Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.enc.Encode(msg); err != nil {
		return fmt.Errorf("failed to emit %s message: %w", msg.Type, err)
	}
	return nil
}

// WriteRecord emits a RECORD message for one row.
func (w *Writer) WriteRecord(streamName string, record *types.Record) error {
	return w.write(&Message{
		Type: TypeRecord,
		Record: &RecordMessage{
			Stream:    streamName,
			EmittedAt: w.now().UnixMilli(),
			Data:      record,
		},
	})
}

// WriteState emits a STATE message with the current watermark.
func (w *Writer) WriteState(state stream.State) error {
	return w.write(&Message{
		Type:  TypeState,
		State: &StateMessage{Data: state},
	})
}

// WriteCatalog emits a CATALOG message.
func (w *Writer) WriteCatalog(catalog *Catalog) error {
	return w.write(&Message{
		Type:    TypeCatalog,
		Catalog: catalog,
	})
}

// WriteConnectionStatus emits a CONNECTION_STATUS message.
func (w *Writer) WriteConnectionStatus(ok bool, message string) error {
	status := StatusSucceeded
	if !ok {
		status = StatusFailed
	}
	return w.write(&Message{
		Type:             TypeConnectionStatus,
		ConnectionStatus: &ConnectionStatus{Status: status, Message: message},
	})
}

// WriteLog emits a LOG message.
func (w *Writer) WriteLog(level, message string) error {
	return w.write(&Message{
		Type: TypeLog,
		Log:  &LogMessage{Level: level, Message: message},
	})
}
