// Package importer reads the newline-delimited JSON document stream the
// surrounding tooling emits and turns it into typed scheduling entities.
package importer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/wbaizer/naologic-reflow/internal/domain"
)

// Document is one line of the input stream. Records arrive unordered.
type Document struct {
	DocID   string          `json:"docId"`
	DocType domain.DocType  `json:"docType"`
	Data    json.RawMessage `json:"data"`
}

// ShiftPayload is a recurring weekly working window; dayOfWeek uses
// 0=Sunday through 6=Saturday.
type ShiftPayload struct {
	DayOfWeek int `json:"dayOfWeek"`
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// MaintenanceWindowPayload is a fixed blackout on a work center.
type MaintenanceWindowPayload struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason,omitempty"`
}

// WorkCenterPayload defines a work center document's data field.
type WorkCenterPayload struct {
	Name               string                     `json:"name"`
	Shifts             []ShiftPayload             `json:"shifts"`
	MaintenanceWindows []MaintenanceWindowPayload `json:"maintenanceWindows,omitempty"`
}

// WorkOrderPayload defines a work order document's data field.
type WorkOrderPayload struct {
	WorkOrderNumber       string   `json:"workOrderNumber"`
	ManufacturingOrderID  string   `json:"manufacturingOrderId,omitempty"`
	WorkCenterID          string   `json:"workCenterId"`
	StartDate             string   `json:"startDate"`
	EndDate               string   `json:"endDate"`
	DurationMinutes       int      `json:"durationMinutes"`
	IsMaintenance         bool     `json:"isMaintenance,omitempty"`
	DependsOnWorkOrderIDs []string `json:"dependsOnWorkOrderIds,omitempty"`
}

// ManufacturingOrderPayload defines a manufacturing order document's data
// field. The engine only needs the identity for report annotation.
type ManufacturingOrderPayload struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// InputSchema is the typed aggregate of one input stream.
type InputSchema struct {
	WorkCenters         []WorkCenterPayload
	WorkOrders          []WorkOrderPayload
	ManufacturingOrders []ManufacturingOrderPayload
}

// LoadInput reads and parses a JSONL input file.
func LoadInput(path string) (*InputSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseInput(f)
}

// ParseInput decodes one document per line, skipping blank lines. Parse
// failures name the offending line.
func ParseInput(r io.Reader) (*InputSchema, error) {
	schema := &InputSchema{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 || allWhitespace(raw) {
			continue
		}

		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("line %d: parsing document: %w", line, err)
		}

		switch doc.DocType {
		case domain.DocWorkCenter:
			var p WorkCenterPayload
			if err := json.Unmarshal(doc.Data, &p); err != nil {
				return nil, fmt.Errorf("line %d: parsing work center %q: %w", line, doc.DocID, err)
			}
			schema.WorkCenters = append(schema.WorkCenters, p)
		case domain.DocWorkOrder:
			var p WorkOrderPayload
			if err := json.Unmarshal(doc.Data, &p); err != nil {
				return nil, fmt.Errorf("line %d: parsing work order %q: %w", line, doc.DocID, err)
			}
			schema.WorkOrders = append(schema.WorkOrders, p)
		case domain.DocManufacturingOrder:
			var p ManufacturingOrderPayload
			if err := json.Unmarshal(doc.Data, &p); err != nil {
				return nil, fmt.Errorf("line %d: parsing manufacturing order %q: %w", line, doc.DocID, err)
			}
			schema.ManufacturingOrders = append(schema.ManufacturingOrders, p)
		default:
			return nil, fmt.Errorf("line %d: unknown docType %q", line, doc.DocType)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return schema, nil
}

func allWhitespace(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}
	return true
}
