// Package todo holds the task model, the operations on the ordered task
// sequence, and the Store that persists it.
//
// The tasks file (tasks.json) is a single JSON array:
//
//	[
//	    {
//	        "id": "0b6d3c1e-8f5a-4a57-9c43-5d2f1b7f3e21",
//	        "text": "Buy milk",
//	        "status": "Open",
//	        "priority": "Medium",
//	        "created_at": "2024-01-01T00:00:00Z",
//	        "updated_at": "2024-01-01T00:00:00Z"
//	    }
//	]
//
// # Identity
//
// Every task carries a stable ID assigned at creation. Operations address
// tasks by ID; positions exist only at the presentation boundary, where
// ResolveRef and At translate them.
//
// # Status Values
//
//   - "Open": not started (default)
//   - "In Progress": being worked on
//   - "Done": complete
//
// # Priority Values
//
//   - "Low"
//   - "Medium" (default)
//   - "High"
//
// # File Format
//
// When writing the tasks file, the package uses:
//   - 4-space indentation
//   - Trailing newline
//   - Insertion order of tasks
//
// Files that do not parse, or that fail the embedded JSON Schema, are
// reported as *CorruptError. The Store recovers from those by starting
// with an empty sequence.
package todo
