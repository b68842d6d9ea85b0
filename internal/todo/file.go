package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/taskdeck/internal/utils"
)

//go:embed tasks.schema.json
var schemaJSON []byte

const schemaURL = "https://taskdeck.dev/schema/tasks.schema.json"

// Indent is the indentation used when writing the tasks file.
const Indent = "    "

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
})

// Schema returns the JSON Schema describing the tasks file.
func Schema() []byte {
	return bytes.Clone(schemaJSON)
}

// ReadFile reads and decodes the tasks file at path.
//
// A missing file yields an error matching fs.ErrNotExist. An empty file
// yields an empty sequence. Files that are not valid JSON or do not match
// the schema yield a *CorruptError. Tasks without an ID get a fresh one and
// tasks without a priority get DefaultPriority.
func ReadFile(path string) ([]Task, error) {
	tasks, _, err := readFile(path)
	return tasks, err
}

// readFile is ReadFile that also reports how many tasks were given a new ID.
func readFile(path string) ([]Task, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read tasks file: %w", err)
	}
	return decode(path, data)
}

// Decode decodes tasks file content. path is only used in errors.
func Decode(path string, data []byte) ([]Task, error) {
	tasks, _, err := decode(path, data)
	return tasks, err
}

func decode(path string, data []byte) ([]Task, int, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, 0, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, 0, &CorruptError{Path: path, Err: err}
	}

	if problems := validate(raw); len(problems) > 0 {
		return nil, 0, &CorruptError{Path: path, Problems: problems}
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, 0, &CorruptError{Path: path, Err: err}
	}
	assigned := 0
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = newID()
			assigned++
		}
		if tasks[i].Priority == "" {
			tasks[i].Priority = DefaultPriority
		}
	}
	return tasks, assigned, nil
}

// Marshal encodes tasks in the file format. A nil slice encodes as [].
func Marshal(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", Indent)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile writes tasks to path, replacing any existing content.
func WriteFile(path string, tasks []Task) error {
	data, err := Marshal(tasks)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create tasks dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}

// validate checks raw against the embedded schema, falling back to minimal
// structural checks if the schema cannot be compiled.
func validate(raw any) []*ValidationError {
	schema, err := compiledSchema()
	if err != nil {
		return validateMinimal(raw)
	}
	err = schema.Validate(raw)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []*ValidationError{{Err: err}}
	}
	var problems []*ValidationError
	collectSchemaErrors(&problems, ve)
	return problems
}

func collectSchemaErrors(problems *[]*ValidationError, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*problems = append(*problems, &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(problems, cause)
	}
}

func validateMinimal(raw any) []*ValidationError {
	items, ok := raw.([]any)
	if !ok {
		return []*ValidationError{{Err: errors.New("expected an array of tasks")}}
	}
	var problems []*ValidationError
	for i, item := range items {
		path := fmt.Sprintf("[%d]", i)
		obj, ok := item.(map[string]any)
		if !ok {
			problems = append(problems, &ValidationError{Path: path, Err: errors.New("expected object")})
			continue
		}
		if text, _ := obj["text"].(string); strings.TrimSpace(text) == "" {
			problems = append(problems, &ValidationError{Path: path + ".text", Err: errors.New("text is blank or missing")})
		}
		if status, _ := obj["status"].(string); !Status(status).Valid() {
			problems = append(problems, &ValidationError{Path: path + ".status", Err: fmt.Errorf("invalid status %q", status)})
		}
		if p, present := obj["priority"]; present {
			if s, _ := p.(string); !Priority(s).Valid() {
				problems = append(problems, &ValidationError{Path: path + ".priority", Err: fmt.Errorf("invalid priority %v", p)})
			}
		}
	}
	return problems
}
