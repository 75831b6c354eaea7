// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cryoflow/cryoflow/ent/pipelinejob"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/ent/project"
	"github.com/cryoflow/cryoflow/pkg/models"
)

// PipelineJob is the model entity for the PipelineJob schema.
type PipelineJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Project-unique, monotonically numbered (job001, job002, ...)
	JobName string `json:"job_name,omitempty"`
	// Stage key: import, motion, ctf, pick, extract, class2d
	JobType string `json:"job_type,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinejob.Status `json:"status,omitempty"`
	// OutputFilePath holds the value of the "output_file_path" field.
	OutputFilePath string `json:"output_file_path,omitempty"`
	// Rendered argv, space-joined
	Command string `json:"command,omitempty"`
	// Parameters holds the value of the "parameters" field.
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	// InputJobIds holds the value of the "input_job_ids" field.
	InputJobIds []string `json:"input_job_ids,omitempty"`
	// ExecutionMode holds the value of the "execution_mode" field.
	ExecutionMode string `json:"execution_mode,omitempty"`
	// ClusterJobID holds the value of the "cluster_job_id" field.
	ClusterJobID *string `json:"cluster_job_id,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime *time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime *time.Time `json:"end_time,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// PipelineStats holds the value of the "pipeline_stats" field.
	PipelineStats models.PipelineStats `json:"pipeline_stats,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineJobQuery when eager-loading is set.
	Edges        PipelineJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineJobEdges holds the relations/edges for other nodes in the graph.
type PipelineJobEdges struct {
	// Session holds the value of the session edge.
	Session *PipelineSession `json:"session,omitempty"`
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineJobEdges) SessionOrErr() (*PipelineSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pipelinesession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineJobEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinejob.FieldParameters, pipelinejob.FieldInputJobIds, pipelinejob.FieldPipelineStats:
			values[i] = new([]byte)
		case pipelinejob.FieldID, pipelinejob.FieldSessionID, pipelinejob.FieldProjectID, pipelinejob.FieldUserID, pipelinejob.FieldJobName, pipelinejob.FieldJobType, pipelinejob.FieldStatus, pipelinejob.FieldOutputFilePath, pipelinejob.FieldCommand, pipelinejob.FieldExecutionMode, pipelinejob.FieldClusterJobID, pipelinejob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case pipelinejob.FieldStartTime, pipelinejob.FieldEndTime, pipelinejob.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineJob fields.
func (_m *PipelineJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinejob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinejob.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case pipelinejob.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case pipelinejob.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case pipelinejob.FieldJobName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_name", values[i])
			} else if value.Valid {
				_m.JobName = value.String
			}
		case pipelinejob.FieldJobType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_type", values[i])
			} else if value.Valid {
				_m.JobType = value.String
			}
		case pipelinejob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinejob.Status(value.String)
			}
		case pipelinejob.FieldOutputFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_file_path", values[i])
			} else if value.Valid {
				_m.OutputFilePath = value.String
			}
		case pipelinejob.FieldCommand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command", values[i])
			} else if value.Valid {
				_m.Command = value.String
			}
		case pipelinejob.FieldParameters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parameters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Parameters); err != nil {
					return fmt.Errorf("unmarshal field parameters: %w", err)
				}
			}
		case pipelinejob.FieldInputJobIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_job_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputJobIds); err != nil {
					return fmt.Errorf("unmarshal field input_job_ids: %w", err)
				}
			}
		case pipelinejob.FieldExecutionMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_mode", values[i])
			} else if value.Valid {
				_m.ExecutionMode = value.String
			}
		case pipelinejob.FieldClusterJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cluster_job_id", values[i])
			} else if value.Valid {
				_m.ClusterJobID = new(string)
				*_m.ClusterJobID = value.String
			}
		case pipelinejob.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = new(time.Time)
				*_m.StartTime = value.Time
			}
		case pipelinejob.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(time.Time)
				*_m.EndTime = value.Time
			}
		case pipelinejob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case pipelinejob.FieldPipelineStats:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_stats", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PipelineStats); err != nil {
					return fmt.Errorf("unmarshal field pipeline_stats: %w", err)
				}
			}
		case pipelinejob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineJob.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the PipelineJob entity.
func (_m *PipelineJob) QuerySession() *PipelineSessionQuery {
	return NewPipelineJobClient(_m.config).QuerySession(_m)
}

// QueryProject queries the "project" edge of the PipelineJob entity.
func (_m *PipelineJob) QueryProject() *ProjectQuery {
	return NewPipelineJobClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this PipelineJob.
// Note that you need to call PipelineJob.Unwrap() before calling this method if this PipelineJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineJob) Update() *PipelineJobUpdateOne {
	return NewPipelineJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineJob) Unwrap() *PipelineJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineJob) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("job_name=")
	builder.WriteString(_m.JobName)
	builder.WriteString(", ")
	builder.WriteString("job_type=")
	builder.WriteString(_m.JobType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("output_file_path=")
	builder.WriteString(_m.OutputFilePath)
	builder.WriteString(", ")
	builder.WriteString("command=")
	builder.WriteString(_m.Command)
	builder.WriteString(", ")
	builder.WriteString("parameters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parameters))
	builder.WriteString(", ")
	builder.WriteString("input_job_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputJobIds))
	builder.WriteString(", ")
	builder.WriteString("execution_mode=")
	builder.WriteString(_m.ExecutionMode)
	builder.WriteString(", ")
	if v := _m.ClusterJobID; v != nil {
		builder.WriteString("cluster_job_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartTime; v != nil {
		builder.WriteString("start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("pipeline_stats=")
	builder.WriteString(fmt.Sprintf("%v", _m.PipelineStats))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineJobs is a parsable slice of PipelineJob.
type PipelineJobs []*PipelineJob
