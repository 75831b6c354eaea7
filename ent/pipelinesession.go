// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cryoflow/cryoflow/ent/pipelinesession"
	"github.com/cryoflow/cryoflow/ent/project"
	"github.com/cryoflow/cryoflow/pkg/models"
)

// PipelineSession is the model entity for the PipelineSession schema.
type PipelineSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SessionName holds the value of the "session_name" field.
	SessionName string `json:"session_name,omitempty"`
	// InputMode holds the value of the "input_mode" field.
	InputMode pipelinesession.InputMode `json:"input_mode,omitempty"`
	// WatchDirectory holds the value of the "watch_directory" field.
	WatchDirectory string `json:"watch_directory,omitempty"`
	// Extension-style glob, e.g. *.tiff — matched case-insensitively
	FilePattern string `json:"file_pattern,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinesession.Status `json:"status,omitempty"`
	// Optics holds the value of the "optics" field.
	Optics models.OpticsConfig `json:"optics,omitempty"`
	// MotionConfig holds the value of the "motion_config" field.
	MotionConfig models.MotionConfig `json:"motion_config,omitempty"`
	// CtfConfig holds the value of the "ctf_config" field.
	CtfConfig models.CtfConfig `json:"ctf_config,omitempty"`
	// PickingConfig holds the value of the "picking_config" field.
	PickingConfig models.PickingConfig `json:"picking_config,omitempty"`
	// ExtractionConfig holds the value of the "extraction_config" field.
	ExtractionConfig models.ExtractionConfig `json:"extraction_config,omitempty"`
	// Class2dConfig holds the value of the "class2d_config" field.
	Class2dConfig models.Class2DConfig `json:"class2d_config,omitempty"`
	// SlurmConfig holds the value of the "slurm_config" field.
	SlurmConfig models.SlurmConfig `json:"slurm_config,omitempty"`
	// Mutable pipeline progress; updated only under row lock
	State models.SessionState `json:"state,omitempty"`
	// Stage key to main job id mapping; stage ids are write-once
	Jobs models.SessionJobs `json:"jobs,omitempty"`
	// Append-only pass snapshots
	PassHistory []models.PassSnapshot `json:"pass_history,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime *time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime *time.Time `json:"end_time,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineSessionQuery when eager-loading is set.
	Edges        PipelineSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineSessionEdges holds the relations/edges for other nodes in the graph.
type PipelineSessionEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// PipelineJobs holds the value of the pipeline_jobs edge.
	PipelineJobs []*PipelineJob `json:"pipeline_jobs,omitempty"`
	// ActivityEntries holds the value of the activity_entries edge.
	ActivityEntries []*ActivityEntry `json:"activity_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineSessionEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// PipelineJobsOrErr returns the PipelineJobs value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineSessionEdges) PipelineJobsOrErr() ([]*PipelineJob, error) {
	if e.loadedTypes[1] {
		return e.PipelineJobs, nil
	}
	return nil, &NotLoadedError{edge: "pipeline_jobs"}
}

// ActivityEntriesOrErr returns the ActivityEntries value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineSessionEdges) ActivityEntriesOrErr() ([]*ActivityEntry, error) {
	if e.loadedTypes[2] {
		return e.ActivityEntries, nil
	}
	return nil, &NotLoadedError{edge: "activity_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinesession.FieldOptics, pipelinesession.FieldMotionConfig, pipelinesession.FieldCtfConfig, pipelinesession.FieldPickingConfig, pipelinesession.FieldExtractionConfig, pipelinesession.FieldClass2dConfig, pipelinesession.FieldSlurmConfig, pipelinesession.FieldState, pipelinesession.FieldJobs, pipelinesession.FieldPassHistory:
			values[i] = new([]byte)
		case pipelinesession.FieldID, pipelinesession.FieldProjectID, pipelinesession.FieldUserID, pipelinesession.FieldSessionName, pipelinesession.FieldInputMode, pipelinesession.FieldWatchDirectory, pipelinesession.FieldFilePattern, pipelinesession.FieldStatus:
			values[i] = new(sql.NullString)
		case pipelinesession.FieldStartTime, pipelinesession.FieldEndTime, pipelinesession.FieldCreatedAt, pipelinesession.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineSession fields.
func (_m *PipelineSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinesession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinesession.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case pipelinesession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case pipelinesession.FieldSessionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_name", values[i])
			} else if value.Valid {
				_m.SessionName = value.String
			}
		case pipelinesession.FieldInputMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_mode", values[i])
			} else if value.Valid {
				_m.InputMode = pipelinesession.InputMode(value.String)
			}
		case pipelinesession.FieldWatchDirectory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field watch_directory", values[i])
			} else if value.Valid {
				_m.WatchDirectory = value.String
			}
		case pipelinesession.FieldFilePattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_pattern", values[i])
			} else if value.Valid {
				_m.FilePattern = value.String
			}
		case pipelinesession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinesession.Status(value.String)
			}
		case pipelinesession.FieldOptics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field optics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Optics); err != nil {
					return fmt.Errorf("unmarshal field optics: %w", err)
				}
			}
		case pipelinesession.FieldMotionConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field motion_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MotionConfig); err != nil {
					return fmt.Errorf("unmarshal field motion_config: %w", err)
				}
			}
		case pipelinesession.FieldCtfConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ctf_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CtfConfig); err != nil {
					return fmt.Errorf("unmarshal field ctf_config: %w", err)
				}
			}
		case pipelinesession.FieldPickingConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field picking_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PickingConfig); err != nil {
					return fmt.Errorf("unmarshal field picking_config: %w", err)
				}
			}
		case pipelinesession.FieldExtractionConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractionConfig); err != nil {
					return fmt.Errorf("unmarshal field extraction_config: %w", err)
				}
			}
		case pipelinesession.FieldClass2dConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field class2d_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Class2dConfig); err != nil {
					return fmt.Errorf("unmarshal field class2d_config: %w", err)
				}
			}
		case pipelinesession.FieldSlurmConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field slurm_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SlurmConfig); err != nil {
					return fmt.Errorf("unmarshal field slurm_config: %w", err)
				}
			}
		case pipelinesession.FieldState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.State); err != nil {
					return fmt.Errorf("unmarshal field state: %w", err)
				}
			}
		case pipelinesession.FieldJobs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field jobs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Jobs); err != nil {
					return fmt.Errorf("unmarshal field jobs: %w", err)
				}
			}
		case pipelinesession.FieldPassHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pass_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PassHistory); err != nil {
					return fmt.Errorf("unmarshal field pass_history: %w", err)
				}
			}
		case pipelinesession.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = new(time.Time)
				*_m.StartTime = value.Time
			}
		case pipelinesession.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(time.Time)
				*_m.EndTime = value.Time
			}
		case pipelinesession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinesession.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineSession.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the PipelineSession entity.
func (_m *PipelineSession) QueryProject() *ProjectQuery {
	return NewPipelineSessionClient(_m.config).QueryProject(_m)
}

// QueryPipelineJobs queries the "pipeline_jobs" edge of the PipelineSession entity.
func (_m *PipelineSession) QueryPipelineJobs() *PipelineJobQuery {
	return NewPipelineSessionClient(_m.config).QueryPipelineJobs(_m)
}

// QueryActivityEntries queries the "activity_entries" edge of the PipelineSession entity.
func (_m *PipelineSession) QueryActivityEntries() *ActivityEntryQuery {
	return NewPipelineSessionClient(_m.config).QueryActivityEntries(_m)
}

// Update returns a builder for updating this PipelineSession.
// Note that you need to call PipelineSession.Unwrap() before calling this method if this PipelineSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineSession) Update() *PipelineSessionUpdateOne {
	return NewPipelineSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineSession) Unwrap() *PipelineSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineSession) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("session_name=")
	builder.WriteString(_m.SessionName)
	builder.WriteString(", ")
	builder.WriteString("input_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputMode))
	builder.WriteString(", ")
	builder.WriteString("watch_directory=")
	builder.WriteString(_m.WatchDirectory)
	builder.WriteString(", ")
	builder.WriteString("file_pattern=")
	builder.WriteString(_m.FilePattern)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("optics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Optics))
	builder.WriteString(", ")
	builder.WriteString("motion_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.MotionConfig))
	builder.WriteString(", ")
	builder.WriteString("ctf_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.CtfConfig))
	builder.WriteString(", ")
	builder.WriteString("picking_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.PickingConfig))
	builder.WriteString(", ")
	builder.WriteString("extraction_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionConfig))
	builder.WriteString(", ")
	builder.WriteString("class2d_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Class2dConfig))
	builder.WriteString(", ")
	builder.WriteString("slurm_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlurmConfig))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("jobs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Jobs))
	builder.WriteString(", ")
	builder.WriteString("pass_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassHistory))
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
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PipelineSessions is a parsable slice of PipelineSession.
type PipelineSessions []*PipelineSession
